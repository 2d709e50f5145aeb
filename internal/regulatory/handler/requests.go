package handler

import (
	"strings"

	dErrors "autocomply/pkg/domain-errors"
)

const (
	maxQueryLength = 256
	maxLimit       = 25
)

// SearchRequest is the HTTP request body for POST /rag/regulatory/search.
type SearchRequest struct {
	Query        string   `json:"query"`
	Jurisdiction string   `json:"jurisdiction"`
	Tags         []string `json:"tags"`
	Limit        int      `json:"limit"`
}

// Validate validates and normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SearchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Query = strings.TrimSpace(r.Query)
	if r.Query == "" {
		return dErrors.New(dErrors.CodeValidation, "query is required")
	}
	if len(r.Query) > maxQueryLength {
		return dErrors.New(dErrors.CodeValidation, "query must be at most 256 characters")
	}

	r.Jurisdiction = strings.TrimSpace(r.Jurisdiction)
	if r.Limit < 0 {
		return dErrors.New(dErrors.CodeValidation, "limit must not be negative")
	}
	if r.Limit > maxLimit {
		r.Limit = maxLimit
	}

	return nil
}
