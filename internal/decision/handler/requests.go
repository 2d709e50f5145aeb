package handler

import (
	"strings"

	"autocomply/internal/decision"
	dErrors "autocomply/pkg/domain-errors"
)

const (
	maxPayloadFields    = 64
	maxFieldValueLength = 512
	maxTraceIDLength    = 64
)

// EvaluateRequest is the HTTP request body for POST /decision/evaluate.
type EvaluateRequest struct {
	Family  string            `json:"family"`
	Payload map[string]string `json:"payload"`
	TraceID string            `json:"trace_id"`

	// Parsed values (populated by Validate)
	parsedFamily decision.Family
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.Payload) > maxPayloadFields {
		return dErrors.New(dErrors.CodeValidation, "payload has too many fields")
	}
	for field, value := range r.Payload {
		if len(value) > maxFieldValueLength {
			return dErrors.New(dErrors.CodeValidation, "payload field "+field+" is too long")
		}
	}
	r.TraceID = strings.TrimSpace(r.TraceID)
	if len(r.TraceID) > maxTraceIDLength {
		return dErrors.New(dErrors.CodeValidation, "trace_id must be at most 64 characters")
	}

	// Required fields
	r.Family = strings.TrimSpace(r.Family)
	if r.Family == "" {
		return dErrors.New(dErrors.CodeValidation, "family is required")
	}
	family, err := decision.ParseFamily(r.Family)
	if err != nil {
		return err
	}
	r.parsedFamily = family

	// Payload content is deliberately not validated here: evaluators own
	// field-level judgment and degrade status instead of erroring.
	if r.Payload == nil {
		r.Payload = map[string]string{}
	}

	return nil
}

// ParsedFamily returns the validated decision family.
func (r *EvaluateRequest) ParsedFamily() decision.Family {
	return r.parsedFamily
}
