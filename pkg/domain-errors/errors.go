// Package domainerrors defines the error codes shared by every module so the
// HTTP layer can translate failures into consistent JSON envelopes.
package domainerrors

import "net/http"

// Code classifies an error for transport-level translation.
type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeValidation Code = "validation_error"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal_error"
)

// Error carries a code plus a human-readable description. The description is
// surfaced to clients for everything except internal errors.
type Error struct {
	Code        Code
	Description string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Description
}

// New constructs a domain error.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
