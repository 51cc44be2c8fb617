package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure classes crossing the handler boundary.
var (
	// ErrAuthenticationRequired means no valid identity could be resolved.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrServiceUnavailable means the generation backend is misconfigured,
	// e.g. a missing credential.
	ErrServiceUnavailable = errors.New("recipe generation service is unavailable")

	// ErrUpstreamFormat means the generation backend returned data that could
	// not be parsed or failed schema validation.
	ErrUpstreamFormat = errors.New("generation backend returned malformed data")

	// ErrUpstream covers any other transport or backend failure.
	ErrUpstream = errors.New("generation backend request failed")

	// ErrDuplicateKey means a unique constraint (email, username) collided.
	ErrDuplicateKey = errors.New("duplicate key")
)

// FieldError names one offending field and the reason it was rejected
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries the field-level reasons of a rejected input
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error and returns the receiver for chaining
func (e *ValidationError) Add(field, reason string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
	return e
}

// HasErrors reports whether any field was rejected
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// AsValidationError unwraps err into a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
