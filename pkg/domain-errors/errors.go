// Package dErrors defines coded domain errors shared by services and the
// HTTP layer. Services create or wrap errors with a Code; the transport
// layer translates codes into HTTP statuses without inspecting messages.
// Imported as dErrors by convention.
package derrors

import "errors"

// Code identifies the class of a domain error. Codes are stable strings and
// appear verbatim in JSON error envelopes.
type Code string

const (
	CodeValidation   Code = "validation_error"
	CodeBadRequest   Code = "bad_request"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeUnavailable  Code = "unavailable"
	CodeInternal     Code = "internal_error"

	// Provisioning stage codes. Registration is a two-stage operation against
	// independent external systems; callers need to tell the stages apart.
	CodeAuthProvisioning    Code = "auth_provisioning_failed"
	CodeProfileProvisioning Code = "profile_provisioning_failed"
	CodeIntakeStorage       Code = "intake_storage_failed"
)

// DomainError carries a code, a caller-safe message, and an optional cause.
type DomainError struct {
	Code    Code
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// New creates a domain error with no underlying cause.
func New(code Code, message string) error {
	return &DomainError{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error. The cause stays
// reachable through errors.Unwrap for logging; only Message is caller-safe.
func Wrap(err error, code Code, message string) error {
	return &DomainError{Code: code, Message: message, Err: err}
}

// HasCode reports whether err or anything in its chain carries the code.
func HasCode(err error, code Code) bool {
	var de *DomainError
	for e := err; e != nil; e = errors.Unwrap(e) {
		if errors.As(e, &de) && de.Code == code {
			return true
		}
	}
	return false
}

// Is is a readability alias for HasCode, used in tests and services.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf extracts the outermost code, defaulting to CodeInternal so unknown
// errors never leak details to callers.
func CodeOf(err error) Code {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
