package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Provider clients return these
// (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about external resources, not validation
// failures:
// - ErrNotFound: entity does not exist upstream
// - ErrConflict: upstream rejected a duplicate (e.g. email already registered)
// - ErrUnauthorized: upstream rejected our service credentials
// - ErrUnavailable: upstream unreachable or returned a server error
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("unavailable")
)
