// Package common defines shared sentinel errors used across padre
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Charset compilation errors (unresolvable or over-capacity spec).
	ErrInvalidSpecification = errors.New("invalid charset specification")

	// Database parsing errors. ErrInvalidLength is fatal for the whole
	// buffer: the parse aborts and all previously accumulated records
	// are discarded.
	ErrInvalidLength = errors.New("password length may not be negative or zero")

	// Derivation errors. ErrSaltConstruction covers resource exhaustion
	// while assembling the per-account salt; in Go an allocation failure
	// aborts the process instead of surfacing recoverably, so the deriver
	// never returns it today. It stays part of the published taxonomy so
	// callers matching it keep compiling. ErrDerivation covers failures
	// reported by the key-derivation primitive itself.
	ErrSaltConstruction = errors.New("could not construct salt")
	ErrDerivation       = errors.New("key derivation failed")

	// Validation errors for hand-entered recipes.
	ErrorValidation = errors.New("validation error")

	// Session errors (interactive client).
	ErrorLocked = errors.New("session is locked")
)
