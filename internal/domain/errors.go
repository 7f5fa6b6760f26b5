package domain

import "errors"

// Error kinds returned by every public service operation. Callers
// classify with errors.Is; the HTTP layer maps kinds to statuses.
var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden marks an authenticated but unauthorized request.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks a referenced entity that is absent or already in
	// a terminal/incompatible state.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness or state-machine violation, e.g. a
	// duplicate join request.
	ErrConflict = errors.New("conflict")
	// ErrDeletionFailed marks a storage failure inside the deletion
	// cascade; the transaction has been rolled back.
	ErrDeletionFailed = errors.New("deletion failed")
	// ErrStoreUnavailable marks an unreachable data store. Fatal for the
	// request; never retried here.
	ErrStoreUnavailable = errors.New("store unavailable")
)
