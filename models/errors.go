// File: /models/errors.go
package models

import "errors"

// Error taxonomy shared by repositories and services. Callers match these
// with errors.Is; repositories wrap the underlying driver error.
var (
	// ErrRemoteUnavailable means the trip catalog could not be reached.
	ErrRemoteUnavailable = errors.New("trip catalog unavailable")

	// ErrRemoteWrite means a catalog write was rejected or failed.
	ErrRemoteWrite = errors.New("trip catalog write failed")

	// ErrLocalStorage means the save-set store failed unexpectedly.
	ErrLocalStorage = errors.New("saved trip storage failure")

	// ErrNotOwner means a catalog delete was attempted by a non-owner.
	ErrNotOwner = errors.New("only the trip owner can delete it")

	// ErrTripNotFound means the trip id is absent from the catalog or the
	// save-set, where that absence is an error rather than a no-op.
	ErrTripNotFound = errors.New("trip not found")
)
