package documents

import "errors"

var (
	// ErrNotFound means no document matched the lookup within the caller's
	// scope.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput means a required field was missing.
	ErrInvalidInput = errors.New("invalid document input")
	// ErrInvalidStatus means the status value is not one of the known
	// states.
	ErrInvalidStatus = errors.New("invalid document status")
)
