package companies

import "errors"

var (
	// ErrNotFound means no company matched the lookup.
	ErrNotFound = errors.New("company not found")
	// ErrNameTaken means a company with this exact name already exists.
	ErrNameTaken = errors.New("company name already exists")
	// ErrInvalidInput means a required field was missing.
	ErrInvalidInput = errors.New("invalid company input")
)
