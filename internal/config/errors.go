package config

import "errors"

var (
	// ErrMalformed indicates the config file exists but could not be decoded
	// in its format.
	ErrMalformed = errors.New("malformed config file")

	// ErrSubstitution indicates the placeholder matcher reported a match
	// without a variable name.
	ErrSubstitution = errors.New("placeholder match without variable name")
)
