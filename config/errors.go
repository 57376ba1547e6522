package config

import "errors"

// Sentinel errors for config package.
var (
	// ErrNotSet is returned by typed getters when a key has neither a
	// value nor a default.
	ErrNotSet = errors.New("config: setting not set")

	// ErrInvalidValue is returned by typed getters when a value does not
	// parse as the requested type.
	ErrInvalidValue = errors.New("config: invalid setting value")
)
