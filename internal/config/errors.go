package config

import "errors"

// Validation errors returned while collecting configuration values from
// flags and environment variables.
var (
	// ErrEmptyFileRef indicates a load flag or environment entry whose
	// value is empty or blank.
	ErrEmptyFileRef = errors.New("empty configuration file reference")
)
