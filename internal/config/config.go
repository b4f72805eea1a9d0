// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// FileConfig is the top-level configuration container for the confkeeper
// binary. It is populated by merging values from environment variables and
// command-line flags.
//
// Struct tags:
//   - env: environment variable name, looked up under the CONFKEEPER_
//     prefix (caarlos0/env).
//   - envSeparator: list separator for multi-value variables.
type FileConfig struct {
	// BaseDir is the directory whose config/ subdirectory holds the
	// default configuration files loaded at store construction.
	// Env: CONFKEEPER_BASE_DIR
	BaseDir string `env:"BASE_DIR"`

	// IgnoreDefaults suppresses loading of the default configuration
	// files entirely.
	// Env: CONFKEEPER_IGNORE_DEFAULTS
	IgnoreDefaults bool `env:"IGNORE_DEFAULTS"`

	// DenyRootAccess rejects leading-slash root escapes in keys while a
	// namespace is active.
	// Env: CONFKEEPER_DENY_ROOT_ACCESS
	DenyRootAccess bool `env:"DENY_ROOT_ACCESS"`

	// Timeout bounds a single remote source fetch (e.g. "30s", "1m").
	// Zero keeps the built-in default.
	// Env: CONFKEEPER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Files lists configuration sources (local paths or URLs) loaded in
	// order after the defaults. Entries from the environment come before
	// entries from flags, so flag-supplied sources win on conflicts.
	// Env: CONFKEEPER_LOAD (comma-separated)
	Files []string `env:"LOAD" envSeparator:","`
}

// GetFileConfig loads and merges the confkeeper configuration from all
// available sources:
//  1. Environment variables
//  2. Command-line flags
//
// Scalar fields keep the first non-zero value in that order; the Files
// list accumulates entries from every source. Returns a fully populated
// *FileConfig or an error if any source fails to parse.
func GetFileConfig() (*FileConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		build()
}
