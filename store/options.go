// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-conf-keeper/logger"
)

// Options configures construction of a [Store]. The zero value is usable:
// defaults load from the current directory, root escapes are permitted, and
// logging is silent.
type Options struct {
	// BaseDir is the directory the default configuration files are
	// resolved against. Empty means the current working directory. The
	// stored value is normalized to end with a path separator.
	BaseDir string

	// IgnoreDefaults suppresses loading of the conventional default files
	// at construction time.
	IgnoreDefaults bool

	// DenyRootAccess forbids root-escape keys (leading "/") while a
	// non-empty namespace is active. The zero value permits them.
	DenyRootAccess bool

	// Timeout bounds a single remote read. Non-positive values fall back
	// to source.DefaultTimeout. Local file reads are not affected.
	Timeout time.Duration

	// Logger receives a debug-level record of every merged source and
	// every skipped default file. Nil disables logging.
	Logger *logger.Logger
}
