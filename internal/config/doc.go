// Package config assembles the command-line configuration for the
// confkeeper binary.
//
// Configuration is gathered from multiple sources and merged into a single
// [FileConfig]. Scalar settings keep the first non-zero value in source
// order, while load references accumulate across all sources:
//  1. Environment variables (CONFKEEPER_* prefix)
//  2. Command-line flags (-config-* prefix)
//
// The main entry point is [GetFileConfig].
package config
