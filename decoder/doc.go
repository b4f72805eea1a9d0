// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package decoder converts raw configuration content into the tree model.
//
// Three formats are supported: JSON (with full-line '#' comments stripped
// before parsing), YAML via gopkg.in/yaml.v3, and INI via gopkg.in/ini.v1.
// The format of a source is resolved by an explicit hint first ([Canonical])
// and otherwise guessed from the reference's trailing extension ([Detect]);
// detection is a pure function over the reference string, decoupled from
// decoding so tests can supply hints directly.
//
// All decoders return a normalized [tree.Node], so the rest of the system
// never sees raw parser output. Failures are reported through the sentinel
// errors in errors.go and matched with [errors.Is].
package decoder
