// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-conf-keeper/tree"
)

// Canonical format identifiers accepted by [Decode]. "yml" is recognized as
// an alias of FormatYAML by [Canonical] and [Detect].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatINI  = "ini"
)

type decodeFunc func(data []byte) (tree.Node, error)

var formats = map[string]decodeFunc{
	FormatJSON: decodeJSON,
	FormatYAML: decodeYAML,
	FormatINI:  decodeINI,
}

// extensionPattern matches a recognized extension at the end of a source
// reference, tolerating a query or fragment suffix after the extension
// (e.g. "config.json?v=2" or "config.YML#prod").
var extensionPattern = regexp.MustCompile(`(?i)\.(json|ya?ml|ini)([?#].*)?$`)

// Detect resolves the configuration format from a source reference alone by
// matching its trailing extension, case-insensitively. It is a pure function
// over the reference string and never touches the content, so callers that
// already know the format can bypass it entirely.
//
// Returns ErrUnknownFormat when no recognized extension is present.
func Detect(ref string) (string, error) {
	match := extensionPattern.FindStringSubmatch(ref)
	if match == nil {
		return "", fmt.Errorf("%w: no recognized extension in %q", ErrUnknownFormat, ref)
	}

	return Canonical(match[1])
}

// Canonical normalizes a format hint to its canonical identifier:
// case-insensitive, with "yml" mapping to FormatYAML. Unknown hints fail
// with ErrUnknownFormat.
func Canonical(hint string) (string, error) {
	switch strings.ToLower(hint) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatINI:
		return FormatINI, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, hint)
	}
}

// Decode parses data as the given format (canonical or alias) and returns
// the normalized mapping. Unknown formats fail with ErrUnknownFormat; parse
// failures and non-mapping documents fail with a wrapped ErrDecode naming
// the format and the underlying parser error.
func Decode(data []byte, format string) (tree.Node, error) {
	canonical, err := Canonical(format)
	if err != nil {
		return nil, err
	}

	node, err := formats[canonical](data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, canonical, err)
	}

	return node, nil
}
