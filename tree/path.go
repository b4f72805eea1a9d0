// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"fmt"
	"strings"
)

// Separator delimits segments inside raw key strings. A key starting with
// Separator addresses the tree root regardless of the active namespace.
const Separator = "/"

// Path is an ordered sequence of string segments addressing a location in
// the tree. The empty Path addresses the tree root.
type Path []string

// String returns the segments joined by [Separator].
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Resolve maps a raw key plus the active namespace to an absolute Path.
//
// Resolution rules:
//   - an empty rawKey resolves to the namespace verbatim;
//   - a rawKey with a leading separator is a root escape: the namespace is
//     ignored and the remainder of the key is resolved from the tree root.
//     When denyRoot is set and the namespace is non-empty, the escape fails
//     with ErrRootAccessDenied;
//   - any other rawKey resolves to the namespace segments followed by the
//     key segments.
//
// Splitting is deliberately naive: consecutive separators are not collapsed,
// so empty intermediate segments pass through as literal empty-string keys.
func Resolve(rawKey string, namespace Path, denyRoot bool) (Path, error) {
	if rawKey == "" {
		return append(Path(nil), namespace...), nil
	}

	if strings.HasPrefix(rawKey, Separator) {
		if denyRoot && len(namespace) > 0 {
			return nil, fmt.Errorf("%w: key %q escapes namespace %q", ErrRootAccessDenied, rawKey, namespace.String())
		}

		return splitKey(rawKey[len(Separator):]), nil
	}

	segments := splitKey(rawKey)
	resolved := make(Path, 0, len(namespace)+len(segments))
	resolved = append(resolved, namespace...)
	resolved = append(resolved, segments...)

	return resolved, nil
}

func splitKey(raw string) Path {
	return Path(strings.Split(raw, Separator))
}
