package tree

import "errors"

// Sentinel errors returned by tree operations to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Lookup when a walk reaches a segment
	// that does not exist or tries to descend through a scalar value.
	// The wrapping message carries the full attempted path for diagnostics.
	ErrKeyNotFound = errors.New("key was not found")

	// ErrRootAccessDenied is returned by Resolve when a key requests a root
	// escape (leading "/") while the owning store forbids root access and a
	// non-empty namespace is active.
	ErrRootAccessDenied = errors.New("root access is denied")

	// ErrNotMapping is returned when a mapping is required but another value
	// shape was supplied: a decoded document whose top level is not a
	// mapping, a mapping with non-string keys, or an assignment of a scalar
	// directly at the tree root.
	ErrNotMapping = errors.New("value is not a mapping")
)
