package store

import "errors"

// Sentinel errors returned by store operations. Errors surfaced by
// collaborators keep their own sentinels: [tree.ErrKeyNotFound],
// [tree.ErrRootAccessDenied], [source.ErrSourceUnreadable],
// [decoder.ErrUnknownFormat] and [decoder.ErrDecode] all pass through
// unchanged and are matched with [errors.Is].
var (
	// ErrInvalidNamespace is returned by SetNamespace when the target path
	// does not exist in the tree. The previously active namespace is left
	// unchanged.
	ErrInvalidNamespace = errors.New("invalid namespace")
)
