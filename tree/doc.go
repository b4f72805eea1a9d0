// Package tree implements the nested key-value model shared by every part of
// go-conf-keeper: the [Node] mapping type, deep-merge and assignment over it,
// and the [Path] resolution rules that translate slash-separated keys plus an
// active namespace into absolute tree positions.
//
// Merging is right-biased ([Merge]): when two mappings collide they merge
// key-by-key, while any other collision is resolved by replacing the existing
// value with the incoming one. Assignment ([Assign]) is expressed through the
// same merge, so writing a single key never disturbs its siblings.
//
// Key strings use "/" as the segment separator; a leading "/" escapes the
// active namespace and resolves from the root ([Resolve]). Splitting is
// intentionally naive and keeps empty segments produced by doubled
// separators.
//
// Error values defined in errors.go are sentinels matched with [errors.Is];
// wrapping messages carry the attempted path.
package tree
