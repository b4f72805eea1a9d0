// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"fmt"
	"sort"
	"strings"
)

// Node is one level of the configuration tree: a mapping from string keys to
// values. A value is either a scalar (string, bool, number, nil), a []any
// slice, or a nested Node. Slices are atomic for merge purposes: they are
// replaced wholesale, never merged element-wise.
//
// Every mutation path (Merge, Assign, Normalize) keeps the tree closed over
// this value set, so walks can type-switch exhaustively and a mapping/scalar
// mismatch is an explicit error instead of a silent overwrite.
type Node map[string]any

// Normalize converts a decoded document into a Node. Nested mappings are
// converted recursively, including mappings that appear inside slices, so the
// result contains no raw map values.
//
// Returns ErrNotMapping when v is not a mapping at the top level or when any
// nested mapping carries a non-string key.
func Normalize(v any) (Node, error) {
	normalized, err := normalizeValue(v)
	if err != nil {
		return nil, err
	}

	node, ok := normalized.(Node)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, v)
	}

	return node, nil
}

func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case Node:
		return normalizeStringMap(val)
	case map[string]any:
		return normalizeStringMap(val)
	case map[any]any:
		node := make(Node, len(val))
		for key, item := range val {
			strKey, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v of type %T", ErrNotMapping, key, key)
			}

			normalizedItem, err := normalizeValue(item)
			if err != nil {
				return nil, err
			}
			node[strKey] = normalizedItem
		}

		return node, nil
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			normalizedItem, err := normalizeValue(item)
			if err != nil {
				return nil, err
			}
			items[i] = normalizedItem
		}

		return items, nil
	default:
		return v, nil
	}
}

func normalizeStringMap(m map[string]any) (Node, error) {
	node := make(Node, len(m))
	for key, item := range m {
		normalizedItem, err := normalizeValue(item)
		if err != nil {
			return nil, err
		}
		node[key] = normalizedItem
	}

	return node, nil
}

// Merge recursively merges src into dst and returns dst. When both sides hold
// a mapping at the same key the mappings merge key-by-key; in every other
// case the incoming value replaces the existing one entirely. Merge is
// right-biased: later-merged data wins on conflicting scalar keys, while
// sibling keys absent from src survive untouched.
//
// Incoming values are deep-copied on insert, so dst never aliases data still
// owned by the caller.
func Merge(dst, src Node) Node {
	if dst == nil {
		dst = make(Node)
	}

	for key, srcVal := range src {
		dstVal, ok := dst[key]
		if !ok {
			dst[key] = cloneValue(srcVal)
			continue
		}

		srcNode, srcIsNode := srcVal.(Node)
		dstNode, dstIsNode := dstVal.(Node)
		if srcIsNode && dstIsNode {
			dst[key] = Merge(dstNode, srcNode)
			continue
		}

		dst[key] = cloneValue(srcVal)
	}

	return dst
}

// Lookup walks p from n and returns the terminal value, which may be a
// scalar, a slice, or a submapping. The empty path returns n itself.
//
// Any step that does not land on a mapping containing the next segment fails
// with ErrKeyNotFound carrying the full attempted path.
func Lookup(n Node, p Path) (any, error) {
	current := any(n)
	for _, segment := range p {
		node, ok := current.(Node)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, p.String())
		}

		val, exists := node[segment]
		if !exists {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, p.String())
		}

		current = val
	}

	return current, nil
}

// Exists reports whether p addresses an existing value in n.
func Exists(n Node, p Path) bool {
	_, err := Lookup(n, p)
	return err == nil
}

// Assign places value at p by building a chain of single-key mappings from
// the last segment inward and merging that chain into n. Reusing merge
// semantics means untouched sibling keys survive at every level along the
// path, and intermediate levels spring into existence as needed.
//
// The value is normalized first, so raw decoded mappings may be passed
// directly. An empty path requires a mapping value (merged at the root);
// assigning a scalar at the root fails with ErrNotMapping.
func Assign(n Node, p Path, value any) (Node, error) {
	normalized, err := normalizeValue(value)
	if err != nil {
		return nil, err
	}

	if len(p) == 0 {
		node, ok := normalized.(Node)
		if !ok {
			return nil, fmt.Errorf("%w: cannot assign %T at the tree root", ErrNotMapping, value)
		}

		return Merge(n, node), nil
	}

	chain := normalized
	for i := len(p) - 1; i >= 0; i-- {
		chain = Node{p[i]: chain}
	}

	return Merge(n, chain.(Node)), nil
}

// Clone returns a deep copy of n: nested mappings and slices are copied
// recursively, so no mutable state is shared between n and the copy.
func Clone(n Node) Node {
	copied := make(Node, len(n))
	for key, val := range n {
		copied[key] = cloneValue(val)
	}

	return copied
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Node:
		return Clone(val)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = cloneValue(item)
		}

		return items
	default:
		return v
	}
}

// Flatten returns the leaf values of n keyed by their full slash-joined
// paths. Nested mappings contribute their leaves; empty mappings contribute
// nothing.
func Flatten(n Node) map[string]any {
	flat := make(map[string]any)
	flattenInto(n, "", flat)

	return flat
}

func flattenInto(n Node, prefix string, flat map[string]any) {
	for key, val := range n {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + Separator + key
		}

		if nested, ok := val.(Node); ok {
			flattenInto(nested, fullKey, flat)
			continue
		}

		flat[fullKey] = val
	}
}

// String renders the tree as an indented listing with keys sorted at every
// level, one leaf per line. The output is for diagnostics only and is not
// meant to be parsed back.
func (n Node) String() string {
	var b strings.Builder
	writeNode(&b, n, 0)

	return b.String()
}

func writeNode(b *strings.Builder, n Node, depth int) {
	keys := make([]string, 0, len(n))
	for key := range n {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	indent := strings.Repeat("  ", depth)
	for _, key := range keys {
		if nested, ok := n[key].(Node); ok {
			fmt.Fprintf(b, "%s%s:\n", indent, key)
			writeNode(b, nested, depth+1)
			continue
		}

		fmt.Fprintf(b, "%s%s: %v\n", indent, key, n[key])
	}
}
