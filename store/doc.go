// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the hierarchical configuration store at the heart
// of go-conf-keeper.
//
// A [Store] deep-merges JSON, YAML and INI sources (local files or http(s)
// locations) into one nested tree and answers namespaced reads and writes
// over it. Construction ([New]) seeds the tree from the conventional default
// files under the base directory; explicit [Store.Load] calls merge further
// sources on top, later loads winning on conflicting scalar keys.
//
// Keys are slash-separated paths resolved against the active namespace
// ([Store.SetNamespace]); a leading slash escapes the namespace and
// addresses the tree root. Loading is the one deliberate exception to
// namespace scoping: files always merge at the tree root, while
// [Store.Set] writes relative to the namespace.
//
// [Store.Clone] snapshots a subtree into a fresh, fully independent store.
// Nothing is ever written back to persistent storage; Set mutates the
// in-memory tree only.
package store
