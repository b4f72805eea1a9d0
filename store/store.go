// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-conf-keeper/decoder"
	"github.com/MKhiriev/go-conf-keeper/logger"
	"github.com/MKhiriev/go-conf-keeper/source"
	"github.com/MKhiriev/go-conf-keeper/tree"
)

// defaultFiles is the fixed, ordered list of conventional file names loaded
// at construction time relative to the base directory, unless defaults are
// suppressed. Missing files are skipped; malformed ones are fatal.
var defaultFiles = []string{
	filepath.Join("config", "config.json"),
	filepath.Join("config", "config.yml"),
	filepath.Join("config", "config.ini"),
}

type decodeFunc func(data []byte, format string) (tree.Node, error)

// Store is a hierarchical configuration store. It owns one nested key-value
// tree assembled by deep-merging loaded sources, plus the namespace state
// that scopes relative key resolution.
//
// A Store is single-threaded: operations complete or fail before returning
// and no internal synchronization exists. Embeddings that share one Store
// across goroutines must serialize access externally.
type Store struct {
	id        string
	baseDir   string
	denyRoot  bool
	root      tree.Node
	namespace tree.Path

	reader source.Reader
	decode decodeFunc

	log *logger.Logger
}

// New constructs a [Store]. Unless opts.IgnoreDefaults is set, the
// conventional default files are loaded in their fixed order from under
// opts.BaseDir; a missing default is logged and skipped, while a default
// that exists but fails to decode aborts construction.
//
// The namespace initializes to the tree root.
func New(ctx context.Context, opts Options) (*Store, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := &Store{
		id:       newStoreID(),
		baseDir:  normalizeBaseDir(opts.BaseDir),
		denyRoot: opts.DenyRootAccess,
		root:     make(tree.Node),
		reader:   source.New(opts.Timeout),
		decode:   decoder.Decode,
		log:      log,
	}

	if opts.IgnoreDefaults {
		return s, nil
	}

	for _, name := range defaultFiles {
		if err := s.loadSource(ctx, s.baseDir+name, ""); err != nil {
			if errors.Is(err, source.ErrSourceUnreadable) {
				s.log.Debug().Err(err).Str("store_id", s.id).Msg("skipping missing default config file")
				continue
			}

			return nil, err
		}
	}

	return s, nil
}

// Load reads ref, resolves its format from the reference's extension,
// decodes the content, and merges the result into the tree at the root.
// Loaded data always merges at the top level of the tree, regardless of the
// active namespace.
//
// Read failures surface as source.ErrSourceUnreadable, undetectable formats
// as decoder.ErrUnknownFormat, malformed content as decoder.ErrDecode.
func (s *Store) Load(ctx context.Context, ref string) error {
	return s.loadSource(ctx, ref, "")
}

// LoadAs is [Store.Load] with an explicit format hint ("json", "yaml"/"yml"
// or "ini", case-insensitive) overriding extension detection. An empty hint
// falls back to detection.
func (s *Store) LoadAs(ctx context.Context, ref, format string) error {
	return s.loadSource(ctx, ref, format)
}

func (s *Store) loadSource(ctx context.Context, ref, formatHint string) error {
	data, err := s.reader.Read(ctx, ref)
	if err != nil {
		return err
	}

	format := formatHint
	if format == "" {
		format, err = decoder.Detect(ref)
	} else {
		format, err = decoder.Canonical(format)
	}
	if err != nil {
		return err
	}

	node, err := s.decode(data, format)
	if err != nil {
		return err
	}

	s.root = tree.Merge(s.root, node)
	s.log.Debug().
		Str("store_id", s.id).
		Str("ref", ref).
		Str("format", format).
		Msg("merged configuration source")

	return nil
}

// Get resolves key against the current namespace and returns the value at
// the resolved path, which may be a scalar, a slice, or a whole submapping.
// An empty key returns the value at the namespace itself (the full tree at
// the root namespace).
//
// Missing keys fail with tree.ErrKeyNotFound carrying the attempted path;
// denied root escapes fail with tree.ErrRootAccessDenied.
func (s *Store) Get(key string) (any, error) {
	p, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	return tree.Lookup(s.root, p)
}

// GetDefault is [Store.Get] with a fallback: def is returned whenever key
// cannot be resolved or no value exists at it. It never fails.
func (s *Store) GetDefault(key string, def any) any {
	val, err := s.Get(key)
	if err != nil {
		return def
	}

	return val
}

// Exists reports whether key resolves to an existing value. It never fails;
// keys that cannot be resolved at all (including denied root escapes)
// report false.
func (s *Store) Exists(key string) bool {
	p, err := s.resolve(key)
	if err != nil {
		return false
	}

	return tree.Exists(s.root, p)
}

// Set places value at key resolved against the current namespace, creating
// intermediate levels as needed. Mapping values merge with existing data
// per tree rules; any other value replaces what the resolved path held.
// Unlike Load, Set is namespace-scoped: files define structure from the
// root, Set writes relative to where the store currently points.
//
// The tree is modified in memory only; nothing is ever written back to a
// file.
func (s *Store) Set(key string, value any) error {
	p, err := s.resolve(key)
	if err != nil {
		return err
	}

	root, err := tree.Assign(s.root, p, value)
	if err != nil {
		return err
	}

	s.root = root

	return nil
}

// SetNamespace switches the active namespace. An empty ns or the bare
// separator resets to the root unconditionally. Any other ns is resolved
// under the *current* namespace (root escape rules included) and must
// address an existing entry; otherwise the switch fails with
// ErrInvalidNamespace and the previous namespace stays active.
//
// The namespace is stored in absolute form at switch time, so later
// namespace changes never re-relativize it.
func (s *Store) SetNamespace(ns string) error {
	if ns == "" || ns == tree.Separator {
		s.namespace = nil
		return nil
	}

	p, err := s.resolve(ns)
	if err != nil {
		return err
	}

	if !tree.Exists(s.root, p) {
		return fmt.Errorf("%w: %q does not exist", ErrInvalidNamespace, p.String())
	}

	s.namespace = p

	return nil
}

// GetNamespace returns the active namespace as a slash-joined string; the
// empty string means the tree root.
func (s *Store) GetNamespace() string {
	return s.namespace.String()
}

// GetNamespacePath returns the active namespace as its segment sequence.
// The returned path is a copy; mutating it does not affect the store.
func (s *Store) GetNamespacePath() tree.Path {
	return append(tree.Path(nil), s.namespace...)
}

// Clone produces an independent store seeded from the value at key resolved
// against the current namespace, or from the whole tree when key is empty.
// The clone loads no default files, starts at the root namespace, keeps the
// receiver's root-access policy and collaborators, and shares no mutable
// state with the original. Cloning fails when key is missing or addresses a
// non-mapping value.
func (s *Store) Clone(key string) (*Store, error) {
	seed := s.root
	if key != "" {
		val, err := s.Get(key)
		if err != nil {
			return nil, err
		}

		node, ok := val.(tree.Node)
		if !ok {
			return nil, fmt.Errorf("%w: cannot clone from %T at %q", tree.ErrNotMapping, val, key)
		}
		seed = node
	}

	clone := &Store{
		id:       newStoreID(),
		baseDir:  s.baseDir,
		denyRoot: s.denyRoot,
		root:     tree.Clone(seed),
		reader:   s.reader,
		decode:   s.decode,
		log:      s.log,
	}

	s.log.Debug().
		Str("store_id", s.id).
		Str("clone_id", clone.id).
		Str("key", key).
		Msg("cloned configuration subtree")

	return clone, nil
}

// Keys returns the slash-joined path of every leaf in the tree, sorted.
func (s *Store) Keys() []string {
	flat := tree.Flatten(s.root)

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// String renders the full tree as an indented diagnostic dump. The output
// is human-readable and not meant to be parsed back.
func (s *Store) String() string {
	return s.root.String()
}

func (s *Store) resolve(key string) (tree.Path, error) {
	return tree.Resolve(key, s.namespace, s.denyRoot)
}

// normalizeBaseDir ensures the base directory ends with exactly one path
// separator; empty input means the current directory.
func normalizeBaseDir(dir string) string {
	if dir == "" {
		dir = "."
	}

	if !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}

	return dir
}

// newStoreID returns the uuid that correlates log entries of one store
// instance. V7 keeps ids time-ordered; generation failures fall back to a
// random id.
func newStoreID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
