// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import "context"

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/source_reader_mock.go -package=mock

// Reader retrieves raw configuration content from a source reference, which
// may be a local filesystem path or a URL understood by the implementation.
// Implementations must report every failure through a wrapped
// [ErrSourceUnreadable] so that callers can match it transport-agnostically.
type Reader interface {
	// Read returns the full content behind ref. The context bounds remote
	// reads; local reads are ordinary blocking I/O.
	Read(ctx context.Context, ref string) ([]byte, error)
}
