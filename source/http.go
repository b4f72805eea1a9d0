// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds a single remote read when no explicit timeout is
// configured.
const DefaultTimeout = 30 * time.Second

// HTTPReader reads configuration content from http and https locations.
type HTTPReader struct {
	client *resty.Client
}

// NewHTTPReader constructs an [HTTPReader] whose requests are bounded by
// timeout. A non-positive timeout falls back to [DefaultTimeout].
func NewHTTPReader(timeout time.Duration) *HTTPReader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(timeout)

	return &HTTPReader{client: client}
}

// Read implements [Reader]. It issues a GET for ref and returns the response
// body. Transport failures and non-2xx statuses fail with a wrapped
// ErrSourceUnreadable.
func (r *HTTPReader) Read(ctx context.Context, ref string) ([]byte, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		Get(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: get %q: %v", ErrSourceUnreadable, ref, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: get %q: unexpected status %s", ErrSourceUnreadable, ref, resp.Status())
	}

	return resp.Body(), nil
}

// New constructs the default [Reader]: plain references are read from the
// local filesystem, http and https URLs over the network. Any other scheme
// fails with ErrSourceUnreadable.
func New(timeout time.Duration) Reader {
	return &schemeReader{
		file: NewFileReader(),
		http: NewHTTPReader(timeout),
	}
}

type schemeReader struct {
	file *FileReader
	http *HTTPReader
}

// Read implements [Reader] by dispatching on the reference's scheme.
func (r *schemeReader) Read(ctx context.Context, ref string) ([]byte, error) {
	switch scheme := refScheme(ref); scheme {
	case "":
		return r.file.Read(ctx, ref)
	case "http", "https":
		return r.http.Read(ctx, ref)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q in %q", ErrSourceUnreadable, scheme, ref)
	}
}

func refScheme(ref string) string {
	idx := strings.Index(ref, "://")
	if idx < 0 {
		return ""
	}

	return strings.ToLower(ref[:idx])
}
