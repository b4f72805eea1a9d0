package source

import "errors"

// Sentinel errors returned by source readers. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrSourceUnreadable is returned when a requested source cannot be
	// opened or read: a missing or unreadable local file, a transport
	// failure, a non-2xx HTTP response, or an unsupported reference
	// scheme. The wrapping message carries the reference and the cause.
	ErrSourceUnreadable = errors.New("configuration source is unreadable")
)
