package decoder

import "errors"

// Sentinel errors returned by format resolution and decoding. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrUnknownFormat is returned when a format hint is unsupported or a
	// source reference carries no recognized extension, so no decoder can
	// be chosen.
	ErrUnknownFormat = errors.New("unknown configuration format")

	// ErrDecode is returned when content fails to parse as the claimed
	// format, or when the parsed document is not a mapping at its top
	// level. The wrapping message names the format and the parser failure.
	ErrDecode = errors.New("failed to decode configuration content")
)
