package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnsupportedVersion indicates a structurally valid prefetch file whose
	// format version is outside the supported matrix.
	ErrUnsupportedVersion = errors.New("format: unsupported prefetch version")
	// ErrDecode indicates an invalid UTF-16 sequence at a known offset.
	ErrDecode = errors.New("format: invalid UTF-16 sequence")
)
