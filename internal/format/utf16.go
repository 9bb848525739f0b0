package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

const (
	utf16HighSurrogateStart = 0xD800
	utf16HighSurrogateEnd   = 0xDBFF
	utf16LowSurrogateStart  = 0xDC00
	utf16LowSurrogateEnd    = 0xDFFF
	utf16SurrogateBase      = 0x10000
)

// DecodeUTF16LE decodes UTF-16LE bytes strictly: an odd-length buffer or an
// unpaired surrogate fails with ErrDecode carrying the byte offset of the
// offending code unit within data.
func DecodeUTF16LE(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("odd length %d: %w", len(data), ErrDecode)
	}

	var b strings.Builder
	b.Grow(len(data) / 2)

	for i := 0; i+1 < len(data); i += 2 {
		r := rune(data[i]) | rune(data[i+1])<<8

		switch {
		case r >= utf16HighSurrogateStart && r <= utf16HighSurrogateEnd:
			if i+3 >= len(data) {
				return "", fmt.Errorf("unpaired high surrogate at offset %d: %w", i, ErrDecode)
			}
			r2 := rune(data[i+2]) | rune(data[i+3])<<8
			if r2 < utf16LowSurrogateStart || r2 > utf16LowSurrogateEnd {
				return "", fmt.Errorf("unpaired high surrogate at offset %d: %w", i, ErrDecode)
			}
			r = utf16SurrogateBase + ((r-utf16HighSurrogateStart)<<10 | (r2 - utf16LowSurrogateStart))
			i += 2
		case r >= utf16LowSurrogateStart && r <= utf16LowSurrogateEnd:
			return "", fmt.Errorf("stray low surrogate at offset %d: %w", i, ErrDecode)
		}

		b.WriteRune(r)
	}

	return b.String(), nil
}

// DecodeUTF16LELenient decodes UTF-16LE bytes, substituting U+FFFD for
// malformed sequences. Used for the supplemental string blobs (accessed-file
// names, device paths) where one bad name should not hide the rest.
func DecodeUTF16LELenient(data []byte) string {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		// The UTF-16 decoder substitutes rather than fails; an error here
		// means the transform chain itself broke, so fall back to empty.
		return ""
	}
	return string(out)
}
