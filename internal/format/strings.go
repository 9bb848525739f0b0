package format

import (
	"encoding/hex"
	"fmt"
)

// ReadDirectoryStrings scans count NUL-terminated UTF-16LE strings starting
// at tableBase+relOff. tableBase is the volume information table's base
// offset; relOff comes from a volume entry's DirectoryStringsOffset.
//
// The scan advances two bytes at a time until a double-zero terminator. When
// the buffer runs out before a terminator, the strings found so far are
// returned without an error. A string with an invalid UTF-16 sequence is
// reported in its result slot as a placeholder carrying the raw hex bytes so
// one bad string does not hide the rest.
func ReadDirectoryStrings(b []byte, tableBase, relOff int, count uint32) []string {
	strings := make([]string, 0, count)
	off := tableBase + relOff
	if off < 0 {
		return strings
	}

	for i := uint32(0); i < count; i++ {
		end := off
		for end+1 < len(b) && !(b[end] == 0 && b[end+1] == 0) {
			end += 2
		}
		if end+1 >= len(b) {
			break
		}
		raw := b[off:end]
		s, err := DecodeUTF16LE(raw)
		if err != nil {
			s = fmt.Sprintf("<decode error: %s>", hex.EncodeToString(raw))
		}
		strings = append(strings, s)
		off = end + 2
	}

	return strings
}

// ReadStringBlob decodes the NUL-terminated UTF-16LE strings packed into
// b[off:off+size] (the filename-strings section). Decoding is lenient; a
// truncated final entry is returned as-is without its terminator.
func ReadStringBlob(b []byte, off, size int) []string {
	if off < 0 || size <= 0 || off >= len(b) {
		return nil
	}
	end := off + size
	if end > len(b) {
		end = len(b)
	}
	blob := b[off:end]

	var out []string
	start := 0
	for i := 0; i+1 < len(blob); i += 2 {
		if blob[i] == 0 && blob[i+1] == 0 {
			if i > start {
				out = append(out, DecodeUTF16LELenient(blob[start:i]))
			}
			start = i + 2
		}
	}
	if start+1 < len(blob) {
		out = append(out, DecodeUTF16LELenient(blob[start:len(blob)&^1]))
	}
	return out
}
