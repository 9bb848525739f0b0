// Package xpress adapts an Xpress-Huffman decompression engine behind a
// single capability interface so the prefetch decoding core stays portable.
// On Windows the system engine in ntdll.dll is used; other platforms get a
// decompressor that reports the capability as unavailable. Tests substitute
// a fixed decompressor carrying a pre-built buffer.
package xpress

import (
	"errors"
	"fmt"
)

// ErrDecompression is the single failure kind for the adapter: workspace
// query failures, engine failures, and allocation failures all wrap it.
var ErrDecompression = errors.New("xpress: decompression failed")

// Decompressor turns an Xpress-Huffman compressed payload into raw bytes.
//
// Decompress returns at most expectedSize bytes; the returned slice's length
// is the engine-reported final size, which may be smaller than the requested
// capacity. A call either fully succeeds or fully fails; there is no state
// and no retry.
type Decompressor interface {
	Decompress(compressed []byte, expectedSize uint32) ([]byte, error)
}

// StatusError carries the NTSTATUS reported by the system engine.
type StatusError struct {
	Op     string
	Status uint32
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("xpress: %s: ntstatus 0x%08X", e.Op, e.Status)
}

func (e *StatusError) Unwrap() error { return ErrDecompression }

// Fixed returns a Decompressor that ignores its input and hands back the
// supplied buffer, truncated to expectedSize when longer. Intended for tests
// and for callers that already hold decompressed data.
func Fixed(data []byte) Decompressor { return fixed{data: data} }

type fixed struct {
	data []byte
}

func (f fixed) Decompress(_ []byte, expectedSize uint32) ([]byte, error) {
	if uint32(len(f.data)) > expectedSize {
		return f.data[:expectedSize], nil
	}
	return f.data, nil
}
