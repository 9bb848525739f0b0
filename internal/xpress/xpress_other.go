//go:build !windows

package xpress

import "fmt"

// NewSystem returns a Decompressor that reports the system Xpress-Huffman
// engine as unavailable. The engine lives in ntdll.dll, so only Windows
// hosts can decompress MAM payloads natively; other platforms must supply
// their own Decompressor.
func NewSystem() Decompressor { return unavailable{} }

type unavailable struct{}

func (unavailable) Decompress(_ []byte, _ uint32) ([]byte, error) {
	return nil, fmt.Errorf("system Xpress-Huffman engine requires windows: %w", ErrDecompression)
}
