//go:build windows

package xpress

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	compressionFormatXpressHuff = 0x0004
	compressionEngineStandard   = 0x0000
)

var (
	ntdll                       = windows.NewLazySystemDLL("ntdll.dll")
	procGetCompressionWorkSpace = ntdll.NewProc("RtlGetCompressionWorkSpaceSize")
	procRtlDecompressBufferEx   = ntdll.NewProc("RtlDecompressBufferEx")
)

// NewSystem returns the system Xpress-Huffman decompressor backed by
// ntdll.dll's RtlDecompressBufferEx.
func NewSystem() Decompressor { return systemDecompressor{} }

type systemDecompressor struct{}

func (systemDecompressor) Decompress(compressed []byte, expectedSize uint32) ([]byte, error) {
	if len(compressed) == 0 {
		return nil, fmt.Errorf("empty compressed payload: %w", ErrDecompression)
	}

	format := uintptr(compressionFormatXpressHuff | compressionEngineStandard)

	var bufferWorkSpaceSize, fragmentWorkSpaceSize uint32
	status, _, _ := procGetCompressionWorkSpace.Call(
		format,
		uintptr(unsafe.Pointer(&bufferWorkSpaceSize)),
		uintptr(unsafe.Pointer(&fragmentWorkSpaceSize)),
	)
	if status != 0 {
		return nil, &StatusError{Op: "RtlGetCompressionWorkSpaceSize", Status: uint32(status)}
	}

	out := make([]byte, expectedSize)
	if expectedSize == 0 {
		return out, nil
	}

	workSpaceSize := bufferWorkSpaceSize
	if workSpaceSize == 0 {
		workSpaceSize = 8
	}
	workSpace := make([]byte, workSpaceSize)

	var finalSize uint32
	status, _, _ = procRtlDecompressBufferEx.Call(
		format,
		uintptr(unsafe.Pointer(&out[0])),
		uintptr(expectedSize),
		uintptr(unsafe.Pointer(&compressed[0])),
		uintptr(len(compressed)),
		uintptr(unsafe.Pointer(&finalSize)),
		uintptr(unsafe.Pointer(&workSpace[0])),
	)
	if status != 0 {
		return nil, &StatusError{Op: "RtlDecompressBufferEx", Status: uint32(status)}
	}

	// The engine may report fewer bytes than the wrapper declared; keep the
	// actual length distinct from the requested capacity.
	if finalSize < expectedSize {
		out = out[:finalSize]
	}
	return out, nil
}
