package format

import (
	"bytes"
	"fmt"

	"github.com/pfkit/pfkit/internal/buf"
)

// FileHeader is the 84-byte header at the start of the decompressed prefetch
// body.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------
//	 0x00    4    Format version (31 for the supported layout)
//	 0x04    4    'S' 'C' 'C' 'A'
//	 0x08    4    Unknown (opaque)
//	 0x0C    4    File size
//	 0x10   60    Executable filename, UTF-16LE, NUL padded
//	 0x4C    4    Prefetch hash
//	 0x50    4    Unknown flags (opaque)
type FileHeader struct {
	FormatVersion      uint32
	Signature          [4]byte
	Unknown1           uint32
	FileSize           uint32
	ExecutableFilename string
	PrefetchHash       uint32
	UnknownFlags       uint32
}

// ParseFileHeader decodes the file header from the start of the decompressed
// buffer. The structural decode always runs first; a bad SCCA magic is then
// reported as ErrSignatureMismatch, and a malformed filename field as
// ErrDecode with the offending byte offset.
func ParseFileHeader(b []byte) (FileHeader, error) {
	if len(b) < FileHeaderSize {
		return FileHeader{}, fmt.Errorf("file header: need %d bytes, have %d: %w",
			FileHeaderSize, len(b), ErrTruncated)
	}

	var h FileHeader
	h.FormatVersion = buf.U32LE(b[FHVersionOffset:])
	copy(h.Signature[:], b[FHSignatureOffset:FHSignatureOffset+SignatureSize])
	h.Unknown1 = buf.U32LE(b[FHUnknown1Offset:])
	h.FileSize = buf.U32LE(b[FHFileSizeOffset:])
	h.PrefetchHash = buf.U32LE(b[FHHashOffset:])
	h.UnknownFlags = buf.U32LE(b[FHFlagsOffset:])

	name, err := decodeExecutableName(b[FHExecNameOffset : FHExecNameOffset+ExecutableNameSize])
	if err != nil {
		return FileHeader{}, fmt.Errorf("file header: executable filename at offset %d: %w",
			FHExecNameOffset, err)
	}
	h.ExecutableFilename = name

	if !bytes.Equal(h.Signature[:], SCCASignature) {
		return FileHeader{}, fmt.Errorf("file header: %w", ErrSignatureMismatch)
	}

	return h, nil
}

// decodeExecutableName interprets the fixed 60-byte filename field, cutting
// at the first NUL code unit. A field with no NUL uses all 60 bytes.
func decodeExecutableName(field []byte) (string, error) {
	end := len(field)
	for i := 0; i+1 < len(field); i += 2 {
		if field[i] == 0 && field[i+1] == 0 {
			end = i
			break
		}
	}
	return DecodeUTF16LE(field[:end])
}
