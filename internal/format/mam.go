package format

import (
	"fmt"

	"github.com/pfkit/pfkit/internal/buf"
)

// MAMHeader is the 8-byte compression wrapper at the start of a compressed
// prefetch file.
//
//	Offset  Size  Description
//	------  ----  -----------------------------------
//	 0x00    4    'M' 'A' 'M' 0x04
//	 0x04    4    Uncompressed payload size (uint32)
type MAMHeader struct {
	Signature        [4]byte
	UncompressedSize uint32
}

// ParseMAMHeader extracts the wrapper header from the first 8 bytes of a
// file. The signature bytes are returned verbatim; callers decide whether a
// mismatch is fatal.
func ParseMAMHeader(b []byte) (MAMHeader, error) {
	if len(b) < MAMHeaderSize {
		return MAMHeader{}, fmt.Errorf("mam header: need %d bytes, have %d: %w",
			MAMHeaderSize, len(b), ErrTruncated)
	}
	var h MAMHeader
	copy(h.Signature[:], b[MAMSignatureOffset:MAMSignatureOffset+SignatureSize])
	h.UncompressedSize = buf.U32LE(b[MAMUncompressedSizeOffset:])
	return h, nil
}

// SignatureValid reports whether the wrapper magic is MAM\x04.
func (h MAMHeader) SignatureValid() bool {
	return h.Signature == [4]byte{MAMSignature[0], MAMSignature[1], MAMSignature[2], MAMSignature[3]}
}
