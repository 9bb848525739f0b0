// Package format houses low-level decoders for the Windows Prefetch (SCCA)
// file format and its MAM compression wrapper. The goal is to keep the
// parsing focused, allocation-free where possible, and independent from the
// public API so higher-level packages can orchestrate the data in a more
// ergonomic form.
//
// Every structure is a fixed-offset little-endian record inside a single
// backing buffer (the decompressed prefetch file). Decoders copy small fixed
// fields out of the buffer; variable-length string tables are read on demand
// from (offset, count) pairs carried by the records.
package format

var (
	// MAMSignature is the four-byte magic at the start of a compressed
	// prefetch file.
	// Layout:
	//   0x00  'M' 'A' 'M' 0x04
	MAMSignature = []byte{'M', 'A', 'M', 0x04}

	// SCCASignature is the four-byte magic inside the decompressed prefetch
	// body, at offset 4 of the file header.
	SCCASignature = []byte{'S', 'C', 'C', 'A'}
)

const (
	// SupportedVersion is the only prefetch format version this decoder
	// handles. Other versions use different structure layouts and are
	// rejected up front rather than misparsed.
	SupportedVersion = 31

	// MAMHeaderSize is the size of the compression wrapper header.
	MAMHeaderSize = 8

	// FileHeaderSize is the size of the decompressed file header at offset 0.
	FileHeaderSize = 84

	// FileInfoOffset is where the file information header starts.
	FileInfoOffset = 84

	// FileInfoSize is the size of the file information header.
	FileInfoSize = 212

	// VolumeEntrySize is the size of one volume information entry.
	VolumeEntrySize = 96

	// ExecutableNameSize is the fixed byte width of the UTF-16LE executable
	// filename field in the file header.
	ExecutableNameSize = 60

	// LastRunSlots is the number of FILETIME slots recorded in the file
	// information header.
	LastRunSlots = 8
)

// MAM wrapper field offsets.
const (
	MAMSignatureOffset        = 0x00 // 4 bytes
	MAMUncompressedSizeOffset = 0x04 // uint32
)

// File header field offsets (within the decompressed buffer).
const (
	FHVersionOffset   = 0x00 // uint32
	FHSignatureOffset = 0x04 // 4 bytes, "SCCA"
	FHUnknown1Offset  = 0x08 // uint32, opaque
	FHFileSizeOffset  = 0x0C // uint32
	FHExecNameOffset  = 0x10 // 60 bytes UTF-16LE, NUL padded
	FHHashOffset      = 0x4C // uint32
	FHFlagsOffset     = 0x50 // uint32, opaque
	SignatureSize     = 4
)

// File information header field offsets (relative to FileInfoOffset).
const (
	FIMetricsOffsetOffset     = 0x00 // uint32
	FIMetricsCountOffset      = 0x04 // uint32
	FITraceChainsOffsetOffset = 0x08 // uint32
	FITraceChainsCountOffset  = 0x0C // uint32
	FIFilenamesOffsetOffset   = 0x10 // uint32
	FIFilenamesSizeOffset     = 0x14 // uint32
	FIVolumesOffsetOffset     = 0x18 // uint32
	FIVolumesCountOffset      = 0x1C // uint32
	FIVolumesSizeOffset       = 0x20 // uint32
	FIUnknown1Offset          = 0x24 // uint64, opaque
	FILastRunOffset           = 0x2C // 8 x uint64 FILETIME
	FIUnknown2Offset          = 0x6C // uint64, opaque
	FIRunCountOffset          = 0x74 // uint32
	FIUnknown3Offset          = 0x78 // uint32, opaque
	FIUnknown4Offset          = 0x7C // uint32, opaque
	FIHashStringOffsetOffset  = 0x80 // uint32
	FIHashStringSizeOffset    = 0x84 // uint32
	FIUnknown5Offset          = 0x88 // 76 bytes, opaque
	FIUnknown5Size            = 76
)

// Volume information entry field offsets (relative to the entry start).
const (
	VEDevicePathOffsetOffset = 0x00 // uint32, relative to the volume table base
	VEDevicePathCharsOffset  = 0x04 // uint32, UTF-16 code units
	VECreationTimeOffset     = 0x08 // uint64 FILETIME
	VESerialNumberOffset     = 0x10 // uint32
	VEFileRefsOffsetOffset   = 0x14 // uint32
	VEFileRefsSizeOffset     = 0x18 // uint32
	VEDirStringsOffsetOffset = 0x1C // uint32, relative to the volume table base
	VEDirStringsCountOffset  = 0x20 // uint32
	VEUnknown1Offset         = 0x24 // uint32, opaque
	VEUnknown2Offset         = 0x28 // 24 bytes, opaque
	VEUnknown3Offset         = 0x40 // uint32, opaque
	VEUnknown4Offset         = 0x44 // 24 bytes, opaque
	VEUnknown5Offset         = 0x5C // uint32, opaque
	VEUnknownBlockSize       = 24
)
