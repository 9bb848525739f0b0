package format

import (
	"fmt"

	"github.com/pfkit/pfkit/internal/buf"
)

// FileInformationHeader is the 212-byte record at offset 84 of the
// decompressed buffer. It carries the (offset, count/size) pairs that locate
// every other section of the file, the eight last-run FILETIMEs, and the run
// count.
//
// VolumesInfoOffset is relative to the start of the decompressed buffer;
// volume entries sit at VolumesInfoOffset + i*VolumeEntrySize. The opaque
// fields are preserved verbatim since their semantics are undocumented.
type FileInformationHeader struct {
	FileMetricsArrayOffset uint32
	NumFileMetricsEntries  uint32
	TraceChainsArrayOffset uint32
	NumTraceChainsEntries  uint32
	FilenameStringsOffset  uint32
	FilenameStringsSize    uint32
	VolumesInfoOffset      uint32
	NumVolumes             uint32
	VolumesInfoSize        uint32
	Unknown1               uint64
	LastRunTimes           [LastRunSlots]uint64
	Unknown2               uint64
	RunCount               uint32
	Unknown3               uint32
	Unknown4               uint32
	HashStringOffset       uint32
	HashStringSize         uint32
	Unknown5               [FIUnknown5Size]byte
}

// ParseFileInformationHeader decodes the file information header at off
// (FileInfoOffset for on-disk files). Pure field extraction: out-of-range
// offset/count values only surface as errors when a consumer dereferences
// them.
func ParseFileInformationHeader(b []byte, off int) (FileInformationHeader, error) {
	if !buf.Has(b, off, FileInfoSize) {
		return FileInformationHeader{}, fmt.Errorf(
			"file information header at offset %d: need %d bytes, have %d: %w",
			off, FileInfoSize, len(b)-off, ErrTruncated)
	}
	r := b[off : off+FileInfoSize]

	var h FileInformationHeader
	h.FileMetricsArrayOffset = buf.U32LE(r[FIMetricsOffsetOffset:])
	h.NumFileMetricsEntries = buf.U32LE(r[FIMetricsCountOffset:])
	h.TraceChainsArrayOffset = buf.U32LE(r[FITraceChainsOffsetOffset:])
	h.NumTraceChainsEntries = buf.U32LE(r[FITraceChainsCountOffset:])
	h.FilenameStringsOffset = buf.U32LE(r[FIFilenamesOffsetOffset:])
	h.FilenameStringsSize = buf.U32LE(r[FIFilenamesSizeOffset:])
	h.VolumesInfoOffset = buf.U32LE(r[FIVolumesOffsetOffset:])
	h.NumVolumes = buf.U32LE(r[FIVolumesCountOffset:])
	h.VolumesInfoSize = buf.U32LE(r[FIVolumesSizeOffset:])
	h.Unknown1 = buf.U64LE(r[FIUnknown1Offset:])
	for i := 0; i < LastRunSlots; i++ {
		h.LastRunTimes[i] = buf.U64LE(r[FILastRunOffset+i*8:])
	}
	h.Unknown2 = buf.U64LE(r[FIUnknown2Offset:])
	h.RunCount = buf.U32LE(r[FIRunCountOffset:])
	h.Unknown3 = buf.U32LE(r[FIUnknown3Offset:])
	h.Unknown4 = buf.U32LE(r[FIUnknown4Offset:])
	h.HashStringOffset = buf.U32LE(r[FIHashStringOffsetOffset:])
	h.HashStringSize = buf.U32LE(r[FIHashStringSizeOffset:])
	copy(h.Unknown5[:], r[FIUnknown5Offset:FIUnknown5Offset+FIUnknown5Size])

	return h, nil
}
