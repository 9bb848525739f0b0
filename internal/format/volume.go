package format

import (
	"fmt"

	"github.com/pfkit/pfkit/internal/buf"
)

// VolumeEntry is one 96-byte volume information record.
//
// DevicePathOffset and DirectoryStringsOffset are relative to the volume
// information table's base offset (FileInformationHeader.VolumesInfoOffset),
// not to this entry's own offset and not to the start of the file.
type VolumeEntry struct {
	DevicePathOffset       uint32
	DevicePathNumChars     uint32
	CreationTime           uint64
	SerialNumber           uint32
	FileReferencesOffset   uint32
	FileReferencesSize     uint32
	DirectoryStringsOffset uint32
	NumDirectoryStrings    uint32
	Unknown1               uint32
	Unknown2               [VEUnknownBlockSize]byte
	Unknown3               uint32
	Unknown4               [VEUnknownBlockSize]byte
	Unknown5               uint32
}

// ParseVolumeEntry decodes the volume information entry at off.
func ParseVolumeEntry(b []byte, off int) (VolumeEntry, error) {
	if !buf.Has(b, off, VolumeEntrySize) {
		return VolumeEntry{}, fmt.Errorf(
			"volume entry at offset %d: need %d bytes, have %d: %w",
			off, VolumeEntrySize, len(b)-off, ErrTruncated)
	}
	r := b[off : off+VolumeEntrySize]

	var e VolumeEntry
	e.DevicePathOffset = buf.U32LE(r[VEDevicePathOffsetOffset:])
	e.DevicePathNumChars = buf.U32LE(r[VEDevicePathCharsOffset:])
	e.CreationTime = buf.U64LE(r[VECreationTimeOffset:])
	e.SerialNumber = buf.U32LE(r[VESerialNumberOffset:])
	e.FileReferencesOffset = buf.U32LE(r[VEFileRefsOffsetOffset:])
	e.FileReferencesSize = buf.U32LE(r[VEFileRefsSizeOffset:])
	e.DirectoryStringsOffset = buf.U32LE(r[VEDirStringsOffsetOffset:])
	e.NumDirectoryStrings = buf.U32LE(r[VEDirStringsCountOffset:])
	e.Unknown1 = buf.U32LE(r[VEUnknown1Offset:])
	copy(e.Unknown2[:], r[VEUnknown2Offset:VEUnknown2Offset+VEUnknownBlockSize])
	e.Unknown3 = buf.U32LE(r[VEUnknown3Offset:])
	copy(e.Unknown4[:], r[VEUnknown4Offset:VEUnknown4Offset+VEUnknownBlockSize])
	e.Unknown5 = buf.U32LE(r[VEUnknown5Offset:])

	return e, nil
}
