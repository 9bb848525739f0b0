package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

// buildFileInfo assembles a FileInfoSize-byte information header at offset
// FileInfoOffset inside a buffer large enough to hold it.
func buildFileInfo(volumesOffset, numVolumes uint32) []byte {
	b := make([]byte, FileInfoOffset+FileInfoSize)
	r := b[FileInfoOffset:]
	binary.LittleEndian.PutUint32(r[FIMetricsOffsetOffset:], 0x128)
	binary.LittleEndian.PutUint32(r[FIMetricsCountOffset:], 12)
	binary.LittleEndian.PutUint32(r[FITraceChainsOffsetOffset:], 0x2A0)
	binary.LittleEndian.PutUint32(r[FITraceChainsCountOffset:], 34)
	binary.LittleEndian.PutUint32(r[FIFilenamesOffsetOffset:], 0x3F0)
	binary.LittleEndian.PutUint32(r[FIFilenamesSizeOffset:], 0x200)
	binary.LittleEndian.PutUint32(r[FIVolumesOffsetOffset:], volumesOffset)
	binary.LittleEndian.PutUint32(r[FIVolumesCountOffset:], numVolumes)
	binary.LittleEndian.PutUint32(r[FIVolumesSizeOffset:], numVolumes*VolumeEntrySize)
	binary.LittleEndian.PutUint64(r[FIUnknown1Offset:], 0x0102030405060708)
	for i := 0; i < LastRunSlots; i++ {
		binary.LittleEndian.PutUint64(r[FILastRunOffset+i*8:], uint64(0x01D0000000000000)+uint64(i))
	}
	binary.LittleEndian.PutUint64(r[FIUnknown2Offset:], 0x1111222233334444)
	binary.LittleEndian.PutUint32(r[FIRunCountOffset:], 42)
	binary.LittleEndian.PutUint32(r[FIUnknown3Offset:], 7)
	binary.LittleEndian.PutUint32(r[FIUnknown4Offset:], 9)
	binary.LittleEndian.PutUint32(r[FIHashStringOffsetOffset:], 0x5F0)
	binary.LittleEndian.PutUint32(r[FIHashStringSizeOffset:], 16)
	for i := 0; i < FIUnknown5Size; i++ {
		r[FIUnknown5Offset+i] = byte(i)
	}
	return b
}

func TestParseFileInformationHeader(t *testing.T) {
	b := buildFileInfo(0x1000, 2)

	h, err := ParseFileInformationHeader(b, FileInfoOffset)
	if err != nil {
		t.Fatalf("ParseFileInformationHeader: %v", err)
	}
	if h.FileMetricsArrayOffset != 0x128 || h.NumFileMetricsEntries != 12 {
		t.Fatalf("metrics pair = (%d, %d)", h.FileMetricsArrayOffset, h.NumFileMetricsEntries)
	}
	if h.TraceChainsArrayOffset != 0x2A0 || h.NumTraceChainsEntries != 34 {
		t.Fatalf("trace chains pair = (%d, %d)", h.TraceChainsArrayOffset, h.NumTraceChainsEntries)
	}
	if h.FilenameStringsOffset != 0x3F0 || h.FilenameStringsSize != 0x200 {
		t.Fatalf("filename strings pair = (%d, %d)", h.FilenameStringsOffset, h.FilenameStringsSize)
	}
	if h.VolumesInfoOffset != 0x1000 || h.NumVolumes != 2 || h.VolumesInfoSize != 2*VolumeEntrySize {
		t.Fatalf("volume triple = (%d, %d, %d)", h.VolumesInfoOffset, h.NumVolumes, h.VolumesInfoSize)
	}
	if h.Unknown1 != 0x0102030405060708 {
		t.Fatalf("unknown1 = 0x%x", h.Unknown1)
	}
	for i := 0; i < LastRunSlots; i++ {
		want := uint64(0x01D0000000000000) + uint64(i)
		if h.LastRunTimes[i] != want {
			t.Fatalf("last run [%d] = 0x%x, want 0x%x", i, h.LastRunTimes[i], want)
		}
	}
	if h.Unknown2 != 0x1111222233334444 {
		t.Fatalf("unknown2 = 0x%x", h.Unknown2)
	}
	if h.RunCount != 42 {
		t.Fatalf("run count = %d", h.RunCount)
	}
	if h.Unknown3 != 7 || h.Unknown4 != 9 {
		t.Fatalf("unknown3/4 = %d/%d", h.Unknown3, h.Unknown4)
	}
	if h.HashStringOffset != 0x5F0 || h.HashStringSize != 16 {
		t.Fatalf("hash string pair = (%d, %d)", h.HashStringOffset, h.HashStringSize)
	}
	for i := 0; i < FIUnknown5Size; i++ {
		if h.Unknown5[i] != byte(i) {
			t.Fatalf("unknown5[%d] = %d, preserved region corrupted", i, h.Unknown5[i])
		}
	}
}

func TestParseFileInformationHeaderTooShort(t *testing.T) {
	b := buildFileInfo(0x1000, 0)
	if _, err := ParseFileInformationHeader(b[:len(b)-1], FileInfoOffset); !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}
