package prefetch

import (
	"fmt"
	"time"

	"github.com/pfkit/pfkit/internal/buf"
	"github.com/pfkit/pfkit/internal/format"
	"github.com/pfkit/pfkit/internal/xpress"
)

// Decompressor turns an Xpress-Huffman compressed payload into raw bytes.
// Decompress returns at most expectedSize bytes; the returned length is the
// engine-reported final size, which may be smaller.
type Decompressor = xpress.Decompressor

// Low-level record types, re-exported for callers that inspect raw fields.
type (
	MAMHeader             = format.MAMHeader
	FileHeader            = format.FileHeader
	FileInformationHeader = format.FileInformationHeader
	VolumeEntry           = format.VolumeEntry
)

// Sentinel errors surfaced by the pipeline.
var (
	ErrTruncated          = format.ErrTruncated
	ErrSignatureMismatch  = format.ErrSignatureMismatch
	ErrUnsupportedVersion = format.ErrUnsupportedVersion
	ErrDecode             = format.ErrDecode
	ErrDecompression      = xpress.ErrDecompression
)

// SystemDecompressor returns the platform's native Xpress-Huffman engine
// (ntdll.dll on Windows; an unavailable stub elsewhere).
func SystemDecompressor() Decompressor { return xpress.NewSystem() }

// FixedDecompressor returns a Decompressor that hands back the supplied
// buffer unchanged. Useful for tests and for data decompressed elsewhere.
func FixedDecompressor(data []byte) Decompressor { return xpress.Fixed(data) }

// Volume is one volume information entry together with its decoded device
// path and directory strings.
type Volume struct {
	VolumeEntry

	// DevicePath is the NT device path (\DEVICE\HARDDISKVOLUME...), decoded
	// from the entry's (offset, char-count) pair. Empty when out of range.
	DevicePath string

	// DirectoryStrings are the directories referenced on this volume. A slot
	// may hold a "<decode error: ...>" placeholder when its bytes are not
	// valid UTF-16.
	DirectoryStrings []string
}

// CreationTimeUTC converts the volume creation FILETIME.
func (v Volume) CreationTimeUTC() time.Time {
	return format.FiletimeToTime(v.CreationTime)
}

// Prefetch is the decoded execution record of one prefetch file.
type Prefetch struct {
	Wrapper MAMHeader
	Header  FileHeader
	Info    FileInformationHeader

	// Volumes holds the entries parsed before the first failure, in table
	// order. When an entry fails to parse, iteration stops there and the
	// failure is recorded in VolumeErr; earlier entries are kept.
	Volumes   []Volume
	VolumeErr error

	// FilesAccessed are the names from the filename-strings section: the
	// files the executable touched during its traced runs.
	FilesAccessed []string

	data []byte
}

// Bytes returns the decompressed buffer backing this record.
func (p *Prefetch) Bytes() []byte { return p.data }

// LastRunTimes converts the populated FILETIME slots to time.Time in slot
// order. Zero (unused) slots are skipped.
func (p *Prefetch) LastRunTimes() []time.Time {
	times := make([]time.Time, 0, format.LastRunSlots)
	for _, ft := range p.Info.LastRunTimes {
		if ft == 0 {
			continue
		}
		times = append(times, format.FiletimeToTime(ft))
	}
	return times
}

// Parse runs the full pipeline over the raw bytes of a compressed prefetch
// file: wrapper header, signature gate, decompression, then body decode.
func Parse(raw []byte, dec Decompressor) (*Prefetch, error) {
	wrapper, err := format.ParseMAMHeader(raw)
	if err != nil {
		return nil, fmt.Errorf("prefetch: %w", err)
	}
	if !wrapper.SignatureValid() {
		return nil, fmt.Errorf("prefetch: wrapper magic %q: %w",
			wrapper.Signature[:], format.ErrSignatureMismatch)
	}

	data, err := dec.Decompress(raw[format.MAMHeaderSize:], wrapper.UncompressedSize)
	if err != nil {
		return nil, fmt.Errorf("prefetch: decompressing %d declared bytes: %w",
			wrapper.UncompressedSize, err)
	}

	p, err := ParseBody(data)
	if err != nil {
		return nil, err
	}
	p.Wrapper = wrapper
	return p, nil
}

// ParseBody decodes an already-decompressed SCCA buffer. The Wrapper field
// of the result is left zero.
func ParseBody(data []byte) (*Prefetch, error) {
	hdr, err := format.ParseFileHeader(data)
	if err != nil {
		return nil, fmt.Errorf("prefetch: %w", err)
	}
	if hdr.FormatVersion != format.SupportedVersion {
		return nil, fmt.Errorf("prefetch: format version %d (only %d handled): %w",
			hdr.FormatVersion, format.SupportedVersion, format.ErrUnsupportedVersion)
	}

	info, err := format.ParseFileInformationHeader(data, format.FileInfoOffset)
	if err != nil {
		return nil, fmt.Errorf("prefetch: %w", err)
	}

	p := &Prefetch{
		Header: hdr,
		Info:   info,
		data:   data,
	}

	base := int(info.VolumesInfoOffset)

	// Only pre-size the slice when the declared table actually fits; a
	// hostile count must not drive the allocation.
	volumeCap := 0
	if _, boundsErr := buf.CheckListBounds(len(data), base, int(info.NumVolumes), format.VolumeEntrySize); boundsErr == nil {
		volumeCap = int(info.NumVolumes)
	}
	p.Volumes = make([]Volume, 0, volumeCap)

	for i := uint32(0); i < info.NumVolumes; i++ {
		entry, entryErr := format.ParseVolumeEntry(data, base+int(i)*format.VolumeEntrySize)
		if entryErr != nil {
			p.VolumeErr = fmt.Errorf("prefetch: volume entry %d: %w", i, entryErr)
			break
		}
		p.Volumes = append(p.Volumes, Volume{
			VolumeEntry: entry,
			DevicePath:  devicePath(data, base, entry),
			DirectoryStrings: format.ReadDirectoryStrings(
				data, base, int(entry.DirectoryStringsOffset), entry.NumDirectoryStrings),
		})
	}

	p.FilesAccessed = format.ReadStringBlob(
		data, int(info.FilenameStringsOffset), int(info.FilenameStringsSize))

	return p, nil
}

// devicePath decodes a volume's device path from its (offset, char-count)
// pair. The offset is relative to the volume table base, like the directory
// strings offset.
func devicePath(data []byte, base int, e format.VolumeEntry) string {
	raw, ok := buf.Slice(data, base+int(e.DevicePathOffset), int(e.DevicePathNumChars)*2)
	if !ok {
		return ""
	}
	return format.DecodeUTF16LELenient(raw)
}
