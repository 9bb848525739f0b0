package printer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pfkit/pfkit/prefetch"
)

// jsonPrefetch is the machine-readable projection of a parsed record.
type jsonPrefetch struct {
	Executable    string       `json:"executable"`
	FormatVersion uint32       `json:"format_version"`
	FileSize      uint32       `json:"file_size"`
	PrefetchHash  string       `json:"prefetch_hash"`
	RunCount      uint32       `json:"run_count"`
	LastRunTimes  []string     `json:"last_run_times,omitempty"`
	Volumes       []jsonVolume `json:"volumes"`
	VolumeError   string       `json:"volume_error,omitempty"`
	FilesAccessed []string     `json:"files_accessed,omitempty"`
}

type jsonVolume struct {
	DevicePath       string   `json:"device_path,omitempty"`
	SerialNumber     string   `json:"serial_number"`
	CreationTime     string   `json:"creation_time"`
	DirectoryStrings []string `json:"directory_strings,omitempty"`
}

func (p *Printer) printJSON(pf *prefetch.Prefetch) error {
	rec := jsonPrefetch{
		Executable:    pf.Header.ExecutableFilename,
		FormatVersion: pf.Header.FormatVersion,
		FileSize:      pf.Header.FileSize,
		PrefetchHash:  fmt.Sprintf("0x%08X", pf.Header.PrefetchHash),
		RunCount:      pf.Info.RunCount,
		Volumes:       make([]jsonVolume, 0, len(pf.Volumes)),
	}

	for _, ts := range pf.LastRunTimes() {
		rec.LastRunTimes = append(rec.LastRunTimes, ts.Format(time.RFC3339))
	}

	for _, vol := range pf.Volumes {
		rec.Volumes = append(rec.Volumes, jsonVolume{
			DevicePath:       vol.DevicePath,
			SerialNumber:     fmt.Sprintf("0x%08X", vol.SerialNumber),
			CreationTime:     vol.CreationTimeUTC().Format(time.RFC3339),
			DirectoryStrings: vol.DirectoryStrings,
		})
	}

	if pf.VolumeErr != nil {
		rec.VolumeError = pf.VolumeErr.Error()
	}
	if p.opts.ShowFilesAccessed {
		rec.FilesAccessed = pf.FilesAccessed
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
