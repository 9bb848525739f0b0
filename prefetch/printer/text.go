package printer

import (
	"fmt"
	"strings"

	"github.com/pfkit/pfkit/prefetch"
)

func (p *Printer) printText(pf *prefetch.Prefetch) error {
	in := strings.Repeat(" ", p.opts.IndentSize)
	w := p.writer

	if pf.Wrapper.SignatureValid() {
		fmt.Fprintf(w, "MAM Wrapper:\n")
		fmt.Fprintf(w, "%sUncompressed Size: %d\n", in, pf.Wrapper.UncompressedSize)
	}

	fmt.Fprintf(w, "File Header:\n")
	fmt.Fprintf(w, "%sExecutable: %s\n", in, pf.Header.ExecutableFilename)
	fmt.Fprintf(w, "%sFormat Version: %d\n", in, pf.Header.FormatVersion)
	fmt.Fprintf(w, "%sFile Size: %d\n", in, pf.Header.FileSize)
	fmt.Fprintf(w, "%sPrefetch Hash: 0x%08X\n", in, pf.Header.PrefetchHash)
	if p.opts.ShowRawFields {
		fmt.Fprintf(w, "%sUnknown1: 0x%08X\n", in, pf.Header.Unknown1)
		fmt.Fprintf(w, "%sUnknown Flags: 0x%08X\n", in, pf.Header.UnknownFlags)
	}

	fmt.Fprintf(w, "Run Info:\n")
	fmt.Fprintf(w, "%sRun Count: %d\n", in, pf.Info.RunCount)
	if p.opts.ShowTimestamps {
		fmt.Fprintf(w, "%sLast Run Times:\n", in)
		for i, ts := range pf.LastRunTimes() {
			fmt.Fprintf(w, "%s%s[%d]: %s\n", in, in, i, ts.Format(timeLayout))
		}
	} else {
		fmt.Fprintf(w, "%sLast Run Times (raw FILETIME):\n", in)
		for i, ft := range pf.Info.LastRunTimes {
			fmt.Fprintf(w, "%s%s[%d]: 0x%016X\n", in, in, i, ft)
		}
	}
	if p.opts.ShowRawFields {
		fmt.Fprintf(w, "%sFile Metrics: offset %d, %d entries\n", in,
			pf.Info.FileMetricsArrayOffset, pf.Info.NumFileMetricsEntries)
		fmt.Fprintf(w, "%sTrace Chains: offset %d, %d entries\n", in,
			pf.Info.TraceChainsArrayOffset, pf.Info.NumTraceChainsEntries)
		fmt.Fprintf(w, "%sHash String: offset %d, size %d\n", in,
			pf.Info.HashStringOffset, pf.Info.HashStringSize)
	}

	fmt.Fprintf(w, "Volumes (%d):\n", len(pf.Volumes))
	for i, vol := range pf.Volumes {
		fmt.Fprintf(w, "%sVolume %d:\n", in, i+1)
		if vol.DevicePath != "" {
			fmt.Fprintf(w, "%s%sDevice Path: %s\n", in, in, vol.DevicePath)
		}
		fmt.Fprintf(w, "%s%sSerial Number: 0x%08X\n", in, in, vol.SerialNumber)
		if p.opts.ShowTimestamps {
			fmt.Fprintf(w, "%s%sCreated: %s\n", in, in, vol.CreationTimeUTC().Format(timeLayout))
		} else {
			fmt.Fprintf(w, "%s%sCreated (raw FILETIME): 0x%016X\n", in, in, vol.CreationTime)
		}
		fmt.Fprintf(w, "%s%sDirectory Strings (%d):\n", in, in, len(vol.DirectoryStrings))
		for j, s := range vol.DirectoryStrings {
			fmt.Fprintf(w, "%s%s%s[%d]: %s\n", in, in, in, j, s)
		}
	}
	if pf.VolumeErr != nil {
		fmt.Fprintf(w, "%sWarning: volume table incomplete: %v\n", in, pf.VolumeErr)
	}

	if p.opts.ShowFilesAccessed {
		fmt.Fprintf(w, "Files Accessed (%d):\n", len(pf.FilesAccessed))
		for i, s := range pf.FilesAccessed {
			fmt.Fprintf(w, "%s[%d]: %s\n", in, i, s)
		}
	}

	return nil
}
