package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfkit/pfkit/prefetch"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <prefetch-file>",
		Short: "Show execution metadata from a prefetch file",
		Long: `The info command decodes a prefetch file and reports the executable
name, run count, and last-run timestamps.

Example:
  pfctl info CALC.EXE-AC08706A.pf
  pfctl info CALC.EXE-AC08706A.pf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening prefetch file: %s\n", path)

	p, err := loadPrefetch(path)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"executable":     p.Header.ExecutableFilename,
			"format_version": p.Header.FormatVersion,
			"file_size":      p.Header.FileSize,
			"prefetch_hash":  fmt.Sprintf("0x%08X", p.Header.PrefetchHash),
			"run_count":      p.Info.RunCount,
			"last_run_times": formatRunTimes(p),
			"volumes":        len(p.Volumes),
		})
	}

	printInfo("Executable: %s\n", p.Header.ExecutableFilename)
	printInfo("Format Version: %d\n", p.Header.FormatVersion)
	printInfo("Prefetch Hash: 0x%08X\n", p.Header.PrefetchHash)
	printInfo("Run Count: %d\n", p.Info.RunCount)
	printInfo("Last Run Times:\n")
	for i, ts := range p.LastRunTimes() {
		printInfo("  [%d]: %s\n", i, ts.Format(time.RFC3339))
	}
	printInfo("Volumes: %d\n", len(p.Volumes))
	if p.VolumeErr != nil {
		printInfo("Warning: volume table incomplete: %v\n", p.VolumeErr)
	}

	return nil
}

func formatRunTimes(p *prefetch.Prefetch) []string {
	times := p.LastRunTimes()
	out := make([]string, 0, len(times))
	for _, ts := range times {
		out = append(out, ts.Format(time.RFC3339))
	}
	return out
}

// loadPrefetch opens and decodes path with the system decompressor.
func loadPrefetch(path string) (*prefetch.Prefetch, error) {
	f, err := prefetch.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open prefetch file: %w", err)
	}
	defer f.Close()

	p, err := f.Parse(prefetch.SystemDecompressor())
	if err != nil {
		return nil, fmt.Errorf("failed to decode prefetch file: %w", err)
	}
	return p, nil
}
