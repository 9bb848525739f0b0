package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pfkit/pfkit/prefetch/printer"
)

var (
	dumpShowRaw   bool
	dumpShowFiles bool
	dumpRawTimes  bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpShowRaw, "raw", false, "Include unknown/reserved fields")
	cmd.Flags().BoolVarP(&dumpShowFiles, "files", "f", false, "Include the accessed-files list")
	cmd.Flags().BoolVar(&dumpRawTimes, "raw-times", false, "Print timestamps as raw FILETIME values")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <prefetch-file>",
		Short: "Dump the full contents of a prefetch file",
		Long: `The dump command decodes a prefetch file and prints every decoded
structure: wrapper header, file header, run information, volumes with
directory strings, and optionally the accessed-files list.

Example:
  pfctl dump CALC.EXE-AC08706A.pf
  pfctl dump CALC.EXE-AC08706A.pf --files --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	p, err := loadPrefetch(args[0])
	if err != nil {
		return err
	}

	opts := printer.Options{
		Format:            printer.FormatText,
		ShowTimestamps:    !dumpRawTimes,
		ShowFilesAccessed: dumpShowFiles,
		ShowRawFields:     dumpShowRaw,
	}
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	return printer.New(os.Stdout, opts).Print(p)
}
