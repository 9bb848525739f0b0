package main

import (
	"time"

	"github.com/spf13/cobra"
)

var volumesShowDirs bool

func init() {
	cmd := newVolumesCmd()
	cmd.Flags().BoolVarP(&volumesShowDirs, "dirs", "d", false, "Include directory strings per volume")
	rootCmd.AddCommand(cmd)
}

func newVolumesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volumes <prefetch-file>",
		Short: "List volumes referenced by a prefetch trace",
		Long: `The volumes command lists every volume information entry in a prefetch
file: device path, serial number, and creation time.

Example:
  pfctl volumes CALC.EXE-AC08706A.pf
  pfctl volumes CALC.EXE-AC08706A.pf --dirs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVolumes(args)
		},
	}
	return cmd
}

func runVolumes(args []string) error {
	p, err := loadPrefetch(args[0])
	if err != nil {
		return err
	}

	if jsonOut {
		type jsonVol struct {
			DevicePath       string   `json:"device_path,omitempty"`
			SerialNumber     uint32   `json:"serial_number"`
			CreationTime     string   `json:"creation_time"`
			DirectoryStrings []string `json:"directory_strings,omitempty"`
		}
		vols := make([]jsonVol, 0, len(p.Volumes))
		for _, vol := range p.Volumes {
			jv := jsonVol{
				DevicePath:   vol.DevicePath,
				SerialNumber: vol.SerialNumber,
				CreationTime: vol.CreationTimeUTC().Format(time.RFC3339),
			}
			if volumesShowDirs {
				jv.DirectoryStrings = vol.DirectoryStrings
			}
			vols = append(vols, jv)
		}
		return printJSON(vols)
	}

	printInfo("Volumes (%d):\n", len(p.Volumes))
	for i, vol := range p.Volumes {
		printInfo("  Volume %d:\n", i+1)
		if vol.DevicePath != "" {
			printInfo("    Device Path: %s\n", vol.DevicePath)
		}
		printInfo("    Serial Number: 0x%08X\n", vol.SerialNumber)
		printInfo("    Created: %s\n", vol.CreationTimeUTC().Format(time.RFC3339))
		if volumesShowDirs {
			printInfo("    Directory Strings (%d):\n", len(vol.DirectoryStrings))
			for j, s := range vol.DirectoryStrings {
				printInfo("      [%d]: %s\n", j, s)
			}
		}
	}
	if p.VolumeErr != nil {
		printInfo("Warning: volume table incomplete: %v\n", p.VolumeErr)
	}

	return nil
}
