// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ik5/otchain"
)

var infoCmd = &cobra.Command{
	Use:   "info <input-dir>",
	Short: "Display information about samples without processing",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	files, err := otchain.FindAudioFiles(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no audio files found in %s", args[0])
	}

	fmt.Printf("Found %d audio files to inspect.\n", len(files))

	for i, path := range files {
		info, err := otchain.Inspect(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  - could not inspect %s: %v\n", filepath.Base(path), err)
			continue
		}

		channels := fmt.Sprintf("%d channels", info.Channels)
		switch info.Channels {
		case 1:
			channels = "Mono"
		case 2:
			channels = "Stereo"
		}

		fmt.Printf("\n--- File [%d/%d]: %s ---\n", i+1, len(files), filepath.Base(path))
		fmt.Printf("  - Duration: %.2fs\n", float64(info.DurationMs)/1000)
		fmt.Printf("  - Channels: %s\n", channels)
		fmt.Printf("  - Sample Rate: %d Hz\n", info.SampleRate)
		fmt.Printf("  - Bit Depth: %d-bit\n", info.BitDepth)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
