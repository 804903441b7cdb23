// SPDX-License-Identifier: EPL-2.0

// Package commands implements the otchain CLI subcommands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/otchain/chain"
)

// Processing flags shared by chain and batch.
var (
	flagNoNormalize bool
	flagNoTrim      bool
	flagThresholdDb float64
	flagHeadroom    float64
	flagMono        bool
	flagBitDepth    int
)

var rootCmd = &cobra.Command{
	Use:   "otchain",
	Short: "Prepare sample chains for slice-grid samplers",
	Long: `otchain - prepare audio samples for hardware samplers.

The chain command concatenates a directory of samples into one audio file
plus an .ot metadata file describing the 64-slot slice grid. The batch and
info commands process or inspect samples individually.

Examples:
  # Chain all samples in a directory into a 16-slice chain
  otchain chain samples/ chain.wav --slices 16

  # Mono 16-bit chain, each slice capped at 2 seconds
  otchain chain samples/ chain.wav --mono --bit-depth 16 --max-slice-ms 2000

  # Clean up samples individually
  otchain batch samples/ processed/ --headroom 1.5

  # Inspect without touching anything
  otchain info samples/`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// addProcessingFlags registers the per-clip processing flags shared by the
// chain and batch commands.
func addProcessingFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagNoNormalize, "no-normalize", false, "disable audio normalization")
	cmd.Flags().BoolVar(&flagNoTrim, "no-trim", false, "disable trimming of leading silence")
	cmd.Flags().Float64Var(&flagThresholdDb, "threshold-db", -48, "silence threshold in dBFS for trimming")
	cmd.Flags().Float64Var(&flagHeadroom, "headroom", 3.0, "normalization headroom in dBFS")
	cmd.Flags().BoolVar(&flagMono, "mono", false, "convert output to mono")
	cmd.Flags().IntVar(&flagBitDepth, "bit-depth", 24, "output bit depth (16 or 24)")
}

func validBitDepth() error {
	if flagBitDepth != 16 && flagBitDepth != 24 {
		return fmt.Errorf("bit depth must be 16 or 24, got %d", flagBitDepth)
	}
	return nil
}

// printDiags writes diagnostics to stderr, one per line.
func printDiags(diags []chain.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
}
