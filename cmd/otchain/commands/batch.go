// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/otchain"
)

var batchCmd = &cobra.Command{
	Use:   "batch <input-dir> <output-dir>",
	Short: "Process each sample individually",
	Long: `Apply the same per-clip processing the chain command uses (trim,
normalize, mono) to every sample under input-dir, and save each result
as a separate WAV file in output-dir.`,
	Args: cobra.ExactArgs(2),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	if err := validBitDepth(); err != nil {
		return err
	}

	opts := otchain.DefaultPrepareOptions()
	opts.TrimSilence = !flagNoTrim
	opts.ThresholdDb = flagThresholdDb
	opts.Normalize = !flagNoNormalize
	opts.HeadroomDb = flagHeadroom
	opts.Mono = flagMono

	diags, err := otchain.RunBatch(args[0], args[1], opts, flagBitDepth)
	printDiags(diags)
	if err != nil {
		return err
	}

	fmt.Printf("Batch processing complete. Files saved in: %s\n", args[1])
	return nil
}

func init() {
	addProcessingFlags(batchCmd)
	rootCmd.AddCommand(batchCmd)
}
