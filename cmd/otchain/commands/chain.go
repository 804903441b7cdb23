// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/otchain"
	"github.com/ik5/otchain/chain"
	"github.com/ik5/otchain/otfile"
)

var (
	flagSlices     int
	flagMaxSliceMs int
	flagNoPadding  bool
	flagFadeIn     int
	flagFadeOut    int
	flagGainDb     float64
	flagOTProfile  string
)

var chainCmd = &cobra.Command{
	Use:   "chain <input-dir> <output-file>",
	Short: "Chain multiple samples into one sliced file",
	Long: `Chain all samples found under input-dir into a single audio file,
padded to a uniform slice length, and write the slice metadata (.ot)
file next to it.

The slice grid holds 64 slots. By default the slice length is the longest
clip's duration; --max-slice-ms caps it and --slices pads the chain with
silent slices up to a fixed count. --no-padding keeps every clip at its
own length instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runChain,
}

func runChain(cmd *cobra.Command, args []string) error {
	if err := validBitDepth(); err != nil {
		return err
	}
	if flagSlices != 0 && !chain.ValidTargetSliceCount(flagSlices) {
		return fmt.Errorf("slice count must be one of %v, got %d", chain.TargetSliceCounts, flagSlices)
	}

	opts := otchain.DefaultChainOptions()
	opts.Prepare.TrimSilence = !flagNoTrim
	opts.Prepare.ThresholdDb = flagThresholdDb
	opts.Prepare.Mono = flagMono
	opts.Prepare.FadeInMs = flagFadeIn
	opts.Prepare.FadeOutMs = flagFadeOut
	opts.Normalize = !flagNoNormalize
	opts.HeadroomDb = flagHeadroom
	opts.BitDepth = flagBitDepth
	opts.Plan = chain.PlanOptions{
		TargetSliceCount: flagSlices,
		MaxSliceLenMs:    flagMaxSliceMs,
		NoPadding:        flagNoPadding,
	}

	if flagOTProfile != "" {
		settings, err := otfile.LoadSettings(flagOTProfile)
		if err != nil {
			return err
		}
		opts.Settings = settings
	}
	if cmd.Flags().Changed("gain") {
		opts.Settings.GainDb = flagGainDb
	}

	result, diags, err := otchain.BuildChainFiles(args[0], args[1], opts)
	printDiags(diags)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d slices, %.2fs) and %s\n",
		result.AudioPath, result.SliceCount, float64(result.TotalMs)/1000, result.MetadataPath)
	return nil
}

func init() {
	addProcessingFlags(chainCmd)
	chainCmd.Flags().IntVar(&flagSlices, "slices", 0, "pad the chain with silent slices to this count (2,4,8,12,16,24,32,48,64)")
	chainCmd.Flags().IntVar(&flagMaxSliceMs, "max-slice-ms", 0, "cap the slice length in milliseconds (longer clips are truncated)")
	chainCmd.Flags().BoolVar(&flagNoPadding, "no-padding", false, "keep each clip at its own length instead of a uniform slice grid")
	chainCmd.Flags().IntVar(&flagFadeIn, "fade-in", 0, "fade-in per clip in milliseconds")
	chainCmd.Flags().IntVar(&flagFadeOut, "fade-out", 0, "fade-out per clip in milliseconds")
	chainCmd.Flags().Float64Var(&flagGainDb, "gain", 12, "playback gain in dB stored in the metadata file")
	chainCmd.Flags().StringVar(&flagOTProfile, "ot-profile", "", "YAML profile overriding metadata settings")

	rootCmd.AddCommand(chainCmd)
}
