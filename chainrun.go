// SPDX-License-Identifier: EPL-2.0

package otchain

import (
	"fmt"
	"os"

	"github.com/ik5/otchain/chain"
	"github.com/ik5/otchain/formats/wav"
	"github.com/ik5/otchain/otfile"
)

// ChainOptions bundles everything BuildChainFiles needs beyond the paths.
type ChainOptions struct {
	Prepare PrepareOptions
	Plan    chain.PlanOptions

	// Normalize applies whole-chain peak normalization after assembly.
	Normalize  bool
	HeadroomDb float64

	// BitDepth of the output audio, 16 or 24.
	BitDepth int

	// Settings for the metadata file.
	Settings otfile.Settings
}

// DefaultChainOptions mirrors the CLI defaults: normalize the chain with
// 3 dB headroom, 24-bit output, standard metadata settings.
func DefaultChainOptions() ChainOptions {
	prep := DefaultPrepareOptions()
	prep.Normalize = false // chains are normalized as a whole, after assembly

	return ChainOptions{
		Prepare:    prep,
		Normalize:  true,
		HeadroomDb: 3,
		BitDepth:   24,
		Settings:   otfile.DefaultSettings(),
	}
}

// ChainResult summarizes a finished chain build.
type ChainResult struct {
	AudioPath    string
	MetadataPath string
	SliceCount   int
	TotalMs      int
}

// BuildChainFiles runs the whole pipeline: find input files under
// inputDir, prepare them, plan and assemble the chain, then write the
// audio to outPath and the metadata next to it.
//
// Both files are rendered in memory first and only then written, so a
// failure cannot leave the audio on disk without its metadata: if the
// metadata write fails, the audio file is removed again.
func BuildChainFiles(inputDir, outPath string, opts ChainOptions) (*ChainResult, []chain.Diagnostic, error) {
	files, err := FindAudioFiles(inputDir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoAudioFiles, inputDir)
	}

	prep := opts.Prepare
	prep.Normalize = false

	clips, diags, err := PrepareAll(files, prep)
	if err != nil {
		return nil, diags, err
	}

	plan, planDiags, err := chain.BuildPlan(clips, opts.Plan)
	diags = append(diags, planDiags...)
	if err != nil {
		return nil, diags, err
	}

	assembled, err := chain.Assemble(plan, chain.AssembleOptions{
		Normalize:  opts.Normalize,
		HeadroomDb: opts.HeadroomDb,
	})
	if err != nil {
		return nil, diags, err
	}

	otBytes, encDiags, err := otfile.Encode(plan, uint32(assembled.Frames()), opts.Settings)
	diags = append(diags, encDiags...)
	if err != nil {
		return nil, diags, err
	}

	wavBytes, err := wav.Render(assembled.SampleRate, assembled.Channels, opts.BitDepth, assembled.Data)
	if err != nil {
		return nil, diags, fmt.Errorf("rendering chain audio: %w", err)
	}

	metaPath := otfile.MetadataPath(outPath)

	if err := os.WriteFile(outPath, wavBytes, 0o644); err != nil {
		return nil, diags, fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := os.WriteFile(metaPath, otBytes, 0o644); err != nil {
		os.Remove(outPath)
		return nil, diags, fmt.Errorf("writing %s: %w", metaPath, err)
	}

	sliceCount := len(plan.Slices)
	if sliceCount > otfile.MaxSliceSlots {
		sliceCount = otfile.MaxSliceSlots
	}

	return &ChainResult{
		AudioPath:    outPath,
		MetadataPath: metaPath,
		SliceCount:   sliceCount,
		TotalMs:      plan.TotalMs,
	}, diags, nil
}
