// SPDX-License-Identifier: EPL-2.0

package chain

import (
	"fmt"

	"github.com/ik5/otchain/clip"
)

// AssembleOptions controls the final rendering of the chain audio.
type AssembleOptions struct {
	// Normalize applies peak normalization to the whole chain. It runs
	// after concatenation, never per clip: normalizing clips individually
	// before chaining would skew their relative loudness.
	Normalize  bool
	HeadroomDb float64
}

// Assemble concatenates the planned slices into one continuous clip. The
// result's length is exactly the plan's TotalMs worth of frames, so the
// slice boundaries in the plan map directly onto it.
func Assemble(plan *Plan, opts AssembleOptions) (*clip.Clip, error) {
	if plan == nil || len(plan.Slices) == 0 {
		return nil, ErrEmptyInput
	}

	total := 0
	for _, s := range plan.Slices {
		if s.Clip.SampleRate != plan.SampleRate {
			return nil, fmt.Errorf("assembling chain: %w", clip.ErrSampleRateMismatch)
		}
		if s.Clip.Channels != plan.Channels {
			return nil, fmt.Errorf("assembling chain: %w", clip.ErrChannelMismatch)
		}
		total += len(s.Clip.Data)
	}

	data := make([]float32, 0, total)
	for _, s := range plan.Slices {
		data = append(data, s.Clip.Data...)
	}

	out, err := clip.New(data, plan.SampleRate, plan.Channels)
	if err != nil {
		return nil, fmt.Errorf("assembling chain: %w", err)
	}

	if opts.Normalize {
		out = out.Normalize(opts.HeadroomDb)
	}

	return out, nil
}
