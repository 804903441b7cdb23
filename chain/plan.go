// SPDX-License-Identifier: EPL-2.0

package chain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ik5/otchain/clip"
)

// MaxSlices is the number of slice slots the sampler's grid has.
const MaxSlices = 64

// longSliceAdvisoryMs is the slice length above which a chain built from
// uneven clips starts to carry noticeable silence padding.
const longSliceAdvisoryMs = 3000

// TargetSliceCounts are the slice-grid sizes the hardware can display.
var TargetSliceCounts = []int{2, 4, 8, 12, 16, 24, 32, 48, 64}

// ErrEmptyInput indicates there were no clips to plan a chain from.
var ErrEmptyInput = errors.New("no clips to chain")

// ValidTargetSliceCount reports whether n is a slice count the hardware
// grid supports.
func ValidTargetSliceCount(n int) bool {
	return slices.Contains(TargetSliceCounts, n)
}

// PlanOptions controls the slice-length policy.
type PlanOptions struct {
	// TargetSliceCount pads the chain with silent slices up to this count
	// (and truncates input beyond it). Zero means no target.
	TargetSliceCount int
	// MaxSliceLenMs caps the uniform slice length; longer clips are
	// truncated. Zero means no cap.
	MaxSliceLenMs int
	// NoPadding keeps every clip at its own length. Slice starts then
	// simply accumulate clip durations and no uniform length exists.
	NoPadding bool
}

// PlannedSlice is one slice of the chain: the audio that fills it and its
// position in the final stream.
type PlannedSlice struct {
	Clip     *clip.Clip
	StartMs  int
	LengthMs int
	// Silent marks padding slices appended to reach the target count.
	Silent bool
}

// Plan is the chain layout. It is the single source of truth for slice
// positions: the assembler renders audio from it and the metadata encoder
// serializes boundaries from it, so the two outputs cannot disagree.
//
// Slices are contiguous and non-overlapping:
// Slices[i].StartMs + Slices[i].LengthMs == Slices[i+1].StartMs.
type Plan struct {
	Slices []PlannedSlice
	// UniformSliceLenMs is the shared slice length. Only meaningful when
	// HasUniform is set (it is not in no-padding mode).
	UniformSliceLenMs int
	HasUniform        bool
	TotalMs           int
	SampleRate        int
	Channels          int
}

// BuildPlan decides the slice length policy and lays the clips out into a
// chain. Non-fatal findings (truncated input, silence padding advisories)
// are returned as diagnostics.
func BuildPlan(clips []*clip.Clip, opts PlanOptions) (*Plan, []Diagnostic, error) {
	var diags []Diagnostic

	if len(clips) == 0 {
		return nil, diags, ErrEmptyInput
	}

	for _, c := range clips {
		if c.SampleRate != clips[0].SampleRate {
			return nil, diags, fmt.Errorf("planning chain: %w", clip.ErrSampleRateMismatch)
		}
		if c.Channels != clips[0].Channels {
			return nil, diags, fmt.Errorf("planning chain: %w", clip.ErrChannelMismatch)
		}
	}

	target := opts.TargetSliceCount
	if target > MaxSlices {
		diags = append(diags, Warnf("requested %d slices, capping at %d", target, MaxSlices))
		target = MaxSlices
	}

	switch {
	case target > 0 && len(clips) > target:
		diags = append(diags, Warnf("%d clips given, keeping the first %d to fit the requested slice count", len(clips), target))
		clips = clips[:target]
	case target == 0 && !opts.NoPadding && len(clips) > MaxSlices:
		// In no-padding mode the clip list stays unbounded; the metadata
		// encoder truncates to the slot grid instead.
		diags = append(diags, Warnf("%d clips given, keeping the first %d (slice grid limit)", len(clips), MaxSlices))
		clips = clips[:MaxSlices]
	}

	if opts.NoPadding {
		if opts.MaxSliceLenMs > 0 {
			diags = append(diags, Warnf("max slice length is ignored in no-padding mode"))
		}
		return buildVariablePlan(clips, diags)
	}

	return buildUniformPlan(clips, target, opts.MaxSliceLenMs, diags)
}

// buildVariablePlan lays clips out back to back at their own lengths.
func buildVariablePlan(clips []*clip.Clip, diags []Diagnostic) (*Plan, []Diagnostic, error) {
	planned := make([]PlannedSlice, 0, len(clips))

	startMs := 0
	for _, c := range clips {
		lengthMs := c.DurationMs()
		planned = append(planned, PlannedSlice{
			Clip:     c,
			StartMs:  startMs,
			LengthMs: lengthMs,
		})
		startMs += lengthMs
	}

	return &Plan{
		Slices:     planned,
		TotalMs:    startMs,
		SampleRate: clips[0].SampleRate,
		Channels:   clips[0].Channels,
	}, diags, nil
}

// buildUniformPlan resolves a single slice length, fits every clip to it
// and appends silent slices up to the target count.
func buildUniformPlan(clips []*clip.Clip, target, maxSliceLenMs int, diags []Diagnostic) (*Plan, []Diagnostic, error) {
	longest := 0
	for _, c := range clips {
		if d := c.DurationMs(); d > longest {
			longest = d
		}
	}

	sliceLen := longest
	switch {
	case maxSliceLenMs > 0 && maxSliceLenMs < longest:
		sliceLen = maxSliceLenMs
		for i, c := range clips {
			if c.DurationMs() > sliceLen {
				diags = append(diags, Warnf("truncating %s (%dms) to %dms", clipLabel(c, i), c.DurationMs(), sliceLen))
			}
		}
	case maxSliceLenMs > 0:
		sliceLen = maxSliceLenMs
	default:
		if longest > longSliceAdvisoryMs {
			diags = append(diags, Infof("longest clip is %dms; shorter clips will be padded with significant silence", longest))
		}
	}

	planned := make([]PlannedSlice, 0, len(clips))
	startMs := 0

	for _, c := range clips {
		// Truncate first, pad second; a clip never gets both.
		fitted := c.Truncate(sliceLen).PadTo(sliceLen)
		planned = append(planned, PlannedSlice{
			Clip:     fitted,
			StartMs:  startMs,
			LengthMs: sliceLen,
		})
		startMs += sliceLen
	}

	for i := len(planned); i < target; i++ {
		silent, err := clip.Silence(sliceLen, clips[0].SampleRate, clips[0].Channels)
		if err != nil {
			return nil, diags, fmt.Errorf("building padding slice: %w", err)
		}
		planned = append(planned, PlannedSlice{
			Clip:     silent,
			StartMs:  startMs,
			LengthMs: sliceLen,
			Silent:   true,
		})
		startMs += sliceLen
	}

	return &Plan{
		Slices:            planned,
		UniformSliceLenMs: sliceLen,
		HasUniform:        true,
		TotalMs:           startMs,
		SampleRate:        clips[0].SampleRate,
		Channels:          clips[0].Channels,
	}, diags, nil
}

func clipLabel(c *clip.Clip, i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("clip %d", i+1)
}
