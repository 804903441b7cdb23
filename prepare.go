// SPDX-License-Identifier: EPL-2.0

package otchain

import (
	"fmt"

	"github.com/ik5/otchain/chain"
	"github.com/ik5/otchain/clip"
)

// PrepareOptions controls per-clip processing before chaining or batch
// export.
type PrepareOptions struct {
	// TrimSilence drops leading silence below ThresholdDb (dBFS).
	TrimSilence bool
	ThresholdDb float64

	// FadeInMs / FadeOutMs apply linear fades to each clip.
	FadeInMs  int
	FadeOutMs int

	// Mono downmixes every clip to one channel.
	Mono bool

	// Normalize peak-normalizes each clip to HeadroomDb below full scale.
	// Chain building ignores this and normalizes the assembled chain
	// instead; it only applies to batch processing.
	Normalize  bool
	HeadroomDb float64
}

// DefaultPrepareOptions mirrors the tool's defaults: trim at -48 dBFS,
// normalize with 3 dB headroom, keep the original channel layout.
func DefaultPrepareOptions() PrepareOptions {
	return PrepareOptions{
		TrimSilence: true,
		ThresholdDb: -48,
		Normalize:   true,
		HeadroomDb:  3,
	}
}

// PrepareClip loads one file and applies the per-clip transforms in order:
// trim, normalize, channel conversion, fades.
func PrepareClip(path string, opts PrepareOptions) (*clip.Clip, error) {
	c, err := LoadClip(path)
	if err != nil {
		return nil, err
	}

	if opts.TrimSilence {
		c = c.TrimLeadingSilence(opts.ThresholdDb)
	}

	if opts.Normalize {
		c = c.Normalize(opts.HeadroomDb)
	}

	if opts.Mono {
		c, err = c.SetChannels(1)
		if err != nil {
			return nil, fmt.Errorf("downmixing %s: %w", path, err)
		}
	}

	if opts.FadeInMs > 0 {
		c = c.FadeIn(opts.FadeInMs)
	}
	if opts.FadeOutMs > 0 {
		c = c.FadeOut(opts.FadeOutMs)
	}

	return c, nil
}

// PrepareAll prepares every file, skipping ones that fail to decode with a
// warning. The surviving clips are converted to a common sample rate and
// channel count (the first clip's rate, the widest channel layout) so they
// can be chained. Returns chain.ErrEmptyInput when nothing survives.
func PrepareAll(paths []string, opts PrepareOptions) ([]*clip.Clip, []chain.Diagnostic, error) {
	var (
		clips []*clip.Clip
		diags []chain.Diagnostic
	)

	for _, path := range paths {
		c, err := PrepareClip(path, opts)
		if err != nil {
			diags = append(diags, chain.Warnf("skipping %s: %v", path, err))
			continue
		}
		if c.Frames() == 0 {
			diags = append(diags, chain.Warnf("skipping %s: no audio after trimming", path))
			continue
		}
		clips = append(clips, c)
	}

	if len(clips) == 0 {
		return nil, diags, chain.ErrEmptyInput
	}

	unified, ud, err := unifyFormats(clips)
	diags = append(diags, ud...)
	if err != nil {
		return nil, diags, err
	}

	return unified, diags, nil
}

// unifyFormats converts clips to a shared format so the planner can lay
// them out. Failures here are fatal: a clip that decoded fine but cannot
// be converted points at a real problem, not a bad input file.
func unifyFormats(clips []*clip.Clip) ([]*clip.Clip, []chain.Diagnostic, error) {
	var diags []chain.Diagnostic

	rate := clips[0].SampleRate
	channels := 0
	for _, c := range clips {
		if c.Channels > channels {
			channels = c.Channels
		}
	}

	for i, c := range clips {
		if c.SampleRate != rate {
			diags = append(diags, chain.Infof("resampling %s from %d Hz to %d Hz", c.Name, c.SampleRate, rate))
			converted, err := c.Resample(rate)
			if err != nil {
				return nil, diags, fmt.Errorf("resampling %s: %w", c.Name, err)
			}
			c = converted
		}

		if c.Channels != channels {
			diags = append(diags, chain.Infof("converting %s from %d to %d channels", c.Name, c.Channels, channels))
			converted, err := c.SetChannels(channels)
			if err != nil {
				return nil, diags, fmt.Errorf("converting %s: %w", c.Name, err)
			}
			c = converted
		}

		clips[i] = c
	}

	return clips, diags, nil
}
