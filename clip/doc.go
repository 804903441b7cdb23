// SPDX-License-Identifier: EPL-2.0

// Package clip provides whole-buffer audio editing on decoded clips.
//
// A Clip is the unit the chain builder works with: one input sample,
// fully decoded to interleaved float32. The package covers the edits
// needed to prepare sampler chains: leading-silence trimming, fades, peak
// normalization, channel and rate conversion, padding, truncation and
// concatenation.
//
// Transforms hand ownership forward: each returns a new Clip (or the
// receiver unchanged when the transform is a no-op) and the caller should
// not touch the input afterwards. Rate and channel conversion reuse the
// streaming audio.Resampler and audio.MonoMixer by wrapping the clip in a
// Source.
//
// Typical preparation of one sample:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	c, _ := clip.Collect(src)
//	c = c.TrimLeadingSilence(-48)
//	c, _ = c.SetChannels(1)
//	c = c.FadeOut(5)
package clip
