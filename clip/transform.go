// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"
	"math"

	"github.com/ik5/otchain/audio"
)

// Resample converts the clip to the target sample rate using the streaming
// cubic-interpolation resampler.
func (c *Clip) Resample(targetRate int) (*Clip, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if targetRate == c.SampleRate {
		return c, nil
	}

	res := audio.NewResampler(newSource(c), targetRate)
	data, err := audio.Collect(res, 4096)
	if err != nil {
		return nil, fmt.Errorf("resampling: %w", err)
	}

	out, err := New(data, targetRate, c.Channels)
	if err != nil {
		return nil, err
	}
	out.Name = c.Name
	return out, nil
}

// SetChannels converts the clip to n channels. Downmixing to mono averages
// all channels; mono is upmixed by duplicating the single channel. Other
// conversions are not supported.
func (c *Clip) SetChannels(n int) (*Clip, error) {
	switch {
	case n < 1:
		return nil, ErrInvalidChannelCount
	case n == c.Channels:
		return c, nil
	case n == 1:
		mixer := audio.NewMonoMixer(newSource(c))
		data, err := audio.Collect(mixer, 4096)
		if err != nil {
			return nil, fmt.Errorf("downmixing: %w", err)
		}
		out, err := New(data, c.SampleRate, 1)
		if err != nil {
			return nil, err
		}
		out.Name = c.Name
		return out, nil
	case c.Channels == 1:
		data := make([]float32, c.Frames()*n)
		for f := 0; f < c.Frames(); f++ {
			for ch := 0; ch < n; ch++ {
				data[f*n+ch] = c.Data[f]
			}
		}
		out, err := New(data, c.SampleRate, n)
		if err != nil {
			return nil, err
		}
		out.Name = c.Name
		return out, nil
	default:
		return nil, ErrUnsupportedChannelConversion
	}
}

// TrimLeadingSilence drops frames from the start of the clip until one
// channel rises above thresholdDb (dBFS, e.g. -48). A fully silent clip
// comes back empty.
func (c *Clip) TrimLeadingSilence(thresholdDb float64) *Clip {
	threshold := float32(math.Pow(10, thresholdDb/20))

	start := c.Frames()
	for f := 0; f < c.Frames(); f++ {
		loud := false
		for ch := 0; ch < c.Channels; ch++ {
			v := c.Data[f*c.Channels+ch]
			if v < 0 {
				v = -v
			}
			if v >= threshold {
				loud = true
				break
			}
		}
		if loud {
			start = f
			break
		}
	}

	return &Clip{
		Data:       c.Data[start*c.Channels:],
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		Name:       c.Name,
	}
}

// FadeIn applies a linear gain ramp from 0 to 1 over the first ms
// milliseconds.
func (c *Clip) FadeIn(ms int) *Clip {
	return c.fade(ms, true)
}

// FadeOut applies a linear gain ramp from 1 to 0 over the last ms
// milliseconds.
func (c *Clip) FadeOut(ms int) *Clip {
	return c.fade(ms, false)
}

func (c *Clip) fade(ms int, in bool) *Clip {
	frames := framesForMs(ms, c.SampleRate)
	if frames <= 0 {
		return c
	}
	if frames > c.Frames() {
		frames = c.Frames()
	}

	data := make([]float32, len(c.Data))
	copy(data, c.Data)

	total := c.Frames()
	for i := 0; i < frames; i++ {
		gain := float32(i) / float32(frames)

		var f int
		if in {
			f = i
		} else {
			f = total - 1 - i
		}
		for ch := 0; ch < c.Channels; ch++ {
			data[f*c.Channels+ch] *= gain
		}
	}

	return &Clip{
		Data:       data,
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		Name:       c.Name,
	}
}

// Normalize scales the clip so its peak sits headroomDb below full scale.
// A silent clip is returned unchanged.
func (c *Clip) Normalize(headroomDb float64) *Clip {
	var peak float32
	for _, v := range c.Data {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}

	if peak == 0 {
		return c
	}

	target := float32(math.Pow(10, -headroomDb/20))
	gain := target / peak

	data := make([]float32, len(c.Data))
	for i, v := range c.Data {
		data[i] = v * gain
	}

	return &Clip{
		Data:       data,
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		Name:       c.Name,
	}
}
