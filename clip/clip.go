// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"

	"github.com/ik5/otchain/audio"
)

// Clip is a fully decoded audio buffer: interleaved float32 samples in
// [-1,1] plus the format needed to interpret them. Transforms return a new
// Clip and the input should be considered consumed.
type Clip struct {
	// Data holds interleaved samples, frame-major: L R L R ... for stereo.
	Data       []float32
	SampleRate int
	Channels   int
	// Name labels the clip in diagnostics (usually the source file name).
	Name string
}

// New creates a Clip around existing sample data.
func New(data []float32, sampleRate, channels int) (*Clip, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels < 1 {
		return nil, ErrInvalidChannelCount
	}
	if len(data)%channels != 0 {
		return nil, ErrPartialFrame
	}

	return &Clip{
		Data:       data,
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}

// Collect drains an audio.Source into a Clip.
func Collect(src audio.Source) (*Clip, error) {
	data, err := audio.Collect(src, src.BufSize())
	if err != nil {
		return nil, fmt.Errorf("collecting source: %w", err)
	}

	return New(data, src.SampleRate(), src.Channels())
}

// Silence creates a clip of ms milliseconds of silence in the given format.
func Silence(ms, sampleRate, channels int) (*Clip, error) {
	if ms < 0 {
		ms = 0
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels < 1 {
		return nil, ErrInvalidChannelCount
	}

	frames := framesForMs(ms, sampleRate)
	return &Clip{
		Data:       make([]float32, frames*channels),
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}

// Frames returns the number of sample frames in the clip.
func (c *Clip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Data) / c.Channels
}

// DurationMs returns the clip duration in whole milliseconds, rounded to
// the nearest millisecond.
func (c *Clip) DurationMs() int {
	if c.SampleRate == 0 {
		return 0
	}
	return int((int64(c.Frames())*1000 + int64(c.SampleRate)/2) / int64(c.SampleRate))
}

// Concat appends other to c and returns the combined clip. Both clips must
// share sample rate and channel count.
func (c *Clip) Concat(other *Clip) (*Clip, error) {
	if c.SampleRate != other.SampleRate {
		return nil, ErrSampleRateMismatch
	}
	if c.Channels != other.Channels {
		return nil, ErrChannelMismatch
	}

	data := make([]float32, 0, len(c.Data)+len(other.Data))
	data = append(data, c.Data...)
	data = append(data, other.Data...)

	return &Clip{
		Data:       data,
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		Name:       c.Name,
	}, nil
}

// Truncate cuts the clip down to at most ms milliseconds. A clip already
// shorter than ms is returned unchanged.
func (c *Clip) Truncate(ms int) *Clip {
	frames := framesForMs(ms, c.SampleRate)
	if frames >= c.Frames() {
		return c
	}

	return &Clip{
		Data:       c.Data[:frames*c.Channels],
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		Name:       c.Name,
	}
}

// PadTo extends the clip with trailing silence to exactly ms milliseconds.
// A clip already at least ms long is returned unchanged.
func (c *Clip) PadTo(ms int) *Clip {
	frames := framesForMs(ms, c.SampleRate)
	if frames <= c.Frames() {
		return c
	}

	data := make([]float32, frames*c.Channels)
	copy(data, c.Data)

	return &Clip{
		Data:       data,
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		Name:       c.Name,
	}
}

func framesForMs(ms, sampleRate int) int {
	return int((int64(ms)*int64(sampleRate) + 500) / 1000)
}
