// SPDX-License-Identifier: EPL-2.0

package clip_test

import (
	"errors"
	"testing"

	"github.com/ik5/otchain/clip"
	"github.com/ik5/otchain/internal/audiotest"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       []float32
		sampleRate int
		channels   int
		wantErr    error
	}{
		{
			name:       "mono",
			data:       make([]float32, 10),
			sampleRate: 44100,
			channels:   1,
		},
		{
			name:       "stereo",
			data:       make([]float32, 10),
			sampleRate: 48000,
			channels:   2,
		},
		{
			name:       "zero sample rate",
			data:       make([]float32, 10),
			sampleRate: 0,
			channels:   1,
			wantErr:    clip.ErrInvalidSampleRate,
		},
		{
			name:       "zero channels",
			data:       make([]float32, 10),
			sampleRate: 44100,
			channels:   0,
			wantErr:    clip.ErrInvalidChannelCount,
		},
		{
			name:       "partial frame",
			data:       make([]float32, 9),
			sampleRate: 44100,
			channels:   2,
			wantErr:    clip.ErrPartialFrame,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := clip.New(tt.data, tt.sampleRate, tt.channels)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if c.SampleRate != tt.sampleRate || c.Channels != tt.channels {
				t.Errorf("New() format = %d Hz/%d ch, want %d Hz/%d ch",
					c.SampleRate, c.Channels, tt.sampleRate, tt.channels)
			}
		})
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(44100, 2, 3, func(sample, channel int) float32 {
		return float32(sample*2+channel) / 10
	})

	c, err := clip.Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if c.SampleRate != 44100 || c.Channels != 2 {
		t.Errorf("Collect() format = %d Hz/%d ch, want 44100 Hz/2 ch", c.SampleRate, c.Channels)
	}
	want := []float32{0, 0.1, 0.2, 0.3, 0.4, 0.5}
	if len(c.Data) != len(want) {
		t.Fatalf("len(Data) = %d, want %d", len(c.Data), len(want))
	}
	for i, v := range want {
		if c.Data[i] != v {
			t.Errorf("Data[%d] = %v, want %v", i, c.Data[i], v)
		}
	}
}

func TestSilence(t *testing.T) {
	t.Parallel()

	c, err := clip.Silence(250, 44100, 2)
	if err != nil {
		t.Fatalf("Silence() error = %v", err)
	}

	wantFrames := 250 * 44100 / 1000
	if c.Frames() != wantFrames {
		t.Errorf("Frames() = %d, want %d", c.Frames(), wantFrames)
	}
	if c.DurationMs() != 250 {
		t.Errorf("DurationMs() = %d, want 250", c.DurationMs())
	}
	for i, v := range c.Data {
		if v != 0 {
			t.Fatalf("Data[%d] = %v, want 0", i, v)
		}
	}
}

func TestDurationMsRounds(t *testing.T) {
	t.Parallel()

	// 22051 frames at 44.1kHz is 500.02ms and must round to 500.
	c, err := clip.New(make([]float32, 22051), 44100, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.DurationMs() != 500 {
		t.Errorf("DurationMs() = %d, want 500", c.DurationMs())
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()

	a, err := clip.New([]float32{0.1, 0.2}, 44100, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b, err := clip.New([]float32{0.3}, 44100, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c, err := a.Concat(b)
	if err != nil {
		t.Fatalf("Concat() error = %v", err)
	}
	want := []float32{0.1, 0.2, 0.3}
	for i, v := range want {
		if c.Data[i] != v {
			t.Errorf("Data[%d] = %v, want %v", i, c.Data[i], v)
		}
	}
}

func TestConcatMismatch(t *testing.T) {
	t.Parallel()

	a, _ := clip.New(make([]float32, 4), 44100, 1)
	b, _ := clip.New(make([]float32, 4), 48000, 1)
	if _, err := a.Concat(b); !errors.Is(err, clip.ErrSampleRateMismatch) {
		t.Errorf("Concat() error = %v, want %v", err, clip.ErrSampleRateMismatch)
	}

	c, _ := clip.New(make([]float32, 4), 44100, 2)
	if _, err := a.Concat(c); !errors.Is(err, clip.ErrChannelMismatch) {
		t.Errorf("Concat() error = %v, want %v", err, clip.ErrChannelMismatch)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	c, err := clip.New(make([]float32, 1000), 1000, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := c.Truncate(400).Frames(); got != 400 {
		t.Errorf("Truncate(400).Frames() = %d, want 400", got)
	}

	// Already shorter than the limit: unchanged.
	if got := c.Truncate(2000).Frames(); got != 1000 {
		t.Errorf("Truncate(2000).Frames() = %d, want 1000", got)
	}
}

func TestPadTo(t *testing.T) {
	t.Parallel()

	c, err := clip.New([]float32{0.5, 0.5}, 1000, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p := c.PadTo(5)
	if p.Frames() != 5 {
		t.Fatalf("PadTo(5).Frames() = %d, want 5", p.Frames())
	}
	for i := 2; i < 5; i++ {
		if p.Data[i] != 0 {
			t.Errorf("padding sample %d = %v, want 0", i, p.Data[i])
		}
	}

	// Already long enough: unchanged.
	if got := c.PadTo(1).Frames(); got != 2 {
		t.Errorf("PadTo(1).Frames() = %d, want 2", got)
	}
}
