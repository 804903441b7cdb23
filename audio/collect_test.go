// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"testing"

	"github.com/ik5/otchain/audio"
	"github.com/ik5/otchain/internal/audiotest"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	const frames = 10000
	src := audiotest.NewMockSource(44100, 2, frames, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return -0.25
	})

	samples, err := audio.Collect(src, 4096)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(samples) != frames*2 {
		t.Fatalf("len(samples) = %d, want %d", len(samples), frames*2)
	}

	// Channel interleaving must survive chunked reads.
	for f := 0; f < frames; f++ {
		if samples[f*2] != 0.25 || samples[f*2+1] != -0.25 {
			t.Fatalf("frame %d = (%v, %v), want (0.25, -0.25)",
				f, samples[f*2], samples[f*2+1])
		}
	}
}

func TestCollectRoundsBufferToFrames(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(44100, 3, 100, 0.5)

	// 4096 is not a multiple of 3; Collect must still hand the source
	// whole-frame reads and return every sample.
	samples, err := audio.Collect(src, 4096)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 300 {
		t.Errorf("len(samples) = %d, want 300", len(samples))
	}
}

func TestCollectZeroBufferSize(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 50)

	samples, err := audio.Collect(src, 0)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 50 {
		t.Errorf("len(samples) = %d, want 50", len(samples))
	}
}

func TestCollectEmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 0)

	samples, err := audio.Collect(src, 1024)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("len(samples) = %d, want 0", len(samples))
	}
}
