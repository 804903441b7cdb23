// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/otchain/internal/seekbuf"
	"github.com/ik5/otchain/utils"
)

// Write encodes interleaved float32 samples in [-1,1] as a PCM WAV file at
// the given bit depth (16 or 24). Any channel count is supported.
//
// The writer must support seeking because the RIFF chunk sizes are patched
// once the sample data length is known.
func Write(w io.WriteSeeker, sampleRate, channels, bitDepth int, samples []float32) error {
	switch bitDepth {
	case 16, 24:
	default:
		return ErrUnsupportedBitDepth
	}

	if channels < 1 {
		return ErrInvalidChannelCount
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, channels, 1)

	// Write in chunks so large chains don't need a second full-size int buffer
	const chunkSize = 8192

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	for start := 0; start < len(samples); start += chunkSize {
		end := min(start+chunkSize, len(samples))
		chunk := samples[start:end]

		if cap(buf.Data) < len(chunk) {
			buf.Data = make([]int, len(chunk))
		}
		buf.Data = buf.Data[:len(chunk)]

		for i, s := range chunk {
			if bitDepth == 16 {
				buf.Data[i] = int(utils.Float32ToInt16(s))
			} else {
				buf.Data[i] = int(utils.Float32ToInt24(s))
			}
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// Render encodes the samples fully in memory and returns the WAV file bytes.
func Render(sampleRate, channels, bitDepth int, samples []float32) ([]byte, error) {
	buf := seekbuf.NewWriter()
	if err := Write(buf, sampleRate, channels, bitDepth, samples); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
