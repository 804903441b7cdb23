// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src and returns every sample it produces as interleaved
// float32 values. The source is read in bufferSize chunks until io.EOF.
//
// This is the bridge between the streaming Source pipeline (decoders,
// Resampler, MonoMixer) and whole-buffer processing: decode or transform a
// stream, then Collect it into memory for offline editing.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	mono := audio.NewMonoMixer(src)
//	samples, err := audio.Collect(mono, 4096)
func Collect(src Source, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	// Round down to a whole number of frames so ReadSamples never sees a
	// partial frame request.
	if ch := src.Channels(); ch > 1 {
		bufferSize -= bufferSize % ch
		if bufferSize == 0 {
			bufferSize = ch
		}
	}

	var samples []float32
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}
