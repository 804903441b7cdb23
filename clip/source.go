// SPDX-License-Identifier: EPL-2.0

package clip

import "io"

// source adapts a Clip back into the streaming audio.Source interface so
// the clip transforms can reuse the stream processors (Resampler,
// MonoMixer) without duplicating their algorithms.
type source struct {
	clip   *Clip
	offset int
}

func newSource(c *Clip) *source {
	return &source{clip: c}
}

func (s *source) SampleRate() int { return s.clip.SampleRate }
func (s *source) Channels() int   { return s.clip.Channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.offset >= len(s.clip.Data) {
		return 0, io.EOF
	}

	n := copy(dst, s.clip.Data[s.offset:])
	s.offset += n

	if s.offset >= len(s.clip.Data) {
		return n, io.EOF
	}

	return n, nil
}
