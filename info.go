// SPDX-License-Identifier: EPL-2.0

package otchain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goaiff "github.com/go-audio/aiff"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/otchain/formats/aiff"
	"github.com/ik5/otchain/formats/wav"
)

// ClipInfo describes an audio file without processing it.
type ClipInfo struct {
	Path       string
	DurationMs int
	SampleRate int
	Channels   int
	BitDepth   int
}

// Inspect reads format information from one audio file. WAV and AIFF
// headers carry the bit depth directly; MP3 and Vorbis always decode to
// 16-bit equivalent PCM.
func Inspect(path string) (*ClipInfo, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return inspectWav(path)
	case ".aif", ".aiff":
		return inspectAiff(path)
	case ".mp3", ".ogg":
		c, err := LoadClip(path)
		if err != nil {
			return nil, err
		}
		return &ClipInfo{
			Path:       path,
			DurationMs: c.DurationMs(),
			SampleRate: c.SampleRate,
			Channels:   c.Channels,
			BitDepth:   16,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func inspectWav(path string) (*ClipInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s: %w", path, wav.ErrNotWavFile)
	}
	dec.ReadInfo()

	dur, err := dec.Duration()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &ClipInfo{
		Path:       path,
		DurationMs: int(dur.Milliseconds()),
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}, nil
}

func inspectAiff(path string) (*ClipInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := goaiff.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s: %w", path, aiff.ErrNotAiffFile)
	}
	dec.ReadInfo()

	dur, err := dec.Duration()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &ClipInfo{
		Path:       path,
		DurationMs: int(dur.Milliseconds()),
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}, nil
}
