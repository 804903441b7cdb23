// SPDX-License-Identifier: EPL-2.0

package otchain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/otchain/audio"
	"github.com/ik5/otchain/clip"
	"github.com/ik5/otchain/formats/aiff"
	"github.com/ik5/otchain/formats/mp3"
	"github.com/ik5/otchain/formats/vorbis"
	"github.com/ik5/otchain/formats/wav"
)

// DefaultRegistry returns a decoder registry covering every format this
// package ships a decoder for, keyed by file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

var defaultRegistry = DefaultRegistry()

// LoadClip decodes an audio file into a Clip. The decoder is picked by
// file extension from the default registry.
func LoadClip(path string) (*clip.Clip, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := defaultRegistry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	c, err := clip.Collect(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	c.Name = filepath.Base(path)
	return c, nil
}
