// SPDX-License-Identifier: EPL-2.0

// Package otfile serializes chain plans into the sampler's 832-byte slice
// metadata container.
//
// The file sits next to the chain audio (same path, .ot extension) and
// tells the hardware where each of the 64 slice slots begins and ends, in
// sample offsets, plus a handful of playback parameters. The layout is
// fixed: every field lives at a documented byte offset and a 16-bit
// checksum over the payload closes the file. A file that is off by one
// byte is silently rejected by the hardware, so Encode is written against
// the offset table below and the tests verify it field by field.
//
// Layout (all multi-byte integers little-endian):
//
//	0x000        16-byte container header ("FORM....DPS1SMPA")
//	0x017        tempo, stored as BPM * 24
//	0x01B        trim length in hundredths of bars
//	0x01F        loop length in hundredths of bars
//	0x023        time-stretch flag
//	0x027        loop flag
//	0x02B        gain (16-bit)
//	0x02D        quantize (8-bit)
//	0x02E        trim start, sample offset
//	0x032        trim end, sample offset
//	0x036        loop start, sample offset
//	0x03A        slice table, 64 entries x 12 bytes (start, end, loop point)
//	0x33A        slice count
//	0x33E        checksum over bytes [0x10, 0x33E)
package otfile

import "errors"

// FileSize is the fixed size of the metadata container.
const FileSize = 0x340

// MaxSliceSlots is the number of entries in the fixed slice table.
const MaxSliceSlots = 64

// Field offsets per the layout table above.
const (
	offTempo      = 0x17
	offTrimLen    = 0x1B
	offLoopLen    = 0x1F
	offStretch    = 0x23
	offLoop       = 0x27
	offGain       = 0x2B
	offQuantize   = 0x2D
	offTrimStart  = 0x2E
	offTrimEnd    = 0x32
	offLoopStart  = 0x36
	offSliceTable = 0x3A
	offSliceCount = 0x33A
	offChecksum   = 0x33E

	sliceEntrySize = 12

	// checksumStart is where the checksummed payload begins; the header
	// bytes before it are excluded.
	checksumStart = 0x10
)

// header covers bytes 0x00-0x16: the 16-byte container/sub-chunk
// identifier followed by the fixed sequence hardware-written files carry
// before the tempo field.
var header = []byte{
	'F', 'O', 'R', 'M', 0x00, 0x00, 0x00, 0x00,
	'D', 'P', 'S', '1', 'S', 'M', 'P', 'A',
	0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00,
}

// ErrNoSampleRate indicates a plan without a usable sample rate.
var ErrNoSampleRate = errors.New("plan has no sample rate")

// ErrInvalidTempo indicates a tempo that cannot be written to the file.
var ErrInvalidTempo = errors.New("tempo must be positive")

// Settings are the playback parameters stored alongside the slice table.
// The zero value is not useful; start from DefaultSettings.
type Settings struct {
	// TempoBPM is written to the tempo field. Chains are one-shot so the
	// value only affects how the hardware displays bar lengths.
	TempoBPM float64 `yaml:"tempo"`

	// Quantize is the grid-snapping setting, stored verbatim.
	Quantize int `yaml:"quantize"`

	// GainDb is the playback gain in dB. 12 dB encodes to the hardware's
	// neutral value.
	GainDb float64 `yaml:"gain_db"`

	// TimeStretch enables the hardware time-stretch flag.
	TimeStretch bool `yaml:"time_stretch"`

	// Loop enables looped playback of the whole chain.
	Loop bool `yaml:"loop"`
}

// DefaultSettings returns the profile used for sample chains: 120 BPM,
// quantize 16, neutral gain, stretch and loop off.
func DefaultSettings() Settings {
	return Settings{
		TempoBPM: 120,
		Quantize: 16,
		GainDb:   12,
	}
}
