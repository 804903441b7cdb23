// SPDX-License-Identifier: EPL-2.0

package otfile

import (
	"encoding/binary"
	"math"
	"path/filepath"
	"strings"

	"github.com/ik5/otchain/chain"
)

// Encode serializes the plan's slice boundaries and the playback settings
// into the fixed metadata buffer. audioFrames is the frame count of the
// assembled chain audio; it sets the trim end and the end of the last
// slice, so it must come from the rendered clip, not be re-derived.
//
// Plans with more than 64 slices are encoded up to the slot grid and the
// rest is dropped with a warning diagnostic.
func Encode(plan *chain.Plan, audioFrames uint32, s Settings) ([]byte, []chain.Diagnostic, error) {
	var diags []chain.Diagnostic

	if plan == nil || len(plan.Slices) == 0 {
		return nil, diags, chain.ErrEmptyInput
	}
	if plan.SampleRate <= 0 {
		return nil, diags, ErrNoSampleRate
	}

	buf := make([]byte, FileSize)
	copy(buf, header)

	binary.LittleEndian.PutUint32(buf[offTempo:], uint32(math.Round(s.TempoBPM*6*4)))

	// Bar length in hundredths, derived from the audio length at the
	// stored tempo. 400 (one bar) when there is no audio to measure.
	bars := uint32(400)
	if audioFrames > 0 {
		totalSeconds := float64(audioFrames) / float64(plan.SampleRate)
		barSeconds := (60 / s.TempoBPM) * 4
		bars = uint32(math.Round(totalSeconds / barSeconds * 100))
	}
	binary.LittleEndian.PutUint32(buf[offTrimLen:], bars)
	binary.LittleEndian.PutUint32(buf[offLoopLen:], bars)

	binary.LittleEndian.PutUint32(buf[offStretch:], flag(s.TimeStretch))
	binary.LittleEndian.PutUint32(buf[offLoop:], flag(s.Loop))

	binary.LittleEndian.PutUint16(buf[offGain:], uint16(clampByte(math.Round(0x30+(s.GainDb-12)*4))))
	buf[offQuantize] = byte(clampByte(float64(s.Quantize)))

	binary.LittleEndian.PutUint32(buf[offTrimStart:], 0)
	binary.LittleEndian.PutUint32(buf[offTrimEnd:], audioFrames)
	binary.LittleEndian.PutUint32(buf[offLoopStart:], 0)

	encoded := len(plan.Slices)
	if encoded > MaxSliceSlots {
		encoded = MaxSliceSlots
		diags = append(diags, chain.Warnf("chain has %d slices, metadata keeps the first %d", len(plan.Slices), MaxSliceSlots))
	}

	for i := 0; i < MaxSliceSlots; i++ {
		entry := buf[offSliceTable+i*sliceEntrySize:]

		if i < encoded {
			start := msToSamples(plan.Slices[i].StartMs, plan.SampleRate)
			end := audioFrames
			if i+1 < len(plan.Slices) {
				end = msToSamples(plan.Slices[i+1].StartMs, plan.SampleRate)
			}
			binary.LittleEndian.PutUint32(entry, start)
			binary.LittleEndian.PutUint32(entry[4:], end)
		}

		// Loop point is unused; -1 even in empty slots.
		binary.LittleEndian.PutUint32(entry[8:], 0xFFFFFFFF)
	}

	binary.LittleEndian.PutUint32(buf[offSliceCount:], uint32(encoded))

	// Checksum last, over everything after the header except itself.
	var sum uint32
	for _, b := range buf[checksumStart:offChecksum] {
		sum += uint32(b)
	}
	binary.LittleEndian.PutUint16(buf[offChecksum:], uint16(sum%0x10000))

	return buf, diags, nil
}

// MetadataPath derives the metadata file path from the audio output path
// by swapping the extension.
func MetadataPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".ot"
}

func msToSamples(ms, sampleRate int) uint32 {
	return uint32(math.Round(float64(ms) * float64(sampleRate) / 1000))
}

func flag(on bool) uint32 {
	if on {
		return 1
	}
	return 0
}

func clampByte(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}
