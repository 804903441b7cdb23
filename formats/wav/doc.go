// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding wraps github.com/go-audio/wav and supports PCM files at 8, 16,
// 24 and 32 bits, any channel count and any sample rate. Encoding supports
// 16- and 24-bit PCM output, which is what samplers expect.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
// Write streams interleaved float32 samples to a seekable writer:
//
//	file, _ := os.Create("output.wav")
//	err := wav.Write(file, 44100, 2, 24, samples)
//
// Render produces the complete file in memory instead, which callers use
// when several output files must be written atomically together:
//
//	data, err := wav.Render(44100, 2, 24, samples)
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//   - ErrUnsupportedBitDepth: Bit depth outside the supported set
package wav
