package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid WAV file
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates an unsupported WAV layout
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedBitDepth indicates a bit depth this package cannot handle
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrInvalidChannelCount indicates a channel count below 1
	ErrInvalidChannelCount = errors.New("invalid channel count")
)
