// SPDX-License-Identifier: EPL-2.0

package clip

import "errors"

var (
	// ErrInvalidSampleRate indicates a sample rate below 1 Hz
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrInvalidChannelCount indicates a channel count below 1
	ErrInvalidChannelCount = errors.New("invalid channel count")

	// ErrPartialFrame indicates sample data not divisible by channel count
	ErrPartialFrame = errors.New("sample data contains a partial frame")

	// ErrSampleRateMismatch indicates clips with differing sample rates
	ErrSampleRateMismatch = errors.New("sample rate mismatch")

	// ErrChannelMismatch indicates clips with differing channel counts
	ErrChannelMismatch = errors.New("channel count mismatch")

	// ErrUnsupportedChannelConversion indicates a channel layout change
	// this package cannot perform
	ErrUnsupportedChannelConversion = errors.New("unsupported channel conversion")
)
