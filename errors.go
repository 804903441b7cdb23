// SPDX-License-Identifier: EPL-2.0

package otchain

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension with no registered decoder
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrNoAudioFiles indicates a directory with nothing to process
	ErrNoAudioFiles = errors.New("no audio files found")
)
