// SPDX-License-Identifier: EPL-2.0

// Package seekbuf provides in-memory io.ReadSeeker and io.WriteSeeker
// implementations for libraries that require seekable streams
// (the go-audio decoders and encoder both do).
package seekbuf

import (
	"fmt"
	"io"
)

// Reader implements io.ReadSeeker over a byte slice.
type Reader struct {
	data   []byte
	offset int64
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.offset >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.offset:])
	r.offset += int64(n)
	return n, nil
}

func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = r.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(r.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	r.offset = newOffset
	return newOffset, nil
}

// Writer implements io.WriteSeeker backed by a growable byte slice.
// It allows rendering seekable file formats fully in memory before
// anything touches the filesystem.
type Writer struct {
	data   []byte
	offset int64
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Write(p []byte) (int, error) {
	end := w.offset + int64(len(p))
	if end > int64(len(w.data)) {
		grown := make([]byte, end)
		copy(grown, w.data)
		w.data = grown
	}
	copy(w.data[w.offset:end], p)
	w.offset = end
	return len(p), nil
}

func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = w.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(w.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	w.offset = newOffset
	return newOffset, nil
}

// Bytes returns the written content.
func (w *Writer) Bytes() []byte {
	return w.data
}
