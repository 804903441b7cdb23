// SPDX-License-Identifier: EPL-2.0

package seekbuf

import (
	"bytes"
	"io"
	"testing"
)

func TestReaderSeek(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte("hello world"))

	buf := make([]byte, 5)
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(buf) != "hello" {
		t.Errorf("Read() = %q, want %q", buf, "hello")
	}

	if _, err := r.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(buf) != "world" {
		t.Errorf("Read() after seek = %q, want %q", buf, "world")
	}

	if _, err := r.Seek(-5, io.SeekEnd); err != nil {
		t.Fatalf("Seek(end) error = %v", err)
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(buf) != "world" {
		t.Errorf("Read() after end seek = %q, want %q", buf, "world")
	}
}

func TestReaderEOF(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte("ab"))
	if _, err := io.ReadAll(r); err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if _, err := r.Read(make([]byte, 1)); err != io.EOF {
		t.Errorf("Read() past end error = %v, want io.EOF", err)
	}
}

func TestReaderNegativeSeek(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte("ab"))
	if _, err := r.Seek(-1, io.SeekStart); err == nil {
		t.Error("Seek(-1) expected error")
	}
}

func TestWriterBackPatch(t *testing.T) {
	t.Parallel()

	// Write a placeholder, append, then seek back and patch it. This is
	// the access pattern the WAV encoder uses for RIFF chunk sizes.
	w := NewWriter()
	if _, err := w.Write([]byte("????data")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := w.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if _, err := w.Write([]byte("size")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if got := w.Bytes(); !bytes.Equal(got, []byte("sizedata")) {
		t.Errorf("Bytes() = %q, want %q", got, "sizedata")
	}
}

func TestWriterSeekPastEnd(t *testing.T) {
	t.Parallel()

	w := NewWriter()
	if _, err := w.Seek(4, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := []byte{0, 0, 0, 0, 'x'}
	if got := w.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
}
