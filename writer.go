// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

import (
	"errors"
	"io"
)

// Writer compresses data written to it and forwards the compressed
// stream to an underlying writer.
//
// The heatshrink format has no end-of-stream marker, so a Writer must
// be closed to flush the trailing bits.
type Writer struct {
	w      io.Writer
	e      *Encoder
	closed bool
	buf    [4096]byte
}

// NewWriter creates a Writer compressing into w with the brute-force
// match search.
//
// Don't forget to call Close() for the writer after all data has been
// written.
func NewWriter(w io.Writer) (*Writer, error) {
	if w == nil {
		return nil, errors.New("heatshrink: writer must not be nil")
	}
	return &Writer{w: w, e: NewEncoder()}, nil
}

// NewIndexedWriter creates a Writer compressing into w with the indexed
// match search.
func NewIndexedWriter(w io.Writer) (*Writer, error) {
	if w == nil {
		return nil, errors.New("heatshrink: writer must not be nil")
	}
	return &Writer{w: w, e: NewIndexedEncoder()}, nil
}

// Write compresses p. It always consumes all of p unless the underlying
// writer fails.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.closed {
		return 0, ErrMisuse
	}
	for n < len(p) {
		k, serr := w.e.Sink(p[n:])
		if serr != nil && serr != ErrFull {
			return n, serr
		}
		n += k
		if err = w.drain(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Close flushes the remaining bits of the compressed stream. It doesn't
// close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	for !w.e.Finish() {
		if err := w.drain(); err != nil {
			return err
		}
	}
	return nil
}

// drain polls the encoder until it cannot produce further output and
// forwards everything to the underlying writer.
func (w *Writer) drain() error {
	for {
		k, more, err := w.e.Poll(w.buf[:])
		if err != nil {
			return err
		}
		if k > 0 {
			if _, err := w.w.Write(w.buf[:k]); err != nil {
				return err
			}
		}
		if !more {
			return nil
		}
	}
}
