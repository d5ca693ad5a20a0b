// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

import (
	"errors"
	"io"
)

// Reader decompresses a heatshrink stream read from an underlying
// reader. The stream has no end marker: Read returns io.EOF once the
// underlying reader is exhausted and all decodable bytes have been
// delivered; trailing padding bits are ignored.
type Reader struct {
	r   io.Reader
	d   *Decoder
	err error // sticky error from the underlying reader
	buf [inputBufferSize]byte
}

// NewReader creates a Reader decompressing from r.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, errors.New("heatshrink: reader must not be nil")
	}
	return &Reader{r: r, d: NewDecoder()}, nil
}

// Read writes decompressed data into p.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		k, more, perr := r.d.Poll(p[n:])
		n += k
		if perr != nil {
			return n, perr
		}
		if more || n == len(p) {
			return n, nil
		}
		// The decoder needs input.
		if r.err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, r.err
		}
		m, rerr := r.r.Read(r.buf[:])
		if m > 0 {
			// The staging buffer is empty whenever Poll asks for
			// input, so the whole chunk fits.
			if _, serr := r.d.Sink(r.buf[:m]); serr != nil {
				return n, serr
			}
		}
		switch rerr {
		case nil:
		case io.EOF:
			r.err = io.EOF
		default:
			r.err = rerr
		}
	}
}
