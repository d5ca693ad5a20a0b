// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

// Encode compresses src into dst using the brute-force match search and
// returns the filled prefix of dst. It returns ErrOutputFull if dst is
// too small for the complete compressed stream; worst case output is
// 9/8 of the input, so cap(dst) = len(src)+len(src)/8+1 always
// suffices.
func Encode(dst, src []byte) ([]byte, error) {
	return encode(NewEncoder(), dst, src)
}

// IndexedEncode is Encode with the indexed match search. The output is
// identical; only the search speed differs.
func IndexedEncode(dst, src []byte) ([]byte, error) {
	return encode(NewIndexedEncoder(), dst, src)
}

func encode(e *Encoder, dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}
	var n, out int
	for {
		if n < len(src) {
			k, err := e.Sink(src[n:])
			if err != nil && err != ErrFull {
				return nil, err
			}
			n += k
		}
		if n == len(src) {
			e.Finish()
		}
		for {
			if out == len(dst) {
				return nil, ErrOutputFull
			}
			k, more, err := e.Poll(dst[out:])
			if err != nil {
				return nil, err
			}
			out += k
			if !more {
				break
			}
		}
		if n == len(src) && e.Finish() {
			return dst[:out], nil
		}
	}
}

// Decode decompresses src into dst and returns the filled prefix of
// dst. It returns ErrOutputFull if dst cannot hold the complete
// decompressed stream. A truncated final token is ignored, mirroring
// the stream decoder.
func Decode(dst, src []byte) ([]byte, error) {
	d := NewDecoder()
	var n, out int
	for n < len(src) {
		k, err := d.Sink(src[n:])
		if err != nil && err != ErrFull {
			return nil, err
		}
		n += k
		if out == len(dst) {
			return nil, ErrOutputFull
		}
		k, more, err := d.Poll(dst[out:])
		if err != nil {
			return nil, err
		}
		out += k
		if more {
			return nil, ErrOutputFull
		}
		if n == len(src) && !d.Finish() {
			return nil, ErrOutputFull
		}
	}
	return dst[:out], nil
}
