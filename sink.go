// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

// outBuffer wraps the output slice of a single Poll call and tracks how
// many bytes have been written into it. The caller retains ownership of
// the slice; outBuffer never allocates.
type outBuffer struct {
	data []byte
	n    int
}

// writeByte appends a single byte. The state machines check full before
// emitting, so writeByte doesn't check capacity itself.
func (b *outBuffer) writeByte(c byte) {
	b.data[b.n] = c
	b.n++
}

// full reports whether the output slice has no capacity left.
func (b *outBuffer) full() bool {
	return b.n >= len(b.data)
}

// free returns the remaining capacity in bytes.
func (b *outBuffer) free() int {
	return len(b.data) - b.n
}
