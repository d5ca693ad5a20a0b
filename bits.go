// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

// bitWriter packs bit fields most-significant-bit first into bytes.
// bitIndex is a mask marking the next free bit position in current;
// 0x80 means current is empty.
type bitWriter struct {
	current  byte
	bitIndex byte
}

func (w *bitWriter) reset() {
	w.current = 0
	w.bitIndex = 0x80
}

// pushBits merges the count low bits of bits into the bit stream and
// emits completed bytes into out. count must not exceed 8, so at most
// one byte is emitted per call; callers check output capacity before
// calling.
func (w *bitWriter) pushBits(count int, bits byte, out *outBuffer) {
	if count == 8 && w.bitIndex == 0x80 {
		out.writeByte(bits)
		return
	}
	for i := count - 1; i >= 0; i-- {
		if bits&(1<<uint(i)) != 0 {
			w.current |= w.bitIndex
		}
		w.bitIndex >>= 1
		if w.bitIndex == 0 {
			out.writeByte(w.current)
			w.current = 0
			w.bitIndex = 0x80
		}
	}
}

// pending reports whether a partially filled byte remains to be flushed.
func (w *bitWriter) pending() bool {
	return w.bitIndex != 0x80
}

// bitReader extracts bit fields most-significant-bit first from a byte
// stream. Compressed bytes are staged in a small fixed buffer; getBits
// either returns all requested bits or suspends without consuming
// anything, which is what makes the decoder safely resumable. Here
// bitIndex masks the next unread bit of current; 0 means current is
// exhausted.
type bitReader struct {
	current  byte
	bitIndex byte
	size     int
	index    int
	buf      [inputBufferSize]byte
}

func (r *bitReader) reset() {
	*r = bitReader{}
}

// sink copies bytes from p into the staging buffer and returns the
// number of bytes copied.
func (r *bitReader) sink(p []byte) int {
	n := copy(r.buf[r.size:], p)
	r.size += n
	return n
}

// empty reports whether all staged bytes have been consumed. Bits left
// over in the current byte do not count; they are padding once the
// stream ends.
func (r *bitReader) empty() bool {
	return r.size == 0
}

// getBits returns the next count bits, 1 <= count <= 8. The second
// result is false if fewer than count bits are available; in that case
// no bit is consumed and the identical call can be retried after more
// input has been staged.
func (r *bitReader) getBits(count int) (bits uint16, ok bool) {
	// Suspend before consuming anything: partial progress across a
	// suspension is not tracked.
	if r.size == 0 && r.bitIndex < 1<<uint(count-1) {
		return 0, false
	}
	for i := 0; i < count; i++ {
		if r.bitIndex == 0 {
			if r.size == 0 {
				return 0, false
			}
			r.current = r.buf[r.index]
			r.index++
			if r.index == r.size {
				// staging buffer consumed
				r.index = 0
				r.size = 0
			}
			r.bitIndex = 0x80
		}
		bits <<= 1
		if r.current&r.bitIndex != 0 {
			bits |= 1
		}
		r.bitIndex >>= 1
	}
	return bits, true
}
