// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

import (
	"bytes"
	"testing"
)

func TestPushBitsMSBFirst(t *testing.T) {
	var w bitWriter
	var out outBuffer
	buf := make([]byte, 8)
	out.data = buf
	w.reset()
	// literal 'a', literal 'a': tag 1 + 8 bits, twice
	w.pushBits(1, 1, &out)
	w.pushBits(8, 'a', &out)
	w.pushBits(1, 1, &out)
	w.pushBits(8, 'a', &out)
	if w.pending() {
		out.writeByte(w.current)
	}
	want := []byte{0xB0, 0xD8, 0x40}
	if !bytes.Equal(buf[:out.n], want) {
		t.Fatalf("pushBits produced %#v; want %#v", buf[:out.n], want)
	}
}

func TestPushBitsByteAligned(t *testing.T) {
	var w bitWriter
	var out outBuffer
	buf := make([]byte, 4)
	out.data = buf
	w.reset()
	// byte-aligned eight-bit pushes take the fast path
	w.pushBits(8, 0xA5, &out)
	w.pushBits(8, 0x5A, &out)
	if w.pending() {
		t.Fatalf("writer has pending bits after aligned pushes")
	}
	want := []byte{0xA5, 0x5A}
	if !bytes.Equal(buf[:out.n], want) {
		t.Fatalf("pushBits produced %#v; want %#v", buf[:out.n], want)
	}
}

func TestGetBits(t *testing.T) {
	var r bitReader
	r.reset()
	if n := r.sink([]byte{0xB4, 0x61}); n != 2 {
		t.Fatalf("sink returned %d; want 2", n)
	}
	bits, ok := r.getBits(5)
	if !ok || bits != 0x16 {
		t.Fatalf("getBits(5) = %#x, %t; want 0x16, true", bits, ok)
	}
	bits, ok = r.getBits(8)
	if !ok || bits != 0x8C {
		t.Fatalf("getBits(8) = %#x, %t; want 0x8c, true", bits, ok)
	}
	bits, ok = r.getBits(3)
	if !ok || bits != 1 {
		t.Fatalf("getBits(3) = %#x, %t; want 0x1, true", bits, ok)
	}
	if _, ok = r.getBits(1); ok {
		t.Fatalf("getBits(1) succeeded on a drained reader")
	}
}

// A request that cannot be satisfied must not consume anything: the same
// request succeeds once more input arrives.
func TestGetBitsSuspend(t *testing.T) {
	var r bitReader
	r.reset()
	r.sink([]byte{0xB4})
	if bits, ok := r.getBits(5); !ok || bits != 0x16 {
		t.Fatalf("getBits(5) = %#x, %t; want 0x16, true", bits, ok)
	}
	// three bits left, eight requested
	if _, ok := r.getBits(8); ok {
		t.Fatalf("getBits(8) succeeded with 3 bits staged")
	}
	r.sink([]byte{0x61})
	bits, ok := r.getBits(8)
	if !ok || bits != 0x8C {
		t.Fatalf("getBits(8) after refill = %#x, %t; want 0x8c, true", bits, ok)
	}
	// three pad bits remain but no whole bytes
	if _, ok := r.getBits(4); ok {
		t.Fatalf("getBits(4) succeeded with 3 bits staged")
	}
}

func TestBitReaderFull(t *testing.T) {
	var r bitReader
	r.reset()
	p := make([]byte, inputBufferSize+5)
	if n := r.sink(p); n != inputBufferSize {
		t.Fatalf("sink accepted %d bytes; want %d", n, inputBufferSize)
	}
	if n := r.sink(p); n != 0 {
		t.Fatalf("sink accepted %d bytes into a full buffer", n)
	}
}
