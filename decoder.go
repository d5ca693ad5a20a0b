// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

import "github.com/jcdubois/heatshrink-go/internal/xlog"

// decoderState enumerates the states of the decoder's finite-state
// machine. There is no terminal state: the stream simply ends when the
// input is exhausted.
type decoderState byte

const (
	decTagBit          decoderState = iota // read the token tag bit
	decYieldLiteral                        // read and emit a literal byte
	decBackrefIndexMsb                     // high bits of the distance (WindowBits > 8 only)
	decBackrefIndexLsb                     // low bits of the distance
	decBackrefCountLsb                     // the length field
	decYieldBackref                        // copy bytes out of the window
)

// Decoder decompresses a heatshrink bit stream. It owns a small staging
// buffer for compressed input and a circular window holding the last
// windowSize emitted bytes, which doubles as the back-reference source.
// A Decoder can be reused after Reset.
type Decoder struct {
	// pending back-reference: distance and remaining length
	outputIndex int
	outputCount int

	// headIndex counts every byte ever emitted; it indexes the window
	// modulo windowSize.
	headIndex int

	finished bool
	state    decoderState
	br       bitReader
	window   [windowSize]byte
}

// NewDecoder returns a ready decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset returns the decoder to its initial state so it can be reused
// without reallocation.
func (d *Decoder) Reset() {
	d.outputIndex = 0
	d.outputCount = 0
	d.headIndex = 0
	d.finished = false
	d.state = decTagBit
	d.br.reset()
	d.window = [windowSize]byte{}
}

// Sink copies compressed bytes from p into the staging buffer and
// returns how many were consumed. It returns ErrFull if no byte fit
// (Poll first) and ErrMisuse after Finish.
func (d *Decoder) Sink(p []byte) (n int, err error) {
	if d.finished {
		return 0, ErrMisuse
	}
	if d.br.size == inputBufferSize {
		return 0, ErrFull
	}
	return d.br.sink(p), nil
}

// Poll advances the state machine and writes decompressed bytes into p.
// more is true when p was exhausted with output still pending; more is
// false when the decoder needs further input. An empty p is a misuse
// error.
func (d *Decoder) Poll(p []byte) (n int, more bool, err error) {
	if len(p) == 0 {
		return 0, false, ErrMisuse
	}
	out := outBuffer{data: p}
	for {
		state := d.state
		switch state {
		case decTagBit:
			d.state = d.stepTagBit()
		case decYieldLiteral:
			d.state = d.yieldLiteral(&out)
		case decBackrefIndexMsb:
			d.state = d.backrefIndexMsb()
		case decBackrefIndexLsb:
			d.state = d.backrefIndexLsb()
		case decBackrefCountLsb:
			d.state = d.backrefCountLsb()
		case decYieldBackref:
			d.state = d.yieldBackref(&out)
		}
		if d.state == state {
			// No progress: suspended on input or on output space.
			if out.full() {
				return out.n, true, nil
			}
			return out.n, false, nil
		}
	}
}

// Finish marks the end of the compressed stream. It returns true if no
// unconsumed input remains in the staging buffer; trailing bits of a
// partially read byte are padding and do not count.
func (d *Decoder) Finish() (done bool) {
	d.finished = true
	return d.br.empty()
}

func (d *Decoder) stepTagBit() decoderState {
	bits, ok := d.br.getBits(1)
	if !ok {
		return decTagBit
	}
	if bits != 0 {
		return decYieldLiteral
	}
	if WindowBits > 8 {
		return decBackrefIndexMsb
	}
	d.outputIndex = 0
	return decBackrefIndexLsb
}

func (d *Decoder) yieldLiteral(out *outBuffer) decoderState {
	if out.full() {
		return decYieldLiteral
	}
	bits, ok := d.br.getBits(8)
	if !ok {
		return decYieldLiteral
	}
	c := byte(bits)
	d.window[d.headIndex&windowMask] = c
	d.headIndex++
	out.writeByte(c)
	return decTagBit
}

func (d *Decoder) backrefIndexMsb() decoderState {
	bits, ok := d.br.getBits(WindowBits - 8)
	if !ok {
		return decBackrefIndexMsb
	}
	d.outputIndex = int(bits) << 8
	return decBackrefIndexLsb
}

func (d *Decoder) backrefIndexLsb() decoderState {
	count := WindowBits
	if count > 8 {
		count = 8
	}
	bits, ok := d.br.getBits(count)
	if !ok {
		return decBackrefIndexLsb
	}
	d.outputIndex |= int(bits)
	d.outputIndex++ // distances are stored minus one
	d.outputCount = 0
	return decBackrefCountLsb
}

func (d *Decoder) backrefCountLsb() decoderState {
	bits, ok := d.br.getBits(LookaheadBits)
	if !ok {
		return decBackrefCountLsb
	}
	d.outputCount = int(bits) + 1 // lengths are stored minus one
	xlog.Printf(debug, "backref d=%d l=%d", d.outputIndex, d.outputCount)
	return decYieldBackref
}

func (d *Decoder) yieldBackref(out *outBuffer) decoderState {
	if out.full() {
		return decYieldBackref
	}
	count := out.free()
	if d.outputCount < count {
		count = d.outputCount
	}
	// Byte at a time: the source of the copy may have been produced by
	// this same back-reference, so a block copy would be wrong.
	for i := 0; i < count; i++ {
		// A distance beyond the data produced so far yields zero
		// bytes, matching the reference implementation.
		var c byte
		if d.outputIndex <= d.headIndex {
			c = d.window[(d.headIndex-d.outputIndex)&windowMask]
		}
		d.window[d.headIndex&windowMask] = c
		out.writeByte(c)
		d.headIndex++
	}
	d.outputCount -= count
	if d.outputCount == 0 {
		return decTagBit
	}
	return decYieldBackref
}
