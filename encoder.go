// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

import "github.com/jcdubois/heatshrink-go/internal/xlog"

// encoderState enumerates the states of the encoder's finite-state
// machine. Poll applies one transition function per state until the
// machine stops making progress.
type encoderState byte

const (
	encNotFull encoderState = iota // waiting for input
	encFilled                      // input region full, build index
	encSearch                      // searching for a match
	encYieldTagBit                 // emit the literal/back-reference tag
	encYieldLiteral                // emit a literal byte
	encYieldBrIndex                // emit the back-reference distance
	encYieldBrLength               // emit the back-reference length
	encSaveBacklog                 // shift history down for future matches
	encFlushBits                   // flush the trailing partial byte
	encDone                        // terminal
)

// Encoder compresses a byte stream into the heatshrink bit stream. All
// state, including the double-length window buffer, is allocated once;
// an Encoder can be reused after Reset.
//
// The zero value is not usable; construct with NewEncoder or
// NewIndexedEncoder.
type Encoder struct {
	inputSize      int
	matchScanIndex int
	matchLength    int
	matchPos       int

	// outgoing back-reference field, drained up to 8 bits per step
	outgoingBits  uint16
	outgoingCount int

	finishing bool
	state     encoderState
	bw        bitWriter
	finder    matchFinder
	buf       [encBufSize]byte
}

// NewEncoder returns an encoder using the brute-force match search,
// which needs no memory beyond the window buffer.
func NewEncoder() *Encoder {
	e := &Encoder{finder: bruteFinder{}}
	e.bw.reset()
	return e
}

// NewIndexedEncoder returns an encoder using the indexed match search.
// It holds an additional position chain the size of the window buffer
// and is considerably faster on repetitive input. The compressed output
// is identical to NewEncoder's.
func NewIndexedEncoder() *Encoder {
	e := &Encoder{finder: &indexFinder{}}
	e.bw.reset()
	return e
}

// Reset returns the encoder to its initial state so it can be reused
// without reallocation.
func (e *Encoder) Reset() {
	e.inputSize = 0
	e.matchScanIndex = 0
	e.matchLength = 0
	e.matchPos = 0
	e.outgoingBits = 0
	e.outgoingCount = 0
	e.finishing = false
	e.state = encNotFull
	e.bw.reset()
	e.buf = [encBufSize]byte{}
	if f, ok := e.finder.(*indexFinder); ok {
		f.chain = [encBufSize]int16{}
	}
}

// Sink copies bytes from p into the encoder's input buffer and returns
// how many were consumed. It returns ErrFull if no byte fit (Poll
// first) and ErrMisuse if called after Finish or while compressed
// output is pending.
func (e *Encoder) Sink(p []byte) (n int, err error) {
	if e.finishing {
		return 0, ErrMisuse
	}
	if e.state != encNotFull {
		return 0, ErrMisuse
	}
	rem := windowSize - e.inputSize
	if rem == 0 {
		return 0, ErrFull
	}
	n = len(p)
	if n > rem {
		n = rem
	}
	off := inputOffset + e.inputSize
	copy(e.buf[off:off+n], p[:n])
	e.inputSize += n
	if e.inputSize == windowSize {
		e.state = encFilled
	}
	return n, nil
}

// Poll advances the state machine and writes compressed bytes into p.
// more is true when p was exhausted with output still pending; the
// caller should poll again with fresh capacity. more is false when the
// encoder cannot proceed without further input or is done. An empty p
// is a misuse error.
func (e *Encoder) Poll(p []byte) (n int, more bool, err error) {
	if len(p) == 0 {
		return 0, false, ErrMisuse
	}
	out := outBuffer{data: p}
	for {
		state := e.state
		switch state {
		case encNotFull, encDone:
			return out.n, false, nil
		case encFilled:
			e.finder.build(e.buf[:], inputOffset+e.inputSize)
			e.state = encSearch
		case encSearch:
			e.state = e.stepSearch()
		case encYieldTagBit:
			e.state = e.yieldTagBit(&out)
		case encYieldLiteral:
			e.state = e.yieldLiteral(&out)
		case encYieldBrIndex:
			e.state = e.yieldBrIndex(&out)
		case encYieldBrLength:
			e.state = e.yieldBrLength(&out)
		case encSaveBacklog:
			e.saveBacklog()
			e.state = encNotFull
		case encFlushBits:
			e.state = e.flushBitBuffer(&out)
		}
		// A state that could not advance means the output slice is
		// exhausted; everything else keeps making progress.
		if e.state == state && out.full() {
			return out.n, true, nil
		}
	}
}

// Finish marks the end of the input stream. It returns true once all
// pending state has been drained to output; until then the caller must
// keep polling. Finish is idempotent.
func (e *Encoder) Finish() (done bool) {
	e.finishing = true
	if e.state == encNotFull {
		e.state = encFilled
	}
	return e.state == encDone
}

func (e *Encoder) stepSearch() encoderState {
	msiAdjust := lookaheadSize
	if e.finishing {
		msiAdjust = 1
	}
	if e.matchScanIndex > e.inputSize-msiAdjust {
		if e.finishing {
			return encFlushBits
		}
		return encSaveBacklog
	}
	end := inputOffset + e.matchScanIndex
	start := end - windowSize
	maxPossible := lookaheadSize
	if e.inputSize-e.matchScanIndex < maxPossible {
		maxPossible = e.inputSize - e.matchScanIndex
	}
	dist, length := e.finder.findMatch(e.buf[:], start, end, maxPossible)
	if length == 0 {
		e.matchScanIndex++
		e.matchLength = 0
	} else {
		xlog.Printf(debug, "match d=%d l=%d at %d", dist, length, e.matchScanIndex)
		e.matchPos = dist
		e.matchLength = length
	}
	return encYieldTagBit
}

func (e *Encoder) yieldTagBit(out *outBuffer) encoderState {
	if out.full() {
		return encYieldTagBit
	}
	if e.matchLength == 0 {
		e.bw.pushBits(1, 1, out)
		return encYieldLiteral
	}
	e.bw.pushBits(1, 0, out)
	e.outgoingBits = uint16(e.matchPos - 1)
	e.outgoingCount = WindowBits
	return encYieldBrIndex
}

func (e *Encoder) yieldLiteral(out *outBuffer) encoderState {
	if out.full() {
		return encYieldLiteral
	}
	// matchScanIndex was already advanced past the literal.
	c := e.buf[inputOffset+e.matchScanIndex-1]
	e.bw.pushBits(8, c, out)
	return encSearch
}

func (e *Encoder) yieldBrIndex(out *outBuffer) encoderState {
	if out.full() {
		return encYieldBrIndex
	}
	if e.pushOutgoingBits(out) > 0 {
		return encYieldBrIndex
	}
	e.outgoingBits = uint16(e.matchLength - 1)
	e.outgoingCount = LookaheadBits
	return encYieldBrLength
}

func (e *Encoder) yieldBrLength(out *outBuffer) encoderState {
	if out.full() {
		return encYieldBrLength
	}
	if e.pushOutgoingBits(out) > 0 {
		return encYieldBrLength
	}
	e.matchScanIndex += e.matchLength
	e.matchLength = 0
	return encSearch
}

func (e *Encoder) flushBitBuffer(out *outBuffer) encoderState {
	if !e.bw.pending() {
		return encDone
	}
	if out.full() {
		return encFlushBits
	}
	out.writeByte(e.bw.current)
	return encDone
}

// pushOutgoingBits drains up to 8 bits of the outgoing back-reference
// field and returns how many bits were pushed; 0 means the field is
// complete.
func (e *Encoder) pushOutgoingBits(out *outBuffer) int {
	var count int
	var bits byte
	if e.outgoingCount > 8 {
		count = 8
		bits = byte(e.outgoingBits >> uint(e.outgoingCount-8))
	} else {
		count = e.outgoingCount
		bits = byte(e.outgoingBits)
	}
	if count > 0 {
		e.bw.pushBits(count, bits, out)
		e.outgoingCount -= count
	}
	return count
}

// saveBacklog shifts the unconsumed tail of the buffer to the origin so
// the window history stays available for future matches.
func (e *Encoder) saveBacklog() {
	msi := e.matchScanIndex
	copy(e.buf[:], e.buf[msi:])
	e.matchScanIndex = 0
	e.inputSize -= msi
	xlog.Printf(debug, "save backlog: %d bytes retained", e.inputSize)
}
