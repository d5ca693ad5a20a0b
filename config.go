// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

// WindowBits and LookaheadBits define the wire format and are fixed at
// compile time. WindowBits is the base-2 logarithm of the sliding window
// size; LookaheadBits is the width of the back-reference length field.
// Encoder and decoder must agree on both values for a stream to decode
// correctly.
const (
	WindowBits    = 8
	LookaheadBits = 4
)

const (
	// windowSize is the number of history bytes eligible as a
	// back-reference source. It must be a power of two, so the decoder
	// window can be indexed with windowMask.
	windowSize = 1 << WindowBits
	windowMask = windowSize - 1

	// lookaheadSize is the maximum back-reference length.
	lookaheadSize = 1 << LookaheadBits

	// The encoder buffer holds one window of history followed by one
	// window of pending input. inputOffset is the start of the input
	// region.
	encBufSize  = 2 * windowSize
	inputOffset = windowSize

	// inputBufferSize is the size of the decoder's staging buffer for
	// compressed bytes.
	inputBufferSize = 32

	// breakEvenPoint is the bit cost of an encoded back-reference: one
	// tag bit plus the distance and length fields. Matches must be
	// longer than breakEvenPoint/8 bytes to beat literal encoding.
	breakEvenPoint = 1 + WindowBits + LookaheadBits
)
