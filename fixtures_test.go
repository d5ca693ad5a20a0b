// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

// Regression samples carried over from the reference implementation:
// sparse byte patterns that exercise matches against the pristine zero
// window, and the full ascending byte cycle repeated twice.
var sampleAlpha = []byte{
	33, 82, 149, 84, 52, 2, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 147, 2, 0, 0, 0, 0, 0, 0,
	242, 2, 241, 2, 240, 2, 0, 0, 0, 0, 0, 0,
	47, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var sampleAlpha2 = []byte{
	33, 82, 149, 84, 52, 2, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 147, 2, 0, 0, 0, 0, 0, 0,
	242, 2, 241, 2, 240, 2, 0, 0, 0, 0, 0, 0,
	47, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 12, 17,
}

var sampleBeta = []byte{
	189, 160, 51, 163, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 199, 0, 0, 0, 0, 0, 0, 0,
	166, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 154, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// clibCompressed is a stream produced by the C heatshrink tool with the
// default -w 8 -l 4 settings; it must decode to sampleAlpha exactly.
var clibCompressed = []byte{
	0x90, 0xD4, 0xB2, 0xB5, 0x49, 0xA4, 0x08, 0x2B,
	0xE0, 0x0F, 0x00, 0x0E, 0x4C, 0x46, 0xDF, 0x28,
	0x17, 0xC6, 0x05, 0xF0, 0x05, 0xB4, 0xBE, 0x08,
	0x25, 0xF0, 0x02, 0x80,
}
