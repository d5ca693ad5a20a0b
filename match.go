// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

// matchFinder searches the encoder buffer for the longest prior
// occurrence of the bytes starting at end. Which implementation an
// encoder uses is fixed at construction; both produce bit-identical
// streams, the indexed variant just trades one extra array for speed on
// repetitive input.
type matchFinder interface {
	// build is invoked once per window fill, before the first search,
	// with the number of valid bytes in buf.
	build(buf []byte, end int)

	// findMatch searches [start, end) for the longest run matching the
	// maxLen bytes at end. It returns the backward distance and the
	// length, or (0, 0) if no match beats the break-even point.
	findMatch(buf []byte, start, end, maxLen int) (dist, length int)
}

// minMatch is the shortest match worth encoding: below this a
// back-reference costs more bits than the literals it replaces.
const minMatch = breakEvenPoint/8 + 1

// bruteFinder scans the window backwards byte by byte. It needs no
// extra memory, which is the default trade-off for embedded targets.
type bruteFinder struct{}

func (bruteFinder) build(buf []byte, end int) {}

func (bruteFinder) findMatch(buf []byte, start, end, maxLen int) (dist, length int) {
	bestLen := 0
	bestPos := 0
	needle := buf[end : end+maxLen]
	// Scanning backwards means the most recent position of maximal
	// length wins ties, matching the reference implementation.
	for pos := end - 1; pos >= start; pos-- {
		// Cheap two-byte pre-check before extending the match.
		if buf[pos] != needle[0] || buf[pos+bestLen] != buf[end+bestLen] {
			continue
		}
		n := 1
		for n < maxLen && buf[pos+n] == needle[n] {
			n++
		}
		if n > bestLen {
			bestLen = n
			bestPos = pos
			if n == maxLen {
				break
			}
		}
	}
	if bestLen < minMatch {
		return 0, 0
	}
	return end - bestPos, bestLen
}

// indexFinder accelerates the search with per-byte-value chains:
// chain[i] is the previous position whose byte equals buf[i], or -1 at
// the end of a chain. The index is rebuilt once per window fill and
// costs 2*encBufSize bytes of additional memory.
type indexFinder struct {
	chain [encBufSize]int16
}

func (f *indexFinder) build(buf []byte, end int) {
	var last [256]int16
	for i := range last {
		last[i] = -1
	}
	for i := 0; i < end; i++ {
		v := buf[i]
		f.chain[i] = last[v]
		last[v] = int16(i)
	}
}

func (f *indexFinder) findMatch(buf []byte, start, end, maxLen int) (dist, length int) {
	bestLen := 0
	bestPos := 0
	needle := buf[end : end+maxLen]
	for pos := int(f.chain[end]); pos >= start; pos = int(f.chain[pos]) {
		if buf[pos+bestLen] != buf[end+bestLen] {
			continue
		}
		n := 1
		for n < maxLen && buf[pos+n] == needle[n] {
			n++
		}
		if n > bestLen {
			bestLen = n
			bestPos = pos
			if n == maxLen {
				break
			}
		}
	}
	if bestLen < minMatch {
		return 0, 0
	}
	return end - bestPos, bestLen
}
