// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatshrink implements the heatshrink LZSS compression format
// used on embedded and other memory-constrained systems.
//
// All codec state lives in fixed-size buffers allocated at construction.
// Both the Encoder and the Decoder are driven incrementally through the
// Sink, Poll and Finish methods and can suspend and resume at arbitrary
// input and output boundaries. For stream processing the package provides
// the Writer and Reader wrappers:
//
//	w, err := heatshrink.NewWriter(f)
//
//	r, err := heatshrink.NewReader(f)
//
// The wire format is the raw LZSS bit stream of the C reference
// implementation (github.com/atomicobject/heatshrink): no header, no
// checksum, no length prefix.
package heatshrink
