// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

import "errors"

// ErrFull is returned by Sink if no byte of the provided slice could be
// copied into the internal buffer. The caller must drain the instance
// with Poll and retry; no state is lost.
var ErrFull = errors.New("heatshrink: internal buffer full")

// ErrMisuse reports a violation of the streaming protocol, for instance
// calling Sink after Finish or calling Poll with an empty output slice.
// It signals a programming error in the caller and is never returned for
// recoverable flow-control conditions.
var ErrMisuse = errors.New("heatshrink: protocol misuse")

// ErrOutputFull is returned by the whole-buffer Encode and Decode
// functions when the destination slice is too small for the complete
// result.
var ErrOutputFull = errors.New("heatshrink: output buffer too small")
