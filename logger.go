// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

import (
	"io"
	"log"

	"github.com/jcdubois/heatshrink-go/internal/xlog"
)

// debug stores a reference to a logger. It may contain nil for no output.
var debug xlog.Logger

// DebugOn writes tracing information about state machine transitions on
// the given writer. If w is nil no output will be written.
func DebugOn(w io.Writer) {
	if w == nil {
		debug = nil
		return
	}
	debug = log.New(w, "", 0)
}

// DebugOff switches the debugging output off.
func DebugOff() { debug = nil }
