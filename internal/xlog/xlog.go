// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xlog supports debug output that can be switched off entirely.
//
// The state machines in the heatshrink package trace selected
// transitions through a Logger value. A nil Logger disables the output
// without any formatting cost, which matters because the tracing sits
// close to the compression hot path. The log.Logger type of the
// standard library satisfies the interface.
package xlog

import "fmt"

// Logger is the minimal interface the tracing functions require.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil
// nothing will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger
// argument is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger
// argument is nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
