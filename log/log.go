// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package log provides simple leveled logging on top of the standard
// library logger. Benchmark progress chatter goes through here so it can
// be silenced or made more verbose without touching the result output,
// which is written directly to stdout by the driver.
package log

import (
	"fmt"
	golog "log"
	"os"
)

// A Level is a log verbosity level. Higher levels are more verbose: if the
// package is logging at level L, messages at all levels M <= L are output.
type Level int

const (
	// Off suppresses all output.
	Off = Level(-3)
	// Error outputs error messages only.
	Error = Level(-2)
	// Info is the standard logging level.
	Info = Level(0)
	// Debug outputs messages intended for debugging and development.
	Debug = Level(1)
)

var level = Info

// String returns the string representation of the level l.
func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Error:
		return "error"
	case Info:
		return "info"
	case Debug:
		return "debug"
	default:
		return fmt.Sprintf("debug%d", int(l))
	}
}

// SetLevel sets the package logging level. It should be called once at the
// beginning of a program's main, before any concurrent logging.
func SetLevel(l Level) {
	level = l
}

// At returns whether the package is currently logging at level l.
func At(l Level) bool {
	return l <= level
}

// Print formats a message in the manner of fmt.Sprint and outputs it at
// level l.
func (l Level) Print(v ...interface{}) {
	if At(l) {
		_ = golog.Output(2, fmt.Sprint(v...))
	}
}

// Printf formats a message in the manner of fmt.Sprintf and outputs it at
// level l.
func (l Level) Printf(format string, v ...interface{}) {
	if At(l) {
		_ = golog.Output(2, fmt.Sprintf(format, v...))
	}
}

// Print formats a message in the manner of fmt.Sprint and outputs it at
// the Info level.
func Print(v ...interface{}) {
	if At(Info) {
		_ = golog.Output(2, fmt.Sprint(v...))
	}
}

// Printf formats a message in the manner of fmt.Sprintf and outputs it at
// the Info level.
func Printf(format string, v ...interface{}) {
	if At(Info) {
		_ = golog.Output(2, fmt.Sprintf(format, v...))
	}
}

// Fatal formats a message in the manner of fmt.Sprint, outputs it at the
// Error level, and calls os.Exit(1).
func Fatal(v ...interface{}) {
	_ = golog.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf formats a message in the manner of fmt.Sprintf, outputs it at the
// Error level, and calls os.Exit(1).
func Fatalf(format string, v ...interface{}) {
	_ = golog.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// SetFlags sets the output flags of the standard logger backend.
func SetFlags(flag int) {
	golog.SetFlags(flag)
}
