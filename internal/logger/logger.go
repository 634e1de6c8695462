/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide zap logger used by the CLI.
// It can be silenced with SetOutput(io.Discard).
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Name is the logger name attached to every entry.
const Name = "stylesort"

var (
	mu    sync.RWMutex
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	base  *zap.Logger
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	var core zapcore.Core
	if w == io.Discard {
		core = zapcore.NewNopCore()
	} else {
		core = zapcore.NewCore(newEncoder(w), zapcore.Lock(zapcore.AddSync(w)), level)
	}

	mu.Lock()
	base = zap.New(core).Named(Name)
	mu.Unlock()
}

// SetVerbose enables debug entries.
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Zap returns the underlying logger for packages that take a *zap.Logger.
func Zap() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	Zap().Sugar().Warnf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	Zap().Sugar().Infof(format, args...)
}

// Debug logs a message shown only in verbose mode.
func Debug(format string, args ...any) {
	Zap().Sugar().Debugf(format, args...)
}

func newEncoder(w io.Writer) zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(ec)
}
