// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log configures structured logging for the commands of this module.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/zeebo/errs"
)

// Error is the error class of invalid logging settings.
var Error = errs.Class("log")

// Flag names.
const (
	FormatFlag = "log-fmt"
	LevelFlag  = "log-level"
)

// RegisterFlags adds the logging flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FormatFlag, "text", "format for log output: text or json")
	fs.String(LevelFlag, "info", "minimum logging level: debug, info, warn, or error")
}

// Init builds a logger writing to w with the given format and level, installs
// it as the slog default and returns it.
func Init(w io.Writer, format, level string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	h, err := handler(w, format, lvl)
	if err != nil {
		return nil, err
	}
	l := slog.New(h)
	slog.SetDefault(l)
	return l, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, Error.New("invalid %s %q: expected debug, info, warn, or error", LevelFlag, level)
}

func handler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "text", "":
		return tint.NewHandler(w, &tint.Options{
			Level:   level,
			NoColor: !isTerminal(w),
		}), nil
	}
	return nil, Error.New("invalid %s %q: expected text or json", FormatFlag, format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
