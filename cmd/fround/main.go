// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fround rounds binary floating-point values of the form mant p exp
// to a given precision and reports how much information was lost.
//
// Usage:
//
//	fround round [flags] [--] VALUE...
//	fround batch [flags] FILE|-
//
// Settings are read from flags, from FROUND_* environment variables and from an
// optional config file given by --config.
package main

import (
	"log/slog"
	"os"

	"github.com/db47h/binfloat/cmd/fround/command"
)

func main() {
	if err := command.Main().Execute(); err != nil {
		slog.Error("fround failed", "err", err)
		os.Exit(1)
	}
}
