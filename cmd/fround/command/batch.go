// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"

	"github.com/db47h/binfloat"
	"github.com/db47h/binfloat/context"
)

const maxLineSize = 16 << 20

// Batch returns the batch subcommand.
func Batch(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [flags] FILE|-",
		Short: "Round the values listed in a JSON lines file.",
		Long: `Read one JSON object per line from FILE, or from the standard input if FILE
is -, and round the values concurrently. Each object has a "value" string and
optional "prec" and "mode" members overriding --prec and --mode:

	{"value": "13p0", "prec": 2, "mode": "up"}

Blank lines are skipped. The results are printed in input order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			var r io.Reader
			if name := args[0]; name == "-" {
				r = cmd.InOrStdin()
			} else {
				f, err := os.Open(name)
				if err != nil {
					return Error.Wrap(err)
				}
				defer f.Close()
				r = f
			}
			rs, err := readBatch(r, s)
			if err != nil {
				return err
			}
			roundBatch(rs, s.workers)
			return writeTable(cmd.OutOrStdout(), rs)
		},
	}
}

// readBatch parses the JSON lines of r. Missing precisions and modes are taken
// from s.
func readBatch(r io.Reader, s settings) ([]result, error) {
	var rs []result
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		res, err := parseLine(line, s)
		if err != nil {
			return nil, Error.New("line %d: %v", n, err)
		}
		rs = append(rs, res)
	}
	if err := sc.Err(); err != nil {
		return nil, Error.Wrap(err)
	}
	return rs, nil
}

func parseLine(line string, s settings) (r result, err error) {
	if !gjson.Valid(line) {
		return r, Error.New("invalid JSON")
	}
	obj := gjson.Parse(line)
	if !obj.IsObject() {
		return r, Error.New("not a JSON object")
	}

	val := obj.Get("value")
	if val.Type != gjson.String {
		return r, Error.New(`missing or non-string "value"`)
	}
	r.input = val.String()
	if r.x, err = binfloat.ParseFloat(r.input); err != nil {
		return r, err
	}

	r.prec = s.prec
	if p := obj.Get("prec"); p.Exists() {
		if p.Type != gjson.Number || p.Int() < 1 || float64(p.Int()) != p.Num {
			return r, Error.New(`"prec" must be a positive integer, got %s`, p.Raw)
		}
		r.prec = uint(p.Uint())
	}
	if r.prec == 0 {
		r.prec = context.DefaultPrec
	}

	r.mode = s.mode
	if m := obj.Get("mode"); m.Exists() {
		if r.mode, err = binfloat.ParseRoundingMode(m.String()); err != nil {
			return r, err
		}
	}
	return r, nil
}

type roundKey struct {
	prec uint
	mode binfloat.RoundingMode
}

// roundBatch rounds rs in place, grouping the values that share a precision
// and a mode into one concurrent context.RoundAll call.
func roundBatch(rs []result, workers int) {
	groups := make(map[roundKey][]int)
	var keys []roundKey
	for i := range rs {
		k := roundKey{rs[i].prec, rs[i].mode}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], i)
	}

	for _, k := range keys {
		idx := groups[k]
		xs := make([]*binfloat.Float, len(idx))
		zs := make([]*binfloat.Float, len(idx))
		for j, i := range idx {
			xs[j] = rs[i].x
			zs[j] = new(binfloat.Float)
			rs[i].z = zs[j]
		}
		out := context.New(k.prec, k.mode).RoundAll(zs, xs, workers)
		for j, i := range idx {
			rs[i].out = out[j]
		}
		slog.Debug("rounded batch group", "prec", k.prec, "mode", k.mode, "values", len(idx))
	}
	slog.Info("batch done", "values", len(rs), "groups", len(keys))
}
