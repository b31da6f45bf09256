// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/db47h/binfloat"
)

// result is one rounded value.
type result struct {
	input string
	x     *binfloat.Float
	prec  uint
	mode  binfloat.RoundingMode
	z     *binfloat.Float
	out   binfloat.Outcome
}

var header = []any{"INPUT", "BITS", "PREC", "MODE", "RESULT", "OUTCOME", "REL PREC", "ACCURACY"}

func (r *result) row() []string {
	rel := "exact"
	if !r.out.Exact() {
		rel = humanize.Comma(int64(r.out.RelPrec()))
	}
	return []string{
		r.input,
		humanize.Comma(int64(r.x.Mant().BitLen())),
		humanize.Comma(int64(r.prec)),
		r.mode.String(),
		r.z.String(),
		r.out.String(),
		rel,
		r.out.Acc().String(),
	}
}

func writeTable(w io.Writer, rs []result) error {
	t := tablewriter.NewWriter(w)
	t.Header(header...)
	for i := range rs {
		if err := t.Append(rs[i].row()); err != nil {
			return Error.Wrap(err)
		}
	}
	return Error.Wrap(t.Render())
}
