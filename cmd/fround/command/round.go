// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/db47h/binfloat"
)

// Round returns the round subcommand.
func Round(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "round [flags] [--] VALUE...",
		Short: "Round the given values and print the outcomes.",
		Long: `Round each VALUE, written as mant p exp (for instance 13p-2 or -0x1bp+4),
to --prec bits using --mode. Negative values must follow a -- separator.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			rs, err := roundValues(s, args)
			if err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), rs)
		},
	}
}

func roundValues(s settings, args []string) ([]result, error) {
	ctx := s.newContext()
	rs := make([]result, len(args))
	for i, a := range args {
		x, err := binfloat.ParseFloat(a)
		if err != nil {
			return nil, Error.New("invalid value %q: %v", a, err)
		}
		r := &rs[i]
		r.input, r.x, r.prec, r.mode = a, x, ctx.Prec(), ctx.Mode()
		r.z = new(binfloat.Float)
		r.out = ctx.Round(r.z, x)
		slog.Debug("rounded", "value", a, "prec", r.prec, "mode", r.mode, "result", r.z, "outcome", r.out)
	}
	return rs, nil
}
