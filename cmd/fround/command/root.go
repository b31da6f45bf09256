// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command implements the fround command tree.
package command

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/db47h/binfloat"
	"github.com/db47h/binfloat/context"
	"github.com/db47h/binfloat/internal/log"
)

// Error is the error class of invalid input and settings.
var Error = errs.Class("fround")

// EnvPrefix is the prefix of the environment variables read by fround.
const EnvPrefix = "FROUND"

// Main returns the root command. Each call returns a fresh command tree with
// its own configuration.
func Main() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "fround",
		Short:         "Round binary floating-point values to a given precision.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	fs := root.PersistentFlags()
	fs.String("config", "", "config file (json, yaml or toml)")
	fs.Uint("prec", context.DefaultPrec, "precision in bits of the results")
	fs.String("mode", binfloat.ToZero.String(), "rounding mode: ToZero, AwayFromZero, ToNegativeInf, ToPositiveInf (or down, up, floor, ceil)")
	fs.Int("workers", 0, "number of concurrent workers for batch rounding (0 for GOMAXPROCS)")
	log.RegisterFlags(fs)
	root.MarkPersistentFlagFilename("config")

	root.AddCommand(Round(v), Batch(v))
	return root
}

func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Error.Wrap(err)
	}
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return Error.New("reading config file %s: %v", cfg, err)
		}
	}
	if _, err := log.Init(cmd.ErrOrStderr(), v.GetString(log.FormatFlag), v.GetString(log.LevelFlag)); err != nil {
		return err
	}
	return nil
}

// settings are the rounding settings resolved from flags, environment and
// config file.
type settings struct {
	prec    uint
	mode    binfloat.RoundingMode
	workers int
}

func loadSettings(v *viper.Viper) (s settings, err error) {
	s.prec = v.GetUint("prec")
	if s.mode, err = binfloat.ParseRoundingMode(v.GetString("mode")); err != nil {
		return s, Error.Wrap(err)
	}
	if s.workers = v.GetInt("workers"); s.workers < 0 {
		return s, Error.New("invalid number of workers %d", s.workers)
	}
	return s, nil
}

// newContext returns a rounding context for s.
func (s settings) newContext() *context.Context {
	return context.New(s.prec, s.mode)
}
