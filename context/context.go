// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides rounding contexts for binfloat.Floats.
//
// A Context holds a precision and a rounding mode. All factory functions of the
// form
//
//    func (c *Context) NewT(x T) *binfloat.Float
//
// create a new binfloat.Float set to the value of x, rounded using c's
// precision and rounding mode.
//
// A Context catches parse errors: if Parse fails, it returns nil and records
// the error. Further calls to Parse are no-ops returning nil until
// (*Context).Err is called to check for errors.
package context

import (
	"runtime"

	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/binfloat"
)

// DefaultPrec is the precision selected by a zero precision: the mantissa
// width of a float64.
const DefaultPrec = 53

// Error is the error class of the errors recorded by a Context.
var Error = errs.Class("context")

// A Context is a wrapper around Floats that facilitates management of rounding
// modes, precision and error handling. A Context must not be used concurrently
// with calls that change it (SetPrec, SetMode, Parse, Err).
type Context struct {
	prec uint
	mode binfloat.RoundingMode
	err  error
}

// New creates a new context with the given precision and rounding mode. If prec
// is 0, it is set to DefaultPrec.
func New(prec uint, mode binfloat.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() binfloat.RoundingMode {
	return c.mode
}

// Prec returns the mantissa precision of c in bits.
func (c *Context) Prec() uint {
	if c.prec == 0 {
		return DefaultPrec
	}
	return c.prec
}

// SetMode sets c's rounding mode to mode and returns c. It panics if mode is
// not a valid rounding mode.
func (c *Context) SetMode(mode binfloat.RoundingMode) *Context {
	if mode > binfloat.ToPositiveInf {
		panic("context: invalid rounding mode " + mode.String())
	}
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c. If prec == 0, it is set to
// DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	if prec == 0 {
		prec = DefaultPrec
	}
	c.prec = prec
	return c
}

// Round sets z to the value of x rounded using c's precision and rounding mode
// and returns the outcome. z may be x.
func (c *Context) Round(z, x *binfloat.Float) binfloat.Outcome {
	return z.Round(x, c.Prec(), c.mode)
}

// NewFloat returns a new *binfloat.Float set to mant * 2**exp, rounded.
func (c *Context) NewFloat(mant, exp int64) *binfloat.Float {
	z := binfloat.NewFloat(mant, exp)
	c.Round(z, z)
	return z
}

// NewInt64 returns a new *binfloat.Float set to the rounded value of x.
func (c *Context) NewInt64(x int64) *binfloat.Float {
	return c.NewFloat(x, 0)
}

// NewFloat64 returns a new *binfloat.Float set to the rounded value of x.
func (c *Context) NewFloat64(x float64) *binfloat.Float {
	z := new(binfloat.Float).SetFloat64(x)
	c.Round(z, z)
	return z
}

// Parse returns a new *binfloat.Float set to the rounded value of s, in the
// format accepted by (*binfloat.Float).Parse. On failure it returns nil and
// records the error. If an error is already recorded, Parse returns nil.
func (c *Context) Parse(s string) *binfloat.Float {
	if c.err != nil {
		return nil
	}
	z, err := binfloat.ParseFloat(s)
	if err != nil {
		c.err = Error.Wrap(err)
		return nil
	}
	c.Round(z, z)
	return z
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// RoundAll sets zs[i] to the rounded value of xs[i] for every i and returns the
// outcomes. zs[i] may be xs[i], but distinct indices must not share a Float.
// The values are rounded concurrently by at most workers goroutines;
// workers <= 0 means runtime.GOMAXPROCS(0). RoundAll panics if the slices have
// different lengths.
func (c *Context) RoundAll(zs, xs []*binfloat.Float, workers int) []binfloat.Outcome {
	if len(zs) != len(xs) {
		panic("context: RoundAll with slices of different lengths")
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	prec, mode := c.Prec(), c.mode
	res := make([]binfloat.Outcome, len(xs))

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range xs {
		g.Go(func() error {
			res[i] = zs[i].Round(xs[i], prec, mode)
			return nil
		})
	}
	_ = g.Wait() // always nil
	return res
}
