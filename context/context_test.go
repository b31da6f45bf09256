// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/db47h/binfloat"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestContextDefaults(t *testing.T) {
	var c Context
	require.Equal(t, uint(DefaultPrec), c.Prec())
	require.Equal(t, binfloat.ToZero, c.Mode())

	c2 := New(0, binfloat.ToPositiveInf)
	require.Equal(t, uint(DefaultPrec), c2.Prec())
	require.Equal(t, binfloat.ToPositiveInf, c2.Mode())

	c2.SetPrec(7).SetMode(binfloat.AwayFromZero)
	require.Equal(t, uint(7), c2.Prec())
	require.Equal(t, binfloat.AwayFromZero, c2.Mode())
	c2.SetPrec(0)
	require.Equal(t, uint(DefaultPrec), c2.Prec())

	require.Panics(t, func() { c2.SetMode(binfloat.ToPositiveInf + 1) })
}

func TestContextNew(t *testing.T) {
	c := New(2, binfloat.ToZero)
	require.Equal(t, "3p+2", c.NewInt64(13).String())
	require.Equal(t, "-3p+1", c.NewFloat(-14, -1).String())
	require.Equal(t, "3p-2", c.NewFloat64(0.875).String())

	c.SetMode(binfloat.AwayFromZero)
	require.Equal(t, "1p+4", c.NewInt64(13).String())
	require.Equal(t, "1p+0", c.NewFloat64(0.875).String())
}

func TestContextRound(t *testing.T) {
	c := New(3, binfloat.ToNegativeInf)
	x := binfloat.NewFloat(-17, 0)
	var z binfloat.Float
	o := c.Round(&z, x)
	require.Equal(t, "-5p+2", z.String())
	require.Equal(t, "Inexact(2)", o.String())
	require.Equal(t, binfloat.Below, o.Acc())

	o2 := c.Round(x, x)
	require.Equal(t, o, o2)
	require.Zero(t, x.Cmp(&z))
}

func TestContextParse(t *testing.T) {
	c := New(4, binfloat.ToZero)
	x := c.Parse("0x1ffp-3")
	require.NotNil(t, x)
	require.Equal(t, "15p+2", x.String())
	require.NoError(t, c.Err())

	require.Nil(t, c.Parse("1.5"))
	// an error is pending: further calls are no-ops
	require.Nil(t, c.Parse("3"))
	err := c.Err()
	require.Error(t, err)
	require.True(t, Error.Has(err))
	require.True(t, binfloat.Error.Has(err))

	// cleared
	require.NoError(t, c.Err())
	require.NotNil(t, c.Parse("3"))
}

func TestRoundAll(t *testing.T) {
	c := New(5, binfloat.AwayFromZero)
	const n = 1000
	xs := make([]*binfloat.Float, n)
	zs := make([]*binfloat.Float, n)
	for i := range xs {
		xs[i] = binfloat.NewFloat(int64(i*i*1013-i), int64(i%17-8))
		zs[i] = new(binfloat.Float)
	}

	for _, workers := range []int{0, 1, 3, 64} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			out := c.RoundAll(zs, xs, workers)
			require.Len(t, out, n)
			for i := range xs {
				var want binfloat.Float
				o := c.Round(&want, xs[i])
				require.Equal(t, o, out[i], "xs[%d] = %v", i, xs[i])
				require.Zero(t, want.Cmp(zs[i]), "xs[%d] = %v", i, xs[i])
			}
		})
	}

	// in place
	ys := make([]*binfloat.Float, n)
	for i := range ys {
		ys[i] = new(binfloat.Float).Set(xs[i])
	}
	c.RoundAll(ys, ys, 4)
	for i := range ys {
		require.Zero(t, ys[i].Cmp(zs[i]))
	}

	require.Empty(t, c.RoundAll(nil, nil, 2))
	require.Panics(t, func() { c.RoundAll(zs[:1], xs, 2) })
}
