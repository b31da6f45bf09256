// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binfloat

import (
	"math/big"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
)

// FuzzSetRound checks SetRound against the math/big reference on inputs
// decoded from the fuzzer's data.
func FuzzSetRound(f *testing.F) {
	f.Add([]byte{0x0d, 0, 0, 0, 0, 0, 0, 0, 2})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x40})
	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		mb, err := c.GetBytes()
		if err != nil || len(mb) == 0 || len(mb) > 256 {
			return
		}
		neg, err := c.GetBool()
		if err != nil {
			return
		}
		p, err := c.GetInt()
		if err != nil {
			return
		}
		m, err := c.GetInt()
		if err != nil {
			return
		}
		e, err := c.GetInt()
		if err != nil {
			return
		}

		x := new(big.Int).SetBytes(mb)
		if neg {
			x.Neg(x)
		}
		r := p % (8*len(mb) + 8)
		if r < 0 {
			r = -r
		}
		prec := uint(r) + 1
		mode := roundingModes[uint(m)%uint(len(roundingModes))]
		exp := int64(int32(e))

		wm, we, exact := refRound(x, exp, prec, mode)

		z := bigFloat(t, x, exp)
		o := z.Round(z, prec, mode)
		checkFloat(t, z)
		if z.mant.Big(nil).Cmp(wm) != 0 || z.exp.lo64() != we || o.Exact() != exact {
			t.Fatalf("Round(%vp%d, %d, %v) = %v, %v; want %vp%d exact=%v", x, exp, prec, mode, z, o, wm, we, exact)
		}
	})
}
