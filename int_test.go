// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binfloat

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var (
	_ fmt.Stringer  = new(Int)
	_ fmt.Formatter = new(Int)
)

func intFromString(t *testing.T, s string) *Int {
	t.Helper()
	z, ok := new(Int).SetString(s, 0)
	require.True(t, ok, "invalid Int %q", s)
	return z
}

func TestIntZeroValue(t *testing.T) {
	var x Int
	checkInt(t, &x)
	require.Zero(t, x.Sign())
	require.True(t, x.IsInline())
	require.Zero(t, x.BitLen())
	require.Equal(t, "0", x.String())
	neg, abs := x.Bits()
	require.False(t, neg)
	require.Nil(t, abs)
	require.Panics(t, func() { x.TrailingZeroBits() })
}

func TestIntEncoding(t *testing.T) {
	for _, tc := range []struct {
		x      string
		inline bool
	}{
		{"0", true},
		{"1", true},
		{"-1", true},
		{"0xffffffff", true},
		{"-0x100000000000000000000000000000000", false},
		{"0x10000000000000000000000000000000000000000000000000000", false},
	} {
		x := intFromString(t, tc.x)
		checkInt(t, x)
		require.Equal(t, tc.inline, x.IsInline(), tc.x)

		var y Int
		y.Set(x)
		checkInt(t, &y)
		require.Zero(t, y.Cmp(x))
		if !x.IsInline() {
			require.NotSame(t, &x.abs[0], &y.abs[0], "Set must copy the limbs")
		}
	}

	// one word exactly: inline on every platform
	x := new(Int).SetUint64(uint64(_M))
	require.True(t, x.IsInline())
	x.AddUint(x, 1)
	require.False(t, x.IsInline())
	checkInt(t, x)
	require.Equal(t, uint(_W+1), x.BitLen())

	// demotion
	x.Sub(x, NewInt(1))
	require.True(t, x.IsInline())
	require.Zero(t, x.CmpAbs(new(Int).SetUint64(uint64(_M))))
	x.Sub(x, x)
	checkInt(t, x)
	require.Zero(t, x.Sign())
}

func TestIntSetBitsBits(t *testing.T) {
	for _, tc := range []struct {
		neg  bool
		in   []Word
		out  []Word
		sign int
	}{
		{false, nil, nil, 0},
		{true, nil, nil, 0},
		{true, []Word{0, 0}, nil, 0},
		{false, []Word{7}, []Word{7}, 1},
		{true, []Word{7, 0, 0}, []Word{7}, -1},
		{true, []Word{1, 2, 3}, []Word{1, 2, 3}, -1},
		{false, []Word{0, 1, 0}, []Word{0, 1}, 1},
	} {
		x := new(Int).SetBits(tc.neg, tc.in)
		checkInt(t, x)
		require.Equal(t, tc.sign, x.Sign())
		neg, abs := x.Bits()
		require.Equal(t, tc.sign < 0, neg)
		if diff := cmp.Diff(tc.out, abs); diff != "" {
			t.Errorf("SetBits(%v, %v).Bits() mismatch (-want +got):\n%s", tc.neg, tc.in, diff)
		}
		if len(tc.in) > 0 {
			// z does not retain abs
			tc.in[0]++
			require.Equal(t, tc.sign, x.Sign())
			_, again := x.Bits()
			require.Empty(t, cmp.Diff(tc.out, again))
		}
	}
}

func TestIntBig(t *testing.T) {
	for i := 0; i < 1000; i++ {
		b := rndBig(4 * _W)
		x := new(Int).SetBig(b)
		checkInt(t, x)
		require.Equal(t, b.BitLen() <= _W, x.IsInline(), b)
		require.Equal(t, b.String(), x.String())
		require.Equal(t, b.Text(16), x.Text(16))
		require.Zero(t, b.Cmp(x.Big(nil)))

		// reuse of the destination
		var z big.Int
		z.SetInt64(-3)
		require.Zero(t, b.Cmp(x.Big(&z)))
		require.Equal(t, uint(b.BitLen()), x.BitLen())
	}
}

func TestIntInt64(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64} {
		x := NewInt(v)
		checkInt(t, x)
		got, ok := x.Int64()
		require.True(t, ok)
		require.Equal(t, v, got)
		require.Equal(t, big.NewInt(v).String(), x.String())
	}
	for _, s := range []string{"0x8000000000000000", "-0x8000000000000001", "0x10000000000000000000"} {
		_, ok := intFromString(t, s).Int64()
		require.False(t, ok, s)
	}
}

func TestIntCmp(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, b := rndBig(3*_W), rndBig(3*_W)
		if i%10 == 0 {
			b.Set(a)
		}
		x, y := new(Int).SetBig(a), new(Int).SetBig(b)
		require.Equal(t, a.Cmp(b), x.Cmp(y), "Cmp(%v, %v)", a, b)
		require.Equal(t, a.CmpAbs(b), x.CmpAbs(y), "CmpAbs(%v, %v)", a, b)
	}
}

func TestIntAddSub(t *testing.T) {
	for i := 0; i < 2000; i++ {
		a, b := rndBig(3*_W), rndBig(3*_W)
		if i%5 == 0 {
			b = big.NewInt(rnd.Int63() - 1<<62)
		}
		x, y := new(Int).SetBig(a), new(Int).SetBig(b)

		var z Int
		want := new(big.Int).Add(a, b)
		z.Add(x, y)
		checkInt(t, &z)
		require.Equal(t, want.String(), z.String(), "%v + %v", a, b)

		want.Sub(a, b)
		z.Sub(x, y)
		checkInt(t, &z)
		require.Equal(t, want.String(), z.String(), "%v - %v", a, b)

		// aliasing
		z.Set(x)
		z.Sub(&z, y)
		require.Equal(t, want.String(), z.String(), "aliased %v - %v", a, b)
		z.Set(y)
		z.Add(x, &z)
		want.Add(a, b)
		require.Equal(t, want.String(), z.String(), "aliased %v + %v", a, b)

		u := uint(rnd.Uint64())
		want.Add(a, new(big.Int).SetUint64(uint64(u)))
		z.AddUint(x, u)
		checkInt(t, &z)
		require.Equal(t, want.String(), z.String(), "%v + %d", a, u)
		z.Set(x)
		z.AddUint(&z, u)
		require.Equal(t, want.String(), z.String(), "aliased %v + %d", a, u)
	}
}

func TestIntNegAbs(t *testing.T) {
	for _, s := range []string{"0", "5", "-5", "0x1000000000000000000000000", "-0x1000000000000000000000000"} {
		x := intFromString(t, s)
		var z Int
		z.Neg(x)
		checkInt(t, &z)
		require.Equal(t, -x.Sign(), z.Sign())
		require.Zero(t, z.CmpAbs(x))
		z.Abs(x)
		require.GreaterOrEqual(t, z.Sign(), 0)
		require.Zero(t, z.CmpAbs(x))
	}
}

func TestIntBitPrimitives(t *testing.T) {
	for i := 0; i < 2000; i++ {
		b := rndBig(4 * _W)
		a := new(big.Int).Abs(b)
		x := new(Int).SetBig(b)
		bl := uint(a.BitLen())

		require.Equal(t, bl, x.BitLen())
		require.Equal(t, a.TrailingZeroBits(), x.TrailingZeroBits())

		from := uint(rnd.Intn(int(bl) + 2))
		require.Equal(t, scanRef(a, from, bl, 1), x.NextSetBit(from), "NextSetBit(%v, %d)", b, from)
		if from < bl {
			// bits above the top are clear: a run of ones up to the top ends
			// at bl
			require.Equal(t, scanRef(a, from, bl, 0), x.NextClearBit(from), "NextClearBit(%v, %d)", b, from)
		}
	}
}

func TestIntNextClearBitSentinel(t *testing.T) {
	for _, n := range []uint{1, 5, _W - 1, _W, _W + 1, 2 * _W, 3*_W - 2} {
		// n ones
		b := new(big.Int).Lsh(big.NewInt(1), n)
		b.Sub(b, big.NewInt(1))
		x := new(Int).SetBig(b)
		require.Equal(t, n, x.NextClearBit(0), "%d ones", n)
		// 101...1: the lowest clear bit above the run
		b.SetBit(b, int(n+1), 1)
		x.SetBig(b)
		require.Equal(t, n, x.NextClearBit(0), "%d ones with a gap", n)
	}
}

func TestIntShifts(t *testing.T) {
	for i := 0; i < 2000; i++ {
		b := rndBig(4 * _W)
		n := uint(rnd.Intn(5 * _W))
		x := new(Int).SetBig(b)

		// truncation toward zero
		want := new(big.Int).Rsh(new(big.Int).Abs(b), n)
		if b.Sign() < 0 {
			want.Neg(want)
		}
		var z Int
		z.Rsh(x, n)
		checkInt(t, &z)
		require.Equal(t, want.String(), z.String(), "%v >> %d", b, n)
		y := new(Int).Set(x)
		y.Rsh(y, n)
		require.Zero(t, y.Cmp(&z), "in place %v >> %d", b, n)

		want.Lsh(b, n)
		z.Lsh(x, n)
		checkInt(t, &z)
		require.Equal(t, want.String(), z.String(), "%v << %d", b, n)
		y.Set(x)
		y.Lsh(y, n)
		require.Zero(t, y.Cmp(&z), "in place %v << %d", b, n)
	}
	require.Equal(t, "-3", new(Int).Rsh(NewInt(-7), 1).String())
	require.Equal(t, "0", new(Int).Rsh(NewInt(-7), 3).String())
}

func TestIntIncLow(t *testing.T) {
	x := NewInt(6)
	x.incLow()
	require.Equal(t, "7", x.String())

	x = intFromString(t, "-0x100000000000000000000000000000000")
	x.incLow()
	require.Equal(t, "-340282366920938463463374607431768211457", x.String())

	require.Panics(t, func() { new(Int).SetUint64(uint64(_M)).incLow() })
}

func TestIntText(t *testing.T) {
	x := intFromString(t, "-0x1234567890abcdef1234567890abcdef")
	require.Equal(t, "-1234567890abcdef1234567890abcdef", x.Text(16))
	require.Equal(t, "-0x1234567890abcdef1234567890abcdef", fmt.Sprintf("%#x", x))
	require.Equal(t, "<nil>", (*Int)(nil).String())

	_, ok := new(Int).SetString("12z", 10)
	require.False(t, ok)

	var z Int
	require.NoError(t, z.UnmarshalText([]byte("-0b1011")))
	require.Equal(t, "-11", z.String())
	text, err := z.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-11", string(text))
	err = z.UnmarshalText([]byte("eleven"))
	require.True(t, Error.Has(err))
}
