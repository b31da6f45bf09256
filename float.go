// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binfloat

import (
	"math"
	"math/big"
)

// A Float represents the exact value mant * 2**exp where mant and exp are
// arbitrary-precision integers. The zero value for a Float represents 0.
//
// A Float is canonical if mant is zero or odd. Operations that produce a Float
// from an existing value leave it as it is; Round and Canonicalize make it
// canonical.
type Float struct {
	mant Int
	exp  Int
}

// NewFloat allocates and returns a new Float set to mant * 2**exp.
func NewFloat(mant, exp int64) *Float {
	z := new(Float)
	z.mant.SetInt64(mant)
	z.exp.SetInt64(exp)
	return z
}

// SetMantExp sets z to mant * 2**exp and returns z.
func (z *Float) SetMantExp(mant, exp *Int) *Float {
	z.mant.Set(mant)
	z.exp.Set(exp)
	return z
}

// MantExp sets mant and exp to the mantissa and exponent of x. Either may be
// nil, in which case it is skipped.
func (x *Float) MantExp(mant, exp *Int) {
	if mant != nil {
		mant.Set(&x.mant)
	}
	if exp != nil {
		exp.Set(&x.exp)
	}
}

// Mant returns a pointer to the mantissa of x. Changes made through it change
// x.
func (x *Float) Mant() *Int {
	return &x.mant
}

// Exp returns a pointer to the exponent of x. Changes made through it change
// x.
func (x *Float) Exp() *Int {
	return &x.exp
}

// SetInt sets z to x * 2**0 and returns z.
func (z *Float) SetInt(x *Int) *Float {
	z.mant.Set(x)
	z.exp.setWord(false, 0)
	return z
}

// SetInt64 sets z to x * 2**0 and returns z.
func (z *Float) SetInt64(x int64) *Float {
	z.mant.SetInt64(x)
	z.exp.setWord(false, 0)
	return z
}

// Set sets z to x and returns z.
func (z *Float) Set(x *Float) *Float {
	if z != x {
		z.mant.Set(&x.mant)
		z.exp.Set(&x.exp)
	}
	return z
}

// Neg sets z to -x and returns z.
func (z *Float) Neg(x *Float) *Float {
	z.Set(x)
	z.mant.Neg(&z.mant)
	return z
}

// Abs sets z to |x| and returns z.
func (z *Float) Abs(x *Float) *Float {
	z.Set(x)
	z.mant.Abs(&z.mant)
	return z
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
func (x *Float) Sign() int {
	return x.mant.Sign()
}

// IsZero reports whether x is 0.
func (x *Float) IsZero() bool {
	return x.mant.Sign() == 0
}

// IsCanonical reports whether the mantissa of x is zero or odd.
func (x *Float) IsCanonical() bool {
	if x.mant.abs == nil {
		return x.mant.lo == 0 || x.mant.lo&1 != 0
	}
	return x.mant.abs[0]&1 != 0
}

// Round sets z to x rounded to at most prec significant bits using the given
// rounding mode and returns the Outcome. z may be x. See SetRound.
func (z *Float) Round(x *Float, prec uint, mode RoundingMode) Outcome {
	return SetRound(&z.mant, &z.exp, &x.mant, &x.exp, prec, mode)
}

// Canonicalize sets z to the canonical form of x, moving the trailing zero bits
// of the mantissa into the exponent, and returns z. The value is unchanged.
func (z *Float) Canonicalize(x *Float) *Float {
	prec := x.mant.BitLen()
	if prec == 0 {
		prec = 1
	}
	SetRound(&z.mant, &z.exp, &x.mant, &x.exp, prec, ToZero)
	return z
}

// MinPrec returns the minimum precision required to represent x exactly
// (i.e., the smallest prec before x.Round(x, prec, mode) would start rounding
// x). The result is 0 for x == 0.
func (x *Float) MinPrec() uint {
	if x.mant.Sign() == 0 {
		return 0
	}
	return x.mant.BitLen() - x.mant.TrailingZeroBits()
}

// Cmp compares the values of x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x *Float) Cmp(y *Float) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	case xs < 0:
		return -x.cmpAbs(y)
	}
	return x.cmpAbs(y)
}

// cmpAbs compares |x| and |y|. x and y must be non-zero.
func (x *Float) cmpAbs(y *Float) int {
	// compare the positions of the most significant bits first
	var xt, yt Int
	xt.AddUint(&x.exp, x.mant.BitLen())
	yt.AddUint(&y.exp, y.mant.BitLen())
	if r := xt.Cmp(&yt); r != 0 {
		return r
	}

	// Same top bit: the exponents differ by less than the longer mantissa,
	// align the mantissas on the lower one.
	var d, xm, ym Int
	d.Sub(&x.exp, &y.exp)
	n, _ := d.Int64()
	xm.Abs(&x.mant)
	ym.Abs(&y.mant)
	if n > 0 {
		xm.Lsh(&xm, uint(n))
	} else {
		ym.Lsh(&ym, uint(-n))
	}
	return xm.CmpAbs(&ym)
}

// SetFloat64 sets z to the exact value of x in canonical form and returns z.
// It panics with ErrNaN if x is a NaN and with an error of class Error if x is
// an infinity.
func (z *Float) SetFloat64(x float64) *Float {
	if math.IsNaN(x) {
		panic(ErrNaN{"Float.SetFloat64(NaN)"})
	}
	if math.IsInf(x, 0) {
		panic(Error.New("cannot represent %v", x))
	}
	if x == 0 {
		z.mant.setWord(false, 0)
		z.exp.setWord(false, 0)
		return z
	}
	frac, e := math.Frexp(x)
	// |frac| in [0.5, 1): frac * 2**53 is an integer
	z.mant.SetInt64(int64(math.Ldexp(frac, 53)))
	z.exp.SetInt64(int64(e - 53))
	return z.Canonicalize(z)
}

// SetBigFloat sets z to the exact value of x in canonical form and returns z.
// Infinities cannot be represented and result in an error.
func (z *Float) SetBigFloat(x *big.Float) (*Float, error) {
	if x.IsInf() {
		return nil, Error.New("cannot represent %v", x)
	}
	if x.Sign() == 0 {
		z.mant.setWord(false, 0)
		z.exp.setWord(false, 0)
		return z, nil
	}
	// x = m * 2**e with 0.5 <= |m| < 1, and m * 2**prec is an odd integer.
	prec := int(x.MinPrec())
	e := x.MantExp(nil)
	i, _ := new(big.Float).SetMantExp(x, prec-e).Int(nil)
	z.mant.SetBig(i)
	z.exp.SetInt64(int64(e) - int64(prec))
	return z, nil
}

// BigFloat sets f to the exact value of x and returns f. If f is nil, a new
// big.Float is allocated. f's precision and rounding mode are overwritten. An
// error is returned if the exponent of x is out of the range of big.Float.
func (x *Float) BigFloat(f *big.Float) (*big.Float, error) {
	if f == nil {
		f = new(big.Float)
	}
	bc := x.mant.BitLen()
	if bc == 0 {
		return f.SetPrec(1).SetInt64(0), nil
	}
	e, ok := x.exp.Int64()
	if !ok || e > big.MaxExp-int64(bc) || e < big.MinExp-int64(bc) {
		return nil, Error.New("exponent %v out of range", &x.exp)
	}
	f.SetPrec(bc).SetMode(big.ToZero)
	f.SetInt(x.mant.Big(nil))
	return f.SetMantExp(f, int(e)), nil
}
