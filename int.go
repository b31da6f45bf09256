// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binfloat

import (
	"fmt"
	"math/big"
	"math/bits"
)

// An Int represents a signed multi-precision integer.
// The zero value for an Int represents the value 0.
//
// An Int uses one of two encodings:
//
//	inline   abs == nil, the magnitude is held in lo
//	heap     abs holds two or more limbs, abs[len(abs)-1] != 0
//
// Zero is always inline and never negative. Operations promote a value to the
// heap encoding when its magnitude needs more than one Word and demote it back
// as soon as it fits into one. The limb buffer is owned by the Int: Set copies
// it and operations on z reuse z's capacity.
type Int struct {
	neg bool // sign
	lo  Word // magnitude, inline encoding
	abs nat  // magnitude, heap encoding
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// IsInline reports whether x uses the single-word encoding.
func (x *Int) IsInline() bool {
	return x.abs == nil
}

// setMag sets z's magnitude to the normalized value of abs, picking the
// encoding: magnitudes that fit into one word are demoted. abs becomes z's
// heap buffer if it is kept.
func (z *Int) setMag(neg bool, abs nat) *Int {
	switch len(abs) {
	case 0:
		return z.setWord(false, 0)
	case 1:
		return z.setWord(neg, abs[0])
	}
	z.neg = neg
	z.lo = 0
	z.abs = abs
	return z
}

// setWord demotes z to the inline encoding with magnitude x. The heap buffer is
// dropped: an inline Int holds no limbs.
func (z *Int) setWord(neg bool, x Word) *Int {
	z.neg = neg && x != 0
	z.lo = x
	z.abs = nil
	return z
}

// mag returns x's magnitude as a nat. For inline values the result is a view
// of buf.
func (x *Int) mag(buf *[1]Word) nat {
	if x.abs != nil {
		return x.abs
	}
	if x.lo == 0 {
		return nil
	}
	buf[0] = x.lo
	return buf[:]
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := false
	if x < 0 {
		neg = true
		x = -x
	}
	return z.SetUint64(uint64(x)).setNeg(neg)
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	if _W == 64 || x>>32 == 0 {
		return z.setWord(false, Word(x))
	}
	abs := z.abs.make(2)
	abs[0] = Word(x)
	abs[1] = Word(x >> 32)
	return z.setMag(false, abs)
}

func (z *Int) setNeg(neg bool) *Int {
	z.neg = neg && z.Sign() != 0
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		if x.abs == nil {
			return z.setWord(x.neg, x.lo)
		}
		z.setMag(x.neg, z.abs.set(x.abs))
	}
	return z
}

// SetBits sets z to the value of the little-endian limbs abs with the given
// sign, normalizing the result and selecting the encoding. z does not retain
// abs.
func (z *Int) SetBits(neg bool, abs []Word) *Int {
	a := nat(abs).norm()
	if len(a) <= 1 {
		var w Word
		if len(a) == 1 {
			w = a[0]
		}
		return z.setWord(neg, w)
	}
	return z.setMag(neg, z.abs.set(a))
}

// Bits returns the sign of x and a copy of its magnitude as little-endian
// limbs. The magnitude of zero is nil.
func (x *Int) Bits() (neg bool, abs []Word) {
	var buf [1]Word
	m := x.mag(&buf)
	if m == nil {
		return false, nil
	}
	return x.neg, append([]Word(nil), m...)
}

// SetBig sets z to x and returns z.
func (z *Int) SetBig(x *big.Int) *Int {
	b := x.Bits()
	a := z.abs
	if len(b) > 1 {
		a = a.make(len(b))
		for i, w := range b {
			a[i] = Word(w)
		}
		return z.setMag(x.Sign() < 0, a)
	}
	var w Word
	if len(b) == 1 {
		w = Word(b[0])
	}
	return z.setWord(x.Sign() < 0, w)
}

// Big sets z to x and returns z. If z is nil, a new big.Int is allocated.
func (x *Int) Big(z *big.Int) *big.Int {
	if z == nil {
		z = new(big.Int)
	}
	var buf [1]Word
	m := x.mag(&buf)
	b := z.Bits()
	if cap(b) >= len(m) {
		b = b[:len(m)]
	} else {
		b = make([]big.Word, len(m))
	}
	for i, w := range m {
		b[i] = big.Word(w)
	}
	z.SetBits(b)
	if x.neg {
		z.Neg(z)
	}
	return z
}

// Int64 returns the int64 value of x and whether it is representable.
func (x *Int) Int64() (int64, bool) {
	if x.abs != nil && (_W == 64 || len(x.abs) > 2) {
		return 0, false
	}
	var u uint64
	if x.abs != nil {
		u = uint64(x.abs[1])<<32 | uint64(x.abs[0])
	} else {
		u = uint64(x.lo)
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
func (x *Int) Sign() int {
	switch {
	case x.abs == nil && x.lo == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// CmpAbs compares the absolute values of x and y and returns -1, 0 or +1.
func (x *Int) CmpAbs(y *Int) int {
	if x.abs == nil && y.abs == nil {
		switch {
		case x.lo < y.lo:
			return -1
		case x.lo > y.lo:
			return 1
		}
		return 0
	}
	var xb, yb [1]Word
	return x.mag(&xb).cmp(y.mag(&yb))
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) (r int) {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs != ys:
		if xs < ys {
			return -1
		}
		return 1
	case xs < 0:
		return -x.CmpAbs(y)
	}
	return x.CmpAbs(y)
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	return z.setNeg(!z.neg)
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Add sets z to the sum x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	return z.add(x, y, y.neg)
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	return z.add(x, y, !y.neg)
}

// add sets z to x + (-1)^yneg * |y|.
func (z *Int) add(x, y *Int, yneg bool) *Int {
	if x.abs == nil && y.abs == nil {
		return z.addWords(x.neg, x.lo, yneg, y.lo)
	}
	var xb, yb [1]Word
	xm, ym := x.mag(&xb), y.mag(&yb)
	// z.abs may be x.abs or y.abs; nat.add and nat.sub read each limb before
	// writing it.
	neg := x.neg
	var abs nat
	if x.neg == yneg {
		abs = z.abs.add(xm, ym)
	} else {
		switch xm.cmp(ym) {
		case 0:
			return z.setWord(false, 0)
		case 1:
			abs = z.abs.sub(xm, ym)
		default:
			neg = yneg
			abs = z.abs.sub(ym, xm)
		}
	}
	return z.setMag(neg, abs)
}

// addWords sets z to (-1)^xneg*x + (-1)^yneg*y for inline operands.
func (z *Int) addWords(xneg bool, x Word, yneg bool, y Word) *Int {
	if xneg == yneg {
		s, c := bits.Add(uint(x), uint(y), 0)
		if c == 0 {
			return z.setWord(xneg, Word(s))
		}
		abs := z.abs.make(2)
		abs[0], abs[1] = Word(s), 1
		return z.setMag(xneg, abs)
	}
	if x >= y {
		return z.setWord(xneg, x-y)
	}
	return z.setWord(yneg, y-x)
}

// AddUint sets z to x+y and returns z.
func (z *Int) AddUint(x *Int, y uint) *Int {
	if x.abs == nil {
		return z.addWords(x.neg, x.lo, false, Word(y))
	}
	if y == 0 {
		return z.Set(x)
	}
	var abs nat
	if !x.neg {
		abs = z.abs.make(len(x.abs) + 1)
		abs[len(x.abs)] = addVW(abs[:len(x.abs)], x.abs, Word(y))
	} else {
		// |x| > y since |x| needs two words
		abs = z.abs.make(len(x.abs))
		subVW(abs, x.abs, Word(y))
	}
	return z.setMag(x.neg, abs.norm())
}

// BitLen returns the length of the absolute value of x in bits.
// The bit length of 0 is 0.
func (x *Int) BitLen() uint {
	if x.abs == nil {
		return uint(bits.Len(uint(x.lo)))
	}
	return x.abs.bitLen()
}

// TrailingZeroBits returns the number of consecutive least significant zero
// bits of |x|. It panics if x is 0.
func (x *Int) TrailingZeroBits() uint {
	if x.abs == nil {
		if x.lo == 0 {
			panic("binfloat: TrailingZeroBits of zero")
		}
		return ntz(x.lo)
	}
	return x.abs.trailingZeroBits()
}

// NextSetBit returns the index of the lowest set bit of |x| at or above bit
// from. If there is none, it returns x.BitLen().
func (x *Int) NextSetBit(from uint) uint {
	if x.abs == nil {
		if from >= _W {
			return x.BitLen()
		}
		if t := x.lo >> from << from; t != 0 {
			return ntz(t)
		}
		return x.BitLen()
	}
	return x.abs.scan1(from)
}

// NextClearBit returns the index of the lowest clear bit of |x| at or above
// bit from. If every bit from bit from up to the most significant set bit of
// |x| is set, the result is x.BitLen(): adding 1<<from to |x| would then carry
// into a new most significant bit.
func (x *Int) NextClearBit(from uint) uint {
	if x.abs == nil {
		if from >= _W {
			return from
		}
		// bits.TrailingZeros returns _W == x.BitLen() when x.lo is all ones
		// from bit from upward.
		return ntz(^x.lo >> from << from)
	}
	return x.abs.scan0(from)
}

// Rsh sets z to x / 2**n truncated toward zero and returns z. Unlike
// big.Int.Rsh, the sign of x is kept and the magnitude is truncated: -7 >> 1
// is -3.
//
// Heap encoded values are shifted by moving limbs; z may be x, in which case
// the shift is done in place.
func (z *Int) Rsh(x *Int, n uint) *Int {
	if x.abs == nil {
		if n >= _W {
			return z.setWord(false, 0)
		}
		return z.setWord(x.neg, x.lo>>n)
	}
	return z.setMag(x.neg, z.abs.shr(x.abs, n))
}

// Lsh sets z to x * 2**n and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	if x.abs == nil {
		if x.lo == 0 {
			return z.setWord(false, 0)
		}
		if n < _W && x.lo>>(_W-n) == 0 {
			return z.setWord(x.neg, x.lo<<n)
		}
	}
	var buf [1]Word
	return z.setMag(x.neg, z.abs.shl(x.mag(&buf), n))
}

// incLow adds 1 to the lowest limb of |z|. The caller guarantees that this
// does not carry out of the limb.
func (z *Int) incLow() {
	if z.abs == nil {
		if z.lo == _M {
			panic("binfloat: incLow carry")
		}
		z.lo++
		return
	}
	if z.abs[0] == _M {
		panic("binfloat: incLow carry")
	}
	z.abs[0]++
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	return x.Text(10)
}

// Text returns the string representation of x in the given base.
// Base must be between 2 and 62, inclusive.
func (x *Int) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	if x.abs == nil {
		s := new(big.Int).SetUint64(uint64(x.lo)).Text(base)
		if x.neg {
			return "-" + s
		}
		return s
	}
	return x.Big(nil).Text(base)
}

// Format implements fmt.Formatter by delegating to big.Int.
func (x *Int) Format(s fmt.State, ch rune) {
	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}
	x.Big(nil).Format(s, ch)
}

// SetString sets z to the value of s, interpreted in the given base, and
// returns z and a boolean indicating success. See big.Int.SetString for the
// accepted syntax.
func (z *Int) SetString(s string, base int) (*Int, bool) {
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, false
	}
	return z.SetBig(b), true
}

func (x *Int) validate() {
	if !debugBinfloat {
		// avoid performance bugs
		panic("validate called but debugBinfloat is not set")
	}
	if x.abs == nil {
		if x.lo == 0 && x.neg {
			panic("binfloat: negative zero")
		}
		return
	}
	if len(x.abs) < 2 {
		panic(fmt.Sprintf("binfloat: heap encoding with %d limbs", len(x.abs)))
	}
	if x.abs[len(x.abs)-1] == 0 {
		panic("binfloat: heap encoding with a zero most significant limb")
	}
	if x.lo != 0 {
		panic("binfloat: heap encoding with a non-zero inline word")
	}
}
