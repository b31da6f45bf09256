// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binfloat

// SetRound sets (rman, rexp) to the value man * 2**exp rounded to at most prec
// significant bits using the rounding mode mode, and returns the Outcome. The
// result is canonical: rman is zero or odd, trailing zero bits being absorbed
// into rexp.
//
// rman may be man and rexp may be exp, in which case the value is rounded in
// place; heap encoded mantissas are then shifted and incremented within their
// own buffer. rman and rexp must be distinct from each other and rman must not
// be exp.
//
// SetRound panics if prec is 0 or if mode is not a valid RoundingMode.
func SetRound(rman, rexp, man, exp *Int, prec uint, mode RoundingMode) Outcome {
	if prec == 0 {
		panic("binfloat: SetRound with zero precision")
	}
	if mode > ToPositiveInf {
		panic("binfloat: invalid rounding mode " + mode.String())
	}
	if debugBinfloat {
		man.validate()
		exp.validate()
	}

	var o Outcome
	switch {
	case man.Sign() == 0:
		rman.setWord(false, 0)
		rexp.Set(exp)
	case man.abs == nil:
		o = setRoundWord(rman, rexp, man, exp, prec, mode)
	default:
		o = setRoundNat(rman, rexp, man, exp, prec, mode)
	}

	if debugBinfloat {
		rman.validate()
		rexp.validate()
	}
	return o
}

// setRoundWord rounds an inline mantissa. The result is inline as well.
func setRoundWord(rman, rexp, man, exp *Int, prec uint, mode RoundingMode) Outcome {
	w, neg := man.lo, man.neg
	bc := _W - nlz(w)
	val := ntz(w)

	// quick exit
	if bc <= prec && val == 0 {
		rman.setWord(neg, w)
		rexp.Set(exp)
		return Outcome{}
	}

	// no rounding necessary; just shift out the trailing zeros
	if bc-val <= prec {
		rman.setWord(neg, w>>val)
		rexp.AddUint(exp, val)
		return Outcome{}
	}

	cut := bc - prec
	up := mode.roundsUp(neg)
	var inc Word
	if up {
		// round to next higher odd mantissa
		val = ntz(^w >> cut << cut)
		if val == bc {
			// all ones from cut upward: overflow to the next power of 2
			rman.setWord(neg, 1)
			rexp.AddUint(exp, bc)
			return inexact(makeAcc(!neg), bc, bc, prec)
		}
		inc = 1
	} else {
		val = ntz(w >> cut << cut)
	}

	rman.setWord(neg, w>>val+inc)
	rexp.AddUint(exp, val)
	return inexact(makeAcc(up != neg), val, bc, prec)
}

// setRoundNat rounds a heap encoded mantissa.
func setRoundNat(rman, rexp, man, exp *Int, prec uint, mode RoundingMode) Outcome {
	d, neg := man.abs, man.neg
	bc := d.bitLen()

	// quick exit
	if bc <= prec && d[0]&1 != 0 {
		rman.Set(man)
		rexp.Set(exp)
		return Outcome{}
	}

	val := d.trailingZeroBits()
	acc := Exact
	var inc Word

	if bc-val > prec {
		cut := bc - prec
		up := mode.roundsUp(neg)
		if up {
			val = d.scan0(cut)
			if val == bc {
				rman.setWord(neg, 1)
				rexp.AddUint(exp, bc)
				return inexact(makeAcc(!neg), bc, bc, prec)
			}
			// bit val is clear: adding 1 after the shift cannot carry
			inc = 1
		} else {
			val = d.scan1(cut)
		}
		acc = makeAcc(up != neg)
	}

	switch {
	case bc-val <= _W:
		// the output mantissa fits into one word
		i, s := val/_W, val%_W
		h := d[i] >> s
		if s != 0 && int(i)+1 < len(d) {
			h |= d[i+1] << (_W - s)
		}
		rman.setWord(neg, h+inc)
	case rman == man:
		// in place: truncate, then bump the lowest limb
		rman.abs = d.shr(d, val)
		if inc != 0 {
			rman.incLow()
		}
	default:
		rman.setMag(neg, rman.abs.shr(d, val))
		if inc != 0 {
			rman.incLow()
		}
	}

	rexp.AddUint(exp, val)
	if acc == Exact {
		return Outcome{}
	}
	return inexact(acc, val, bc, prec)
}
