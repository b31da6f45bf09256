// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binfloat

import "math/bits"

// A Word represents a single limb of a multi-precision unsigned integer.
type Word uint

const (
	_S = _W / 8 // word size in bytes

	_W = bits.UintSize // word size in bits
	_M = 1<<_W - 1     // digit mask
)

//-----------------------------------------------------------------------------
// Arithmetic primitives
//
// These operate on little-endian Word vectors. Unless noted otherwise, z may
// be the same slice as x (or y); the loops only ever read an element before
// writing the element at the same or a lower index.

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Sub(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// addVW adds y to x. The resulting carry c is either 0 or 1.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
		if c == 0 {
			// copy remaining words if not adding in-place
			if !same(z, x) {
				copy(z[i+1:], x[i+1:])
			}
			return 0
		}
	}
	return
}

func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Sub(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
		if c == 0 {
			if !same(z, x) {
				copy(z[i+1:], x[i+1:])
			}
			return 0
		}
	}
	return
}

// shlVU sets z to x<<s, 0 <= s < _W, and returns the bits shifted out.
// z may alias x only if they start at the same element; the loop runs from the
// most significant word down.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	ŝ := _W - s
	w1 := x[len(z)-1]
	c = w1 >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>ŝ
	}
	z[0] = w1 << s
	return
}

// shrVU sets z to x>>s, 0 <= s < _W, and returns the bits shifted out (in the
// high bits of c). The loop runs from the least significant word up, so z may
// be a prefix of x.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	ŝ := _W - s
	w1 := x[0]
	c = w1 << ŝ
	for i := 0; i < len(z)-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<ŝ
	}
	z[len(z)-1] = w1 >> s
	return
}

// nlz returns the number of leading zero bits in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros(uint(x)))
}

// ntz returns the number of trailing zero bits in x; _W for x == 0.
func ntz(x Word) uint {
	return uint(bits.TrailingZeros(uint(x)))
}

func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

// alias reports whether x and y share the same base array.
func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
