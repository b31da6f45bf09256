// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binfloat

import "encoding/binary"

// nat is an unsigned integer x of the form
//
//   x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
type nat []Word

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (x nat) cmp(y nat) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// bitLen returns the length of x in bits. x must be normalized.
func (x nat) bitLen() uint {
	if i := len(x) - 1; i >= 0 {
		return uint(i)*_W + (_W - nlz(x[i]))
	}
	return 0
}

// trailingZeroBits returns the number of consecutive least significant zero
// bits of x. x must be normalized and non-zero.
func (x nat) trailingZeroBits() uint {
	i := 0
	for x[i] == 0 {
		i++
	}
	// x[i] != 0
	return uint(i)*_W + ntz(x[i])
}

// scan1 returns the index of the lowest set bit of x at or above bit from,
// or x.bitLen() if there is none. x must be normalized.
func (x nat) scan1(from uint) uint {
	i := int(from / _W)
	if i >= len(x) {
		return x.bitLen()
	}
	c := from % _W
	t := x[i] >> c << c
	for t == 0 {
		i++
		if i == len(x) {
			return x.bitLen()
		}
		t = x[i]
	}
	return uint(i)*_W + ntz(t)
}

// scan0 returns the index of the lowest clear bit of x at or above bit from.
// Bits above the top limb count as clear, so that the result is
// len(x)*_W when the top limb is all ones from bit from upward.
func (x nat) scan0(from uint) uint {
	i := int(from / _W)
	if i >= len(x) {
		return from
	}
	c := from % _W
	t := ^x[i] >> c << c
	for t == 0 {
		i++
		if i == len(x) {
			return uint(len(x)) * _W
		}
		t = ^x[i]
	}
	return uint(i)*_W + ntz(t)
}

// shr sets z to x >> s, discarding the low bits, and returns the normalized
// result. z may be x, in which case the shift is done in place.
func (z nat) shr(x nat, s uint) nat {
	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	// n > 0

	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)

	return z.norm()
}

// shl sets z to x << s and returns the normalized result.
func (z nat) shl(x nat, s uint) nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	// m > 0

	n := m + int(s/_W)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	for i := range z[0 : n-m] {
		z[i] = 0
	}

	return z.norm()
}

func (z nat) add(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub sets z to x - y. x must be >= y.
func (z nat) sub(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("binfloat: underflow")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("binfloat: underflow")
	}

	return z.norm()
}

// bytes writes the big-endian bytes of x to the end of buf and returns the
// index of the first byte written. The leading zero bytes of x are skipped.
func (x nat) bytes(buf []byte) (i int) {
	i = len(buf)
	for _, d := range x {
		for j := 0; j < _S; j++ {
			i--
			buf[i] = byte(d)
			d >>= 8
		}
	}

	for i < len(buf) && buf[i] == 0 {
		i++
	}

	return
}

// setBytes interprets buf as the bytes of a big-endian unsigned integer, sets
// z to that value, and returns z.
func (z nat) setBytes(buf []byte) nat {
	z = z.make((len(buf) + _S - 1) / _S)

	i := len(buf)
	for k := 0; i >= _S; k++ {
		if _S == 8 {
			z[k] = Word(binary.BigEndian.Uint64(buf[i-8 : i]))
		} else {
			z[k] = Word(binary.BigEndian.Uint32(buf[i-4 : i]))
		}
		i -= _S
	}
	if i > 0 {
		var d Word
		for s := uint(0); i > 0; s += 8 {
			d |= Word(buf[i-1]) << s
			i--
		}
		z[len(z)-1] = d
	}

	return z.norm()
}
