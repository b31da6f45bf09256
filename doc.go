// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package binfloat implements arbitrary-precision binary floating-point values
and their rounding.

A Float holds the exact value mant * 2**exp where both the mantissa and the
exponent are arbitrary-precision signed integers of type Int. The zero value
for a Float corresponds to 0:

    x := new(Float)  // x is a *Float of value 0

New values are built from machine integers, math/big values or text:

    x := NewFloat(13, -2)               // 13 * 2**-2
    y, err := ParseFloat("-0x1bp+4")    // -27 * 2**4
    z, err := new(Float).SetBigFloat(f) // exact value of a *big.Float

A Float is canonical when its mantissa is zero or odd, all factors of two
being held by the exponent. The central operation is rounding:

    func (z *Float) Round(x *Float, prec uint, mode RoundingMode) Outcome

which sets z to x rounded to at most prec significant bits in canonical form.
The rounding modes are directional (ToZero, AwayFromZero, ToNegativeInf,
ToPositiveInf); there is no round-to-nearest mode. The returned Outcome tells
whether the result is exact and, if not, the error-bit position: the index in
the original mantissa of the lowest bit that was discarded or altered, which
bounds the rounding error by 2**(exp + Outcome.ErrBit()). The same operation
on bare (mantissa, exponent) pairs is available as SetRound.

The integer type Int uses two encodings: values whose magnitude fits into one
machine Word are held inline without any allocation, larger ones in a slice of
limbs. Operations convert between the two as needed. Int exposes the bit level
primitives the rounding relies on (BitLen, TrailingZeroBits, NextSetBit,
NextClearBit, Rsh) and conversions from and to sign and limbs (SetBits, Bits)
or *big.Int (SetBig, Big).

As in math/big, the result of an operation is the receiver, usually named z,
and operations permit aliasing of the receiver and the operands:

    x.Round(x, 53, ToZero)

rounds x in place and reuses its storage.

Invalid arguments to the rounding operations (a zero precision or an unknown
rounding mode) are programming errors and cause a panic. Decoding functions
return errors of class Error.
*/
package binfloat
