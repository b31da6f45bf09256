// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors the rounding types of math/big.

package binfloat

import (
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

const debugBinfloat = false

// Error is the error class for recoverable failures of this package (decoding
// and conversions). Programmer errors panic instead.
var Error = errs.Class("binfloat")

// An ErrNaN panic is raised by a Float operation that would lead to a NaN.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

// RoundingMode determines how a Float value is rounded to the desired
// precision. Every mode is a directional rule: there are no round-to-nearest
// modes.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToZero        RoundingMode = iota // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

//go:generate stringer -type=RoundingMode

// roundsUp reports whether rounding a value with the given sign in mode mode
// increments its magnitude.
func (mode RoundingMode) roundsUp(neg bool) bool {
	switch mode {
	case ToZero:
		return false
	case AwayFromZero:
		return true
	case ToNegativeInf:
		return neg
	case ToPositiveInf:
		return !neg
	}
	panic("binfloat: invalid rounding mode " + strconv.Itoa(int(mode)))
}

// ParseRoundingMode returns the rounding mode named by s. It accepts the
// constant names (ToZero, AwayFromZero, ToNegativeInf, ToPositiveInf) and the
// short names down, up, floor and ceil, ignoring case.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tozero", "down":
		return ToZero, nil
	case "awayfromzero", "up":
		return AwayFromZero, nil
	case "tonegativeinf", "floor":
		return ToNegativeInf, nil
	case "topositiveinf", "ceil":
		return ToPositiveInf, nil
	}
	return 0, Error.New("unknown rounding mode %q", s)
}

// Accuracy describes the rounding error produced by the most recent
// operation that generated a Float value, relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a Float.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate stringer -type=Accuracy

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// PrecExact is the relative precision reported for exact results.
const PrecExact = math.MaxInt

// An Outcome describes the information lost by a rounding operation.
//
// An inexact Outcome carries the error-bit position: the index, relative to
// the mantissa before rounding, of the least significant bit that was
// discarded or altered. With e the exponent before rounding, the rounding
// error is less than 2**(e + ErrBit()).
type Outcome struct {
	acc Accuracy
	bit uint
	rel int
}

// inexact returns the Outcome of a rounding that dropped the bits of a
// bc-bit mantissa below bit, rounding to prec bits.
func inexact(acc Accuracy, bit, bc, prec uint) Outcome {
	return Outcome{acc: acc, bit: bit, rel: int(prec) - int(bc-bit)}
}

// Exact reports whether no information was lost.
func (o Outcome) Exact() bool {
	return o.acc == Exact
}

// Acc returns the direction of the rounding error.
func (o Outcome) Acc() Accuracy {
	return o.acc
}

// ErrBit returns the error-bit position of an inexact result. It is 0 for
// exact results.
func (o Outcome) ErrBit() uint {
	return o.bit
}

// RelPrec returns the precision actually achieved relative to the requested
// one, prec - (bc - ErrBit()) with bc the bit length of the mantissa before
// rounding, or PrecExact if the result is exact.
func (o Outcome) RelPrec() int {
	if o.acc == Exact {
		return PrecExact
	}
	return o.rel
}

func (o Outcome) String() string {
	if o.acc == Exact {
		return "Exact"
	}
	return "Inexact(" + strconv.FormatUint(uint64(o.bit), 10) + ")"
}
