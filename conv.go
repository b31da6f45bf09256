// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binfloat

import (
	"fmt"
	"strings"
)

// String formats x like x.Text(10).
func (x *Float) String() string {
	return x.Text(10)
}

// Text returns x as mant "p" exp, with the mantissa written in the given base
// and the exponent as a signed decimal number: for instance 13p-2 is 13 * 2**-2
// and -0x1bp+4 is -27 * 2**4. Bases 2, 8 and 16 carry a prefix; only they and
// base 10 can be read back by Parse.
func (x *Float) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.Append(nil, base))
}

// Append appends to buf the string form of x, as generated by x.Text, and
// returns the extended buffer.
func (x *Float) Append(buf []byte, base int) []byte {
	m := x.mant.Text(base)
	if x.mant.neg {
		buf = append(buf, '-')
		m = m[1:]
	}
	switch base {
	case 2:
		buf = append(buf, "0b"...)
	case 8:
		buf = append(buf, "0o"...)
	case 16:
		buf = append(buf, "0x"...)
	}
	buf = append(buf, m...)
	buf = append(buf, 'p')
	if x.exp.Sign() >= 0 {
		buf = append(buf, '+')
	}
	return append(buf, x.exp.Text(10)...)
}

// Format implements fmt.Formatter. The verbs 'v', 's' and 'd' print x in base
// 10, 'b' in base 2, 'o' in base 8, 'x' and 'X' in base 16.
func (x *Float) Format(s fmt.State, format rune) {
	base := 10
	switch format {
	case 'v', 's', 'd':
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'x', 'X':
		base = 16
	default:
		fmt.Fprintf(s, "%%!%c(*binfloat.Float=%s)", format, x.String())
		return
	}
	t := x.Text(base)
	if format == 'X' {
		t = strings.ToUpper(t)
	}
	fmt.Fprint(s, t)
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be of the form accepted by Parse. If the operation failed,
// the value of z is undefined but the returned value is nil.
func (z *Float) SetString(s string) (*Float, bool) {
	if f, err := z.Parse(s); err == nil {
		return f, true
	}
	return nil, false
}

// Parse parses s which must contain the text representation of a Float and
// sets z to its exact value. The value is not canonicalized. The entire string
// must be valid. The number must be of the form:
//
//     number   = mantissa [ exponent ] .
//     mantissa = [ sign ] [ prefix ] digits .
//     exponent = ( "p" | "P" ) [ sign ] decimals .
//     sign     = "+" | "-" .
//     prefix   = "0" ( "b" | "B" | "o" | "O" | "x" | "X" ) .
//
// An underscore character ``_'' may appear between a base prefix and an
// adjacent digit, and between successive digits. A missing exponent means 0.
func (z *Float) Parse(s string) (*Float, error) {
	ms, es := s, ""
	if i := strings.LastIndexAny(s, "pP"); i >= 0 {
		ms, es = s[:i], s[i+1:]
		if es == "" {
			return nil, Error.New("missing exponent in %q", s)
		}
	}
	if _, ok := z.mant.SetString(ms, 0); !ok {
		return nil, Error.New("invalid mantissa in %q", s)
	}
	if es == "" {
		z.exp.setWord(false, 0)
		return z, nil
	}
	if strings.ContainsAny(es, "_xXbBoO") {
		return nil, Error.New("exponent must be a decimal integer in %q", s)
	}
	if _, ok := z.exp.SetString(es, 10); !ok {
		return nil, Error.New("invalid exponent in %q", s)
	}
	return z, nil
}

// ParseFloat is like new(Float).Parse(s).
func ParseFloat(s string) (*Float, error) {
	return new(Float).Parse(s)
}
