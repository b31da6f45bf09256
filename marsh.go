// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Floats.

package binfloat

import (
	"encoding/binary"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const floatGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The mantissa and exponent
// are encoded exactly, as is; the value is not canonicalized.
//
// Layout: version, flags (bit 0: negative mantissa, bit 1: negative exponent),
// then for the mantissa and the exponent a uvarint byte count followed by the
// big-endian magnitude.
func (x *Float) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}

	var mb, eb [1]Word
	m, e := x.mant.mag(&mb), x.exp.mag(&eb)

	// determine max. space (bytes) required for encoding
	sz := 1 + 1 + 2*binary.MaxVarintLen64 + (len(m)+len(e))*_S
	buf := make([]byte, 2, sz)

	buf[0] = floatGobVersion
	var b byte
	if x.mant.neg {
		b |= 1
	}
	if x.exp.neg {
		b |= 2
	}
	buf[1] = b

	buf = appendMag(buf, m)
	buf = appendMag(buf, e)
	return buf, nil
}

func appendMag(buf []byte, x nat) []byte {
	tmp := make([]byte, len(x)*_S)
	i := x.bytes(tmp)
	buf = binary.AppendUvarint(buf, uint64(len(tmp)-i))
	return append(buf, tmp[i:]...)
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Float) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Float{}
		return nil
	}

	if buf[0] != floatGobVersion {
		return Error.New("Float.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 {
		return Error.New("Float.GobDecode: buffer too small")
	}
	flags := buf[1]
	buf = buf[2:]

	var err error
	if buf, err = decodeMag(&z.mant, flags&1 != 0, buf); err != nil {
		return err
	}
	if buf, err = decodeMag(&z.exp, flags&2 != 0, buf); err != nil {
		return err
	}
	if len(buf) != 0 {
		return Error.New("Float.GobDecode: %d trailing bytes", len(buf))
	}
	return nil
}

func decodeMag(z *Int, neg bool, buf []byte) ([]byte, error) {
	n, k := binary.Uvarint(buf)
	if k <= 0 || uint64(len(buf)-k) < n {
		return nil, Error.New("Float.GobDecode: truncated magnitude")
	}
	buf = buf[k:]
	z.setMag(neg, z.abs.setBytes(buf[:n]))
	return buf[n:], nil
}

// MarshalText implements the encoding.TextMarshaler interface. Only the exact
// value is marshaled, in the format of x.String.
func (x *Float) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil, 10), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Float) UnmarshalText(text []byte) error {
	if _, err := z.Parse(string(text)); err != nil {
		return Error.New("cannot unmarshal %q into a *binfloat.Float (%v)", text, err)
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	if _, ok := z.SetString(string(text), 0); !ok {
		return Error.New("cannot unmarshal %q into a *binfloat.Int", text)
	}
	return nil
}
