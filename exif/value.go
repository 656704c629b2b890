// seehuhn.de/go/exifxmp - EXIF and XMP metadata in Go
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package exif

import (
	"time"

	"seehuhn.de/go/exifxmp/rational"
)

// Value is the decoded value of a tag.
//
// The set of implementations is closed.  Array types with a single element
// are replaced by the corresponding scalar type during decoding.
type Value interface {
	isValue()
}

// Bytes is an array of unsigned bytes, or undecoded raw data.
type Bytes []byte

// Byte is a single unsigned byte.
type Byte uint8

// Text is a decoded string.
type Text string

// Uint16 is a single unsigned 16-bit integer.
type Uint16 uint16

// Uint16s is an array of unsigned 16-bit integers.
type Uint16s []uint16

// Uint32 is a single unsigned 32-bit integer.
type Uint32 uint32

// Uint32s is an array of unsigned 32-bit integers.
type Uint32s []uint32

// Int32 is a single signed 32-bit integer.
type Int32 int32

// Int32s is an array of signed 32-bit integers.
type Int32s []int32

// URational is a single unsigned rational.
type URational struct {
	rational.Rational[uint32]
}

// URationals is an array of unsigned rationals.
type URationals []rational.Rational[uint32]

// Rational is a single signed rational.
type Rational struct {
	rational.Rational[int32]
}

// Rationals is an array of signed rationals.
type Rationals []rational.Rational[int32]

// DateTime is a date and/or time read from an Ascii tag.
// Layout is the pattern the value was parsed with, and is used
// when the value is written back.
type DateTime struct {
	time.Time
	Layout string
}

// Enum is a numeric value which has been matched against an enumeration.
type Enum struct {
	Type  *EnumType
	Value uint32
}

func (Bytes) isValue()      {}
func (Byte) isValue()       {}
func (Text) isValue()       {}
func (Uint16) isValue()     {}
func (Uint16s) isValue()    {}
func (Uint32) isValue()     {}
func (Uint32s) isValue()    {}
func (Int32) isValue()      {}
func (Int32s) isValue()     {}
func (URational) isValue()  {}
func (URationals) isValue() {}
func (Rational) isValue()   {}
func (Rationals) isValue()  {}
func (DateTime) isValue()   {}
func (Enum) isValue()       {}

// String returns the member names of the enumeration value.
func (e Enum) String() string {
	if e.Type == nil {
		return formatUint(e.Value)
	}
	return e.Type.Format(e.Value)
}

// collapse replaces empty arrays by nil and single-element arrays by the
// corresponding scalar.
func collapse(v Value) Value {
	switch v := v.(type) {
	case Bytes:
		switch len(v) {
		case 0:
			return nil
		case 1:
			return Byte(v[0])
		}
	case Uint16s:
		switch len(v) {
		case 0:
			return nil
		case 1:
			return Uint16(v[0])
		}
	case Uint32s:
		switch len(v) {
		case 0:
			return nil
		case 1:
			return Uint32(v[0])
		}
	case Int32s:
		switch len(v) {
		case 0:
			return nil
		case 1:
			return Int32(v[0])
		}
	case URationals:
		switch len(v) {
		case 0:
			return nil
		case 1:
			return URational{v[0]}
		}
	case Rationals:
		switch len(v) {
		case 0:
			return nil
		case 1:
			return Rational{v[0]}
		}
	case Text:
		if v == "" {
			return nil
		}
	}
	return v
}

// Uints returns the elements of an integer-valued v as uint64 values.
// Signed values are only accepted if they are non-negative.
func Uints(v Value) ([]uint64, bool) {
	switch v := v.(type) {
	case Byte:
		return []uint64{uint64(v)}, true
	case Bytes:
		res := make([]uint64, len(v))
		for i, x := range v {
			res[i] = uint64(x)
		}
		return res, true
	case Uint16:
		return []uint64{uint64(v)}, true
	case Uint16s:
		res := make([]uint64, len(v))
		for i, x := range v {
			res[i] = uint64(x)
		}
		return res, true
	case Uint32:
		return []uint64{uint64(v)}, true
	case Uint32s:
		res := make([]uint64, len(v))
		for i, x := range v {
			res[i] = uint64(x)
		}
		return res, true
	case Int32:
		if v < 0 {
			return nil, false
		}
		return []uint64{uint64(v)}, true
	case Int32s:
		res := make([]uint64, len(v))
		for i, x := range v {
			if x < 0 {
				return nil, false
			}
			res[i] = uint64(x)
		}
		return res, true
	case Enum:
		return []uint64{uint64(v.Value)}, true
	}
	return nil, false
}

// Ints returns the elements of an integer-valued v as int64 values.
func Ints(v Value) ([]int64, bool) {
	switch v := v.(type) {
	case Int32:
		return []int64{int64(v)}, true
	case Int32s:
		res := make([]int64, len(v))
		for i, x := range v {
			res[i] = int64(x)
		}
		return res, true
	}
	u, ok := Uints(v)
	if !ok {
		return nil, false
	}
	res := make([]int64, len(u))
	for i, x := range u {
		res[i] = int64(x)
	}
	return res, true
}
