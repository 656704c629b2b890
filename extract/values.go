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

package extract

import (
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/exifxmp/exif"
	"seehuhn.de/go/exifxmp/rational"
	"seehuhn.de/go/exifxmp/xmp"
)

// exifDateLayout is used for dates read from EXIF data.  EXIF dates carry
// no time zone.
const exifDateLayout = "2006-01-02T15:04:05"

// toValue converts a leaf value of the metadata tree into an XMP value.
// Byte strings and integer arrays become lists of integers, to be
// interpreted by [Process].
func toValue(v any) (xmp.Value, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case xmp.Value:
		return v, true
	case exif.Value:
		return exifValue(v)

	case string:
		return xmp.Text(v), true
	case []string:
		res := make(xmp.List, len(v))
		for i, s := range v {
			res[i] = xmp.Text(s)
		}
		return res, len(res) > 0
	case []byte:
		return intList(v), len(v) > 0
	case bool:
		return xmp.Bool(v), true
	case int:
		return xmp.Integer(v), true
	case int32:
		return xmp.Integer(v), true
	case int64:
		return xmp.Integer(v), true
	case uint8:
		return xmp.Integer(v), true
	case uint16:
		return xmp.Integer(v), true
	case uint32:
		return xmp.Integer(v), true
	case []uint16:
		return intList(v), len(v) > 0
	case []uint32:
		return intList(v), len(v) > 0
	case []int32:
		return intList(v), len(v) > 0
	case float64:
		return xmp.Real(v), true
	case float32:
		return xmp.Real(v), true
	case time.Time:
		return xmp.Date{Time: v}, true
	case rational.Rational[uint32]:
		return ratValue(v), true
	case rational.Rational[int32]:
		return ratValue(v), true
	case rational.Rational[int64]:
		return xmp.Rational{Rational: v}, true
	case []rational.Rational[uint32]:
		return ratList(v), len(v) > 0
	case []rational.Rational[int32]:
		return ratList(v), len(v) > 0
	}
	return nil, false
}

func exifValue(v exif.Value) (xmp.Value, bool) {
	switch v := v.(type) {
	case exif.Text:
		return xmp.Text(v), true
	case exif.Bytes:
		return intList(v), len(v) > 0
	case exif.Byte:
		return xmp.Integer(v), true
	case exif.Uint16:
		return xmp.Integer(v), true
	case exif.Uint32:
		return xmp.Integer(v), true
	case exif.Int32:
		return xmp.Integer(v), true
	case exif.Uint16s:
		return intList(v), len(v) > 0
	case exif.Uint32s:
		return intList(v), len(v) > 0
	case exif.Int32s:
		return intList(v), len(v) > 0
	case exif.URational:
		return ratValue(v.Rational), true
	case exif.Rational:
		return ratValue(v.Rational), true
	case exif.URationals:
		return ratList(v), len(v) > 0
	case exif.Rationals:
		return ratList(v), len(v) > 0
	case exif.DateTime:
		layout := exifDateLayout
		switch v.Layout {
		case "2006:01:02":
			layout = xmp.LayoutDate
		case "15:04:05":
			layout = xmp.LayoutTime
		}
		return xmp.Date{Time: v.Time, Layout: layout}, true
	case exif.Enum:
		return xmp.Integer(v.Value), true
	}
	return nil, false
}

type integer interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

func intList[T integer](xx []T) xmp.List {
	res := make(xmp.List, len(xx))
	for i, x := range xx {
		res[i] = xmp.Integer(x)
	}
	return res
}

func ratValue[T int32 | uint32](r rational.Rational[T]) xmp.Rational {
	return xmp.Rational{Rational: rational.NewUnreduced(int64(r.Num), int64(r.Den))}
}

func ratList[T int32 | uint32](rr []rational.Rational[T]) xmp.List {
	res := make(xmp.List, len(rr))
	for i, r := range rr {
		res[i] = ratValue(r)
	}
	return res
}

// isLangName reports whether name is usable as a key of a language
// alternative.
func isLangName(name string) bool {
	if name == xmp.XDefault {
		return true
	}
	_, err := language.Parse(name)
	return err == nil
}
