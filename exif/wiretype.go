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

// Package exif decodes and encodes EXIF/TIFF tag records.
//
// A tag record, see [RawTag], consists of a numeric tag identifier, a wire
// type, an element count and the raw value bytes.  The [Registry] maps tag
// identifiers to a [TagInfo] which describes the domain meaning of the tag.
// [Registry.Decode] turns a record into a typed [Value], and
// [Registry.Encode] performs the reverse operation.
//
// Nested directories (IFDs) are read using [DecodeIFD].  Decoded properties
// can be collected in a [Collection], which keeps at most one property per
// tag and iterates in ascending tag order.
//
// All multi-byte values are little-endian.
package exif

import (
	"strconv"

	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

// WireType is the on-disk representation code of a tag value.
type WireType uint16

// These are the wire types understood by the codec.  The numeric values are
// the TIFF type codes.
const (
	TypeByte      = WireType(exifcommon.TypeByte)
	TypeAscii     = WireType(exifcommon.TypeAscii)
	TypeUInt16    = WireType(exifcommon.TypeShort)
	TypeUInt32    = WireType(exifcommon.TypeLong)
	TypeURational = WireType(exifcommon.TypeRational)
	TypeRaw       = WireType(exifcommon.TypeUndefined)
	TypeInt32     = WireType(exifcommon.TypeSignedLong)
	TypeRational  = WireType(exifcommon.TypeSignedRational)
)

// The remaining TIFF types are only used to compute payload sizes when
// reading directories.
const (
	wireSByte  WireType = 6
	wireSShort WireType = 8
	wireFloat  WireType = 11
	wireDouble WireType = 12
)

// Size returns the size in bytes of one element of type t.
// The size of an unknown type is 0.
func (t WireType) Size() int {
	switch t {
	case TypeByte, TypeAscii, TypeUInt16, TypeUInt32, TypeURational, TypeInt32, TypeRational:
		return exifcommon.TagTypePrimitive(t).Size()
	case TypeRaw, wireSByte:
		// go-exif has no size for UNDEFINED
		return 1
	case wireSShort:
		return 2
	case wireFloat:
		return 4
	case wireDouble:
		return 8
	}
	return 0
}

func (t WireType) String() string {
	switch t {
	case TypeByte:
		return "Byte"
	case TypeAscii:
		return "Ascii"
	case TypeUInt16:
		return "UInt16"
	case TypeUInt32:
		return "UInt32"
	case TypeURational:
		return "URational"
	case TypeRaw:
		return "Raw"
	case TypeInt32:
		return "Int32"
	case TypeRational:
		return "Rational"
	}
	return "WireType(" + strconv.Itoa(int(t)) + ")"
}
