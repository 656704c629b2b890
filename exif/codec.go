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
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/exifxmp/internal/debug"
	"seehuhn.de/go/exifxmp/rational"
)

// RawTag is a tag record as stored in an image file.
type RawTag struct {
	ID    TagID
	Type  WireType
	Count uint32
	Data  []byte
}

// dateLayouts are the accepted EXIF date formats, tried in order.
var dateLayouts = []string{
	"2006:01:02 15:04:05",
	"2006:01:02",
	"15:04:05",
}

var wideText = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Decode converts a raw tag record into a typed value, using the default
// registry.
func Decode(raw RawTag) Value {
	return DefaultRegistry.Decode(raw)
}

// Encode converts a typed value into the wire representation, using the
// default registry.
func Encode(domain Domain, wire WireType, v Value) ([]byte, error) {
	return DefaultRegistry.Encode(domain, wire, v)
}

// Decode converts a raw tag record into a typed value.  The result is nil
// if the record holds no data.
//
// Decoding never fails.  Data which does not fit the registered domain of
// the tag is returned without domain interpretation, and trailing bytes
// which do not form a complete element are ignored.
func (r *Registry) Decode(raw RawTag) Value {
	info, _ := r.Lookup(raw.ID)
	var domain Domain
	if info != nil {
		domain = info.Domain
	}
	v := r.decodeWire(raw.Type, domain, raw.Data)
	if b, ok := v.(Bytes); ok && len(b) > 0 && isByteString(raw.Type, info) {
		return b
	}
	return r.refine(info, v)
}

// isByteString reports whether a Byte or Undefined value is a string of
// bytes, which is kept as an array even if it has only one element.
func isByteString(wire WireType, info *TagInfo) bool {
	if wire == TypeRaw {
		return true
	}
	return wire == TypeByte && info != nil && info.Type == TypeByte && info.Domain == DomainNone
}

func (r *Registry) decodeWire(wire WireType, domain Domain, data []byte) Value {
	le := binary.LittleEndian
	switch wire {
	case TypeAscii:
		if n := len(data); n > 0 && data[n-1] == 0 {
			data = data[:n-1]
		}
		text, err := r.TextEncoding.NewDecoder().Bytes(data)
		if err != nil {
			debug.Logger.Debug().Err(err).Msg("cannot decode ascii tag")
			return Bytes(slices.Clone(data))
		}
		return Text(strings.TrimSpace(string(text)))

	case TypeByte:
		if domain == DomainWideText {
			return decodeWide(data)
		}
		return Bytes(slices.Clone(data))

	case TypeUInt16:
		res := make(Uint16s, len(data)/2)
		for i := range res {
			res[i] = le.Uint16(data[2*i:])
		}
		return res

	case TypeUInt32:
		res := make(Uint32s, len(data)/4)
		for i := range res {
			res[i] = le.Uint32(data[4*i:])
		}
		return res

	case TypeInt32:
		res := make(Int32s, len(data)/4)
		for i := range res {
			res[i] = int32(le.Uint32(data[4*i:]))
		}
		return res

	case TypeURational:
		res := make(URationals, len(data)/8)
		for i := range res {
			res[i] = rational.NewUnreduced(le.Uint32(data[8*i:]), le.Uint32(data[8*i+4:]))
		}
		return res

	case TypeRational:
		res := make(Rationals, len(data)/8)
		for i := range res {
			num := int32(le.Uint32(data[8*i:]))
			den := int32(le.Uint32(data[8*i+4:]))
			res[i] = rational.NewUnreduced(num, den)
		}
		return res
	}

	if len(data) == 0 {
		return nil
	}
	return Bytes(slices.Clone(data))
}

func decodeWide(data []byte) Value {
	data = data[:len(data)&^1]
	text, err := wideText.NewDecoder().Bytes(data)
	if err != nil {
		debug.Logger.Debug().Err(err).Msg("cannot decode wide text tag")
		return Bytes(slices.Clone(data))
	}
	return Text(strings.TrimRight(string(text), "\x00"))
}

// refine applies the post-processing steps: arrays are collapsed, text is
// trimmed and the registered domain type is applied.
func (r *Registry) refine(info *TagInfo, v Value) Value {
	v = collapse(v)
	if t, ok := v.(Text); ok {
		t = Text(strings.TrimRight(strings.TrimSpace(string(t)), "\x00 "))
		if t == "" {
			return nil
		}
		v = t
	}
	if info == nil || v == nil {
		return v
	}

	switch info.Domain {
	case DomainDateTime:
		t, ok := v.(Text)
		if !ok {
			break
		}
		for _, layout := range dateLayouts {
			tm, err := time.Parse(layout, string(t))
			if err == nil {
				return DateTime{Time: tm, Layout: layout}
			}
		}
	case DomainEnum:
		if info.Enum == nil {
			break
		}
		u, ok := Uints(v)
		if !ok || len(u) != 1 || u[0] > math.MaxUint32 {
			break
		}
		if x := uint32(u[0]); info.Enum.Valid(x) {
			return Enum{Type: info.Enum, Value: x}
		}
		debug.Logger.Debug().Str("tag", info.Name).Uint64("value", u[0]).
			Msg("value not in enumeration")
	}
	return v
}

// Encode converts a typed value into its wire representation.  Ascii and
// wide text values are terminated by a single NUL character.
//
// An error wrapping [ErrNoEncoder] is returned for wire types which
// cannot be written, and one wrapping [ErrValueType] if v does not have
// a shape which can be stored using the given wire type.
func (r *Registry) Encode(domain Domain, wire WireType, v Value) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	le := binary.LittleEndian

	switch wire {
	case TypeAscii:
		var s string
		switch v := v.(type) {
		case Text:
			s = string(v)
		case DateTime:
			s = v.Format(layoutOf(v))
		default:
			return nil, valueTypeError(wire, v)
		}
		data, err := r.TextEncoding.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValueType, err)
		}
		return append(data, 0), nil

	case TypeByte:
		if t, ok := v.(Text); ok && domain == DomainWideText {
			data, err := wideText.NewEncoder().Bytes([]byte(string(t) + "\x00"))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrValueType, err)
			}
			return data, nil
		}
		if b, ok := v.(Bytes); ok {
			return slices.Clone([]byte(b)), nil
		}
		u, ok := Uints(v)
		if !ok {
			return nil, valueTypeError(wire, v)
		}
		res := make([]byte, len(u))
		for i, x := range u {
			if x > math.MaxUint8 {
				return nil, rangeError(wire, x)
			}
			res[i] = byte(x)
		}
		return res, nil

	case TypeRaw:
		switch v := v.(type) {
		case Bytes:
			return slices.Clone([]byte(v)), nil
		case Byte:
			return []byte{byte(v)}, nil
		case Text:
			return []byte(v), nil
		}
		return nil, valueTypeError(wire, v)

	case TypeUInt16:
		u, ok := Uints(v)
		if !ok {
			return nil, valueTypeError(wire, v)
		}
		res := make([]byte, 2*len(u))
		for i, x := range u {
			if x > math.MaxUint16 {
				return nil, rangeError(wire, x)
			}
			le.PutUint16(res[2*i:], uint16(x))
		}
		return res, nil

	case TypeUInt32:
		u, ok := Uints(v)
		if !ok {
			return nil, valueTypeError(wire, v)
		}
		res := make([]byte, 4*len(u))
		for i, x := range u {
			if x > math.MaxUint32 {
				return nil, rangeError(wire, x)
			}
			le.PutUint32(res[4*i:], uint32(x))
		}
		return res, nil

	case TypeInt32:
		s, ok := Ints(v)
		if !ok {
			return nil, valueTypeError(wire, v)
		}
		res := make([]byte, 4*len(s))
		for i, x := range s {
			if x < math.MinInt32 || x > math.MaxInt32 {
				return nil, rangeError(wire, x)
			}
			le.PutUint32(res[4*i:], uint32(int32(x)))
		}
		return res, nil

	case TypeURational:
		var rs []rational.Rational[uint32]
		switch v := v.(type) {
		case URational:
			rs = []rational.Rational[uint32]{v.Rational}
		case URationals:
			rs = v
		default:
			return nil, valueTypeError(wire, v)
		}
		res := make([]byte, 8*len(rs))
		for i, x := range rs {
			le.PutUint32(res[8*i:], x.Num)
			le.PutUint32(res[8*i+4:], x.Den)
		}
		return res, nil

	case TypeRational:
		var rs []rational.Rational[int32]
		switch v := v.(type) {
		case Rational:
			rs = []rational.Rational[int32]{v.Rational}
		case Rationals:
			rs = v
		default:
			return nil, valueTypeError(wire, v)
		}
		res := make([]byte, 8*len(rs))
		for i, x := range rs {
			le.PutUint32(res[8*i:], uint32(x.Num))
			le.PutUint32(res[8*i+4:], uint32(x.Den))
		}
		return res, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoEncoder, wire)
}

// EncodeProperty converts a property into a raw tag record.
func (r *Registry) EncodeProperty(p Property) (RawTag, error) {
	var domain Domain
	if info, ok := r.Lookup(p.ID); ok {
		domain = info.Domain
	}
	data, err := r.Encode(domain, p.Type, p.Value)
	if err != nil {
		return RawTag{}, fmt.Errorf("tag %s: %w", p.ID, err)
	}
	raw := RawTag{ID: p.ID, Type: p.Type, Data: data}
	if size := p.Type.Size(); size > 0 {
		raw.Count = uint32(len(data) / size)
	}
	return raw, nil
}

func layoutOf(d DateTime) string {
	if d.Layout != "" {
		return d.Layout
	}
	return dateLayouts[0]
}

func valueTypeError(wire WireType, v Value) error {
	return fmt.Errorf("%w: cannot store %T as %s", ErrValueType, v, wire)
}

func rangeError[T int64 | uint64](wire WireType, x T) error {
	return fmt.Errorf("%w: %d out of range for %s", ErrValueType, x, wire)
}

var (
	// ErrNoEncoder indicates a wire type which cannot be written.
	ErrNoEncoder = errors.New("exif: no encoder for wire type")

	// ErrValueType indicates a value which cannot be stored using the
	// requested wire type.
	ErrValueType = errors.New("exif: value does not fit wire type")
)
