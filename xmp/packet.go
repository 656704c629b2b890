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

package xmp

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/exifxmp/gps"
	"seehuhn.de/go/exifxmp/rational"
)

// Packet represents an XMP packet.
//
// The property map is the only source of truth.  [Packet.Encode] and
// [Read] convert between packets and their RDF/XML representation.
type Packet struct {
	Properties map[Key]Property
	About      *url.URL
}

// NewPacket allocates a new, empty XMP packet.
func NewPacket() *Packet {
	return &Packet{
		Properties: make(map[Key]Property),
	}
}

// Set sets the value of a property.  The value is converted to the type
// declared for the property.  Values of integer properties with named
// values can be given by name, e.g. "RightTop" for tiff:Orientation.
// Setting a nil value removes the property.
func (p *Packet) Set(k Key, v any) error {
	if v == nil {
		p.Delete(k)
		return nil
	}
	val, err := Coerce(k, v)
	if err != nil {
		return err
	}
	if p.Properties == nil {
		p.Properties = make(map[Key]Property)
	}
	p.Properties[k] = Property{Key: k, Value: val, Priority: 1}
	return nil
}

// Delete removes a property from the packet.
func (p *Packet) Delete(k Key) {
	delete(p.Properties, k)
}

// List returns the properties of the packet, ordered by key.
func (p *Packet) List() []Property {
	res := make([]Property, 0, len(p.Properties))
	for _, k := range sortedKeys(p.Properties) {
		res = append(res, p.Properties[k])
	}
	return res
}

// Merge adds properties to the packet.  Where a key already has a value,
// the value with the higher priority is kept.
func (p *Packet) Merge(props []Property) {
	if p.Properties == nil {
		p.Properties = make(map[Key]Property)
	}
	for _, prop := range Fuse(props) {
		if old, ok := p.Properties[prop.Key]; ok && old.Priority >= prop.Priority {
			continue
		}
		p.Properties[prop.Key] = prop
	}
}

// Get returns the value of a property, converted to type T.  The second
// return value is false if the property is not set, or if the value cannot
// be converted to T.
//
// Besides the value types of this package, T can be string, int, int64,
// float64, bool, time.Time, []string, gps.Coordinate or
// rational.Rational[int64].
func Get[T any](p *Packet, k Key) (T, bool) {
	var res T
	prop, ok := p.Properties[k]
	if !ok || prop.Value == nil {
		return res, false
	}
	if v, ok := prop.Value.(T); ok {
		return v, true
	}

	d := k.Descriptor()
	v := prop.Value
	switch ptr := any(&res).(type) {
	case *Value:
		*ptr = v
	case *string:
		s, ok := valueString(d, v)
		if !ok {
			return res, false
		}
		*ptr = s
	case *int64:
		x, ok := valueInt(v)
		if !ok {
			return res, false
		}
		*ptr = x
	case *int:
		x, ok := valueInt(v)
		if !ok || x != int64(int(x)) {
			return res, false
		}
		*ptr = int(x)
	case *float64:
		x, ok := valueFloat(v)
		if !ok {
			return res, false
		}
		*ptr = x
	case *bool:
		b, ok := v.(Bool)
		if !ok {
			return res, false
		}
		*ptr = bool(b)
	case *time.Time:
		d, ok := v.(Date)
		if !ok {
			return res, false
		}
		*ptr = d.Time
	case *gps.Coordinate:
		c, ok := v.(GPS)
		if !ok {
			return res, false
		}
		*ptr = c.Coordinate
	case *rational.Rational[int64]:
		switch v := v.(type) {
		case Rational:
			*ptr = v.Rational
		case Integer:
			*ptr = rational.New(int64(v), 1)
		default:
			return res, false
		}
	case *[]string:
		var items []Value
		if list, isList := v.(List); isList {
			items = list
		} else {
			items = []Value{v}
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := valueString(d, item)
			if !ok {
				return res, false
			}
			out = append(out, s)
		}
		*ptr = out
	default:
		return res, false
	}
	return res, true
}

func valueString(d *Descriptor, v Value) (string, bool) {
	switch v := v.(type) {
	case Integer:
		if d != nil && d.Enum != nil && v >= 0 && v <= math.MaxUint32 {
			if name, ok := d.Enum.NameOf(uint32(v)); ok {
				return name, true
			}
		}
	case LangAlt:
		return v.Default(), true
	}
	s, err := formatScalar(v)
	return s, err == nil
}

func valueInt(v Value) (int64, bool) {
	switch v := v.(type) {
	case Integer:
		return int64(v), true
	case Real:
		if float64(v) == math.Trunc(float64(v)) && math.Abs(float64(v)) < 1<<63 {
			return int64(v), true
		}
	case Rational:
		if v.Den == 1 {
			return v.Num, true
		}
	case Text:
		x, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
		return x, err == nil
	}
	return 0, false
}

func valueFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Integer:
		return float64(v), true
	case Real:
		return float64(v), true
	case Rational:
		return v.Float64(), true
	case GPS:
		return v.Decimal(), true
	case Text:
		x, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		return x, err == nil
	}
	return 0, false
}

// Coerce converts a Go value into a value of the type declared for the
// property k.  See [Packet.Set] for details.
func Coerce(k Key, v any) (Value, error) {
	d := k.Descriptor()
	if d == nil {
		return nil, fmt.Errorf("key %d: %w", k, ErrUnknownKey)
	}
	return coerce(d, v)
}

// coerce converts a Go value into the value type declared for a property.
func coerce(d *Descriptor, v any) (Value, error) {
	if d.ValueType == TypeLangAlt {
		switch v := v.(type) {
		case LangAlt:
			return canonicalLangAlt(v), nil
		case map[string]string:
			return canonicalLangAlt(v), nil
		case string:
			return LangAlt{XDefault: v}, nil
		case Text:
			return LangAlt{XDefault: string(v)}, nil
		}
		return nil, coerceError(d, v)
	}

	if d.Cardinality == Single {
		return coerceElem(d, v)
	}

	var elems []any
	switch v := v.(type) {
	case List:
		for _, x := range v {
			elems = append(elems, x)
		}
	case []Value:
		for _, x := range v {
			elems = append(elems, x)
		}
	case []string:
		for _, x := range v {
			elems = append(elems, x)
		}
	case []int:
		for _, x := range v {
			elems = append(elems, x)
		}
	case []int64:
		for _, x := range v {
			elems = append(elems, x)
		}
	case []float64:
		for _, x := range v {
			elems = append(elems, x)
		}
	case []time.Time:
		for _, x := range v {
			elems = append(elems, x)
		}
	case []rational.Rational[int64]:
		for _, x := range v {
			elems = append(elems, x)
		}
	default:
		elems = []any{v}
	}
	list := make(List, len(elems))
	for i, x := range elems {
		elem, err := coerceElem(d, x)
		if err != nil {
			return nil, err
		}
		list[i] = elem
	}
	return list, nil
}

// coerceElem converts a Go value into a single element of the value type
// declared for a property.
func coerceElem(d *Descriptor, v any) (Value, error) {
	vt := d.ValueType
	switch vt {
	case TypeFlash:
		switch v := v.(type) {
		case Struct:
			return v, nil
		case uint32:
			return FlashValue(v), nil
		case int:
			if v >= 0 {
				return FlashValue(uint32(v)), nil
			}
		case Integer:
			if v >= 0 {
				return FlashValue(uint32(v)), nil
			}
		}
		return nil, coerceError(d, v)
	case TypeGPSCoordinate:
		switch v := v.(type) {
		case GPS:
			return v, nil
		case gps.Coordinate:
			return GPS{v}, nil
		case float64:
			return GPS{gps.FromDecimal(v, gpsAxis(d))}, nil
		case string:
			c, err := gps.ParseAxis(v, gpsAxis(d))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", d.QName(), errors.Join(ErrCoerce, err))
			}
			return GPS{c}, nil
		}
	}

	switch v := v.(type) {
	case Text:
		if !vt.IsText() {
			return coerceElem(d, string(v))
		}
		return v, nil
	case Integer:
		return coerceInt(d, int64(v))
	case Value:
		if valueFits(vt, v) {
			return v, nil
		}
		return nil, coerceError(d, v)
	case string:
		if vt == TypeInteger && d.Enum != nil {
			if x, ok := d.Enum.ValueOf(v); ok {
				return Integer(x), nil
			}
		}
		val, err := parseScalar(vt, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.QName(), errors.Join(ErrCoerce, err))
		}
		return val, nil
	case time.Time:
		if vt == TypeDate {
			return Date{Time: v}, nil
		}
	case bool:
		if vt == TypeBool {
			return Bool(v), nil
		}
	case rational.Rational[int64]:
		switch vt {
		case TypeRational:
			return Rational{v}, nil
		case TypeReal:
			return Real(v.Float64()), nil
		}
	case rational.Rational[uint32]:
		if vt == TypeRational {
			return Rational{rational.NewUnreduced(int64(v.Num), int64(v.Den))}, nil
		}
	case rational.Rational[int32]:
		if vt == TypeRational {
			return Rational{rational.NewUnreduced(int64(v.Num), int64(v.Den))}, nil
		}
	case float64:
		switch vt {
		case TypeReal:
			return Real(v), nil
		case TypeRational:
			return Rational{rational.Approximate[int64](v, 1e-9)}, nil
		case TypeInteger:
			if v == math.Trunc(v) && math.Abs(v) < 1<<63 {
				return Integer(v), nil
			}
		}
	case int:
		return coerceInt(d, int64(v))
	case int32:
		return coerceInt(d, int64(v))
	case int64:
		return coerceInt(d, v)
	case uint16:
		return coerceInt(d, int64(v))
	case uint32:
		return coerceInt(d, int64(v))
	case fmt.Stringer:
		if vt.IsText() {
			return Text(v.String()), nil
		}
	}
	return nil, coerceError(d, v)
}

func gpsAxis(d *Descriptor) gps.Axis {
	if strings.Contains(d.Name, "Longitude") {
		return gps.Longitude
	}
	return gps.Latitude
}

// valueFits reports whether v is a valid element value for properties of
// type vt.
func valueFits(vt ValueType, v Value) bool {
	switch v.(type) {
	case Text:
		return vt.IsText()
	case Integer:
		return vt == TypeInteger
	case Real:
		return vt == TypeReal
	case Bool:
		return vt == TypeBool
	case Date:
		return vt == TypeDate
	case Rational:
		return vt == TypeRational
	case GPS:
		return vt == TypeGPSCoordinate
	case Struct:
		return vt == TypeFlash
	}
	return false
}

func coerceInt(d *Descriptor, x int64) (Value, error) {
	switch d.ValueType {
	case TypeInteger:
		return Integer(x), nil
	case TypeReal:
		return Real(x), nil
	case TypeRational:
		return Rational{rational.New(x, 1)}, nil
	case TypeBool:
		return Bool(x != 0), nil
	}
	if d.ValueType.IsText() {
		return Text(strconv.FormatInt(x, 10)), nil
	}
	return nil, coerceError(d, x)
}

func canonicalLangAlt(m map[string]string) LangAlt {
	res := make(LangAlt, len(m))
	for lang, text := range m {
		res[canonicalLang(lang)] = text
	}
	return res
}

func coerceError(d *Descriptor, v any) error {
	return fmt.Errorf("%s: cannot use %T value: %w", d.QName(), v, ErrCoerce)
}

var (
	// ErrMalformed indicates invalid XMP data.
	ErrMalformed = errors.New("malformed XMP data")

	// ErrUnknownKey indicates a property name or key which is not part of
	// the supported schemas.
	ErrUnknownKey = errors.New("unknown XMP property")

	// ErrCoerce indicates a value which cannot be converted to the type
	// of a property.
	ErrCoerce = errors.New("incompatible value type")
)
