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
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/exifxmp/gps"
	"seehuhn.de/go/exifxmp/rational"
)

// Value is the value of an XMP property.  The concrete type is one of
// [Text], [Integer], [Real], [Bool], [Date], [Rational], [GPS], [LangAlt],
// [List] or [Struct].
type Value interface {
	isValue()
}

// Text is a simple text value.
type Text string

// Integer is a signed integer value.
type Integer int64

// Real is a floating point value.
type Real float64

// Bool is a boolean value.  XMP writes booleans as "True" and "False".
type Bool bool

// Date is a point in time together with the precision it was given in.
type Date struct {
	time.Time

	// Layout is the time layout used when the value is written.  If this
	// is empty, the full date and time are written.
	Layout string
}

// Rational is an exact fraction.
type Rational struct {
	rational.Rational[int64]
}

// GPS is a geographic coordinate.
type GPS struct {
	gps.Coordinate
}

// LangAlt holds the language alternatives of a text.  Map keys are
// language tags, with "x-default" for the default text.
type LangAlt map[string]string

// List is the value of a Bag, Seq or non-language Alt property.
type List []Value

// Struct is a structured value, mapping field names to values.
type Struct map[string]Value

func (Text) isValue()     {}
func (Integer) isValue()  {}
func (Real) isValue()     {}
func (Bool) isValue()     {}
func (Date) isValue()     {}
func (Rational) isValue() {}
func (GPS) isValue()      {}
func (LangAlt) isValue()  {}
func (List) isValue()     {}
func (Struct) isValue()   {}

// XDefault is the language key of the default entry of a [LangAlt].
const XDefault = "x-default"

// Default returns the default text of l.  If there is no "x-default"
// entry, the text for the alphabetically first language is returned.
func (l LangAlt) Default() string {
	if s, ok := l[XDefault]; ok {
		return s
	}
	keys := sortedKeys(l)
	if len(keys) == 0 {
		return ""
	}
	return l[keys[0]]
}

// canonicalLang normalises a language tag for use as a [LangAlt] key.
// The empty string and "x-default" map to "x-default".  Tags which cannot
// be parsed are kept unchanged.
func canonicalLang(tag string) string {
	if tag == "" || strings.EqualFold(tag, XDefault) {
		return XDefault
	}
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}

// Layouts for XMP dates, from the most to the least precise.
const (
	LayoutDateTimeFrac = "2006-01-02T15:04:05.999999999Z07:00"
	LayoutDateTime     = "2006-01-02T15:04:05Z07:00"
	LayoutDateMinute   = "2006-01-02T15:04Z07:00"
	LayoutDate         = "2006-01-02"
	LayoutMonth        = "2006-01"
	LayoutYear         = "2006"

	// LayoutTime is used for a time of day without a date, like the GPS
	// time stamp.
	LayoutTime = "15:04:05"
)

var dateLayouts = []string{
	LayoutDateTimeFrac,
	LayoutDateTime,
	LayoutDateMinute,
	"2006-01-02T15:04:05", // no zone given
	"2006-01-02T15:04",
	LayoutDate,
	LayoutMonth,
	LayoutYear,
	LayoutTime,
}

// ParseDate parses an XMP date string.  The returned value remembers the
// layout which matched, so that the date is written back with the same
// precision.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			if layout == LayoutDateTimeFrac && !strings.Contains(s, ".") {
				layout = LayoutDateTime
			}
			return Date{Time: t, Layout: layout}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: %w", s, ErrMalformed)
}

func (d Date) String() string {
	layout := d.Layout
	if layout == "" {
		layout = LayoutDateTime
	}
	return d.Time.Format(layout)
}

// formatScalar converts a simple value to the text written to an XMP
// packet.
func formatScalar(v Value) (string, error) {
	switch v := v.(type) {
	case Text:
		return string(v), nil
	case Integer:
		return strconv.FormatInt(int64(v), 10), nil
	case Real:
		return strconv.FormatFloat(float64(v), 'g', -1, 64), nil
	case Bool:
		if v {
			return "True", nil
		}
		return "False", nil
	case Date:
		return v.String(), nil
	case Rational:
		return v.Rational.String(), nil
	case GPS:
		return v.Format(gps.StyleXMP), nil
	}
	return "", fmt.Errorf("%T is not a simple value: %w", v, errNotSimple)
}

// parseScalar converts the text of a simple XMP value to a value of the
// given type.
func parseScalar(vt ValueType, s string) (Value, error) {
	switch {
	case vt.IsText(), vt == TypeLangAlt:
		return Text(s), nil
	}

	s = strings.TrimSpace(s)
	switch vt {
	case TypeInteger:
		x, err := strconv.ParseInt(strings.TrimPrefix(s, "+"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", s, ErrMalformed)
		}
		return Integer(x), nil
	case TypeReal:
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real %q: %w", s, ErrMalformed)
		}
		return Real(x), nil
	case TypeBool:
		switch strings.ToLower(s) {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return nil, fmt.Errorf("invalid boolean %q: %w", s, ErrMalformed)
	case TypeDate:
		d, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		return d, nil
	case TypeRational:
		r, err := rational.Parse[int64](s)
		if err != nil {
			return nil, fmt.Errorf("invalid rational %q: %w", s, ErrMalformed)
		}
		return Rational{r}, nil
	case TypeGPSCoordinate:
		c, err := gps.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", s, ErrMalformed)
		}
		return GPS{c}, nil
	}
	return Text(s), nil
}

// structFields gives the field types of structured value types.
var structFields = map[ValueType]map[string]ValueType{
	TypeFlash: {
		"Fired":      TypeBool,
		"Return":     TypeInteger,
		"Mode":       TypeText,
		"Function":   TypeBool,
		"RedEyeMode": TypeBool,
	},
}

// Fields returns the field types for properties with a structured value.
// The result is nil for simple properties.
func (d *Descriptor) Fields() map[string]ValueType {
	return structFields[d.ValueType]
}

var errNotSimple = errors.New("not a simple value")
