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

// Package gps converts between the EXIF representation of GPS coordinates
// and decimal degrees.
//
// EXIF stores a coordinate as three unsigned rationals (degrees, minutes,
// seconds) together with a separate reference letter which gives the
// hemisphere.  XMP stores the same information as a single string, for
// example "34,15.36667N".
package gps

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"seehuhn.de/go/exifxmp/rational"
)

// Direction is the hemisphere of a coordinate.
type Direction byte

// These are the valid directions.
const (
	NoDirection Direction = 0
	North       Direction = 'N'
	South       Direction = 'S'
	East        Direction = 'E'
	West        Direction = 'W'
)

func (d Direction) String() string {
	if d == NoDirection {
		return ""
	}
	return string(rune(d))
}

// Negative reports whether coordinates in this direction have negative
// decimal values.
func (d Direction) Negative() bool {
	return d == South || d == West
}

// ParseDirection converts a reference letter like "N" into a Direction.
// Case is ignored and surrounding white space is removed.
func ParseDirection(ref string) (Direction, bool) {
	ref = strings.TrimSpace(ref)
	if len(ref) != 1 {
		return NoDirection, ref == ""
	}
	switch d := Direction(unicode.ToUpper(rune(ref[0]))); d {
	case North, South, East, West:
		return d, true
	}
	return NoDirection, false
}

// Axis selects between latitudes and longitudes.
type Axis uint8

// These are the two axes.
const (
	Latitude Axis = iota
	Longitude
)

func (a Axis) directions() (pos, neg Direction) {
	if a == Longitude {
		return East, West
	}
	return North, South
}

// Coordinate is a latitude or longitude in degrees, minutes and seconds.
type Coordinate struct {
	Degrees   rational.Rational[uint32]
	Minutes   rational.Rational[uint32]
	Seconds   rational.Rational[uint32]
	Direction Direction
}

// FromRationals constructs a coordinate from the value of an EXIF GPS tag
// and the value of the corresponding reference tag.  Missing minutes or
// seconds are taken as zero.
func FromRationals(rs []rational.Rational[uint32], ref string) (Coordinate, error) {
	if len(rs) == 0 || len(rs) > 3 {
		return Coordinate{}, fmt.Errorf("%w: %d components", ErrSyntax, len(rs))
	}
	dir, ok := ParseDirection(ref)
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: invalid reference %q", ErrSyntax, ref)
	}
	c := Coordinate{
		Minutes:   rational.New[uint32](0, 1),
		Seconds:   rational.New[uint32](0, 1),
		Direction: dir,
	}
	c.Degrees = rs[0]
	if len(rs) > 1 {
		c.Minutes = rs[1]
	}
	if len(rs) > 2 {
		c.Seconds = rs[2]
	}
	return c, nil
}

// FromDecimal converts signed decimal degrees into a coordinate.  The sign
// of v selects the direction along the given axis.  Seconds are
// approximated by a fraction.
func FromDecimal(v float64, axis Axis) Coordinate {
	pos, neg := axis.directions()
	dir := pos
	if v < 0 {
		dir = neg
		v = -v
	}

	deg := math.Floor(v)
	minF := (v - deg) * 60
	mins := math.Floor(minF)
	sec := rational.Approximate[uint32]((minF-mins)*60, 1e-5)
	if sec.Cmp(rational.New[uint32](60, 1)) >= 0 {
		sec = rational.New[uint32](0, 1)
		mins++
	}
	if mins >= 60 {
		mins = 0
		deg++
	}

	return Coordinate{
		Degrees:   rational.New(uint32(deg), 1),
		Minutes:   rational.New(uint32(mins), 1),
		Seconds:   sec,
		Direction: dir,
	}
}

// Rationals returns the degrees, minutes and seconds in the form used by
// EXIF.
func (c Coordinate) Rationals() []rational.Rational[uint32] {
	return []rational.Rational[uint32]{c.Degrees, c.Minutes, c.Seconds}
}

// Decimal returns the coordinate in decimal degrees.  Southern and western
// coordinates are negative.
func (c Coordinate) Decimal() float64 {
	v := c.Degrees.Float64() + c.Minutes.Float64()/60 + c.Seconds.Float64()/3600
	if c.Direction.Negative() != (v < 0) {
		v = -v
	}
	return v
}

// exact reports whether all components are whole numbers.
func (c Coordinate) exact() bool {
	return c.Degrees.Den == 1 && c.Minutes.Den == 1 && c.Seconds.Den == 1
}

// These are the styles accepted by [Coordinate.Format].
const (
	StyleXMP     = "X" // XMP GPSCoordinate, "34,15,22N" or "34,15.36667N"
	StyleDisplay = "D" // human readable, `34° 15' 22" N`
	StyleNumeric = "N" // signed decimal degrees
)

// Format converts the coordinate into a string.  If the components are not
// whole numbers, decimal values are used in place of the minutes and
// seconds.  Unknown styles are treated like [StyleDisplay].
func (c Coordinate) Format(style string) string {
	switch style {
	case StyleNumeric:
		return strconv.FormatFloat(c.Decimal(), 'f', -1, 64)
	case StyleXMP:
		if c.exact() {
			return fmt.Sprintf("%d,%d,%d%s", c.Degrees.Num, c.Minutes.Num, c.Seconds.Num, c.Direction)
		}
		abs := math.Abs(c.Decimal())
		deg := math.Floor(abs)
		mins := (abs - deg) * 60
		if mins >= 59.999995 {
			deg++
			mins = 0
		}
		return fmt.Sprintf("%d,%.5f%s", int(deg), mins, c.Direction)
	}

	var suffix string
	if c.Direction != NoDirection {
		suffix = " " + c.Direction.String()
	}
	if c.exact() {
		return fmt.Sprintf("%d° %d' %d\"%s", c.Degrees.Num, c.Minutes.Num, c.Seconds.Num, suffix)
	}
	abs := math.Abs(c.Decimal())
	return strconv.FormatFloat(abs, 'f', 6, 64) + "°" + suffix
}

// String returns the coordinate in [StyleDisplay].
func (c Coordinate) String() string {
	return c.Format(StyleDisplay)
}

// Parse reads a coordinate given as degrees, optionally followed by minutes
// and seconds, and an optional direction letter.  The components may be
// separated by any of `°'",` or white space, and can be integers, decimals
// or fractions.  Examples of accepted inputs are "34,15,22N",
// "34,15.36667N", `34° 15' 22" N` and "34.25611".
//
// A leading minus sign is read as a southern latitude.  Use [ParseAxis]
// for longitudes.
func Parse(s string) (Coordinate, error) {
	return ParseAxis(s, Latitude)
}

// ParseAxis is like [Parse], but a leading minus sign selects the negative
// direction of the given axis.  This reverses [Coordinate.Format] with
// [StyleNumeric].
func ParseAxis(s string, axis Axis) (Coordinate, error) {
	s = strings.TrimSpace(s)
	orig := s

	neg := false
	if rest, found := strings.CutPrefix(s, "-"); found {
		neg = true
		s = rest
	} else {
		s = strings.TrimPrefix(s, "+")
	}

	var dir Direction
	if n := len(s); n > 0 {
		if d, ok := ParseDirection(s[n-1:]); ok && d != NoDirection {
			dir = d
			s = s[:n-1]
		}
	}
	if neg {
		if dir != NoDirection {
			return Coordinate{}, fmt.Errorf("%w: sign and direction in %q", ErrSyntax, orig)
		}
		_, dir = axis.directions()
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '°', '\'', '"', ',', '′', '″':
			return true
		}
		return unicode.IsSpace(r)
	})
	if len(fields) == 0 || len(fields) > 3 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrSyntax, orig)
	}

	parts := make([]rational.Rational[uint32], len(fields))
	for i, f := range fields {
		var err error
		parts[i], err = parseComponent(f)
		if err != nil {
			return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrSyntax, f, err)
		}
	}
	c, err := FromRationals(parts, "")
	if err != nil {
		return Coordinate{}, err
	}
	c.Direction = dir
	return c, nil
}

// parseComponent reads one of degrees, minutes or seconds.  Decimals with
// too many digits for an exact fraction are approximated.
func parseComponent(f string) (rational.Rational[uint32], error) {
	if strings.Contains(f, "/") {
		return rational.Parse[uint32](f)
	}
	r, err := rational.ParseDecimal[uint32](f)
	if !errors.Is(err, rational.ErrRange) {
		return r, err
	}
	x, perr := strconv.ParseFloat(f, 64)
	if perr != nil || x < 0 || x > math.MaxUint32 {
		return r, err
	}
	return rational.Approximate[uint32](x, 1e-9), nil
}

// ErrSyntax indicates a string which cannot be parsed as a coordinate.
var ErrSyntax = errors.New("gps: invalid coordinate")
