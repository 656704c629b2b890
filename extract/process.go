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
	"bytes"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/exifxmp/gps"
	"seehuhn.de/go/exifxmp/internal/debug"
	"seehuhn.de/go/exifxmp/rational"
	"seehuhn.de/go/exifxmp/xmp"
)

// Process converts a raw property value, as found in the metadata tree,
// into the value type declared for the property.  For example, byte
// strings are converted to text, (hour, minute, second) triples to dates,
// and the bits of the EXIF Flash tag to a struct.
//
// Process is idempotent: applying it to an already processed property
// returns the property unchanged.  Values which cannot be converted are
// left as they are.
func Process(p xmp.Property) xmp.Property {
	d := p.Key.Descriptor()
	if d == nil || p.Value == nil {
		return p
	}

	v := p.Value
	switch vt := d.ValueType; {
	case vt == xmp.TypeDate:
		v = processDate(v)
	case vt == xmp.TypeFlash:
		if x, ok := v.(xmp.Integer); ok && x >= 0 && x <= math.MaxUint32 {
			v = xmp.FlashValue(uint32(x))
		}
	case vt == xmp.TypeRational:
		v = processRational(d, v)
	case vt == xmp.TypeInteger:
		v = processInteger(p.Key, v)
	case vt == xmp.TypeGPSCoordinate:
		if t, ok := v.(xmp.Text); ok {
			v = coerceOr(p.Key, string(t), v)
		}
	case vt.IsText(), vt == xmp.TypeLangAlt:
		v = processText(p.Key, v)
	}
	p.Value = fixShape(d, v)
	return p
}

func processDate(v xmp.Value) xmp.Value {
	switch v := v.(type) {
	case xmp.List:
		// hour, minute and second, as used by the GPS time stamp
		if len(v) != 3 {
			return v
		}
		var secs float64
		for _, x := range v {
			f, ok := number(x)
			if !ok || f < 0 {
				return v
			}
			secs = secs*60 + f
		}
		base := time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)
		t := base.Add(time.Duration(math.Round(secs * 1e9)))
		return xmp.Date{Time: t, Layout: xmp.LayoutTime}
	case xmp.Text:
		s := strings.TrimRight(string(v), "\x00 ")
		for _, l := range []struct{ exif, xmp string }{
			{"2006:01:02 15:04:05", exifDateLayout},
			{"2006:01:02", xmp.LayoutDate},
		} {
			if t, err := time.Parse(l.exif, s); err == nil {
				return xmp.Date{Time: t, Layout: l.xmp}
			}
		}
		if d, err := xmp.ParseDate(s); err == nil {
			return d
		}
	}
	return v
}

func processRational(d *xmp.Descriptor, v xmp.Value) xmp.Value {
	switch x := v.(type) {
	case xmp.List:
		if d.Cardinality != xmp.Single || len(x) != 2 {
			return v
		}
		num, ok1 := x[0].(xmp.Integer)
		den, ok2 := x[1].(xmp.Integer)
		if ok1 && ok2 {
			return xmp.Rational{Rational: rational.NewUnreduced(int64(num), int64(den))}
		}
	case xmp.Integer:
		return xmp.Rational{Rational: rational.NewUnreduced(int64(x), 1)}
	case xmp.Real:
		return xmp.Rational{Rational: rational.Approximate[int64](float64(x), 1e-9)}
	case xmp.Text:
		return coerceOr(d.Key, string(x), v)
	}
	return v
}

func processInteger(k xmp.Key, v xmp.Value) xmp.Value {
	switch x := v.(type) {
	case xmp.Rational:
		if x.Den == 1 {
			return xmp.Integer(x.Num)
		}
	case xmp.Real:
		if float64(x) == math.Trunc(float64(x)) && math.Abs(float64(x)) < 1<<53 {
			return xmp.Integer(x)
		}
	case xmp.Text:
		return coerceOr(k, string(x), v)
	}
	return v
}

func processText(k xmp.Key, v xmp.Value) xmp.Value {
	switch x := v.(type) {
	case xmp.List:
		data, ok := byteString(x)
		if !ok {
			return v
		}
		var s string
		switch k {
		case xmp.ExifGPSVersionID:
			parts := make([]string, len(data))
			for i, b := range data {
				parts[i] = strconv.Itoa(int(b))
			}
			return xmp.Text(strings.Join(parts, "."))
		case xmp.ExifUserComment:
			s = userComment(data)
		default:
			s = string(data)
		}
		return xmp.Text(strings.TrimRight(s, "\x00"))
	case xmp.Text:
		return xmp.Text(strings.TrimRight(string(x), "\x00"))
	case xmp.Integer:
		return xmp.Text(strconv.FormatInt(int64(x), 10))
	}
	return v
}

// userComment decodes the EXIF UserComment tag.  The first eight bytes
// give the character code.
func userComment(data []byte) string {
	if len(data) < 8 {
		return string(data)
	}
	code, text := data[:8], data[8:]
	switch {
	case bytes.HasPrefix(code, []byte("UNICODE")):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(text)
		if err == nil {
			return string(out)
		}
	case bytes.HasPrefix(code, []byte("ASCII")),
		bytes.HasPrefix(code, []byte("JIS")),
		bytes.Equal(code, make([]byte, 8)):
		// text follows the header
	default:
		return string(data)
	}
	return strings.TrimRight(string(text), " ")
}

// fixShape wraps or unwraps values to match the cardinality of the
// property.
func fixShape(d *xmp.Descriptor, v xmp.Value) xmp.Value {
	if d.ValueType == xmp.TypeLangAlt {
		if t, ok := v.(xmp.Text); ok {
			return xmp.LangAlt{xmp.XDefault: string(t)}
		}
		return v
	}

	list, isList := v.(xmp.List)
	switch d.Cardinality {
	case xmp.Bag, xmp.Seq, xmp.Alt:
		if !isList {
			return xmp.List{v}
		}
	case xmp.Single:
		if isList && len(list) == 1 {
			return list[0]
		}
	}
	return v
}

// ProcessGPS combines the GPS coordinates and their hemisphere references
// into single properties.  The reference properties are removed, all other
// properties are returned unchanged.  For each of the four coordinate
// properties the first value found is used.
func ProcessGPS(props []xmp.Property) []xmp.Property {
	type pair struct {
		mag    *xmp.Property
		ref    string
		hasRef bool
	}
	found := make([]pair, len(gpsPairs))

	var res []xmp.Property
	for _, p := range props {
		i, isRef, ok := gpsIndex(p.Key)
		if !ok {
			res = append(res, p)
			continue
		}
		if isRef {
			if t, ok := p.Value.(xmp.Text); ok && !found[i].hasRef {
				found[i].ref = strings.TrimSpace(strings.TrimRight(string(t), "\x00"))
				found[i].hasRef = true
			}
			continue
		}
		if found[i].mag == nil {
			p := p
			found[i].mag = &p
		}
	}

	for i, f := range found {
		if f.mag == nil {
			continue
		}
		c, ok := coordinate(f.mag.Value, f.ref, gpsPairs[i].axis)
		if !ok {
			debug.Logger.Debug().Str("property", f.mag.Key.String()).Msg("invalid GPS coordinate")
			continue
		}
		prop := *f.mag
		prop.Value = xmp.GPS{Coordinate: c}
		res = append(res, prop)
	}
	return res
}

var gpsPairs = []struct {
	value, ref xmp.Key
	axis       gps.Axis
}{
	{xmp.ExifGPSLatitude, xmp.ExifGPSLatitudeRef, gps.Latitude},
	{xmp.ExifGPSLongitude, xmp.ExifGPSLongitudeRef, gps.Longitude},
	{xmp.ExifGPSDestLatitude, xmp.ExifGPSDestLatitudeRef, gps.Latitude},
	{xmp.ExifGPSDestLongitude, xmp.ExifGPSDestLongitudeRef, gps.Longitude},
}

func gpsIndex(k xmp.Key) (idx int, isRef bool, ok bool) {
	for i, p := range gpsPairs {
		switch k {
		case p.value:
			return i, false, true
		case p.ref:
			return i, true, true
		}
	}
	return 0, false, false
}

// coordinate converts the value of a GPS coordinate property, together
// with the hemisphere reference, into a coordinate.
func coordinate(v xmp.Value, ref string, axis gps.Axis) (gps.Coordinate, bool) {
	var c gps.Coordinate
	switch v := v.(type) {
	case xmp.GPS:
		c = v.Coordinate
	case xmp.Text:
		var err error
		c, err = gps.ParseAxis(string(v), axis)
		if err != nil {
			return gps.Coordinate{}, false
		}
	case xmp.List, xmp.Rational, xmp.Integer:
		list, isList := v.(xmp.List)
		if !isList {
			list = xmp.List{v}
		}
		rs := make([]rational.Rational[uint32], len(list))
		for i, x := range list {
			r, ok := unsignedRational(x)
			if !ok {
				return gps.Coordinate{}, false
			}
			rs[i] = r
		}
		var err error
		c, err = gps.FromRationals(rs, ref)
		if err != nil {
			return gps.Coordinate{}, false
		}
		return c, true
	default:
		return gps.Coordinate{}, false
	}

	if c.Direction == gps.NoDirection && ref != "" {
		dir, ok := gps.ParseDirection(ref)
		if !ok {
			return gps.Coordinate{}, false
		}
		c.Direction = dir
	}
	return c, true
}

func unsignedRational(v xmp.Value) (rational.Rational[uint32], bool) {
	var num, den int64
	switch v := v.(type) {
	case xmp.Rational:
		num, den = v.Num, v.Den
	case xmp.Integer:
		num, den = int64(v), 1
	default:
		return rational.Rational[uint32]{}, false
	}
	if num < 0 || den < 0 || num > math.MaxUint32 || den > math.MaxUint32 {
		return rational.Rational[uint32]{}, false
	}
	return rational.NewUnreduced(uint32(num), uint32(den)), true
}

// byteString returns the bytes of a list of small integers.
func byteString(list xmp.List) ([]byte, bool) {
	if len(list) == 0 {
		return nil, false
	}
	res := make([]byte, len(list))
	for i, x := range list {
		b, ok := x.(xmp.Integer)
		if !ok || b < 0 || b > 255 {
			return nil, false
		}
		res[i] = byte(b)
	}
	return res, true
}

func number(v xmp.Value) (float64, bool) {
	switch v := v.(type) {
	case xmp.Integer:
		return float64(v), true
	case xmp.Rational:
		if v.Den == 0 {
			return 0, false
		}
		return v.Float64(), true
	case xmp.Real:
		return float64(v), true
	}
	return 0, false
}

func coerceOr(k xmp.Key, s string, fallback xmp.Value) xmp.Value {
	v, err := xmp.Coerce(k, s)
	if err != nil {
		return fallback
	}
	if list, ok := v.(xmp.List); ok && len(list) == 1 {
		return list[0]
	}
	return v
}
