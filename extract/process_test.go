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
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/exifxmp/gps"
	"seehuhn.de/go/exifxmp/rational"
	"seehuhn.de/go/exifxmp/xmp"
)

func byteList(s string) xmp.List {
	res := make(xmp.List, len(s))
	for i := 0; i < len(s); i++ {
		res[i] = xmp.Integer(s[i])
	}
	return res
}

func rat(num, den int64) xmp.Rational {
	return xmp.Rational{Rational: rational.NewUnreduced(num, den)}
}

func TestProcess(t *testing.T) {
	cases := []struct {
		desc string
		key  xmp.Key
		in   xmp.Value
		want xmp.Value
	}{
		{
			desc: "GPS time stamp",
			key:  xmp.ExifGPSTimeStamp,
			in:   xmp.List{rat(10, 1), rat(30, 1), rat(15, 1)},
			want: xmp.Date{Time: time.Date(0, 1, 1, 10, 30, 15, 0, time.UTC), Layout: xmp.LayoutTime},
		},
		{
			desc: "GPS version",
			key:  xmp.ExifGPSVersionID,
			in:   xmp.List{xmp.Integer(2), xmp.Integer(3), xmp.Integer(0), xmp.Integer(0)},
			want: xmp.Text("2.3.0.0"),
		},
		{
			desc: "padded text",
			key:  xmp.TIFFMake,
			in:   xmp.Text("Canon\x00\x00"),
			want: xmp.Text("Canon"),
		},
		{
			desc: "byte text",
			key:  xmp.ExifVersion,
			in:   byteList("0230"),
			want: xmp.Text("0230"),
		},
		{
			desc: "user comment",
			key:  xmp.ExifUserComment,
			in:   byteList("ASCII\x00\x00\x00hello\x00"),
			want: xmp.LangAlt{xmp.XDefault: "hello"},
		},
		{
			desc: "unicode user comment",
			key:  xmp.ExifUserComment,
			in:   byteList("UNICODE\x00h\x00i\x00"),
			want: xmp.LangAlt{xmp.XDefault: "hi"},
		},
		{
			desc: "rational from pair",
			key:  xmp.ExifFNumber,
			in:   xmp.List{xmp.Integer(28), xmp.Integer(10)},
			want: rat(28, 10),
		},
		{
			desc: "single rational",
			key:  xmp.ExifFocalLength,
			in:   xmp.List{rat(50, 1)},
			want: rat(50, 1),
		},
		{
			desc: "flash",
			key:  xmp.ExifFlash,
			in:   xmp.Integer(0x19),
			want: xmp.Struct{
				"Fired":      xmp.Bool(true),
				"Return":     xmp.Integer(0),
				"Mode":       xmp.Text("1"),
				"Function":   xmp.Bool(true),
				"RedEyeMode": xmp.Bool(false),
			},
		},
		{
			desc: "ordered array",
			key:  xmp.DCCreator,
			in:   xmp.Text("Me"),
			want: xmp.List{xmp.Text("Me")},
		},
		{
			desc: "integer array",
			key:  xmp.ExifISOSpeedRatings,
			in:   xmp.Integer(100),
			want: xmp.List{xmp.Integer(100)},
		},
		{
			desc: "EXIF date",
			key:  xmp.ExifDateTimeOriginal,
			in:   xmp.Text("2024:05:17 10:30:00"),
			want: xmp.Date{Time: time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC), Layout: exifDateLayout},
		},
		{
			desc: "XMP date",
			key:  xmp.XMPCreateDate,
			in:   xmp.Text("2024-05-17"),
			want: xmp.Date{Time: time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), Layout: xmp.LayoutDate},
		},
		{
			desc: "enumeration given as text",
			key:  xmp.TIFFOrientation,
			in:   xmp.Text("6"),
			want: xmp.Integer(6),
		},
		{
			desc: "language alternative",
			key:  xmp.DCTitle,
			in:   xmp.Text("title"),
			want: xmp.LangAlt{xmp.XDefault: "title"},
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			in := xmp.Property{Key: c.key, Value: c.in, Priority: 0.2}
			once := Process(in)
			if d := cmp.Diff(c.want, once.Value); d != "" {
				t.Fatalf("unexpected value (-want +got):\n%s", d)
			}
			if once.Key != c.key || once.Priority != 0.2 {
				t.Errorf("key or priority changed: %v", once)
			}

			twice := Process(once)
			if d := cmp.Diff(once, twice); d != "" {
				t.Errorf("second pass changed the value (-once +twice):\n%s", d)
			}
		})
	}
}

func TestProcessGPS(t *testing.T) {
	props := []xmp.Property{
		{Key: xmp.ExifGPSLatitudeRef, Value: xmp.Text("N"), Priority: 0.2},
		{Key: xmp.ExifGPSLatitude, Value: xmp.List{rat(34, 1), rat(15, 1), rat(22, 1)}, Priority: 0.2},
		{Key: xmp.ExifGPSLongitude, Value: xmp.List{rat(118, 1), rat(30, 1), rat(0, 1)}, Priority: 0.2},
		{Key: xmp.ExifGPSLongitudeRef, Value: xmp.Text("W"), Priority: 0.2},
		{Key: xmp.ExifGPSAltitude, Value: rat(100, 1), Priority: 0.2},
		{Key: xmp.ExifGPSLatitude, Value: xmp.List{rat(1, 1), rat(2, 1), rat(3, 1)}, Priority: 0.2},
		{Key: xmp.ExifGPSLatitudeRef, Value: xmp.Text("S"), Priority: 0.2},
	}
	out := ProcessGPS(props)

	byKey := make(map[xmp.Key][]xmp.Value)
	for _, p := range out {
		byKey[p.Key] = append(byKey[p.Key], p.Value)
	}
	for _, k := range []xmp.Key{xmp.ExifGPSLatitudeRef, xmp.ExifGPSLongitudeRef} {
		if len(byKey[k]) != 0 {
			t.Errorf("%s not removed", k)
		}
	}
	if len(out) != 3 || len(byKey[xmp.ExifGPSLatitude]) != 1 || len(byKey[xmp.ExifGPSLongitude]) != 1 {
		t.Fatalf("unexpected result %v", out)
	}

	lat := byKey[xmp.ExifGPSLatitude][0].(xmp.GPS)
	want := 34 + 15.0/60 + 22.0/3600
	if math.Abs(lat.Decimal()-want) > 1e-9 {
		t.Errorf("latitude %g, want %g", lat.Decimal(), want)
	}
	if s := lat.Format(gps.StyleDisplay); s != `34° 15' 22" N` {
		t.Errorf("unexpected display format %q", s)
	}

	lon := byKey[xmp.ExifGPSLongitude][0].(xmp.GPS)
	if lon.Decimal() != -118.5 {
		t.Errorf("longitude %g, want -118.5", lon.Decimal())
	}

	// processing is idempotent
	if d := cmp.Diff(out, ProcessGPS(out)); d != "" {
		t.Errorf("second pass changed the result (-once +twice):\n%s", d)
	}
}

func TestProcessGPSInvalid(t *testing.T) {
	props := []xmp.Property{
		{Key: xmp.ExifGPSLatitude, Value: xmp.List{rat(-1, 1)}, Priority: 0.2},
		{Key: xmp.ExifGPSLatitudeRef, Value: xmp.Text("N"), Priority: 0.2},
		{Key: xmp.ExifGPSLongitudeRef, Value: xmp.Text("E"), Priority: 0.2},
	}
	if out := ProcessGPS(props); len(out) != 0 {
		t.Errorf("unexpected result %v", out)
	}
}
