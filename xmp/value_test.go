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

import "testing"

func TestParseDate(t *testing.T) {
	cases := []struct {
		in     string
		layout string
	}{
		{"2024", LayoutYear},
		{"2024-05", LayoutMonth},
		{"2024-05-17", LayoutDate},
		{"2024-05-17T10:30+02:00", LayoutDateMinute},
		{"2024-05-17T10:30:15Z", LayoutDateTime},
		{"2024-05-17T10:30:15.25Z", LayoutDateTimeFrac},
		{"10:30:15", LayoutTime},
	}
	for _, c := range cases {
		d, err := ParseDate(c.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", c.in, err)
			continue
		}
		if d.Layout != c.layout {
			t.Errorf("ParseDate(%q): layout %q, want %q", c.in, d.Layout, c.layout)
		}
		if s := d.String(); s != c.in {
			t.Errorf("ParseDate(%q).String() = %q", c.in, s)
		}
	}

	if _, err := ParseDate("yesterday"); err == nil {
		t.Error("invalid date accepted")
	}
}

func TestLangAltDefault(t *testing.T) {
	cases := []struct {
		in   LangAlt
		want string
	}{
		{LangAlt{XDefault: "a", "de": "b"}, "a"},
		{LangAlt{"fr": "c", "de": "b"}, "b"},
		{LangAlt{}, ""},
	}
	for _, c := range cases {
		if got := c.in.Default(); got != c.want {
			t.Errorf("%v.Default() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCanonicalLang(t *testing.T) {
	cases := map[string]string{
		"":          XDefault,
		"X-Default": XDefault,
		"en-us":     "en-US",
		"de":        "de",
		"not a tag": "not a tag",
	}
	for in, want := range cases {
		if got := canonicalLang(in); got != want {
			t.Errorf("canonicalLang(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatScalar(t *testing.T) {
	cases := []struct {
		in   Value
		want string
	}{
		{Text("x"), "x"},
		{Integer(-3), "-3"},
		{Real(0.5), "0.5"},
		{Bool(false), "False"},
	}
	for _, c := range cases {
		got, err := formatScalar(c.in)
		if err != nil || got != c.want {
			t.Errorf("formatScalar(%v) = %q, %v", c.in, got, err)
		}
	}
	if _, err := formatScalar(List{}); err == nil {
		t.Error("list formatted as scalar")
	}
}
