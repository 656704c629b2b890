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
	"bytes"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/exifxmp/gps"
	"seehuhn.de/go/exifxmp/rational"
)

type testCase struct {
	desc    string
	in      *Packet
	pattern []string
}

func single(k Key, v Value) *Packet {
	return &Packet{
		Properties: map[Key]Property{
			k: {Key: k, Value: v, Priority: 1},
		},
	}
}

var testCases = []testCase{
	{
		desc:    "simple text value",
		in:      single(TIFFMake, Text("Canon")),
		pattern: []string{"<tiff:Make>Canon</tiff:Make>"},
	},
	{
		desc:    "XML markup in text value",
		in:      single(TIFFModel, Text("<b>test</b>")),
		pattern: []string{"<tiff:Model>&lt;b&gt;test&lt;/b&gt;</tiff:Model>"},
	},
	{
		desc: "ordered array",
		in:   single(DCCreator, List{Text("A"), Text("B")}),
		pattern: []string{
			"<dc:creator>",
			"<rdf:Seq>",
			"<rdf:li>A</rdf:li>",
			"<rdf:li>B</rdf:li>",
			"</rdf:Seq>",
			"</dc:creator>",
		},
	},
	{
		desc: "unordered array",
		in:   single(DCSubject, List{Text("cats"), Text("dogs")}),
		pattern: []string{
			"<dc:subject>",
			"<rdf:Bag>",
			"<rdf:li>cats</rdf:li>",
			"<rdf:li>dogs</rdf:li>",
			"</rdf:Bag>",
			"</dc:subject>",
		},
	},
	{
		desc: "integer array",
		in:   single(ExifISOSpeedRatings, List{Integer(100), Integer(200)}),
		pattern: []string{
			"<exif:ISOSpeedRatings>",
			"<rdf:Seq>",
			"<rdf:li>100</rdf:li>",
			"<rdf:li>200</rdf:li>",
			"</rdf:Seq>",
		},
	},
	{
		desc: "language alternatives",
		in:   single(DCTitle, LangAlt{"de": "Hallo", XDefault: "Hello"}),
		pattern: []string{
			"<dc:title>",
			"<rdf:Alt>",
			"<rdf:li xml:lang=\"x-default\">Hello</rdf:li>",
			"<rdf:li xml:lang=\"de\">Hallo</rdf:li>",
			"</rdf:Alt>",
			"</dc:title>",
		},
	},
	{
		desc: "struct value",
		in:   single(ExifFlash, FlashValue(0x19)),
		pattern: []string{
			"<exif:Flash rdf:parseType=\"Resource\">",
			"<exif:Fired>True</exif:Fired>",
			"<exif:Function>True</exif:Function>",
			"<exif:Mode>1</exif:Mode>",
			"<exif:RedEyeMode>False</exif:RedEyeMode>",
			"<exif:Return>0</exif:Return>",
			"</exif:Flash>",
		},
	},
	{
		desc:    "rational",
		in:      single(ExifFNumber, Rational{rational.NewUnreduced[int64](28, 10)}),
		pattern: []string{"<exif:FNumber>28/10</exif:FNumber>"},
	},
	{
		desc: "GPS coordinate",
		in: single(ExifGPSLatitude, GPS{gps.Coordinate{
			Degrees:   rational.New[uint32](34, 1),
			Minutes:   rational.New[uint32](15, 1),
			Seconds:   rational.New[uint32](22, 1),
			Direction: gps.North,
		}}),
		pattern: []string{"<exif:GPSLatitude>34,15,22N</exif:GPSLatitude>"},
	},
	{
		desc: "date",
		in: single(XMPModifyDate, Date{
			Time:   time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC),
			Layout: LayoutDateTime,
		}),
		pattern: []string{"<xmp:ModifyDate>2024-05-17T10:30:00Z</xmp:ModifyDate>"},
	},
	{
		desc: "date without time",
		in: single(PhotoshopDateCreated, Date{
			Time:   time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC),
			Layout: LayoutDate,
		}),
		pattern: []string{"<photoshop:DateCreated>2024-05-17</photoshop:DateCreated>"},
	},
	{
		desc: "boolean",
		in:   single(RightsMarked, Bool(true)),
		pattern: []string{
			"<xmpRights:Marked>True</xmpRights:Marked>",
		},
	},
	{
		desc: "qualifiers",
		in: &Packet{
			Properties: map[Key]Property{
				TIFFMake: {
					Key:   TIFFMake,
					Value: Text("Canon"),
					Qualifiers: []Property{
						{Key: XMPLabel, Value: Text("q"), Priority: 1},
					},
					Priority: 1,
				},
			},
		},
		pattern: []string{
			"<tiff:Make rdf:parseType=\"Resource\">",
			"<rdf:value>Canon</rdf:value>",
			"<xmp:Label>q</xmp:Label>",
			"</tiff:Make>",
		},
	},
	{
		desc: "about",
		in: &Packet{
			Properties: map[Key]Property{
				DCFormat: {Key: DCFormat, Value: Text("image/jpeg"), Priority: 1},
			},
			About: &url.URL{Scheme: "http", Host: "example.com", Path: "/a.jpg"},
		},
		pattern: []string{
			"<rdf:Description rdf:about=\"http://example.com/a.jpg\">",
			"<dc:format>image/jpeg</dc:format>",
			"</rdf:Description>",
		},
	},
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			body, err := tc.in.Encode(&EncodeOptions{Packet: true, Indent: "  "})
			if err != nil {
				t.Fatal(err)
			}

			bodyString := string(body)
			var parts []string
			for _, p := range tc.pattern {
				parts = append(parts, regexp.QuoteMeta(p))
			}
			pat := regexp.MustCompile(strings.Join(parts, `\s*`))
			if pat.FindString(bodyString) == "" {
				t.Fatalf("missing property %q in\n%s", tc.pattern, bodyString)
			}

			out, err := Read(bytes.NewReader(body))
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.in, out); d != "" {
				t.Fatalf("RoundTrip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestEncodeStructure(t *testing.T) {
	p := NewPacket()
	p.Set(DCTitle, "title")
	p.Set(DCCreator, []string{"me"})
	p.Set(TIFFMake, "Canon")
	p.Set(ExifExposureTime, "1/250")

	body, err := p.Encode(&EncodeOptions{Packet: true})
	if err != nil {
		t.Fatal(err)
	}
	s := string(body)

	if !strings.HasPrefix(s, "<?xpacket begin=\"\uFEFF\" id=\"W5M0MpCehiHzreSzNTczkc9d\"?>\n<x:xmpmeta xmlns:x=\"adobe:ns:meta/\">") {
		t.Errorf("unexpected start of packet:\n%s", s)
	}
	if !strings.HasSuffix(s, "</rdf:RDF></x:xmpmeta>\n<?xpacket end=\"w\"?>") {
		t.Errorf("unexpected end of packet:\n%s", s)
	}

	// one rdf:Description per name space
	if n := strings.Count(s, "<rdf:Description "); n != 3 {
		t.Errorf("found %d rdf:Description elements, want 3:\n%s", n, s)
	}
	for _, decl := range []string{
		`xmlns:rdf="` + RDFNamespace + `"`,
		`xmlns:dc="` + NSDublinCore + `"`,
		`xmlns:tiff="` + NSTIFF + `"`,
		`xmlns:exif="` + NSExif + `"`,
	} {
		if !strings.Contains(s, decl) {
			t.Errorf("missing name space declaration %s", decl)
		}
	}
	if strings.Contains(s, "xmlns:xmp=") {
		t.Error("unused name space declared")
	}

	body, err = p.Encode(&EncodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(body), "xpacket") || strings.Contains(string(body), "\n") {
		t.Errorf("unexpected packet wrapper or indentation:\n%s", body)
	}
}

func TestSerializePriority(t *testing.T) {
	props := []Property{
		{Key: TIFFModel, Value: Text("EXIF value"), Priority: 0.2},
		{Key: TIFFModel, Value: Text("XMP value"), Priority: 1},
	}
	body, err := Serialize(props, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := string(body)
	if !strings.Contains(s, "<tiff:Model>XMP value</tiff:Model>") {
		t.Errorf("XMP value missing:\n%s", s)
	}
	if strings.Contains(s, "EXIF value") {
		t.Errorf("EXIF value written:\n%s", s)
	}
}

func TestSerializeInternal(t *testing.T) {
	props := []Property{
		{Key: ExifGPSLatitudeRef, Value: Text("N"), Priority: 0.2},
		{Key: ExifGPSAltitude, Value: Rational{rational.New[int64](100, 1)}, Priority: 0.2},
	}
	body, err := Serialize(props, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := string(body)
	if strings.Contains(s, "GPSLatitudeRef") {
		t.Errorf("internal property written:\n%s", s)
	}
	if !strings.Contains(s, "<exif:GPSAltitude>100/1</exif:GPSAltitude>") {
		t.Errorf("GPSAltitude missing:\n%s", s)
	}
}

func TestSerializeMismatch(t *testing.T) {
	props := []Property{
		{Key: TIFFMake, Value: List{Text("a"), Text("b")}, Priority: 1},
		{Key: DCTitle, Value: Integer(7), Priority: 1},
	}
	body, err := Serialize(props, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := string(body)
	for _, want := range []string{
		"<!-- tiff:Make: xmp.List value cannot be represented -->",
		"<!-- dc:title: xmp.Integer value cannot be represented -->",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in\n%s", want, s)
		}
	}

	// the output is still well-formed
	if _, err := Deserialize(bytes.NewReader(body)); err != nil {
		t.Error(err)
	}
}

func TestSerializeNonLangAlt(t *testing.T) {
	d := TIFFMake.Descriptor()
	e, err := newEncoder(map[string]struct{}{NSTIFF: {}}, &EncodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	err = e.writeArray(e.makeName(NSTIFF, "Make"), d, "Alt", List{Text("first"), Text("second")})
	if err != nil {
		t.Fatal(err)
	}
	err = e.Close()
	if err != nil {
		t.Fatal(err)
	}
	want := "<tiff:Make><rdf:Alt><rdf:li>first</rdf:li><rdf:li>second</rdf:li></rdf:Alt></tiff:Make>"
	if !strings.Contains(e.buf.String(), want) {
		t.Errorf("unexpected output %s", e.buf.String())
	}
}
