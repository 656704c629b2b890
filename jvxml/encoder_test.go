// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jvxml

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
)

func name(local string) xml.Name {
	return xml.Name{Local: local}
}

func TestMarshalFlush(t *testing.T) {
	var buf strings.Builder
	enc := NewEncoder(&buf)
	if err := enc.EncodeToken(xml.CharData("hello world")); err != nil {
		t.Fatalf("enc.EncodeToken: %v", err)
	}
	if buf.Len() > 0 {
		t.Fatalf("enc.EncodeToken caused write: %q", buf.String())
	}
	if err := enc.Flush(); err != nil {
		t.Fatalf("enc.Flush: %v", err)
	}
	if buf.String() != "hello world" {
		t.Fatalf("after enc.Flush, buf.String() = %q, want %q", buf.String(), "hello world")
	}
}

var encodeTokenTests = []struct {
	desc string
	toks []Token
	want string
	err  string
}{{
	desc: "prefixed start element",
	toks: []Token{
		xml.StartElement{Name: name("rdf:RDF")},
	},
	want: `<rdf:RDF>`,
}, {
	desc: "start element with no name",
	toks: []Token{
		xml.StartElement{Name: name("")},
	},
	err: "xml: start tag with no name",
}, {
	desc: "unresolved name space",
	toks: []Token{
		xml.StartElement{Name: xml.Name{Space: "http://purl.org/dc/elements/1.1/", Local: "title"}},
	},
	err: `xml: name "title" has unresolved name space "http://purl.org/dc/elements/1.1/"`,
}, {
	desc: "char data with escaped chars",
	toks: []Token{
		xml.CharData(" \t\n<b>&"),
	},
	want: " &#x9;\n&lt;b&gt;&amp;",
}, {
	desc: "comment",
	toks: []Token{
		xml.Comment("foo"),
	},
	want: `<!--foo-->`,
}, {
	desc: "comment with invalid content",
	toks: []Token{
		xml.Comment("foo-->"),
	},
	err: "xml: EncodeToken of Comment containing --> marker",
}, {
	desc: "proc instruction",
	toks: []Token{
		xml.ProcInst{Target: "xpacket", Inst: []byte(`end="w"`)},
	},
	want: `<?xpacket end="w"?>`,
}, {
	desc: "proc instruction with empty target",
	toks: []Token{
		xml.ProcInst{Target: "", Inst: []byte("Instruction")},
	},
	err: "xml: EncodeToken of ProcInst with invalid Target",
}, {
	desc: "end tag without start tag",
	toks: []Token{
		xml.EndElement{Name: name("rdf:li")},
	},
	err: "xml: end tag </rdf:li> without start tag",
}, {
	desc: "mismatching end tag",
	toks: []Token{
		xml.StartElement{Name: name("rdf:Seq")},
		xml.EndElement{Name: name("rdf:Bag")},
	},
	want: `<rdf:Seq>`,
	err:  "xml: end tag </rdf:Bag> does not match start tag <rdf:Seq>",
}, {
	desc: "attributes",
	toks: []Token{
		xml.StartElement{Name: name("rdf:li"), Attr: []xml.Attr{
			{Name: name("xml:lang"), Value: "x-default"},
			{Name: name(""), Value: "ignored"},
			{Name: name("test:q"), Value: `"quoted" & <tagged>`},
		}},
	},
	want: `<rdf:li xml:lang="x-default" test:q="&#34;quoted&#34; &amp; &lt;tagged&gt;">`,
}, {
	desc: "empty element",
	toks: []Token{
		EmptyElement{Name: name("rdf:Description"), Attr: []xml.Attr{
			{Name: name("rdf:about"), Value: ""},
		}},
	},
	want: `<rdf:Description rdf:about=""/>`,
}, {
	desc: "invalid token type",
	toks: []Token{
		&xml.StartElement{Name: name("foo")},
	},
	err: "xml: EncodeToken of invalid token type *xml.StartElement",
}}

func TestEncodeToken(t *testing.T) {
	for _, tt := range encodeTokenTests {
		t.Run(tt.desc, func(t *testing.T) {
			var buf strings.Builder
			enc := NewEncoder(&buf)
			var err error
			for j, tok := range tt.toks {
				err = enc.EncodeToken(tok)
				if err != nil && j < len(tt.toks)-1 {
					t.Fatalf("token #%d: %v", j, err)
				}
			}
			switch {
			case tt.err != "" && err == nil:
				t.Fatal("expected error; got none")
			case tt.err == "" && err != nil:
				t.Fatalf("got error: %v", err)
			case tt.err != "" && err != nil && tt.err != err.Error():
				t.Fatalf("error mismatch; got %v, want %v", err, tt.err)
			}
			if err := enc.Flush(); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("\ngot  %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestProcInstEncodeToken(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	if err := enc.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte("Instruction")}); err != nil {
		t.Fatalf("enc.EncodeToken: expected to be able to encode xml target ProcInst as first token, %s", err)
	}
	if err := enc.EncodeToken(xml.ProcInst{Target: "Target", Inst: []byte("Instruction")}); err != nil {
		t.Fatalf("enc.EncodeToken: expected to be able to add non-xml target ProcInst")
	}
	if err := enc.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte("Instruction")}); err == nil {
		t.Fatalf("enc.EncodeToken: expected to not be allowed to encode xml target ProcInst when not first token")
	}
}

func TestIndent(t *testing.T) {
	var buf strings.Builder
	enc := NewEncoder(&buf)
	enc.Indent("", " ")
	toks := []Token{
		xml.StartElement{Name: name("rdf:RDF")},
		xml.StartElement{Name: name("rdf:Description")},
		xml.StartElement{Name: name("dc:format")},
		xml.CharData("image/jpeg"),
		xml.EndElement{Name: name("dc:format")},
		xml.Comment("note"),
		EmptyElement{Name: name("xmp:BaseURL")},
		xml.EndElement{Name: name("rdf:Description")},
		xml.EndElement{Name: name("rdf:RDF")},
	}
	for _, tok := range toks {
		if err := enc.EncodeToken(tok); err != nil {
			t.Fatal(err)
		}
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	want := `<rdf:RDF>
 <rdf:Description>
  <dc:format>image/jpeg</dc:format>
  <!--note-->
  <xmp:BaseURL/>
 </rdf:Description>
</rdf:RDF>`
	if got := buf.String(); got != want {
		t.Errorf("\ngot\n%s\nwant\n%s", got, want)
	}
}

func TestIsName(t *testing.T) {
	good := []string{"rdf:li", "_x", "exifEX:LensModel", "a-b.c", "Größe"}
	bad := []string{"", "1abc", "-x", "a b", "a<b"}
	for _, s := range good {
		if !IsName([]byte(s)) {
			t.Errorf("%q is expected to be a valid name", s)
		}
	}
	for _, s := range bad {
		if IsName([]byte(s)) {
			t.Errorf("%q is expected to be invalid", s)
		}
	}
}

var closeTests = []struct {
	desc string
	toks []Token
	want string
	err  string
}{{
	desc: "unclosed start element",
	toks: []Token{
		xml.StartElement{Name: name("foo")},
	},
	want: `<foo>`,
	err:  "unclosed tag <foo>",
}, {
	desc: "closed element",
	toks: []Token{
		xml.StartElement{Name: name("foo")},
		xml.EndElement{Name: name("foo")},
	},
	want: `<foo></foo>`,
}}

func TestClose(t *testing.T) {
	for _, tt := range closeTests {
		t.Run(tt.desc, func(t *testing.T) {
			var out strings.Builder
			enc := NewEncoder(&out)
			for j, tok := range tt.toks {
				if err := enc.EncodeToken(tok); err != nil {
					t.Fatalf("token #%d: %v", j, err)
				}
			}
			err := enc.Close()
			switch {
			case tt.err != "" && err == nil:
				t.Error(" expected error; got none")
			case tt.err == "" && err != nil:
				t.Errorf(" got error: %v", err)
			case tt.err != "" && err != nil && tt.err != err.Error():
				t.Errorf(" error mismatch; got %v, want %v", err, tt.err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("\ngot  %v\nwant %v", got, tt.want)
			}
			if err := enc.EncodeToken(xml.Comment("foo")); err == nil {
				t.Errorf("unexpected success when encoding after Close")
			}
		})
	}
}
