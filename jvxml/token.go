// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jvxml

import (
	"encoding/xml"
	"unicode"
	"unicode/utf8"
)

// A Token is an interface holding one of the token types:
// [xml.StartElement], [xml.EndElement], [EmptyElement], [xml.CharData],
// [xml.Comment] or [xml.ProcInst].
type Token any

// An EmptyElement represents an XML element without content.  It is
// written as a self-closing tag, e.g. <rdf:Description rdf:about=""/>.
type EmptyElement struct {
	Name xml.Name
	Attr []xml.Attr
}

var (
	escQuot = []byte("&#34;") // shorter than "&quot;"
	escApos = []byte("&#39;") // shorter than "&apos;"
	escAmp  = []byte("&amp;")
	escLT   = []byte("&lt;")
	escGT   = []byte("&gt;")
	escTab  = []byte("&#x9;")
	escNL   = []byte("&#xA;")
	escCR   = []byte("&#xD;")
	escFFFD = []byte("�") // Unicode replacement character
)

// escapeText writes to w the properly escaped XML equivalent
// of the plain text data s. If escapeNewline is true, newline
// characters will be escaped.
func escapeText(w *printer, s []byte, escapeNewline bool) {
	var esc []byte
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRune(s[i:])
		i += width
		switch r {
		case '"':
			esc = escQuot
		case '\'':
			esc = escApos
		case '&':
			esc = escAmp
		case '<':
			esc = escLT
		case '>':
			esc = escGT
		case '\t':
			esc = escTab
		case '\n':
			if !escapeNewline {
				continue
			}
			esc = escNL
		case '\r':
			esc = escCR
		default:
			if !isInCharacterRange(r) || (r == 0xFFFD && width == 1) {
				esc = escFFFD
				break
			}
			continue
		}
		w.Write(s[last : i-width])
		w.Write(esc)
		last = i
	}
	w.Write(s[last:])
}

// EscapeString writes to p the properly escaped XML equivalent
// of the plain text data s.
func (p *printer) EscapeString(s string) {
	escapeText(p, []byte(s), true)
}

// Decide whether the given rune is in the XML Character Range, per
// the Char production of https://www.xml.com/axml/testaxml.htm,
// Section 2.2 Characters.
func isInCharacterRange(r rune) (inrange bool) {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// IsName reports whether s is a valid XML name.  Prefixed names like
// "rdf:li" are accepted.
func IsName(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	c, n := utf8.DecodeRune(s)
	if c == utf8.RuneError && n == 1 || !isNameStart(c) {
		return false
	}
	for n < len(s) {
		s = s[n:]
		c, n = utf8.DecodeRune(s)
		if c == utf8.RuneError && n == 1 || !isNameChar(c) {
			return false
		}
	}
	return true
}

func isNameString(s string) bool {
	return IsName([]byte(s))
}

func isNameStart(c rune) bool {
	return c == '_' || c == ':' || unicode.IsLetter(c)
}

func isNameChar(c rune) bool {
	return isNameStart(c) || c == '-' || c == '.' || c == 0xB7 ||
		unicode.IsDigit(c) || unicode.In(c, unicode.Mn, unicode.Mc)
}
