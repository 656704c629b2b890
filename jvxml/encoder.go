// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jvxml writes XML token streams with pre-assigned name space
// prefixes.
//
// The printer is derived from the one in encoding/xml.  Unlike the standard
// library, it never invents name space prefixes: element and attribute
// names are written exactly as given in the Local field (e.g. "rdf:li"),
// and the caller is responsible for declaring the prefixes.  In addition,
// the [EmptyElement] token produces self-closing tags.
package jvxml

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// An Encoder writes XML data to an output stream.
type Encoder struct {
	p printer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{printer{w: bufio.NewWriter(w)}}
}

// Indent sets the encoder to generate XML in which each element
// begins on a new indented line that starts with prefix and is followed by
// one or more copies of indent according to the nesting depth.
func (enc *Encoder) Indent(prefix, indent string) {
	enc.p.prefix = prefix
	enc.p.indent = indent
}

var (
	endComment  = []byte("-->")
	endProcInst = []byte("?>")
)

// EncodeToken writes the given XML token to the stream.
// It returns an error if start and end elements are not properly matched.
//
// Callers need to call [Encoder.Flush] or [Encoder.Close] when finished, to
// ensure that the XML is written to the underlying writer.
//
// A [xml.ProcInst] with Target set to "xml" is only allowed as the first
// token in the stream.
func (enc *Encoder) EncodeToken(t Token) error {
	p := &enc.p
	switch t := t.(type) {
	case xml.StartElement:
		if err := p.writeStart(t.Name, t.Attr, false); err != nil {
			return err
		}
	case EmptyElement:
		if err := p.writeStart(t.Name, t.Attr, true); err != nil {
			return err
		}
	case xml.EndElement:
		if err := p.writeEnd(t.Name); err != nil {
			return err
		}
	case xml.CharData:
		p.hasText = true
		escapeText(p, t, false)
	case xml.Comment:
		if bytes.Contains(t, endComment) {
			return fmt.Errorf("xml: EncodeToken of Comment containing --> marker")
		}
		p.writeIndent(0)
		p.WriteString("<!--")
		p.Write(t)
		p.WriteString("-->")
	case xml.ProcInst:
		// First token to be encoded which is also a ProcInst with target of xml
		// is the xml declaration. The only ProcInst where target of xml is allowed.
		if t.Target == "xml" && (p.w.Buffered() != 0 || p.putNewline) {
			return fmt.Errorf("xml: EncodeToken of ProcInst xml target only valid for xml declaration, first token encoded")
		}
		if !isNameString(t.Target) {
			return fmt.Errorf("xml: EncodeToken of ProcInst with invalid Target")
		}
		if bytes.Contains(t.Inst, endProcInst) {
			return fmt.Errorf("xml: EncodeToken of ProcInst containing ?> marker")
		}
		p.WriteString("<?")
		p.WriteString(t.Target)
		if len(t.Inst) > 0 {
			p.WriteByte(' ')
			p.Write(t.Inst)
		}
		p.WriteString("?>")
	default:
		return fmt.Errorf("xml: EncodeToken of invalid token type %T", t)
	}
	return p.cachedWriteError()
}

// Flush flushes any buffered XML to the underlying writer.
func (enc *Encoder) Flush() error {
	return enc.p.w.Flush()
}

// Close the Encoder, indicating that no more data will be written. It flushes
// any buffered XML to the underlying writer and returns an error if the
// written XML is invalid (e.g. by containing unclosed elements).
func (enc *Encoder) Close() error {
	return enc.p.Close()
}

type printer struct {
	w          *bufio.Writer
	indent     string
	prefix     string
	depth      int
	indentedIn bool
	putNewline bool
	hasText    bool
	tags       []string
	closed     bool
	err        error
}

func checkName(name xml.Name) error {
	if name.Space != "" {
		return fmt.Errorf("xml: name %q has unresolved name space %q", name.Local, name.Space)
	}
	return nil
}

// writeStart writes the given start element.
func (p *printer) writeStart(name xml.Name, attr []xml.Attr, empty bool) error {
	if name.Local == "" {
		return fmt.Errorf("xml: start tag with no name")
	}
	if err := checkName(name); err != nil {
		return err
	}

	p.writeIndent(1)
	p.WriteByte('<')
	p.WriteString(name.Local)

	for _, a := range attr {
		if a.Name.Local == "" {
			continue
		}
		if err := checkName(a.Name); err != nil {
			return err
		}
		p.WriteByte(' ')
		p.WriteString(a.Name.Local)
		p.WriteString(`="`)
		p.EscapeString(a.Value)
		p.WriteByte('"')
	}

	p.hasText = false
	if empty {
		p.WriteString("/>")
		p.writeIndent(-1)
	} else {
		p.tags = append(p.tags, name.Local)
		p.WriteByte('>')
	}
	return nil
}

func (p *printer) writeEnd(name xml.Name) error {
	if name.Local == "" {
		return fmt.Errorf("xml: end tag with no name")
	}
	if len(p.tags) == 0 {
		return fmt.Errorf("xml: end tag </%s> without start tag", name.Local)
	}
	if top := p.tags[len(p.tags)-1]; top != name.Local {
		return fmt.Errorf("xml: end tag </%s> does not match start tag <%s>", name.Local, top)
	}
	p.tags = p.tags[:len(p.tags)-1]

	p.writeIndent(-1)
	p.WriteByte('<')
	p.WriteByte('/')
	p.WriteString(name.Local)
	p.WriteByte('>')
	p.hasText = false
	return nil
}

// Write implements io.Writer
func (p *printer) Write(b []byte) (n int, err error) {
	if p.closed && p.err == nil {
		p.err = errors.New("use of closed Encoder")
	}
	if p.err == nil {
		n, p.err = p.w.Write(b)
	}
	return n, p.err
}

// WriteString implements io.StringWriter
func (p *printer) WriteString(s string) (n int, err error) {
	if p.closed && p.err == nil {
		p.err = errors.New("use of closed Encoder")
	}
	if p.err == nil {
		n, p.err = p.w.WriteString(s)
	}
	return n, p.err
}

// WriteByte implements io.ByteWriter
func (p *printer) WriteByte(c byte) error {
	if p.closed && p.err == nil {
		p.err = errors.New("use of closed Encoder")
	}
	if p.err == nil {
		p.err = p.w.WriteByte(c)
	}
	return p.err
}

// Close the Encoder, indicating that no more data will be written. It flushes
// any buffered XML to the underlying writer and returns an error if the
// written XML is invalid (e.g. by containing unclosed elements).
func (p *printer) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if err := p.w.Flush(); err != nil {
		return err
	}
	if len(p.tags) > 0 {
		return fmt.Errorf("unclosed tag <%s>", p.tags[len(p.tags)-1])
	}
	return nil
}

// return the bufio Writer's cached write error
func (p *printer) cachedWriteError() error {
	_, err := p.Write(nil)
	return err
}

// writeIndent starts a new line, unless indentation is disabled.  A
// positive depthDelta opens a new nesting level, a negative one closes it.
// Elements with text content are closed on the same line.
func (p *printer) writeIndent(depthDelta int) {
	if len(p.prefix) == 0 && len(p.indent) == 0 {
		return
	}
	if depthDelta < 0 {
		p.depth--
		if p.indentedIn || p.hasText {
			p.indentedIn = false
			return
		}
		p.indentedIn = false
	}
	if p.putNewline {
		p.WriteByte('\n')
	} else {
		p.putNewline = true
	}
	if len(p.prefix) > 0 {
		p.WriteString(p.prefix)
	}
	if len(p.indent) > 0 {
		for i := 0; i < p.depth; i++ {
			p.WriteString(p.indent)
		}
	}
	if depthDelta > 0 {
		p.depth++
		p.indentedIn = true
	} else if depthDelta == 0 {
		p.indentedIn = false
	}
}
