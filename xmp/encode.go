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
	"encoding/xml"
	"fmt"
	"net/url"

	"seehuhn.de/go/exifxmp/internal/debug"
	"seehuhn.de/go/exifxmp/jvxml"
)

// EncodeOptions control how an XMP packet is written.
type EncodeOptions struct {
	// Packet, if set, wraps the output in <?xpacket?> processing
	// instructions.
	Packet bool

	// Indent is the string used for one level of indentation.  If this is
	// empty, the output is not indented.
	Indent string

	// About is written as the rdf:about attribute of the rdf:Description
	// elements.
	About *url.URL
}

// Encode encodes the packet to an XML byte slice.  If opt is nil,
// default options are used and the packet's About field is written.
func (p *Packet) Encode(opt *EncodeOptions) ([]byte, error) {
	if opt == nil {
		opt = &EncodeOptions{Indent: "  "}
	}
	if opt.About == nil && p.About != nil {
		o := *opt
		o.About = p.About
		opt = &o
	}
	return Serialize(p.List(), opt)
}

// Serialize converts a list of properties to RDF/XML.
//
// The properties are first passed through [Fuse], so that only the value
// with the highest priority is written for every key.  Properties are
// grouped by name space, with one rdf:Description element per name space.
// Internal properties are not written.
func Serialize(props []Property, opt *EncodeOptions) ([]byte, error) {
	if opt == nil {
		opt = &EncodeOptions{}
	}

	groups := make(map[string][]Property)
	nsUsed := make(map[string]struct{})
	for _, prop := range Fuse(props) {
		d := prop.Key.Descriptor()
		if d == nil || d.Category == Internal || prop.Value == nil {
			continue
		}
		groups[d.Namespace] = append(groups[d.Namespace], prop)
		nsUsed[d.Namespace] = struct{}{}
		for _, q := range prop.Qualifiers {
			if qd := q.Key.Descriptor(); qd != nil {
				nsUsed[qd.Namespace] = struct{}{}
			}
		}
	}

	e, err := newEncoder(nsUsed, opt)
	if err != nil {
		return nil, err
	}

	about := ""
	if opt.About != nil {
		about = opt.About.String()
	}
	for _, ns := range sortedKeys(groups) {
		err = e.EncodeToken(xml.StartElement{
			Name: e.makeName(RDFNamespace, "Description"),
			Attr: []xml.Attr{
				{Name: e.makeName(RDFNamespace, "about"), Value: about},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, prop := range groups[ns] {
			err = e.writeProperty(prop)
			if err != nil {
				return nil, err
			}
		}
		err = e.EncodeToken(xml.EndElement{Name: e.makeName(RDFNamespace, "Description")})
		if err != nil {
			return nil, err
		}
	}

	err = e.Close()
	if err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// An encoder writes XMP data to a buffer.
type encoder struct {
	buf *bytes.Buffer
	*jvxml.Encoder
	nsToPrefix map[string]string
	prefixToNS map[string]string
	packet     bool
}

func newEncoder(nsUsed map[string]struct{}, opt *EncodeOptions) (*encoder, error) {
	nsToPrefix := make(map[string]string)
	prefixToNS := make(map[string]string)
	for _, ns := range []string{xmlNamespace, RDFNamespace, metaNamespace} {
		pfx := defaultPrefix[ns]
		nsToPrefix[ns] = pfx
		prefixToNS[pfx] = ns
	}
	// register default namespaces first, ...
	for ns := range nsUsed {
		if pfx, isDefault := defaultPrefix[ns]; isDefault {
			nsToPrefix[ns] = pfx
			prefixToNS[pfx] = ns
		}
	}
	// ... and then the others
	for _, ns := range sortedKeys(nsUsed) {
		if _, alreadyDone := nsToPrefix[ns]; alreadyDone {
			continue
		}
		pfx := getPrefix(nsToPrefix, ns)
		nsToPrefix[ns] = pfx
		prefixToNS[pfx] = ns
	}

	buf := &bytes.Buffer{}
	enc := jvxml.NewEncoder(buf)
	if opt.Indent != "" {
		enc.Indent("", opt.Indent)
	}
	e := &encoder{
		buf:        buf,
		Encoder:    enc,
		nsToPrefix: nsToPrefix,
		prefixToNS: prefixToNS,
		packet:     opt.Packet,
	}

	if opt.Packet {
		err := e.EncodeToken(xml.ProcInst{
			Target: "xpacket",
			Inst:   []byte("begin=\"\uFEFF\" id=\"W5M0MpCehiHzreSzNTczkc9d\""),
		})
		if err != nil {
			return nil, err
		}
		err = e.EncodeToken(xml.CharData("\n"))
		if err != nil {
			return nil, err
		}
	}

	err := e.EncodeToken(xml.StartElement{
		Name: e.makeName(metaNamespace, "xmpmeta"),
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:x"}, Value: metaNamespace},
		},
	})
	if err != nil {
		return nil, err
	}

	var attrs []xml.Attr
	for _, ns := range sortedKeys(e.nsToPrefix) {
		if ns == xmlNamespace || ns == metaNamespace {
			continue
		}
		pfx := e.nsToPrefix[ns]
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "xmlns:" + pfx}, Value: ns})
	}
	err = e.EncodeToken(xml.StartElement{
		Name: e.makeName(RDFNamespace, "RDF"),
		Attr: attrs,
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Close closes the encoder.  This must be called after all data has been
// written to the encoder.
func (e *encoder) Close() error {
	err := e.EncodeToken(xml.EndElement{
		Name: e.makeName(RDFNamespace, "RDF"),
	})
	if err != nil {
		return err
	}

	err = e.EncodeToken(xml.EndElement{
		Name: e.makeName(metaNamespace, "xmpmeta"),
	})
	if err != nil {
		return err
	}

	if e.packet {
		err = e.EncodeToken(xml.CharData("\n"))
		if err != nil {
			return err
		}

		err = e.EncodeToken(xml.ProcInst{
			Target: "xpacket",
			Inst:   []byte("end=\"w\""),
		})
		if err != nil {
			return err
		}
	}

	return e.Encoder.Close()
}

func (e *encoder) makeName(ns, local string) xml.Name {
	pfx, ok := e.nsToPrefix[ns]
	if !ok {
		panic("namespace not registered: " + ns)
	}
	return xml.Name{Local: pfx + ":" + local}
}

// writeProperty writes a property element.  Values which do not match the
// declared shape of the property are replaced by a comment.
func (e *encoder) writeProperty(prop Property) error {
	d := prop.Key.Descriptor()
	name := e.makeName(d.Namespace, d.Name)

	if len(prop.Qualifiers) > 0 {
		return e.writeQualified(name, d, prop)
	}

	switch d.Cardinality {
	case Bag, Seq:
		return e.writeArray(name, d, containerName[d.Cardinality], asList(prop.Value))
	case Alt:
		if d.ValueType == TypeLangAlt {
			if alt, ok := asLangAlt(prop.Value); ok {
				return e.writeLangAlt(name, alt)
			}
			return e.writeMismatch(d, prop.Value)
		}
		return e.writeArray(name, d, "Alt", asList(prop.Value))
	}
	return e.writeValue(name, d, prop.Value)
}

var containerName = map[Cardinality]string{
	Bag: "Bag",
	Seq: "Seq",
}

// writeValue writes a simple or struct value as a single element.
func (e *encoder) writeValue(name xml.Name, d *Descriptor, v Value) error {
	switch v := v.(type) {
	case Struct:
		err := e.EncodeToken(xml.StartElement{
			Name: name,
			Attr: []xml.Attr{
				{Name: e.makeName(RDFNamespace, "parseType"), Value: "Resource"},
			},
		})
		if err != nil {
			return err
		}
		for _, field := range sortedKeys(v) {
			err = e.writeValue(e.makeName(d.Namespace, field), d, v[field])
			if err != nil {
				return err
			}
		}
		return e.EncodeToken(xml.EndElement{Name: name})
	case List, LangAlt:
		return e.writeMismatch(d, v)
	}

	text, err := formatScalar(v)
	if err != nil {
		return e.writeMismatch(d, v)
	}
	return e.writeText(name, nil, text)
}

func (e *encoder) writeText(name xml.Name, attr []xml.Attr, text string) error {
	if text == "" {
		return e.EncodeToken(jvxml.EmptyElement{Name: name, Attr: attr})
	}
	err := e.EncodeToken(xml.StartElement{Name: name, Attr: attr})
	if err != nil {
		return err
	}
	err = e.EncodeToken(xml.CharData(text))
	if err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: name})
}

// writeArray writes an rdf:Bag, rdf:Seq or rdf:Alt container.
func (e *encoder) writeArray(name xml.Name, d *Descriptor, container string, items List) error {
	err := e.EncodeToken(xml.StartElement{Name: name})
	if err != nil {
		return err
	}
	cName := e.makeName(RDFNamespace, container)
	err = e.EncodeToken(xml.StartElement{Name: cName})
	if err != nil {
		return err
	}
	li := e.makeName(RDFNamespace, "li")
	for _, item := range items {
		err = e.writeValue(li, d, item)
		if err != nil {
			return err
		}
	}
	err = e.EncodeToken(xml.EndElement{Name: cName})
	if err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: name})
}

// writeLangAlt writes a language alternative.  The default entry comes
// first.
func (e *encoder) writeLangAlt(name xml.Name, alt LangAlt) error {
	err := e.EncodeToken(xml.StartElement{Name: name})
	if err != nil {
		return err
	}
	altName := e.makeName(RDFNamespace, "Alt")
	err = e.EncodeToken(xml.StartElement{Name: altName})
	if err != nil {
		return err
	}

	langs := sortedKeys(alt)
	for i, lang := range langs {
		if lang == XDefault {
			copy(langs[1:i+1], langs[:i])
			langs[0] = XDefault
			break
		}
	}
	li := e.makeName(RDFNamespace, "li")
	for _, lang := range langs {
		attr := []xml.Attr{{Name: e.makeName(xmlNamespace, "lang"), Value: lang}}
		err = e.writeText(li, attr, alt[lang])
		if err != nil {
			return err
		}
	}

	err = e.EncodeToken(xml.EndElement{Name: altName})
	if err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: name})
}

// writeQualified writes a simple value with qualifiers, using the
// rdf:value form.
func (e *encoder) writeQualified(name xml.Name, d *Descriptor, prop Property) error {
	if d.Cardinality != Single {
		return e.writeMismatch(d, prop.Value)
	}
	err := e.EncodeToken(xml.StartElement{
		Name: name,
		Attr: []xml.Attr{
			{Name: e.makeName(RDFNamespace, "parseType"), Value: "Resource"},
		},
	})
	if err != nil {
		return err
	}
	err = e.writeValue(e.makeName(RDFNamespace, "value"), d, prop.Value)
	if err != nil {
		return err
	}
	for _, q := range prop.Qualifiers {
		qd := q.Key.Descriptor()
		if qd == nil {
			continue
		}
		err = e.writeValue(e.makeName(qd.Namespace, qd.Name), qd, q.Value)
		if err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: name})
}

func (e *encoder) writeMismatch(d *Descriptor, v Value) error {
	debug.Logger.Debug().
		Str("property", d.QName()).
		Str("type", fmt.Sprintf("%T", v)).
		Msg("cannot represent value")
	msg := fmt.Sprintf(" %s: %T value cannot be represented ", d.QName(), v)
	return e.EncodeToken(xml.Comment(msg))
}

func asList(v Value) List {
	if list, ok := v.(List); ok {
		return list
	}
	return List{v}
}

func asLangAlt(v Value) (LangAlt, bool) {
	switch v := v.(type) {
	case LangAlt:
		return v, true
	case Text:
		return LangAlt{XDefault: string(v)}, true
	}
	return nil, false
}
