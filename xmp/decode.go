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
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"

	"seehuhn.de/go/exifxmp/internal/debug"
)

// Read reads an XMP packet from a reader.
func Read(r io.Reader) (*Packet, error) {
	props, about, err := deserialize(r)
	if err != nil {
		return nil, err
	}
	p := NewPacket()
	p.About = about
	p.Merge(props)
	return p, nil
}

// Deserialize reads the properties from an RDF/XML document.  Properties
// are returned in document order, with priority 1.  Properties which are
// not part of the supported schemas, or which have malformed values, are
// skipped.
func Deserialize(r io.Reader) ([]Property, error) {
	props, _, err := deserialize(r)
	return props, err
}

func deserialize(r io.Reader) ([]Property, *url.URL, error) {
	dec := xml.NewDecoder(r)
	var props []Property
	var about *url.URL

	var level int
	descriptionLevel := -1
	propertyLevel := -1
	var propertyElement []xml.Token
tokenLoop:
	for {
		t, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := t.(type) {
		case xml.StartElement:
			if level > 0 || t.Name == elemRDFRoot {
				level++
			} else {
				continue tokenLoop
			}
			if descriptionLevel < 0 && t.Name == elemRDFDescription {
				for _, a := range t.Attr {
					if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
						continue
					}
					switch a.Name {
					case attrRDFAbout:
						if a.Value == "" {
							continue
						}
						aboutURL, _ := url.Parse(a.Value)
						if about == nil {
							about = aboutURL
						} else if aboutURL != nil && *aboutURL != *about {
							return nil, nil, fmt.Errorf("inconsistent `about` attributes: %s != %s: %w",
								about, aboutURL, ErrMalformed)
						}
					case attrXMLLang, attrRDFID, attrRDFNodeID, attrRDFDataType:
						// These are not allowed in XMP, and we simply ignore them.
					default:
						// Property elements with simple, unqualified values may
						// be replaced with attributes of the rdf:Description
						// element.
						n := &node{name: a.Name, text: a.Value}
						if prop, ok := parseProperty(n); ok {
							props = append(props, prop)
						}
					}
				}
				descriptionLevel = level
			} else if descriptionLevel >= 0 && propertyLevel < 0 {
				// start recording the XML tokens which make up a property element
				propertyLevel = level
				propertyElement = nil
			}
		case xml.EndElement:
			if level == propertyLevel {
				// propertyElement contains the XML tokens which make up the
				// property, including the start element, but not the end
				// element.
				n := buildTree(propertyElement)
				if prop, ok := parseProperty(n); ok {
					props = append(props, prop)
				}
				propertyLevel = -1
			}
			if level == descriptionLevel {
				descriptionLevel = -1
			}
			if level > 0 {
				level--
			}
		}

		if propertyLevel >= 0 {
			propertyElement = append(propertyElement, xml.CopyToken(t))
		}
	}
	return props, about, nil
}

// node is an element inside a property element.
type node struct {
	name     xml.Name
	attr     []xml.Attr
	text     string
	children []*node
}

// buildTree converts the tokens of an element into a tree.  The tokens
// start with the start element, the final end element is omitted.
func buildTree(tokens []xml.Token) *node {
	var stack []*node
	var root *node
	for _, t := range tokens {
		switch t := t.(type) {
		case xml.StartElement:
			n := &node{name: t.Name, attr: t.Attr}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}
	return root
}

// attrValue returns the value of the given attribute.
func (n *node) attrValue(name xml.Name) (string, bool) {
	for _, a := range n.attr {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// fieldAttrs returns the attributes which represent struct fields or
// qualifiers.
func (n *node) fieldAttrs() []xml.Attr {
	var res []xml.Attr
	for _, a := range n.attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		if a.Name.Space == RDFNamespace || a.Name.Space == xmlNamespace {
			continue
		}
		res = append(res, a)
	}
	return res
}

// parseProperty converts a property element into a property.  The second
// return value is false if the property is unknown or malformed.
func parseProperty(n *node) (Property, bool) {
	if n == nil {
		return Property{}, false
	}
	k, ok := KeyByName(n.name.Space, n.name.Local)
	if !ok {
		debug.Logger.Debug().
			Str("ns", n.name.Space).
			Str("name", n.name.Local).
			Msg("skipping unknown XMP property")
		return Property{}, false
	}
	d := k.Descriptor()

	prop := Property{Key: k, Priority: 1}
	if pt, _ := n.attrValue(attrRDFParseType); pt == "Resource" {
		if valueNode := n.child(elemRDFValue); valueNode != nil {
			prop.Value = parseValue(d, valueNode)
			for _, c := range n.children {
				if c == valueNode {
					continue
				}
				if q, ok := parseProperty(c); ok {
					prop.Qualifiers = append(prop.Qualifiers, q)
				}
			}
			return checkProperty(d, prop)
		}
	}

	if arr := n.arrayChild(); arr != nil {
		if d.ValueType == TypeLangAlt {
			alt := make(LangAlt)
			for _, li := range arr.children {
				if li.name != elemRDFLi {
					continue
				}
				lang, _ := li.attrValue(attrXMLLang)
				alt[canonicalLang(lang)] = li.text
			}
			prop.Value = alt
		} else {
			list := List{}
			for _, li := range arr.children {
				if li.name != elemRDFLi {
					continue
				}
				v := parseValue(d, li)
				if v == nil {
					continue
				}
				list = append(list, v)
			}
			prop.Value = list
		}
		return checkProperty(d, prop)
	}

	v := parseValue(d, n)
	if v == nil {
		return Property{}, false
	}
	switch d.Cardinality {
	case Bag, Seq:
		v = List{v}
	case Alt:
		if d.ValueType == TypeLangAlt {
			if text, isText := v.(Text); isText {
				lang, _ := n.attrValue(attrXMLLang)
				v = LangAlt{canonicalLang(lang): string(text)}
			}
		} else {
			v = List{v}
		}
	}
	prop.Value = v
	return checkProperty(d, prop)
}

// checkProperty makes sure that the value has the shape required by the
// descriptor.
func checkProperty(d *Descriptor, prop Property) (Property, bool) {
	var ok bool
	switch prop.Value.(type) {
	case nil:
		ok = false
	case List:
		ok = d.Cardinality != Single && d.ValueType != TypeLangAlt
	case LangAlt:
		ok = d.ValueType == TypeLangAlt
	default:
		ok = d.Cardinality == Single
	}
	if !ok {
		debug.Logger.Debug().
			Str("property", d.QName()).
			Msg("skipping XMP property with unexpected structure")
	}
	return prop, ok
}

// parseValue converts a simple or struct element into a value.  The result
// is nil if the element cannot be parsed.
func parseValue(d *Descriptor, n *node) Value {
	if res, ok := n.attrValue(attrRDFResource); ok {
		return Text(res)
	}

	var fieldNodes []*node
	var fieldAttrs []xml.Attr
	isStruct := false
	if pt, _ := n.attrValue(attrRDFParseType); pt == "Resource" {
		if valueNode := n.child(elemRDFValue); valueNode != nil {
			return parseValue(d, valueNode)
		}
		isStruct = true
		fieldNodes = n.children
		fieldAttrs = n.fieldAttrs()
	} else if desc := n.child(elemRDFDescription); desc != nil {
		isStruct = true
		fieldNodes = desc.children
		fieldAttrs = desc.fieldAttrs()
	} else if attrs := n.fieldAttrs(); len(attrs) > 0 && len(n.children) == 0 && strings.TrimSpace(n.text) == "" {
		isStruct = true
		fieldAttrs = attrs
	}

	if isStruct || d.ValueType == TypeFlash {
		fields := d.Fields()
		s := make(Struct)
		add := func(name, text string) {
			vt, ok := fields[name]
			if !ok {
				vt = TypeText
			}
			v, err := parseScalar(vt, text)
			if err != nil {
				debug.Logger.Debug().Err(err).Str("field", name).Msg("skipping XMP struct field")
				return
			}
			s[name] = v
		}
		for _, a := range fieldAttrs {
			add(a.Name.Local, a.Value)
		}
		for _, c := range fieldNodes {
			add(c.name.Local, c.text)
		}
		if len(s) == 0 {
			return nil
		}
		return s
	}

	if d.Enum != nil {
		// some writers use the names of enumerated values
		if x, ok := d.Enum.ValueOf(strings.TrimSpace(n.text)); ok {
			return Integer(x)
		}
	}
	v, err := parseScalar(d.ValueType, n.text)
	if err != nil {
		debug.Logger.Debug().Err(err).Str("property", d.QName()).Msg("skipping XMP value")
		return nil
	}
	return v
}

func (n *node) child(name xml.Name) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// arrayChild returns the rdf:Bag, rdf:Seq or rdf:Alt child of n.
func (n *node) arrayChild() *node {
	for _, c := range n.children {
		switch c.name {
		case elemRDFBag, elemRDFSeq, elemRDFAlt:
			return c
		}
	}
	return nil
}

var (
	elemRDFRoot        = xml.Name{Space: RDFNamespace, Local: "RDF"}
	elemRDFDescription = xml.Name{Space: RDFNamespace, Local: "Description"}
	elemRDFBag         = xml.Name{Space: RDFNamespace, Local: "Bag"}
	elemRDFSeq         = xml.Name{Space: RDFNamespace, Local: "Seq"}
	elemRDFAlt         = xml.Name{Space: RDFNamespace, Local: "Alt"}
	elemRDFLi          = xml.Name{Space: RDFNamespace, Local: "li"}
	elemRDFValue       = xml.Name{Space: RDFNamespace, Local: "value"}

	attrRDFAbout     = xml.Name{Space: RDFNamespace, Local: "about"}
	attrRDFDataType  = xml.Name{Space: RDFNamespace, Local: "datatype"}
	attrRDFID        = xml.Name{Space: RDFNamespace, Local: "ID"}
	attrRDFNodeID    = xml.Name{Space: RDFNamespace, Local: "nodeID"}
	attrRDFParseType = xml.Name{Space: RDFNamespace, Local: "parseType"}
	attrRDFResource  = xml.Name{Space: RDFNamespace, Local: "resource"}
	attrXMLLang      = xml.Name{Space: xmlNamespace, Local: "lang"}
)
