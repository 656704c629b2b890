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
	"strconv"
	"strings"

	"seehuhn.de/go/exifxmp/jvxml"
)

// Name space URIs of the supported schemas.
const (
	NSDublinCore = "http://purl.org/dc/elements/1.1/"
	NSBasic      = "http://ns.adobe.com/xap/1.0/"
	NSRights     = "http://ns.adobe.com/xap/1.0/rights/"
	NSPhotoshop  = "http://ns.adobe.com/photoshop/1.0/"
	NSTIFF       = "http://ns.adobe.com/tiff/1.0/"
	NSExif       = "http://ns.adobe.com/exif/1.0/"
	NSExifEX     = "http://cipa.jp/exif/1.0/"
	NSAux        = "http://ns.adobe.com/exif/1.0/aux/"
)

const (
	// xmlNamespace is the namespace for XML.
	xmlNamespace = "http://www.w3.org/XML/1998/namespace"

	// RDFNamespace is the namespace for RDF.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// metaNamespace is the namespace of the x:xmpmeta wrapper element.
	metaNamespace = "adobe:ns:meta/"
)

// Namespace is an XMP schema name space together with its preferred prefix.
type Namespace struct {
	URI    string
	Prefix string
}

var namespaces = []Namespace{
	{NSDublinCore, "dc"},
	{NSBasic, "xmp"},
	{NSRights, "xmpRights"},
	{NSPhotoshop, "photoshop"},
	{NSTIFF, "tiff"},
	{NSExif, "exif"},
	{NSExifEX, "exifEX"},
	{NSAux, "aux"},
}

var (
	defaultPrefix = make(map[string]string)
	prefixToNS    = make(map[string]string)
)

func init() {
	defaultPrefix[xmlNamespace] = "xml"
	defaultPrefix[RDFNamespace] = "rdf"
	defaultPrefix[metaNamespace] = "x"
	for _, ns := range namespaces {
		defaultPrefix[ns.URI] = ns.Prefix
	}
	for uri, pfx := range defaultPrefix {
		prefixToNS[pfx] = uri
	}
}

// NamespaceByURI returns the schema name space with the given URI.
func NamespaceByURI(uri string) (Namespace, bool) {
	pfx, ok := defaultPrefix[uri]
	if !ok {
		return Namespace{}, false
	}
	return Namespace{URI: uri, Prefix: pfx}, true
}

// NamespaceByPrefix returns the schema name space with the given preferred
// prefix.
func NamespaceByPrefix(prefix string) (Namespace, bool) {
	uri, ok := prefixToNS[prefix]
	if !ok {
		return Namespace{}, false
	}
	return Namespace{URI: uri, Prefix: prefix}, true
}

// getPrefix chooses a new prefix for the given namespace.
// The new prefix is chosen to be different from the ones already in the
// nsToPrefix map.
func getPrefix(nsToPrefix map[string]string, ns string) string {
	if pfx, ok := defaultPrefix[ns]; ok && !prefixTaken(nsToPrefix, pfx) {
		return pfx
	}

	// The following code is a modified version of code from
	// encoding/xml/marshal.go in the Go standard library.

	// Pick a name. We try to use the final element of the path
	// but fall back to _.
	prefix := strings.TrimRight(ns, "/#")
	if i := strings.LastIndex(prefix, "/"); i >= 0 {
		prefix = prefix[i+1:]
	}
	if prefix == "" || !jvxml.IsName([]byte(prefix)) || strings.Contains(prefix, ":") {
		prefix = "_"
	}
	// xmlanything is reserved and any variant of it regardless of
	// case should be matched, so:
	//    (('X'|'x') ('M'|'m') ('L'|'l'))
	// See Section 2.3 of https://www.w3.org/TR/REC-xml/
	if len(prefix) >= 3 && strings.EqualFold(prefix[:3], "xml") {
		prefix = "_" + prefix
	}

	if prefixTaken(nsToPrefix, prefix) {
		// Name is taken.  Find a better one.
		for idx := 1; ; idx++ {
			if id := prefix + "_" + strconv.Itoa(idx); !prefixTaken(nsToPrefix, id) {
				prefix = id
				break
			}
		}
	}
	// End of code from encoding/xml/marshal.go

	return prefix
}

func prefixTaken(nsToPrefix map[string]string, prefix string) bool {
	for _, pfx := range nsToPrefix {
		if pfx == prefix {
			return true
		}
	}
	return false
}
