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

package exif

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// TagID identifies a tag.  Tag identifiers read from a directory are in the
// range 0-65535.
type TagID int32

// TagUnknown marks a property whose tag is not known.
const TagUnknown TagID = -1

// String returns the registered name of the tag, or its number in hex.
func (id TagID) String() string {
	if info, ok := DefaultRegistry.Lookup(id); ok {
		return info.Name
	}
	if id == TagUnknown {
		return "Unknown"
	}
	return "0x" + strconv.FormatUint(uint64(uint32(id)), 16)
}

// Group is the directory a tag belongs to.
type Group uint8

// These are the supported tag groups.
const (
	GroupTIFF Group = iota + 1 // IFD0 and IFD1
	GroupExif                  // the Exif sub-IFD
	GroupGPS                   // the GPS sub-IFD
)

func (g Group) String() string {
	switch g {
	case GroupTIFF:
		return "TIFF"
	case GroupExif:
		return "Exif"
	case GroupGPS:
		return "GPS"
	}
	return "Group(" + strconv.Itoa(int(g)) + ")"
}

// Domain selects how a decoded value is interpreted beyond its wire type.
type Domain uint8

// These are the supported domains.
const (
	DomainNone     Domain = iota
	DomainText            // Ascii text in the registry's text encoding
	DomainWideText        // UTF-16LE text stored in a Byte array
	DomainDateTime        // Ascii text holding an EXIF date/time
	DomainEnum            // an integer matched against TagInfo.Enum
)

// TagInfo describes a tag.
type TagInfo struct {
	ID     TagID
	Name   string
	Group  Group
	Type   WireType
	Domain Domain
	Enum   *EnumType

	// Display, if set, is a fmt format with a single %s verb which is
	// applied to the formatted value, e.g. "%s mm".
	Display string

	// XMPNamespace and XMPName name the XMP property which carries the
	// same information.  Both are empty if there is no such property.
	XMPNamespace string
	XMPName      string
}

// EnumType is an enumeration of integer tag values.
type EnumType struct {
	Name string

	// Width is the size of the underlying integer in bytes.
	Width int

	// Flags is set for enumerations whose values are a combination of
	// bit masks.
	Flags bool

	Members []EnumMember
}

// EnumMember is one value of an enumeration.
type EnumMember struct {
	Value uint32
	Name  string
}

// Valid reports whether v can be represented by the enumeration.
func (e *EnumType) Valid(v uint32) bool {
	if e.Width < 4 && v>>(8*e.Width) != 0 {
		return false
	}
	if e.Flags {
		return true
	}
	_, ok := e.NameOf(v)
	return ok
}

// NameOf returns the name of the member with value v.
func (e *EnumType) NameOf(v uint32) (string, bool) {
	for _, m := range e.Members {
		if m.Value == v {
			return m.Name, true
		}
	}
	return "", false
}

// ValueOf returns the value of the member with the given name.
// Names are compared case-insensitively.
func (e *EnumType) ValueOf(name string) (uint32, bool) {
	for _, m := range e.Members {
		if strings.EqualFold(m.Name, name) {
			return m.Value, true
		}
	}
	return 0, false
}

// Decompose splits a flag value into the names of the members it contains.
// Members with more set bits are matched first, so that a multi-bit member
// takes precedence over its sub-masks.  Bits not covered by any member are
// returned as leftover.  The names are returned in table order.
func (e *EnumType) Decompose(v uint32) (names []string, leftover uint32) {
	if v == 0 {
		if name, ok := e.NameOf(0); ok {
			return []string{name}, 0
		}
		return nil, 0
	}

	idx := make([]int, 0, len(e.Members))
	for i, m := range e.Members {
		if m.Value != 0 {
			idx = append(idx, i)
		}
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		va, vb := e.Members[a].Value, e.Members[b].Value
		switch {
		case va > vb:
			return -1
		case va < vb:
			return 1
		}
		return 0
	})

	rem := v
	matched := make([]bool, len(e.Members))
	for _, i := range idx {
		mask := e.Members[i].Value
		if rem&mask == mask {
			matched[i] = true
			rem &^= mask
		}
	}
	for i, m := range e.Members {
		if matched[i] {
			names = append(names, m.Name)
		}
	}
	return names, rem
}

// Format returns a human readable form of v.
func (e *EnumType) Format(v uint32) string {
	if !e.Flags {
		if name, ok := e.NameOf(v); ok {
			return name
		}
		return "Unknown (" + formatUint(v) + ")"
	}
	names, leftover := e.Decompose(v)
	if leftover != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(leftover), 16))
	}
	if len(names) == 0 {
		return formatUint(v)
	}
	return strings.Join(names, ", ")
}

// Registry maps tag identifiers to tag descriptions.
//
// A Registry is read-only after construction and can be used concurrently.
type Registry struct {
	byID   map[TagID]*TagInfo
	byName map[string]*TagInfo

	// TextEncoding is the 8-bit character set of Ascii tags.
	TextEncoding encoding.Encoding
}

// NewRegistry creates a registry for the given tags.  If a tag identifier
// occurs more than once, the last entry wins.
func NewRegistry(tags []TagInfo) *Registry {
	r := &Registry{
		byID:         make(map[TagID]*TagInfo, len(tags)),
		byName:       make(map[string]*TagInfo, len(tags)),
		TextEncoding: charmap.ISO8859_1,
	}
	for i := range tags {
		info := &tags[i]
		r.byID[info.ID] = info
		r.byName[info.Name] = info
	}
	return r
}

// DefaultRegistry contains the standard TIFF, Exif and GPS tags.
var DefaultRegistry = NewRegistry(standardTags)

// Lookup returns the description of a tag.  Unknown tags are not an error;
// the codec decodes these using their wire type only.
func (r *Registry) Lookup(id TagID) (*TagInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// LookupName returns the description of the tag with the given name.
func (r *Registry) LookupName(name string) (*TagInfo, bool) {
	info, ok := r.byName[name]
	return info, ok
}

// LookupIn returns the description of a tag, if the tag belongs to group g.
func (r *Registry) LookupIn(g Group, id TagID) (*TagInfo, bool) {
	info, ok := r.byID[id]
	if !ok || info.Group != g {
		return nil, false
	}
	return info, true
}

// Tags returns all registered tags in ascending order of identifiers.
func (r *Registry) Tags() []*TagInfo {
	res := make([]*TagInfo, 0, len(r.byID))
	for _, info := range r.byID {
		res = append(res, info)
	}
	slices.SortFunc(res, func(a, b *TagInfo) int {
		return int(a.ID) - int(b.ID)
	})
	return res
}

func formatUint(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
