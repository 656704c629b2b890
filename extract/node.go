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
	"fmt"

	"seehuhn.de/go/exifxmp/exif"
)

// Node is a node of a generic metadata tree, as produced by an image
// container parser.
//
// Format tells how the children of the node are to be interpreted, for
// example "xmp", "exif", "ifd", "gps", "struct" or "seq".  Names lists the
// children in order.  Child returns the value for a name: either another
// Node, or a leaf value.  Leaf values can be [exif.Value] or [xmp.Value]
// values, strings, byte slices, integers, floats, rationals or slices of
// these.
type Node interface {
	Format() string
	Names() []string
	Child(name string) any
}

// Map is a simple in-memory [Node].
type Map struct {
	format string
	names  []string
	values map[string]any
}

// NewMap returns an empty node with the given format.
func NewMap(format string) *Map {
	return &Map{
		format: format,
		values: make(map[string]any),
	}
}

// Set sets the value of a child.  New children are added after the
// existing ones.
func (m *Map) Set(name string, v any) *Map {
	if _, exists := m.values[name]; !exists {
		m.names = append(m.names, name)
	}
	m.values[name] = v
	return m
}

// Format implements the [Node] interface.
func (m *Map) Format() string {
	return m.format
}

// Names implements the [Node] interface.
func (m *Map) Names() []string {
	return m.names
}

// Child implements the [Node] interface.
func (m *Map) Child(name string) any {
	return m.values[name]
}

// TagName returns the child name used for an EXIF tag, e.g.
// "{ushort=34665}".
func TagName(id exif.TagID) string {
	return fmt.Sprintf("{ushort=%d}", uint16(id))
}

// FromExif builds a node from the records of an image file directory.
// The format should be "ifd" for the main image directory, "exif" for the
// Exif directory and "gps" for the GPS directory.  Records which cannot be
// decoded are omitted.
func FromExif(format string, reg *exif.Registry, records []exif.RawTag) *Map {
	if reg == nil {
		reg = exif.DefaultRegistry
	}
	m := NewMap(format)
	for _, rec := range records {
		v := reg.Decode(rec)
		if v == nil {
			continue
		}
		m.Set(TagName(rec.ID), v)
	}
	return m
}
