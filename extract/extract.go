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

// Package extract collects XMP properties from a tree of image metadata.
//
// The tree is made of [Node] values, where each node stores the metadata of
// one format: XMP properties, the TIFF and Exif image file directories, or
// GPS data.  The [Extractor] walks the tree, maps every recognised entry
// to an XMP property and attaches a priority which depends on the format
// the value was found in.  [xmp.Fuse] or [xmp.Packet.Merge] can then be
// used to choose the best value for each property.
package extract

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/exifxmp/exif"
	"seehuhn.de/go/exifxmp/internal/debug"
	"seehuhn.de/go/exifxmp/xmp"
)

// Extractor converts metadata trees into XMP properties.
type Extractor struct {
	// Priorities of the values found in the different formats.
	PriorityXMP  float64
	PriorityTIFF float64
	PriorityExif float64
	PriorityGPS  float64

	// MaxDepth limits the nesting depth of the tree.  Deeper nodes are
	// ignored.
	MaxDepth int

	// Registry is used to look up EXIF tags.  If this is nil,
	// [exif.DefaultRegistry] is used.
	Registry *exif.Registry
}

// New returns an extractor with the default settings.
func New() *Extractor {
	return &Extractor{
		PriorityXMP:  1.0,
		PriorityTIFF: 0.4,
		PriorityExif: 0.2,
		PriorityGPS:  0.2,
		MaxDepth:     64,
	}
}

// Extract walks the tree and returns the properties found, after value
// post-processing.  The result can contain several properties with the
// same key.
func (x *Extractor) Extract(root Node) []xmp.Property {
	w := &walker{
		Extractor: x,
		reg:       x.Registry,
		path:      make(map[Node]bool),
	}
	if w.reg == nil {
		w.reg = exif.DefaultRegistry
	}
	props := w.walk(root, 0)
	for i, p := range props {
		props[i] = Process(p)
	}
	return props
}

// Packet extracts the properties from the tree and combines them into an
// XMP packet.
func (x *Extractor) Packet(root Node) *xmp.Packet {
	p := xmp.NewPacket()
	p.Merge(x.Extract(root))
	return p
}

type walker struct {
	*Extractor
	reg  *exif.Registry
	path map[Node]bool
}

func (w *walker) walk(n Node, depth int) []xmp.Property {
	if n == nil {
		return nil
	}
	if w.MaxDepth > 0 && depth >= w.MaxDepth {
		debug.Logger.Debug().Int("depth", depth).Msg("metadata tree too deep")
		return nil
	}
	if isComparable(n) {
		if w.path[n] {
			debug.Logger.Debug().Str("format", n.Format()).Msg("cycle in metadata tree")
			return nil
		}
		w.path[n] = true
		defer delete(w.path, n)
	}

	format := strings.ToLower(n.Format())
	switch format {
	case "thumb", "thumbnail", "chrominance", "luminance":
		return nil
	case "xmp":
		return w.walkXMP(n, depth)
	case "ifd":
		return w.walkExif(n, depth, w.PriorityTIFF, false)
	case "exif":
		return w.walkExif(n, depth, w.PriorityExif, false)
	case "gps":
		return ProcessGPS(w.walkExif(n, depth, w.PriorityGPS, true))
	}

	var res []xmp.Property
	for _, name := range n.Names() {
		if child, ok := n.Child(name).(Node); ok {
			res = append(res, w.walk(child, depth+1)...)
		}
	}
	return res
}

// walkXMP handles a node whose children are named by qualified XMP
// property names.
func (w *walker) walkXMP(n Node, depth int) []xmp.Property {
	var res []xmp.Property
	for _, name := range n.Names() {
		child := n.Child(name)
		k, err := xmp.ParseKey(name)
		if err != nil {
			if node, ok := child.(Node); ok {
				res = append(res, w.walk(node, depth+1)...)
			} else {
				debug.Logger.Debug().Str("name", name).Msg("skipping unknown XMP property")
			}
			continue
		}
		v, ok := w.value(child, depth+1)
		if !ok {
			continue
		}
		res = append(res, xmp.Property{Key: k, Value: v, Priority: w.PriorityXMP})
	}
	return res
}

// walkExif handles a node whose children are EXIF tags.
func (w *walker) walkExif(n Node, depth int, priority float64, isGPS bool) []xmp.Property {
	var res []xmp.Property
	for _, name := range n.Names() {
		child := n.Child(name)
		if node, ok := child.(Node); ok {
			res = append(res, w.walk(node, depth+1)...)
			continue
		}

		id, ok := parseTagName(name)
		if !ok {
			continue
		}
		var info *exif.TagInfo
		if isGPS {
			info, ok = w.reg.LookupIn(exif.GroupGPS, id)
		} else {
			info, ok = w.reg.Lookup(id)
			ok = ok && info.Group != exif.GroupGPS
		}
		if !ok || info.XMPName == "" {
			continue
		}
		k, ok := xmp.KeyByName(info.XMPNamespace, info.XMPName)
		if !ok {
			continue
		}
		v, ok := w.value(child, depth+1)
		if !ok {
			continue
		}
		res = append(res, xmp.Property{Key: k, Value: v, Priority: priority})
	}
	return res
}

var tagNamePattern = regexp.MustCompile(`^/?\{u?(?:short|int|long)=(\d+)\}$`)

// parseTagName extracts the tag number from a child name like
// "{ushort=34665}".
func parseTagName(name string) (exif.TagID, bool) {
	m := tagNamePattern.FindStringSubmatch(name)
	if m == nil {
		return exif.TagUnknown, false
	}
	id, err := strconv.ParseUint(m[1], 10, 16)
	if err != nil {
		return exif.TagUnknown, false
	}
	return exif.TagID(id), true
}

// value converts a child of a node into an XMP value.  Nested nodes are
// converted into lists and structs.
func (w *walker) value(child any, depth int) (xmp.Value, bool) {
	node, isNode := child.(Node)
	if !isNode {
		return toValue(child)
	}
	if w.MaxDepth > 0 && depth >= w.MaxDepth {
		return nil, false
	}
	if isComparable(node) {
		if w.path[node] {
			return nil, false
		}
		w.path[node] = true
		defer delete(w.path, node)
	}

	names := node.Names()
	switch strings.ToLower(node.Format()) {
	case "bag", "seq":
		return w.list(node, names, depth)
	case "alt":
		alt := make(xmp.LangAlt)
		for _, name := range names {
			text, ok := node.Child(name).(string)
			if !ok || !isLangName(name) {
				return w.list(node, names, depth)
			}
			alt[name] = text
		}
		return alt, len(alt) > 0
	}

	s := make(xmp.Struct)
	for _, name := range names {
		v, ok := w.value(node.Child(name), depth+1)
		if !ok {
			continue
		}
		if _, local, found := strings.Cut(name, ":"); found {
			name = local
		}
		s[name] = v
	}
	return s, len(s) > 0
}

func (w *walker) list(node Node, names []string, depth int) (xmp.Value, bool) {
	var res xmp.List
	for _, name := range names {
		if v, ok := w.value(node.Child(name), depth+1); ok {
			res = append(res, v)
		}
	}
	return res, len(res) > 0
}

// isComparable reports whether n can be used as a map key.  The dynamic
// value is checked, since an interface field may hold a slice.
func isComparable(n Node) bool {
	return reflect.ValueOf(n).Comparable()
}
