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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/hashicorp/go-multierror"
)

// Property is a tag together with its decoded value.
type Property struct {
	ID    TagID
	Type  WireType
	Value Value
}

// Collection holds at most one property per tag.
//
// A Collection is not safe for concurrent modification.
type Collection struct {
	reg   *Registry
	props map[TagID]*Property
}

// NewCollection returns an empty collection.  If reg is nil,
// [DefaultRegistry] is used.
func NewCollection(reg *Registry) *Collection {
	if reg == nil {
		reg = DefaultRegistry
	}
	return &Collection{
		reg:   reg,
		props: make(map[TagID]*Property),
	}
}

// CollectionFromRaw decodes the given records into a new collection.
// Records with an unknown tag identifier, and records which decode to no
// value, are omitted.  If a tag occurs more than once, the last record wins.
func CollectionFromRaw(reg *Registry, records []RawTag) *Collection {
	c := NewCollection(reg)
	for _, rec := range records {
		if rec.ID == TagUnknown {
			continue
		}
		v := c.reg.Decode(rec)
		if v == nil {
			continue
		}
		c.props[rec.ID] = &Property{ID: rec.ID, Type: rec.Type, Value: v}
	}
	return c
}

// Get returns the property for the given tag.
//
// If the tag is not present, an empty property is inserted into the
// collection and returned.  The wire type of the new property is taken
// from the registry, or is [TypeRaw] for unregistered tags.  Use
// [Collection.Lookup] to query the collection without modifying it.
func (c *Collection) Get(id TagID) *Property {
	if p, ok := c.props[id]; ok {
		return p
	}
	p := &Property{ID: id, Type: TypeRaw}
	if info, ok := c.reg.Lookup(id); ok {
		p.Type = info.Type
	}
	c.props[id] = p
	return p
}

// Lookup returns the property for the given tag, if present.
func (c *Collection) Lookup(id TagID) (*Property, bool) {
	p, ok := c.props[id]
	return p, ok
}

// Set stores p under the given tag, replacing any previous property.
func (c *Collection) Set(id TagID, p Property) {
	p.ID = id
	c.props[id] = &p
}

// Add inserts p into the collection.  If p has a nil value, any existing
// property for the tag is removed instead.  Properties with the identifier
// [TagUnknown] are ignored.
func (c *Collection) Add(p Property) {
	if p.ID == TagUnknown {
		return
	}
	if p.Value == nil {
		delete(c.props, p.ID)
		return
	}
	c.props[p.ID] = &p
}

// Remove deletes the property for the given tag.
func (c *Collection) Remove(id TagID) {
	delete(c.props, id)
}

// Contains reports whether the collection has a property for the given tag.
func (c *Collection) Contains(id TagID) bool {
	_, ok := c.props[id]
	return ok
}

// Len returns the number of properties in the collection.
func (c *Collection) Len() int {
	return len(c.props)
}

// Properties returns the properties in ascending order of tag identifiers.
func (c *Collection) Properties() []*Property {
	ids := maps.Keys(c.props)
	slices.Sort(ids)
	res := make([]*Property, len(ids))
	for i, id := range ids {
		res[i] = c.props[id]
	}
	return res
}

// Encode converts the properties into raw tag records, in ascending order
// of tag identifiers.  Properties without a value are skipped.
//
// Properties which cannot be encoded are left out of the result, and the
// failures are returned as a [*multierror.Error].
func (c *Collection) Encode() ([]RawTag, error) {
	var res []RawTag
	var errs *multierror.Error
	for _, p := range c.Properties() {
		if p.Value == nil {
			continue
		}
		raw, err := c.reg.EncodeProperty(*p)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		res = append(res, raw)
	}
	return res, errs.ErrorOrNil()
}
