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

// Package dc gives typed access to the Dublin Core properties of an XMP
// packet.
package dc

import (
	"time"

	"github.com/hashicorp/go-multierror"

	"seehuhn.de/go/exifxmp/xmp"
)

// NameSpace is the XMP namespace of the Dublin Core schema.
const NameSpace = xmp.NSDublinCore

// DublinCore represents the properties in the Dublin Core namespace.
// Empty fields correspond to absent properties.
type DublinCore struct {
	// Contributor is a list of contributors to the resource.
	// This should not include names listed in the Creator field.
	Contributor []string

	// Coverage is the extent or scope of the resource.
	Coverage string

	// Creator is a list of the creators of the resource.  Entities should be
	// listed in order of decreasing precedence, if such order is significant.
	Creator []string

	// Date lists points or periods of time associated with an event in the
	// life cycle of the resource.
	Date []time.Time

	Description xmp.LangAlt

	// Format is the MIME type of the resource.
	Format string

	Identifier string

	// Language lists the languages used in the resource, as RFC 3066
	// language tags.
	Language []string

	Publisher []string
	Relation  []string
	Rights    xmp.LangAlt
	Source    string
	Subject   []string
	Title     xmp.LangAlt
	Type      []string
}

// FromPacket reads the Dublin Core properties from p.
func FromPacket(p *xmp.Packet) *DublinCore {
	dc := &DublinCore{}
	for _, f := range dc.fields() {
		switch ptr := f.ptr.(type) {
		case *string:
			*ptr, _ = xmp.Get[string](p, f.key)
		case *[]string:
			*ptr, _ = xmp.Get[[]string](p, f.key)
		case *xmp.LangAlt:
			*ptr, _ = xmp.Get[xmp.LangAlt](p, f.key)
		case *[]time.Time:
			*ptr = dates(p, f.key)
		}
	}
	return dc
}

// Update stores the non-empty fields of dc in p.  Properties which
// correspond to empty fields are left unchanged.
func (dc *DublinCore) Update(p *xmp.Packet) error {
	var errs *multierror.Error
	for _, f := range dc.fields() {
		var v any
		switch ptr := f.ptr.(type) {
		case *string:
			if *ptr != "" {
				v = *ptr
			}
		case *[]string:
			if len(*ptr) > 0 {
				v = *ptr
			}
		case *xmp.LangAlt:
			if len(*ptr) > 0 {
				v = *ptr
			}
		case *[]time.Time:
			if len(*ptr) > 0 {
				v = *ptr
			}
		}
		if v == nil {
			continue
		}
		if err := p.Set(f.key, v); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

type field struct {
	key xmp.Key
	ptr any
}

func (dc *DublinCore) fields() []field {
	return []field{
		{xmp.DCContributor, &dc.Contributor},
		{xmp.DCCoverage, &dc.Coverage},
		{xmp.DCCreator, &dc.Creator},
		{xmp.DCDate, &dc.Date},
		{xmp.DCDescription, &dc.Description},
		{xmp.DCFormat, &dc.Format},
		{xmp.DCIdentifier, &dc.Identifier},
		{xmp.DCLanguage, &dc.Language},
		{xmp.DCPublisher, &dc.Publisher},
		{xmp.DCRelation, &dc.Relation},
		{xmp.DCRights, &dc.Rights},
		{xmp.DCSource, &dc.Source},
		{xmp.DCSubject, &dc.Subject},
		{xmp.DCTitle, &dc.Title},
		{xmp.DCType, &dc.Type},
	}
}

func dates(p *xmp.Packet, k xmp.Key) []time.Time {
	v, ok := xmp.Get[xmp.Value](p, k)
	if !ok {
		return nil
	}
	list, ok := v.(xmp.List)
	if !ok {
		list = xmp.List{v}
	}
	var res []time.Time
	for _, x := range list {
		if d, ok := x.(xmp.Date); ok {
			res = append(res, d.Time)
		}
	}
	return res
}
