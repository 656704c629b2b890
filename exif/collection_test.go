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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollectionAddNil(t *testing.T) {
	c := NewCollection(nil)
	c.Add(Property{ID: TagCopyright, Type: TypeAscii, Value: Text("(c) 2024")})
	if !c.Contains(TagCopyright) {
		t.Fatal("property not added")
	}
	c.Add(Property{ID: TagCopyright, Type: TypeAscii, Value: nil})
	if c.Contains(TagCopyright) {
		t.Error("nil value did not remove the property")
	}
	if c.Len() != 0 {
		t.Errorf("collection has %d elements", c.Len())
	}

	c.Add(Property{ID: TagUnknown, Type: TypeAscii, Value: Text("x")})
	if c.Len() != 0 {
		t.Error("property with unknown tag was added")
	}
}

func TestCollectionOrder(t *testing.T) {
	c := NewCollection(nil)
	for _, id := range []TagID{0x9209, 0x010F, 0x8298, 0x0002, 0x0112} {
		c.Add(Property{ID: id, Type: TypeUInt16, Value: Uint16(1)})
	}
	var got []TagID
	for _, p := range c.Properties() {
		got = append(got, p.ID)
	}
	want := []TagID{0x0002, 0x010F, 0x0112, 0x8298, 0x9209}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected order (-want +got):\n%s", d)
	}
}

// TestCollectionGet documents that Get inserts missing properties.
func TestCollectionGet(t *testing.T) {
	c := NewCollection(nil)
	if _, ok := c.Lookup(TagArtist); ok {
		t.Fatal("unexpected property")
	}

	p := c.Get(TagArtist)
	if p.ID != TagArtist || p.Type != TypeAscii || p.Value != nil {
		t.Errorf("unexpected property %+v", p)
	}
	if !c.Contains(TagArtist) {
		t.Error("Get did not insert the property")
	}

	p.Value = Text("Jane Doe")
	if q, _ := c.Lookup(TagArtist); q.Value != Text("Jane Doe") {
		t.Error("modification through Get not visible")
	}

	if p := c.Get(0xFFF0); p.Type != TypeRaw {
		t.Errorf("unregistered tag has type %s", p.Type)
	}
}

func TestCollectionFromRaw(t *testing.T) {
	records := []RawTag{
		{ID: TagMake, Type: TypeAscii, Data: []byte("Canon\x00")},
		{ID: TagModel, Type: TypeAscii, Data: []byte("\x00")}, // empty
		{ID: TagUnknown, Type: TypeUInt16, Data: []byte{1, 0}},
		{ID: 0xC4A5, Type: TypeRaw, Data: []byte{1, 2, 3}}, // unregistered
		{ID: TagOrientation, Type: TypeUInt16, Data: []byte{1, 0}},
	}
	c := CollectionFromRaw(nil, records)

	var got []TagID
	for _, p := range c.Properties() {
		got = append(got, p.ID)
	}
	want := []TagID{TagMake, TagOrientation, 0xC4A5}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected tags (-want +got):\n%s", d)
	}

	out, err := c.Encode()
	if err != nil {
		t.Fatal(err)
	}
	wantRaw := []RawTag{
		{ID: TagMake, Type: TypeAscii, Count: 6, Data: []byte("Canon\x00")},
		{ID: TagOrientation, Type: TypeUInt16, Count: 1, Data: []byte{1, 0}},
		{ID: 0xC4A5, Type: TypeRaw, Count: 3, Data: []byte{1, 2, 3}},
	}
	if d := cmp.Diff(wantRaw, out); d != "" {
		t.Errorf("unexpected records (-want +got):\n%s", d)
	}
}

func TestCollectionEncodeErrors(t *testing.T) {
	c := NewCollection(nil)
	c.Set(TagMake, Property{Type: TypeAscii, Value: Text("Canon")})
	c.Set(TagModel, Property{Type: TypeUInt16, Value: Text("bad")})
	c.Set(TagSoftware, Property{Type: wireDouble, Value: Bytes{1, 2}})

	out, err := c.Encode()
	if !errors.Is(err, ErrValueType) || !errors.Is(err, ErrNoEncoder) {
		t.Errorf("unexpected error %v", err)
	}
	if len(out) != 1 || out[0].ID != TagMake {
		t.Errorf("unexpected records %v", out)
	}
}

func TestCollectionEncodeUndefined(t *testing.T) {
	c := NewCollection(nil)
	c.Add(Property{ID: TagExifVersion, Type: TypeRaw, Value: Bytes("0230")})
	c.Add(Property{ID: TagUserComment, Type: TypeRaw, Value: Bytes("ASCII\x00\x00\x00hello")})

	got, err := c.Encode()
	if err != nil {
		t.Fatal(err)
	}
	want := []RawTag{
		{ID: TagExifVersion, Type: TypeRaw, Count: 4, Data: []byte("0230")},
		{ID: TagUserComment, Type: TypeRaw, Count: 13, Data: []byte("ASCII\x00\x00\x00hello")},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected records (-want +got):\n%s", d)
	}
}
