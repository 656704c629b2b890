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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFuse(t *testing.T) {
	in := []Property{
		{Key: TIFFModel, Value: Text("from exif"), Priority: 0.2},
		{Key: DCCreator, Value: List{Text("A")}, Priority: 0.4},
		{Key: TIFFModel, Value: Text("from xmp"), Priority: 1},
		{Key: DCCreator, Value: List{Text("B")}, Priority: 0.4},
		{Key: KeyUnknown, Value: Text("ignored"), Priority: 2},
		{Key: TIFFMake, Value: Text("Make"), Priority: 0.4},
	}
	want := []Property{
		{Key: DCCreator, Value: List{Text("A")}, Priority: 0.4},
		{Key: TIFFMake, Value: Text("Make"), Priority: 0.4},
		{Key: TIFFModel, Value: Text("from xmp"), Priority: 1},
	}
	got := Fuse(in)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}

	// the input is not modified
	if in[0].Key != TIFFModel || in[4].Key != KeyUnknown {
		t.Error("input was modified")
	}

	// fusing is idempotent
	if d := cmp.Diff(want, Fuse(got)); d != "" {
		t.Errorf("second pass changed the result (-want +got):\n%s", d)
	}
}

func TestFuseEmpty(t *testing.T) {
	if got := Fuse(nil); len(got) != 0 {
		t.Errorf("unexpected result %v", got)
	}
}
