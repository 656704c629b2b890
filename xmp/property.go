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
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Property is a property value, together with its qualifiers and the
// priority of the source it was obtained from.
type Property struct {
	Key   Key
	Value Value

	// Qualifiers hold additional information about the value, for example
	// the language of a text.
	Qualifiers []Property

	// Priority is used to choose between several values for the same key.
	// Higher values win.
	Priority float64
}

// Fuse sorts the properties by key and removes duplicates.  For each key,
// only the property with the highest priority is kept.  Between
// properties of equal priority, the earlier one in props wins.  The input
// slice is not modified.
func Fuse(props []Property) []Property {
	sorted := slices.Clone(props)
	slices.SortStableFunc(sorted, func(a, b Property) int {
		switch {
		case a.Key != b.Key:
			return int(a.Key) - int(b.Key)
		case a.Priority > b.Priority:
			return -1
		case a.Priority < b.Priority:
			return 1
		}
		return 0
	})

	res := sorted[:0]
	lastKey := KeyUnknown
	for _, p := range sorted {
		if p.Key == KeyUnknown || p.Key == lastKey {
			continue
		}
		res = append(res, p)
		lastKey = p.Key
	}
	return res
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
