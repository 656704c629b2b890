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

// Package xmp reads and writes Extensible Metadata Platform (XMP) data.
//
// # XMP Packets
//
// The main type in this package is the [Packet] type, which represents an XMP
// packet.  Packets are read from RDF/XML using the [Read] function and
// converted back to RDF/XML using the [Packet.Encode] method.  The property
// map inside the packet is the only source of truth.  [Serialize] and
// [Deserialize] convert between lists of properties and RDF/XML without a
// packet.
//
// # Properties
//
// Every property of the supported schemas is identified by a [Key].  The
// [Descriptor] of a key gives the name space, the name, the cardinality
// (single value, Bag, Seq or Alt) and the value type of the property.  Use
// [ParseKey] to find the key for a name like "dc:creator".
//
// The value of a property has a type which implements [Value]:
//
//   - [Text] represents a text string, a name, a URI or a locale.
//   - [Integer], [Real] and [Bool] are simple numbers and truth values.
//   - [Date] represents a date and time, of the precision given in the data.
//   - [Rational] represents an exact fraction.
//   - [GPS] represents a geographic coordinate.
//   - [LangAlt] holds the language alternatives of a text.
//   - [List] holds the values of array properties.
//   - [Struct] holds the fields of structured values like exif:Flash.
//
// Use [Get] to read a property from a packet as a Go value, and [Packet.Set]
// to store a Go value in a packet.  Both convert between the Go type and the
// declared type of the property where possible.
//
// # Priorities
//
// When metadata is collected from several sources, the same property may
// be found more than once.  Each [Property] carries a priority, and [Fuse]
// keeps only the value with the highest priority for each key.
package xmp

import (
	"github.com/rs/zerolog"

	"seehuhn.de/go/exifxmp/internal/debug"
)

// SetLogger sets the logger used by the packages of this module.  Only
// debug level messages are written, for input which was skipped.
// SetLogger must be called before any other function of the module.
func SetLogger(l zerolog.Logger) {
	debug.Logger = l
}
