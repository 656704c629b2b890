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

import "strconv"

// Bit masks of the EXIF Flash tag.
const (
	flashFired      = 0x01
	flashReturn     = 0x06
	flashMode       = 0x08
	flashNoFunction = 0x10
	flashRedEye     = 0x40
)

// FlashValue converts the bits of an EXIF Flash tag into the value of the
// exif:Flash property.
func FlashValue(bits uint32) Struct {
	return Struct{
		"Fired":      Bool(bits&flashFired != 0),
		"Return":     Integer((bits & flashReturn) >> 1),
		"Mode":       Text(strconv.Itoa(int((bits & flashMode) >> 3))),
		"Function":   Bool(bits&flashNoFunction != 0),
		"RedEyeMode": Bool(bits&flashRedEye != 0),
	}
}

// FlashBits is the inverse of [FlashValue].  Missing or malformed fields
// are taken to be zero.
func FlashBits(s Struct) uint32 {
	var bits uint32
	if b, _ := s["Fired"].(Bool); b {
		bits |= flashFired
	}
	if r, ok := s["Return"].(Integer); ok {
		bits |= uint32(r<<1) & flashReturn
	}
	if m, ok := s["Mode"].(Text); ok {
		if x, err := strconv.Atoi(string(m)); err == nil {
			bits |= uint32(x<<3) & flashMode
		}
	}
	if b, _ := s["Function"].(Bool); b {
		bits |= flashNoFunction
	}
	if b, _ := s["RedEyeMode"].(Bool); b {
		bits |= flashRedEye
	}
	return bits
}
