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
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/exifxmp/rational"
)

// Format returns a human readable form of v.  If info is non-nil, its
// Display pattern is applied to the result.
func Format(info *TagInfo, v Value) string {
	s := formatValue(v)
	if info != nil && info.Display != "" && s != "" {
		s = fmt.Sprintf(info.Display, s)
	}
	return s
}

func formatValue(v Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case Text:
		return string(v)
	case DateTime:
		return v.Format(layoutOf(v))
	case Enum:
		return v.String()
	case Bytes:
		return fmt.Sprintf("% x", []byte(v))
	case Byte:
		return strconv.Itoa(int(v))
	case Uint16:
		return strconv.Itoa(int(v))
	case Uint32:
		return formatUint(uint32(v))
	case Int32:
		return strconv.Itoa(int(v))
	case URational:
		return v.Rational.String()
	case Rational:
		return v.Rational.String()
	case Uint16s:
		return joinFormatted(v, func(x uint16) string { return strconv.Itoa(int(x)) })
	case Uint32s:
		return joinFormatted(v, formatUint)
	case Int32s:
		return joinFormatted(v, func(x int32) string { return strconv.Itoa(int(x)) })
	case URationals:
		return joinFormatted(v, func(x rational.Rational[uint32]) string { return x.String() })
	case Rationals:
		return joinFormatted(v, func(x rational.Rational[int32]) string { return x.String() })
	}
	return fmt.Sprint(v)
}

func joinFormatted[T any](xx []T, f func(T) string) string {
	parts := make([]string, len(xx))
	for i, x := range xx {
		parts[i] = f(x)
	}
	return strings.Join(parts, ", ")
}
