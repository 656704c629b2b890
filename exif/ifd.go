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
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/exifxmp/internal/debug"
)

// maxPayload limits the size of a single out-of-line value.
const maxPayload = 1 << 26

// DecodeIFD reads the tag records of an image file directory.
//
// The directory starts with a two-byte entry count, followed by 12-byte
// entries.  Values of up to four bytes are stored inside the entry.  For
// larger values the entry holds an offset, which is resolved using backing.
// Offsets are relative to the start of backing, not to buf.
//
// Failures of individual entries do not stop the decoding.  The affected
// records are returned with nil Data, and the failures are reported in a
// [*multierror.Error].  The error is informational: the returned records
// are usable even if err is non-nil.
func DecodeIFD(buf []byte, backing io.ReaderAt) ([]RawTag, error) {
	if len(buf) < 2 {
		return nil, ErrShortIFD
	}
	le := binary.LittleEndian

	n := int(le.Uint16(buf))
	res := make([]RawTag, 0, n)
	var errs *multierror.Error
	for i := 0; i < n; i++ {
		pos := 2 + 12*i
		if pos+12 > len(buf) {
			errs = multierror.Append(errs,
				fmt.Errorf("entry %d of %d: %w", i, n, ErrShortIFD))
			break
		}
		entry := buf[pos : pos+12]

		tag := RawTag{
			ID:    TagID(le.Uint16(entry)),
			Type:  WireType(le.Uint16(entry[2:])),
			Count: le.Uint32(entry[4:]),
		}
		elemSize := uint64(tag.Type.Size())
		size := elemSize * uint64(tag.Count)

		switch {
		case elemSize == 0:
			// unknown type, keep the entry as it is
			tag.Data = slices.Clone(entry[8:12])
		case size <= 4:
			tag.Data = slices.Clone(entry[8 : 8+size])
		case size > maxPayload:
			errs = multierror.Append(errs,
				fmt.Errorf("tag %s: %d bytes: %w", tag.ID, size, errPayloadSize))
		case backing == nil:
			errs = multierror.Append(errs,
				fmt.Errorf("tag %s: %w", tag.ID, errNoBacking))
		default:
			offset := le.Uint32(entry[8:])
			data := make([]byte, size)
			k, err := backing.ReadAt(data, int64(offset))
			if k < len(data) {
				if err == nil {
					err = io.ErrUnexpectedEOF
				}
				errs = multierror.Append(errs,
					fmt.Errorf("tag %s at offset %d: %w", tag.ID, offset, err))
				break
			}
			tag.Data = data
		}
		res = append(res, tag)
	}

	if errs != nil {
		debug.Logger.Debug().Int("entries", n).Int("failed", len(errs.Errors)).
			Msg("damaged IFD entries")
	}
	return res, errs.ErrorOrNil()
}

// EncodeIFD writes a directory for the given records.  Entries are written
// in ascending order of tag identifiers and the next-IFD pointer is zero.
// Values larger than four bytes are stored after the entry table, at
// offsets computed relative to base, the position of the directory within
// the enclosing file.
func EncodeIFD(records []RawTag, base uint32) []byte {
	records = slices.Clone(records)
	slices.SortStableFunc(records, func(a, b RawTag) int {
		return int(a.ID) - int(b.ID)
	})
	le := binary.LittleEndian

	tableSize := 2 + 12*len(records) + 4
	buf := make([]byte, tableSize)
	le.PutUint16(buf, uint16(len(records)))
	for i, rec := range records {
		entry := buf[2+12*i : 2+12*(i+1)]
		le.PutUint16(entry, uint16(rec.ID))
		le.PutUint16(entry[2:], uint16(rec.Type))
		count := rec.Count
		if size := rec.Type.Size(); count == 0 && size > 0 {
			count = uint32(len(rec.Data) / size)
		}
		le.PutUint32(entry[4:], count)

		if len(rec.Data) <= 4 {
			copy(entry[8:12], rec.Data)
			continue
		}
		le.PutUint32(entry[8:], base+uint32(len(buf)))
		buf = append(buf, rec.Data...)
		if len(buf)%2 != 0 {
			buf = append(buf, 0)
		}
	}
	return buf
}

var (
	// ErrShortIFD indicates a directory which is too short for its entry
	// count.
	ErrShortIFD = errors.New("exif: truncated IFD")

	errPayloadSize = errors.New("payload too large")
	errNoBacking   = errors.New("out-of-line value without backing store")
)
