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
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
)

// recordingReader records all reads from the backing store.
type recordingReader struct {
	r     *bytes.Reader
	reads [][2]int64 // offset, length
}

func (rr *recordingReader) ReadAt(p []byte, off int64) (int, error) {
	rr.reads = append(rr.reads, [2]int64{off, int64(len(p))})
	return rr.r.ReadAt(p, off)
}

func entry(id TagID, wire WireType, count uint32, value []byte) []byte {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint16(buf, uint16(id))
	binary.LittleEndian.PutUint16(buf[2:], uint16(wire))
	binary.LittleEndian.PutUint32(buf[4:], count)
	copy(buf[8:], value)
	return buf
}

func offset(x uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, x)
}

func directory(entries ...[]byte) []byte {
	buf := binary.LittleEndian.AppendUint16(nil, uint16(len(entries)))
	for _, e := range entries {
		buf = append(buf, e...)
	}
	return buf
}

func TestDecodeIFDInline(t *testing.T) {
	buf := directory(
		entry(TagOrientation, TypeUInt16, 1, []byte{1, 0, 0xEE, 0xEE}),
		entry(0x0102, TypeUInt16, 2, []byte{8, 0, 8, 0}),
		entry(TagGPSVersionID, TypeByte, 4, []byte{2, 3, 0, 0}),
	)
	backing := &recordingReader{r: bytes.NewReader(make([]byte, 64))}

	records, err := DecodeIFD(buf, backing)
	if err != nil {
		t.Fatal(err)
	}
	if len(backing.reads) != 0 {
		t.Errorf("unexpected backing store reads %v", backing.reads)
	}
	want := []RawTag{
		{ID: TagOrientation, Type: TypeUInt16, Count: 1, Data: []byte{1, 0}},
		{ID: 0x0102, Type: TypeUInt16, Count: 2, Data: []byte{8, 0, 8, 0}},
		{ID: TagGPSVersionID, Type: TypeByte, Count: 4, Data: []byte{2, 3, 0, 0}},
	}
	if d := cmp.Diff(want, records); d != "" {
		t.Errorf("unexpected records (-want +got):\n%s", d)
	}
}

func TestDecodeIFDOffset(t *testing.T) {
	store := make([]byte, 100)
	copy(store[40:], "Example Camera\x00")
	le := binary.LittleEndian
	le.PutUint32(store[60:], 34)
	le.PutUint32(store[64:], 1)
	le.PutUint32(store[68:], 15)
	le.PutUint32(store[72:], 1)
	le.PutUint32(store[76:], 22)
	le.PutUint32(store[80:], 1)

	buf := directory(
		entry(TagModel, TypeAscii, 15, offset(40)),
		entry(TagGPSLatitude, TypeURational, 3, offset(60)),
	)
	backing := &recordingReader{r: bytes.NewReader(store)}

	records, err := DecodeIFD(buf, backing)
	if err != nil {
		t.Fatal(err)
	}
	wantReads := [][2]int64{{40, 15}, {60, 24}}
	if d := cmp.Diff(wantReads, backing.reads); d != "" {
		t.Errorf("unexpected reads (-want +got):\n%s", d)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if v := Decode(records[0]); v != Text("Example Camera") {
		t.Errorf("got %#v", v)
	}
	want := URationals{{Num: 34, Den: 1}, {Num: 15, Den: 1}, {Num: 22, Den: 1}}
	if d := cmp.Diff(Value(want), Decode(records[1])); d != "" {
		t.Errorf("unexpected value (-want +got):\n%s", d)
	}
}

func TestDecodeIFDCorruptEntry(t *testing.T) {
	store := []byte("0123456789abcdefghij")
	buf := directory(
		entry(TagMake, TypeAscii, 6, offset(0)),
		entry(TagModel, TypeAscii, 1000, offset(10)), // past the end
		entry(TagSoftware, TypeAscii, 5, offset(10)),
	)

	records, err := DecodeIFD(buf, bytes.NewReader(store))
	if err == nil {
		t.Fatal("missing error")
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) != 1 {
		t.Errorf("unexpected error %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records", len(records))
	}
	if records[1].Data != nil {
		t.Errorf("corrupt entry has data %q", records[1].Data)
	}
	if string(records[2].Data) != "abcde" {
		t.Errorf("entry after corrupt entry has data %q", records[2].Data)
	}
}

func TestDecodeIFDShort(t *testing.T) {
	if _, err := DecodeIFD([]byte{1}, nil); !errors.Is(err, ErrShortIFD) {
		t.Errorf("got error %v", err)
	}

	// the count promises two entries, but only one is present
	buf := directory(entry(TagOrientation, TypeUInt16, 1, []byte{1, 0}))
	buf[0] = 2
	records, err := DecodeIFD(buf, nil)
	if !errors.Is(err, ErrShortIFD) {
		t.Errorf("got error %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records", len(records))
	}
}

func TestEncodeIFD(t *testing.T) {
	records := []RawTag{
		{ID: TagModel, Type: TypeAscii, Data: []byte("Example Camera\x00")},
		{ID: TagOrientation, Type: TypeUInt16, Data: []byte{1, 0}},
		{ID: TagGPSLatitude, Type: TypeURational, Data: make([]byte, 24)},
	}
	const base = 8
	buf := EncodeIFD(records, base)

	// prepend base bytes so that offsets resolve against the whole file
	file := append(make([]byte, base), buf...)
	decoded, err := DecodeIFD(buf, bytes.NewReader(file))
	if err != nil {
		t.Fatal(err)
	}
	want := []RawTag{
		{ID: TagGPSLatitude, Type: TypeURational, Count: 3, Data: make([]byte, 24)},
		{ID: TagModel, Type: TypeAscii, Count: 15, Data: []byte("Example Camera\x00")},
		{ID: TagOrientation, Type: TypeUInt16, Count: 1, Data: []byte{1, 0}},
	}
	if d := cmp.Diff(want, decoded); d != "" {
		t.Errorf("unexpected records (-want +got):\n%s", d)
	}
	if len(buf)%2 != 0 {
		t.Errorf("odd directory length %d", len(buf))
	}
}

func TestUndefinedEntries(t *testing.T) {
	comment := []byte("ASCII\x00\x00\x00hello")
	store := make([]byte, 64)
	copy(store[20:], comment)

	buf := directory(
		entry(TagExifVersion, TypeRaw, 4, []byte("0230")),
		entry(TagUserComment, TypeRaw, uint32(len(comment)), offset(20)),
	)
	backing := &recordingReader{r: bytes.NewReader(store)}
	records, err := DecodeIFD(buf, backing)
	if err != nil {
		t.Fatal(err)
	}
	want := []RawTag{
		{ID: TagExifVersion, Type: TypeRaw, Count: 4, Data: []byte("0230")},
		{ID: TagUserComment, Type: TypeRaw, Count: uint32(len(comment)), Data: comment},
	}
	if d := cmp.Diff(want, records); d != "" {
		t.Errorf("unexpected records (-want +got):\n%s", d)
	}
	if d := cmp.Diff([][2]int64{{20, int64(len(comment))}}, backing.reads); d != "" {
		t.Errorf("unexpected reads (-want +got):\n%s", d)
	}

	// write the records back and read them again
	const base = 8
	out := EncodeIFD(records, base)
	file := append(make([]byte, base), out...)
	again, err := DecodeIFD(out, bytes.NewReader(file))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, again); d != "" {
		t.Errorf("round trip changed records (-want +got):\n%s", d)
	}
}
