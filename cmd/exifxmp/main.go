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

// Command exifxmp prints the metadata of a JPEG or TIFF file as an XMP
// packet.
//
// Usage:
//
//	exifxmp [-exif] [-v] file
//
// With -exif, the decoded EXIF tags are listed instead.
package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	goexif "github.com/dsoprea/go-exif/v3"
	"github.com/rs/zerolog"

	"seehuhn.de/go/exifxmp/exif"
	"seehuhn.de/go/exifxmp/extract"
	"seehuhn.de/go/exifxmp/xmp"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the EXIF metadata of a file as an XMP packet.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	listExif := flag.Bool("exif", false, "list the EXIF tags instead of printing XMP")
	verbose := flag.Bool("v", false, "report skipped input")
	wrap := flag.Bool("packet", true, "wrap the output in <?xpacket?> instructions")
	indent := flag.String("indent", "  ", "indentation of the XML output")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
	xmp.SetLogger(logger)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	fname := flag.Arg(0)

	data, err := os.ReadFile(fname)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot read file")
	}
	dirs, err := readDirectories(data, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("file", fname).Msg("cannot decode EXIF data")
	}

	if *listExif {
		printExif(os.Stdout, dirs)
		return
	}

	root := extract.NewMap("file")
	for _, d := range dirs {
		root.Set(d.format, extract.FromExif(d.format, nil, d.records))
	}
	p := extract.New().Packet(root)
	body, err := p.Encode(&xmp.EncodeOptions{Packet: *wrap, Indent: *indent})
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot encode XMP packet")
	}
	os.Stdout.Write(body)
	if !bytes.HasSuffix(body, []byte("\n")) {
		fmt.Println()
	}
}

// directory holds the records of one image file directory.
type directory struct {
	format  string // "ifd", "exif" or "gps"
	group   exif.Group
	records []exif.RawTag
}

// readDirectories locates the EXIF block in the file and reads the main
// image directory together with the Exif and GPS directories it points to.
// A file without EXIF data gives an empty result.
func readDirectories(data []byte, logger zerolog.Logger) ([]directory, error) {
	raw, err := goexif.SearchAndExtractExif(data)
	if errors.Is(err, goexif.ErrNoExif) {
		logger.Info().Msg("no EXIF data found")
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	hdr, err := goexif.ParseExifHeader(raw)
	if err != nil {
		return nil, err
	}
	if hdr.ByteOrder != binary.LittleEndian {
		return nil, errBigEndian
	}
	backing := bytes.NewReader(raw)

	read := func(format string, group exif.Group, offset uint32) (directory, error) {
		d := directory{format: format, group: group}
		if uint64(offset) >= uint64(len(raw)) {
			return d, fmt.Errorf("%s directory: offset %d: %w", format, offset, exif.ErrShortIFD)
		}
		records, err := exif.DecodeIFD(raw[offset:], backing)
		if err != nil {
			// damaged entries are reported but do not stop the decoding
			logger.Warn().Err(err).Str("directory", format).Msg("damaged entries")
		}
		d.records = records
		return d, nil
	}

	ifd0, err := read("ifd", exif.GroupTIFF, hdr.FirstIfdOffset)
	if err != nil {
		return nil, err
	}
	dirs := []directory{ifd0}

	subDirs := []struct {
		pointer exif.TagID
		format  string
		group   exif.Group
	}{
		{exif.TagExifIFD, "exif", exif.GroupExif},
		{exif.TagGPSIFD, "gps", exif.GroupGPS},
	}
	for _, sub := range subDirs {
		offset, ok := pointer(ifd0.records, sub.pointer)
		if !ok {
			continue
		}
		d, err := read(sub.format, sub.group, offset)
		if err != nil {
			logger.Warn().Err(err).Msg("skipping directory")
			continue
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// pointer returns the offset stored in a directory pointer tag.
func pointer(records []exif.RawTag, id exif.TagID) (uint32, bool) {
	for _, rec := range records {
		if rec.ID != id {
			continue
		}
		switch v := exif.Decode(rec).(type) {
		case exif.Uint32:
			return uint32(v), true
		case exif.Uint16:
			return uint32(v), true
		}
	}
	return 0, false
}

func printExif(w io.Writer, dirs []directory) {
	for _, d := range dirs {
		coll := exif.CollectionFromRaw(nil, d.records)
		for _, p := range coll.Properties() {
			var info *exif.TagInfo
			if d.group == exif.GroupGPS {
				info, _ = exif.DefaultRegistry.LookupIn(exif.GroupGPS, p.ID)
			} else {
				info, _ = exif.DefaultRegistry.Lookup(p.ID)
			}
			name := p.ID.String()
			if info != nil {
				name = info.Name
			}
			fmt.Fprintf(w, "%-5s %-28s %s\n", d.format, name, exif.Format(info, p.Value))
		}
	}
}

var errBigEndian = errors.New("big-endian EXIF data is not supported")
