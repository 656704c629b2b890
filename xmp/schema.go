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
	"strings"

	"seehuhn.de/go/exifxmp/exif"
)

// Key identifies a property of one of the supported schemas.
type Key uint16

// KeyUnknown is the zero Key.  It does not refer to any property.
const KeyUnknown Key = 0

// Dublin Core properties.
const (
	DCContributor Key = iota + 1
	DCCoverage
	DCCreator
	DCDate
	DCDescription
	DCFormat
	DCIdentifier
	DCLanguage
	DCPublisher
	DCRelation
	DCRights
	DCSource
	DCSubject
	DCTitle
	DCType

	// XMP basic schema
	XMPBaseURL
	XMPCreateDate
	XMPCreatorTool
	XMPIdentifier
	XMPLabel
	XMPMetadataDate
	XMPModifyDate
	XMPNickname
	XMPRating

	// XMP rights management schema
	RightsCertificate
	RightsMarked
	RightsOwner
	RightsUsageTerms
	RightsWebStatement

	// Photoshop schema
	PhotoshopCity
	PhotoshopCountry
	PhotoshopCredit
	PhotoshopDateCreated
	PhotoshopHeadline

	// TIFF schema
	TIFFImageWidth
	TIFFImageLength
	TIFFBitsPerSample
	TIFFCompression
	TIFFPhotometricInterpretation
	TIFFOrientation
	TIFFSamplesPerPixel
	TIFFPlanarConfiguration
	TIFFYCbCrPositioning
	TIFFXResolution
	TIFFYResolution
	TIFFResolutionUnit
	TIFFMake
	TIFFModel

	// Exif schema
	ExifVersion
	ExifFlashpixVersion
	ExifColorSpace
	ExifPixelXDimension
	ExifPixelYDimension
	ExifUserComment
	ExifDateTimeOriginal
	ExifExposureTime
	ExifFNumber
	ExifExposureProgram
	ExifISOSpeedRatings
	ExifShutterSpeedValue
	ExifApertureValue
	ExifBrightnessValue
	ExifExposureBiasValue
	ExifMaxApertureValue
	ExifSubjectDistance
	ExifMeteringMode
	ExifLightSource
	ExifFlash
	ExifFocalLength
	ExifSensingMethod
	ExifCustomRendered
	ExifExposureMode
	ExifWhiteBalance
	ExifDigitalZoomRatio
	ExifFocalLengthIn35mmFilm
	ExifSceneCaptureType
	ExifGainControl
	ExifContrast
	ExifSaturation
	ExifSharpness
	ExifSubjectDistanceRange
	ExifImageUniqueID

	// Exif schema, GPS properties
	ExifGPSVersionID
	ExifGPSLatitude
	ExifGPSLongitude
	ExifGPSAltitudeRef
	ExifGPSAltitude
	ExifGPSTimeStamp
	ExifGPSSatellites
	ExifGPSStatus
	ExifGPSMeasureMode
	ExifGPSDOP
	ExifGPSSpeedRef
	ExifGPSSpeed
	ExifGPSTrackRef
	ExifGPSTrack
	ExifGPSImgDirectionRef
	ExifGPSImgDirection
	ExifGPSMapDatum
	ExifGPSDestLatitude
	ExifGPSDestLongitude
	ExifGPSDestBearingRef
	ExifGPSDestBearing
	ExifGPSDestDistanceRef
	ExifGPSDestDistance
	ExifGPSProcessingMethod
	ExifGPSDifferential

	// The hemisphere references are only used while combining GPS data and
	// are never written.
	ExifGPSLatitudeRef
	ExifGPSLongitudeRef
	ExifGPSDestLatitudeRef
	ExifGPSDestLongitudeRef

	// Exif extension schema
	ExifEXCameraOwnerName
	ExifEXBodySerialNumber
	ExifEXLensSpecification
	ExifEXLensMake
	ExifEXLensModel

	// Exif auxiliary schema
	AuxSerialNumber
	AuxLens

	numKeys
)

// Category distinguishes properties which are written to XMP packets from
// those which are only used during processing.
type Category uint8

// These are the supported categories.
const (
	External Category = iota
	Internal
)

// Cardinality describes the structure of a property value.
type Cardinality uint8

// These are the XMP cardinalities.
const (
	Single Cardinality = iota
	Bag
	Seq
	Alt
)

func (c Cardinality) String() string {
	switch c {
	case Single:
		return "Single"
	case Bag:
		return "Bag"
	case Seq:
		return "Seq"
	case Alt:
		return "Alt"
	}
	return "Cardinality(?)"
}

// ValueType is the type of the elements of a property value.
type ValueType uint8

// These are the supported value types.
const (
	TypeText ValueType = iota
	TypeProperName
	TypeAgentName
	TypeURI
	TypeMIMEType
	TypeLocale
	TypeInteger
	TypeReal
	TypeBool
	TypeDate
	TypeRational
	TypeGPSCoordinate
	TypeLangAlt
	TypeFlash
)

// IsText reports whether values of this type are stored as [Text].
func (vt ValueType) IsText() bool {
	return vt <= TypeLocale
}

// Descriptor describes a property.
type Descriptor struct {
	Key         Key
	Symbol      string // the Go name of the key, e.g. "DCCreator"
	Namespace   string
	Prefix      string
	Name        string // the local name used in XMP packets
	Category    Category
	Cardinality Cardinality
	ValueType   ValueType

	// Enum gives the names of the values of integer properties, where
	// defined.
	Enum *exif.EnumType
}

// QName returns the prefixed name of the property, e.g. "dc:creator".
func (d *Descriptor) QName() string {
	return d.Prefix + ":" + d.Name
}

type ns = string

func prop(ns ns, name string, card Cardinality, vt ValueType) Descriptor {
	return Descriptor{Namespace: ns, Name: name, Cardinality: card, ValueType: vt}
}

func enumProp(ns ns, name string, enum *exif.EnumType) Descriptor {
	return Descriptor{Namespace: ns, Name: name, ValueType: TypeInteger, Enum: enum}
}

func internal(ns ns, name string) Descriptor {
	return Descriptor{Namespace: ns, Name: name, Category: Internal}
}

var descriptors = [numKeys]Descriptor{
	DCContributor: prop(NSDublinCore, "contributor", Bag, TypeProperName),
	DCCoverage:    prop(NSDublinCore, "coverage", Single, TypeText),
	DCCreator:     prop(NSDublinCore, "creator", Seq, TypeProperName),
	DCDate:        prop(NSDublinCore, "date", Seq, TypeDate),
	DCDescription: prop(NSDublinCore, "description", Alt, TypeLangAlt),
	DCFormat:      prop(NSDublinCore, "format", Single, TypeMIMEType),
	DCIdentifier:  prop(NSDublinCore, "identifier", Single, TypeText),
	DCLanguage:    prop(NSDublinCore, "language", Bag, TypeLocale),
	DCPublisher:   prop(NSDublinCore, "publisher", Bag, TypeProperName),
	DCRelation:    prop(NSDublinCore, "relation", Bag, TypeText),
	DCRights:      prop(NSDublinCore, "rights", Alt, TypeLangAlt),
	DCSource:      prop(NSDublinCore, "source", Single, TypeText),
	DCSubject:     prop(NSDublinCore, "subject", Bag, TypeText),
	DCTitle:       prop(NSDublinCore, "title", Alt, TypeLangAlt),
	DCType:        prop(NSDublinCore, "type", Bag, TypeText),

	XMPBaseURL:      prop(NSBasic, "BaseURL", Single, TypeURI),
	XMPCreateDate:   prop(NSBasic, "CreateDate", Single, TypeDate),
	XMPCreatorTool:  prop(NSBasic, "CreatorTool", Single, TypeAgentName),
	XMPIdentifier:   prop(NSBasic, "Identifier", Bag, TypeText),
	XMPLabel:        prop(NSBasic, "Label", Single, TypeText),
	XMPMetadataDate: prop(NSBasic, "MetadataDate", Single, TypeDate),
	XMPModifyDate:   prop(NSBasic, "ModifyDate", Single, TypeDate),
	XMPNickname:     prop(NSBasic, "Nickname", Single, TypeText),
	XMPRating:       prop(NSBasic, "Rating", Single, TypeInteger),

	RightsCertificate:  prop(NSRights, "Certificate", Single, TypeURI),
	RightsMarked:       prop(NSRights, "Marked", Single, TypeBool),
	RightsOwner:        prop(NSRights, "Owner", Bag, TypeProperName),
	RightsUsageTerms:   prop(NSRights, "UsageTerms", Alt, TypeLangAlt),
	RightsWebStatement: prop(NSRights, "WebStatement", Single, TypeURI),

	PhotoshopCity:        prop(NSPhotoshop, "City", Single, TypeText),
	PhotoshopCountry:     prop(NSPhotoshop, "Country", Single, TypeText),
	PhotoshopCredit:      prop(NSPhotoshop, "Credit", Single, TypeText),
	PhotoshopDateCreated: prop(NSPhotoshop, "DateCreated", Single, TypeDate),
	PhotoshopHeadline:    prop(NSPhotoshop, "Headline", Single, TypeText),

	TIFFImageWidth:                prop(NSTIFF, "ImageWidth", Single, TypeInteger),
	TIFFImageLength:               prop(NSTIFF, "ImageLength", Single, TypeInteger),
	TIFFBitsPerSample:             prop(NSTIFF, "BitsPerSample", Seq, TypeInteger),
	TIFFCompression:               enumProp(NSTIFF, "Compression", exif.Compression),
	TIFFPhotometricInterpretation: prop(NSTIFF, "PhotometricInterpretation", Single, TypeInteger),
	TIFFOrientation:               enumProp(NSTIFF, "Orientation", exif.Orientation),
	TIFFSamplesPerPixel:           prop(NSTIFF, "SamplesPerPixel", Single, TypeInteger),
	TIFFPlanarConfiguration:       prop(NSTIFF, "PlanarConfiguration", Single, TypeInteger),
	TIFFYCbCrPositioning:          enumProp(NSTIFF, "YCbCrPositioning", exif.YCbCrPositioning),
	TIFFXResolution:               prop(NSTIFF, "XResolution", Single, TypeRational),
	TIFFYResolution:               prop(NSTIFF, "YResolution", Single, TypeRational),
	TIFFResolutionUnit:            enumProp(NSTIFF, "ResolutionUnit", exif.ResolutionUnit),
	TIFFMake:                      prop(NSTIFF, "Make", Single, TypeProperName),
	TIFFModel:                     prop(NSTIFF, "Model", Single, TypeProperName),

	ExifVersion:               prop(NSExif, "ExifVersion", Single, TypeText),
	ExifFlashpixVersion:       prop(NSExif, "FlashpixVersion", Single, TypeText),
	ExifColorSpace:            enumProp(NSExif, "ColorSpace", exif.ColorSpace),
	ExifPixelXDimension:       prop(NSExif, "PixelXDimension", Single, TypeInteger),
	ExifPixelYDimension:       prop(NSExif, "PixelYDimension", Single, TypeInteger),
	ExifUserComment:           prop(NSExif, "UserComment", Alt, TypeLangAlt),
	ExifDateTimeOriginal:      prop(NSExif, "DateTimeOriginal", Single, TypeDate),
	ExifExposureTime:          prop(NSExif, "ExposureTime", Single, TypeRational),
	ExifFNumber:               prop(NSExif, "FNumber", Single, TypeRational),
	ExifExposureProgram:       enumProp(NSExif, "ExposureProgram", exif.ExposureProgram),
	ExifISOSpeedRatings:       prop(NSExif, "ISOSpeedRatings", Seq, TypeInteger),
	ExifShutterSpeedValue:     prop(NSExif, "ShutterSpeedValue", Single, TypeRational),
	ExifApertureValue:         prop(NSExif, "ApertureValue", Single, TypeRational),
	ExifBrightnessValue:       prop(NSExif, "BrightnessValue", Single, TypeRational),
	ExifExposureBiasValue:     prop(NSExif, "ExposureBiasValue", Single, TypeRational),
	ExifMaxApertureValue:      prop(NSExif, "MaxApertureValue", Single, TypeRational),
	ExifSubjectDistance:       prop(NSExif, "SubjectDistance", Single, TypeRational),
	ExifMeteringMode:          enumProp(NSExif, "MeteringMode", exif.MeteringMode),
	ExifLightSource:           enumProp(NSExif, "LightSource", exif.LightSource),
	ExifFlash:                 prop(NSExif, "Flash", Single, TypeFlash),
	ExifFocalLength:           prop(NSExif, "FocalLength", Single, TypeRational),
	ExifSensingMethod:         enumProp(NSExif, "SensingMethod", exif.SensingMethod),
	ExifCustomRendered:        enumProp(NSExif, "CustomRendered", exif.CustomRendered),
	ExifExposureMode:          enumProp(NSExif, "ExposureMode", exif.ExposureMode),
	ExifWhiteBalance:          enumProp(NSExif, "WhiteBalance", exif.WhiteBalance),
	ExifDigitalZoomRatio:      prop(NSExif, "DigitalZoomRatio", Single, TypeRational),
	ExifFocalLengthIn35mmFilm: prop(NSExif, "FocalLengthIn35mmFilm", Single, TypeInteger),
	ExifSceneCaptureType:      enumProp(NSExif, "SceneCaptureType", exif.SceneCaptureType),
	ExifGainControl:           enumProp(NSExif, "GainControl", exif.GainControl),
	ExifContrast:              enumProp(NSExif, "Contrast", exif.Contrast),
	ExifSaturation:            enumProp(NSExif, "Saturation", exif.Saturation),
	ExifSharpness:             enumProp(NSExif, "Sharpness", exif.Contrast),
	ExifSubjectDistanceRange:  enumProp(NSExif, "SubjectDistanceRange", exif.SubjectDistanceRange),
	ExifImageUniqueID:         prop(NSExif, "ImageUniqueID", Single, TypeText),

	ExifGPSVersionID:        prop(NSExif, "GPSVersionID", Single, TypeText),
	ExifGPSLatitude:         prop(NSExif, "GPSLatitude", Single, TypeGPSCoordinate),
	ExifGPSLongitude:        prop(NSExif, "GPSLongitude", Single, TypeGPSCoordinate),
	ExifGPSAltitudeRef:      enumProp(NSExif, "GPSAltitudeRef", exif.GPSAltitudeRef),
	ExifGPSAltitude:         prop(NSExif, "GPSAltitude", Single, TypeRational),
	ExifGPSTimeStamp:        prop(NSExif, "GPSTimeStamp", Single, TypeDate),
	ExifGPSSatellites:       prop(NSExif, "GPSSatellites", Single, TypeText),
	ExifGPSStatus:           prop(NSExif, "GPSStatus", Single, TypeText),
	ExifGPSMeasureMode:      prop(NSExif, "GPSMeasureMode", Single, TypeText),
	ExifGPSDOP:              prop(NSExif, "GPSDOP", Single, TypeRational),
	ExifGPSSpeedRef:         prop(NSExif, "GPSSpeedRef", Single, TypeText),
	ExifGPSSpeed:            prop(NSExif, "GPSSpeed", Single, TypeRational),
	ExifGPSTrackRef:         prop(NSExif, "GPSTrackRef", Single, TypeText),
	ExifGPSTrack:            prop(NSExif, "GPSTrack", Single, TypeRational),
	ExifGPSImgDirectionRef:  prop(NSExif, "GPSImgDirectionRef", Single, TypeText),
	ExifGPSImgDirection:     prop(NSExif, "GPSImgDirection", Single, TypeRational),
	ExifGPSMapDatum:         prop(NSExif, "GPSMapDatum", Single, TypeText),
	ExifGPSDestLatitude:     prop(NSExif, "GPSDestLatitude", Single, TypeGPSCoordinate),
	ExifGPSDestLongitude:    prop(NSExif, "GPSDestLongitude", Single, TypeGPSCoordinate),
	ExifGPSDestBearingRef:   prop(NSExif, "GPSDestBearingRef", Single, TypeText),
	ExifGPSDestBearing:      prop(NSExif, "GPSDestBearing", Single, TypeRational),
	ExifGPSDestDistanceRef:  prop(NSExif, "GPSDestDistanceRef", Single, TypeText),
	ExifGPSDestDistance:     prop(NSExif, "GPSDestDistance", Single, TypeRational),
	ExifGPSProcessingMethod: prop(NSExif, "GPSProcessingMethod", Single, TypeText),
	ExifGPSDifferential:     prop(NSExif, "GPSDifferential", Single, TypeInteger),

	ExifGPSLatitudeRef:      internal(NSExif, "GPSLatitudeRef"),
	ExifGPSLongitudeRef:     internal(NSExif, "GPSLongitudeRef"),
	ExifGPSDestLatitudeRef:  internal(NSExif, "GPSDestLatitudeRef"),
	ExifGPSDestLongitudeRef: internal(NSExif, "GPSDestLongitudeRef"),

	ExifEXCameraOwnerName:   prop(NSExifEX, "CameraOwnerName", Single, TypeText),
	ExifEXBodySerialNumber:  prop(NSExifEX, "BodySerialNumber", Single, TypeText),
	ExifEXLensSpecification: prop(NSExifEX, "LensSpecification", Seq, TypeRational),
	ExifEXLensMake:          prop(NSExifEX, "LensMake", Single, TypeText),
	ExifEXLensModel:         prop(NSExifEX, "LensModel", Single, TypeText),

	AuxSerialNumber: prop(NSAux, "SerialNumber", Single, TypeText),
	AuxLens:         prop(NSAux, "Lens", Single, TypeText),
}

// keySymbols gives the Go names of the keys, in the same order as the
// constant declarations.
var keySymbols = strings.Fields(`-
	DCContributor DCCoverage DCCreator DCDate DCDescription DCFormat
	DCIdentifier DCLanguage DCPublisher DCRelation DCRights DCSource
	DCSubject DCTitle DCType
	XMPBaseURL XMPCreateDate XMPCreatorTool XMPIdentifier XMPLabel
	XMPMetadataDate XMPModifyDate XMPNickname XMPRating
	RightsCertificate RightsMarked RightsOwner RightsUsageTerms
	RightsWebStatement
	PhotoshopCity PhotoshopCountry PhotoshopCredit PhotoshopDateCreated
	PhotoshopHeadline
	TIFFImageWidth TIFFImageLength TIFFBitsPerSample TIFFCompression
	TIFFPhotometricInterpretation TIFFOrientation TIFFSamplesPerPixel
	TIFFPlanarConfiguration TIFFYCbCrPositioning TIFFXResolution
	TIFFYResolution TIFFResolutionUnit TIFFMake TIFFModel
	ExifVersion ExifFlashpixVersion ExifColorSpace ExifPixelXDimension
	ExifPixelYDimension ExifUserComment ExifDateTimeOriginal
	ExifExposureTime ExifFNumber ExifExposureProgram ExifISOSpeedRatings
	ExifShutterSpeedValue ExifApertureValue ExifBrightnessValue
	ExifExposureBiasValue ExifMaxApertureValue ExifSubjectDistance
	ExifMeteringMode ExifLightSource ExifFlash ExifFocalLength
	ExifSensingMethod ExifCustomRendered ExifExposureMode ExifWhiteBalance
	ExifDigitalZoomRatio ExifFocalLengthIn35mmFilm ExifSceneCaptureType
	ExifGainControl ExifContrast ExifSaturation ExifSharpness
	ExifSubjectDistanceRange ExifImageUniqueID
	ExifGPSVersionID ExifGPSLatitude ExifGPSLongitude ExifGPSAltitudeRef
	ExifGPSAltitude ExifGPSTimeStamp ExifGPSSatellites ExifGPSStatus
	ExifGPSMeasureMode ExifGPSDOP ExifGPSSpeedRef ExifGPSSpeed
	ExifGPSTrackRef ExifGPSTrack ExifGPSImgDirectionRef ExifGPSImgDirection
	ExifGPSMapDatum ExifGPSDestLatitude ExifGPSDestLongitude
	ExifGPSDestBearingRef ExifGPSDestBearing ExifGPSDestDistanceRef
	ExifGPSDestDistance ExifGPSProcessingMethod ExifGPSDifferential
	ExifGPSLatitudeRef ExifGPSLongitudeRef ExifGPSDestLatitudeRef
	ExifGPSDestLongitudeRef
	ExifEXCameraOwnerName ExifEXBodySerialNumber ExifEXLensSpecification
	ExifEXLensMake ExifEXLensModel
	AuxSerialNumber AuxLens`)

type qualifiedName struct {
	ns, name string
}

var (
	keyBySymbol = make(map[string]Key)
	keyByName   = make(map[qualifiedName]Key)
)

func init() {
	if len(keySymbols) != int(numKeys) {
		panic("xmp: key symbol table out of sync")
	}
	for k := Key(1); k < numKeys; k++ {
		d := &descriptors[k]
		d.Key = k
		d.Symbol = keySymbols[k]
		d.Prefix = defaultPrefix[d.Namespace]
		keyBySymbol[d.Symbol] = k
		keyByName[qualifiedName{d.Namespace, d.Name}] = k
	}
}

// Descriptor returns the description of the property.  The result is nil
// for [KeyUnknown] and for invalid keys.
func (k Key) Descriptor() *Descriptor {
	if k == KeyUnknown || k >= numKeys {
		return nil
	}
	return &descriptors[k]
}

func (k Key) String() string {
	if d := k.Descriptor(); d != nil {
		return d.QName()
	}
	return "KeyUnknown"
}

// KeyByName returns the key of the property with the given name space URI
// and local name.
func KeyByName(ns, name string) (Key, bool) {
	k, ok := keyByName[qualifiedName{ns, name}]
	return k, ok
}

// ParseKey finds the key for a property name.  The name can be given as a
// Go symbol like "DCCreator", as a prefixed name like "dc:creator", or as
// a bare local name like "creator".  Bare names are compared
// case-insensitively, and the first matching property is returned.
func ParseKey(s string) (Key, error) {
	if k, ok := keyBySymbol[s]; ok {
		return k, nil
	}
	if pfx, name, ok := strings.Cut(s, ":"); ok {
		if ns, ok := NamespaceByPrefix(pfx); ok {
			if k, ok := KeyByName(ns.URI, name); ok {
				return k, nil
			}
		}
		return KeyUnknown, &UnknownKeyError{Name: s}
	}
	for k := Key(1); k < numKeys; k++ {
		if strings.EqualFold(descriptors[k].Name, s) {
			return k, nil
		}
	}
	return KeyUnknown, &UnknownKeyError{Name: s}
}

// UnknownKeyError is returned by [ParseKey] for names which do not
// refer to a known property.
type UnknownKeyError struct {
	Name string
}

func (err *UnknownKeyError) Error() string {
	return "xmp: unknown property " + err.Name
}

// Is allows errors.Is(err, ErrUnknownKey) to match.
func (err *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}
