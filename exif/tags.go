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

// XMP namespace URIs used in the tag table.
const (
	nsTIFF   = "http://ns.adobe.com/tiff/1.0/"
	nsExif   = "http://ns.adobe.com/exif/1.0/"
	nsExifEX = "http://cipa.jp/exif/1.0/"
	nsDC     = "http://purl.org/dc/elements/1.1/"
	nsXMP    = "http://ns.adobe.com/xap/1.0/"
)

// Enumerations used by the standard tags.
var (
	Orientation = &EnumType{
		Name:  "Orientation",
		Width: 2,
		Members: []EnumMember{
			{1, "TopLeft"},
			{2, "TopRight"},
			{3, "BottomRight"},
			{4, "BottomLeft"},
			{5, "LeftTop"},
			{6, "RightTop"},
			{7, "RightBottom"},
			{8, "LeftBottom"},
		},
	}

	ResolutionUnit = &EnumType{
		Name:  "ResolutionUnit",
		Width: 2,
		Members: []EnumMember{
			{1, "None"},
			{2, "Inches"},
			{3, "Centimeters"},
		},
	}

	Compression = &EnumType{
		Name:  "Compression",
		Width: 2,
		Members: []EnumMember{
			{1, "Uncompressed"},
			{6, "JPEG"},
			{7, "JPEGCompressed"},
			{8, "Deflate"},
			{32773, "PackBits"},
		},
	}

	YCbCrPositioning = &EnumType{
		Name:  "YCbCrPositioning",
		Width: 2,
		Members: []EnumMember{
			{1, "Centered"},
			{2, "CoSited"},
		},
	}

	ExposureProgram = &EnumType{
		Name:  "ExposureProgram",
		Width: 2,
		Members: []EnumMember{
			{0, "NotDefined"},
			{1, "Manual"},
			{2, "Normal"},
			{3, "AperturePriority"},
			{4, "ShutterPriority"},
			{5, "Creative"},
			{6, "Action"},
			{7, "Portrait"},
			{8, "Landscape"},
		},
	}

	MeteringMode = &EnumType{
		Name:  "MeteringMode",
		Width: 2,
		Members: []EnumMember{
			{0, "Unknown"},
			{1, "Average"},
			{2, "CenterWeightedAverage"},
			{3, "Spot"},
			{4, "MultiSpot"},
			{5, "Pattern"},
			{6, "Partial"},
			{255, "Other"},
		},
	}

	LightSource = &EnumType{
		Name:  "LightSource",
		Width: 2,
		Members: []EnumMember{
			{0, "Unknown"},
			{1, "Daylight"},
			{2, "Fluorescent"},
			{3, "Tungsten"},
			{4, "Flash"},
			{9, "FineWeather"},
			{10, "CloudyWeather"},
			{11, "Shade"},
			{12, "DaylightFluorescent"},
			{13, "DayWhiteFluorescent"},
			{14, "CoolWhiteFluorescent"},
			{15, "WhiteFluorescent"},
			{17, "StandardLightA"},
			{18, "StandardLightB"},
			{19, "StandardLightC"},
			{20, "D55"},
			{21, "D65"},
			{22, "D75"},
			{23, "D50"},
			{24, "ISOStudioTungsten"},
			{255, "Other"},
		},
	}

	// Flash is a flag set.  ReturnDetected covers both strobe return bits
	// and is matched before ReturnNotDetected.
	Flash = &EnumType{
		Name:  "Flash",
		Width: 2,
		Flags: true,
		Members: []EnumMember{
			{0x00, "NoFlash"},
			{0x01, "FlashFired"},
			{0x04, "ReturnNotDetected"},
			{0x06, "ReturnDetected"},
			{0x08, "ModeOn"},
			{0x10, "NoFlashFunction"},
			{0x40, "RedEyeReduction"},
		},
	}

	ColorSpace = &EnumType{
		Name:  "ColorSpace",
		Width: 2,
		Members: []EnumMember{
			{1, "sRGB"},
			{2, "AdobeRGB"},
			{0xFFFF, "Uncalibrated"},
		},
	}

	SensingMethod = &EnumType{
		Name:  "SensingMethod",
		Width: 2,
		Members: []EnumMember{
			{1, "NotDefined"},
			{2, "OneChipColorArea"},
			{3, "TwoChipColorArea"},
			{4, "ThreeChipColorArea"},
			{5, "ColorSequentialArea"},
			{7, "Trilinear"},
			{8, "ColorSequentialLinear"},
		},
	}

	CustomRendered = &EnumType{
		Name:  "CustomRendered",
		Width: 2,
		Members: []EnumMember{
			{0, "Normal"},
			{1, "Custom"},
		},
	}

	ExposureMode = &EnumType{
		Name:  "ExposureMode",
		Width: 2,
		Members: []EnumMember{
			{0, "Auto"},
			{1, "Manual"},
			{2, "AutoBracket"},
		},
	}

	WhiteBalance = &EnumType{
		Name:  "WhiteBalance",
		Width: 2,
		Members: []EnumMember{
			{0, "Auto"},
			{1, "Manual"},
		},
	}

	SceneCaptureType = &EnumType{
		Name:  "SceneCaptureType",
		Width: 2,
		Members: []EnumMember{
			{0, "Standard"},
			{1, "Landscape"},
			{2, "Portrait"},
			{3, "NightScene"},
		},
	}

	GainControl = &EnumType{
		Name:  "GainControl",
		Width: 2,
		Members: []EnumMember{
			{0, "None"},
			{1, "LowGainUp"},
			{2, "HighGainUp"},
			{3, "LowGainDown"},
			{4, "HighGainDown"},
		},
	}

	// Contrast is shared by the Contrast and Sharpness tags.
	Contrast = &EnumType{
		Name:  "Contrast",
		Width: 2,
		Members: []EnumMember{
			{0, "Normal"},
			{1, "Soft"},
			{2, "Hard"},
		},
	}

	Saturation = &EnumType{
		Name:  "Saturation",
		Width: 2,
		Members: []EnumMember{
			{0, "Normal"},
			{1, "Low"},
			{2, "High"},
		},
	}

	SubjectDistanceRange = &EnumType{
		Name:  "SubjectDistanceRange",
		Width: 2,
		Members: []EnumMember{
			{0, "Unknown"},
			{1, "Macro"},
			{2, "CloseView"},
			{3, "DistantView"},
		},
	}

	GPSAltitudeRef = &EnumType{
		Name:  "GPSAltitudeRef",
		Width: 1,
		Members: []EnumMember{
			{0, "AboveSeaLevel"},
			{1, "BelowSeaLevel"},
		},
	}
)

// Identifiers of tags which are referenced by code.
const (
	TagImageDescription TagID = 0x010E
	TagMake             TagID = 0x010F
	TagModel            TagID = 0x0110
	TagOrientation      TagID = 0x0112
	TagSoftware         TagID = 0x0131
	TagDateTime         TagID = 0x0132
	TagArtist           TagID = 0x013B
	TagCopyright        TagID = 0x8298
	TagExifIFD          TagID = 0x8769
	TagGPSIFD           TagID = 0x8825
	TagExifVersion      TagID = 0x9000
	TagFlash            TagID = 0x9209
	TagUserComment      TagID = 0x9286
	TagXPTitle          TagID = 0x9C9B

	TagGPSVersionID       TagID = 0x0000
	TagGPSLatitudeRef     TagID = 0x0001
	TagGPSLatitude        TagID = 0x0002
	TagGPSLongitudeRef    TagID = 0x0003
	TagGPSLongitude       TagID = 0x0004
	TagGPSTimeStamp       TagID = 0x0007
	TagGPSDestLatitudeRef TagID = 0x0013
	TagGPSDestLatitude    TagID = 0x0014
	TagGPSDestLongRef     TagID = 0x0015
	TagGPSDestLongitude   TagID = 0x0016
)

// The GPS tags use small identifiers which collide with nothing in the TIFF
// and Exif groups, so that all three groups can share one table.
var standardTags = []TagInfo{
	// IFD0
	{ID: 0x0100, Name: "ImageWidth", Group: GroupTIFF, Type: TypeUInt32, XMPNamespace: nsTIFF, XMPName: "ImageWidth"},
	{ID: 0x0101, Name: "ImageLength", Group: GroupTIFF, Type: TypeUInt32, XMPNamespace: nsTIFF, XMPName: "ImageLength"},
	{ID: 0x0102, Name: "BitsPerSample", Group: GroupTIFF, Type: TypeUInt16, XMPNamespace: nsTIFF, XMPName: "BitsPerSample"},
	{ID: 0x0103, Name: "Compression", Group: GroupTIFF, Type: TypeUInt16, Domain: DomainEnum, Enum: Compression, XMPNamespace: nsTIFF, XMPName: "Compression"},
	{ID: 0x0106, Name: "PhotometricInterpretation", Group: GroupTIFF, Type: TypeUInt16, XMPNamespace: nsTIFF, XMPName: "PhotometricInterpretation"},
	{ID: TagImageDescription, Name: "ImageDescription", Group: GroupTIFF, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsDC, XMPName: "description"},
	{ID: TagMake, Name: "Make", Group: GroupTIFF, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsTIFF, XMPName: "Make"},
	{ID: TagModel, Name: "Model", Group: GroupTIFF, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsTIFF, XMPName: "Model"},
	{ID: TagOrientation, Name: "Orientation", Group: GroupTIFF, Type: TypeUInt16, Domain: DomainEnum, Enum: Orientation, XMPNamespace: nsTIFF, XMPName: "Orientation"},
	{ID: 0x0115, Name: "SamplesPerPixel", Group: GroupTIFF, Type: TypeUInt16, XMPNamespace: nsTIFF, XMPName: "SamplesPerPixel"},
	{ID: 0x011A, Name: "XResolution", Group: GroupTIFF, Type: TypeURational, XMPNamespace: nsTIFF, XMPName: "XResolution"},
	{ID: 0x011B, Name: "YResolution", Group: GroupTIFF, Type: TypeURational, XMPNamespace: nsTIFF, XMPName: "YResolution"},
	{ID: 0x011C, Name: "PlanarConfiguration", Group: GroupTIFF, Type: TypeUInt16, XMPNamespace: nsTIFF, XMPName: "PlanarConfiguration"},
	{ID: 0x0128, Name: "ResolutionUnit", Group: GroupTIFF, Type: TypeUInt16, Domain: DomainEnum, Enum: ResolutionUnit, XMPNamespace: nsTIFF, XMPName: "ResolutionUnit"},
	{ID: TagSoftware, Name: "Software", Group: GroupTIFF, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsXMP, XMPName: "CreatorTool"},
	{ID: TagDateTime, Name: "DateTime", Group: GroupTIFF, Type: TypeAscii, Domain: DomainDateTime, XMPNamespace: nsXMP, XMPName: "ModifyDate"},
	{ID: TagArtist, Name: "Artist", Group: GroupTIFF, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsDC, XMPName: "creator"},
	{ID: 0x0201, Name: "JPEGInterchangeFormat", Group: GroupTIFF, Type: TypeUInt32},
	{ID: 0x0202, Name: "JPEGInterchangeFormatLength", Group: GroupTIFF, Type: TypeUInt32},
	{ID: 0x0213, Name: "YCbCrPositioning", Group: GroupTIFF, Type: TypeUInt16, Domain: DomainEnum, Enum: YCbCrPositioning, XMPNamespace: nsTIFF, XMPName: "YCbCrPositioning"},
	{ID: 0x4746, Name: "Rating", Group: GroupTIFF, Type: TypeUInt16, XMPNamespace: nsXMP, XMPName: "Rating"},
	{ID: TagCopyright, Name: "Copyright", Group: GroupTIFF, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsDC, XMPName: "rights"},
	{ID: TagExifIFD, Name: "ExifIFDPointer", Group: GroupTIFF, Type: TypeUInt32},
	{ID: TagGPSIFD, Name: "GPSInfoIFDPointer", Group: GroupTIFF, Type: TypeUInt32},
	{ID: TagXPTitle, Name: "XPTitle", Group: GroupTIFF, Type: TypeByte, Domain: DomainWideText, XMPNamespace: nsDC, XMPName: "title"},
	{ID: 0x9C9C, Name: "XPComment", Group: GroupTIFF, Type: TypeByte, Domain: DomainWideText},
	{ID: 0x9C9D, Name: "XPAuthor", Group: GroupTIFF, Type: TypeByte, Domain: DomainWideText},
	{ID: 0x9C9E, Name: "XPKeywords", Group: GroupTIFF, Type: TypeByte, Domain: DomainWideText},
	{ID: 0x9C9F, Name: "XPSubject", Group: GroupTIFF, Type: TypeByte, Domain: DomainWideText},

	// Exif sub-IFD
	{ID: 0x829A, Name: "ExposureTime", Group: GroupExif, Type: TypeURational, Display: "%s s", XMPNamespace: nsExif, XMPName: "ExposureTime"},
	{ID: 0x829D, Name: "FNumber", Group: GroupExif, Type: TypeURational, XMPNamespace: nsExif, XMPName: "FNumber"},
	{ID: 0x8822, Name: "ExposureProgram", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: ExposureProgram, XMPNamespace: nsExif, XMPName: "ExposureProgram"},
	{ID: 0x8827, Name: "ISOSpeedRatings", Group: GroupExif, Type: TypeUInt16, XMPNamespace: nsExif, XMPName: "ISOSpeedRatings"},
	{ID: 0x9000, Name: "ExifVersion", Group: GroupExif, Type: TypeRaw, XMPNamespace: nsExif, XMPName: "ExifVersion"},
	{ID: 0x9003, Name: "DateTimeOriginal", Group: GroupExif, Type: TypeAscii, Domain: DomainDateTime, XMPNamespace: nsExif, XMPName: "DateTimeOriginal"},
	{ID: 0x9004, Name: "DateTimeDigitized", Group: GroupExif, Type: TypeAscii, Domain: DomainDateTime, XMPNamespace: nsXMP, XMPName: "CreateDate"},
	{ID: 0x9010, Name: "OffsetTime", Group: GroupExif, Type: TypeAscii, Domain: DomainText},
	{ID: 0x9201, Name: "ShutterSpeedValue", Group: GroupExif, Type: TypeRational, XMPNamespace: nsExif, XMPName: "ShutterSpeedValue"},
	{ID: 0x9202, Name: "ApertureValue", Group: GroupExif, Type: TypeURational, XMPNamespace: nsExif, XMPName: "ApertureValue"},
	{ID: 0x9203, Name: "BrightnessValue", Group: GroupExif, Type: TypeRational, XMPNamespace: nsExif, XMPName: "BrightnessValue"},
	{ID: 0x9204, Name: "ExposureBiasValue", Group: GroupExif, Type: TypeRational, Display: "%s EV", XMPNamespace: nsExif, XMPName: "ExposureBiasValue"},
	{ID: 0x9205, Name: "MaxApertureValue", Group: GroupExif, Type: TypeURational, XMPNamespace: nsExif, XMPName: "MaxApertureValue"},
	{ID: 0x9206, Name: "SubjectDistance", Group: GroupExif, Type: TypeURational, Display: "%s m", XMPNamespace: nsExif, XMPName: "SubjectDistance"},
	{ID: 0x9207, Name: "MeteringMode", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: MeteringMode, XMPNamespace: nsExif, XMPName: "MeteringMode"},
	{ID: 0x9208, Name: "LightSource", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: LightSource, XMPNamespace: nsExif, XMPName: "LightSource"},
	{ID: TagFlash, Name: "Flash", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: Flash, XMPNamespace: nsExif, XMPName: "Flash"},
	{ID: 0x920A, Name: "FocalLength", Group: GroupExif, Type: TypeURational, Display: "%s mm", XMPNamespace: nsExif, XMPName: "FocalLength"},
	{ID: 0x927C, Name: "MakerNote", Group: GroupExif, Type: TypeRaw},
	{ID: 0x9286, Name: "UserComment", Group: GroupExif, Type: TypeRaw, XMPNamespace: nsExif, XMPName: "UserComment"},
	{ID: 0xA000, Name: "FlashpixVersion", Group: GroupExif, Type: TypeRaw, XMPNamespace: nsExif, XMPName: "FlashpixVersion"},
	{ID: 0xA001, Name: "ColorSpace", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: ColorSpace, XMPNamespace: nsExif, XMPName: "ColorSpace"},
	{ID: 0xA002, Name: "PixelXDimension", Group: GroupExif, Type: TypeUInt32, XMPNamespace: nsExif, XMPName: "PixelXDimension"},
	{ID: 0xA003, Name: "PixelYDimension", Group: GroupExif, Type: TypeUInt32, XMPNamespace: nsExif, XMPName: "PixelYDimension"},
	{ID: 0xA005, Name: "InteroperabilityIFDPointer", Group: GroupExif, Type: TypeUInt32},
	{ID: 0xA217, Name: "SensingMethod", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: SensingMethod, XMPNamespace: nsExif, XMPName: "SensingMethod"},
	{ID: 0xA401, Name: "CustomRendered", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: CustomRendered, XMPNamespace: nsExif, XMPName: "CustomRendered"},
	{ID: 0xA402, Name: "ExposureMode", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: ExposureMode, XMPNamespace: nsExif, XMPName: "ExposureMode"},
	{ID: 0xA403, Name: "WhiteBalance", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: WhiteBalance, XMPNamespace: nsExif, XMPName: "WhiteBalance"},
	{ID: 0xA404, Name: "DigitalZoomRatio", Group: GroupExif, Type: TypeURational, XMPNamespace: nsExif, XMPName: "DigitalZoomRatio"},
	{ID: 0xA405, Name: "FocalLengthIn35mmFilm", Group: GroupExif, Type: TypeUInt16, Display: "%s mm", XMPNamespace: nsExif, XMPName: "FocalLengthIn35mmFilm"},
	{ID: 0xA406, Name: "SceneCaptureType", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: SceneCaptureType, XMPNamespace: nsExif, XMPName: "SceneCaptureType"},
	{ID: 0xA407, Name: "GainControl", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: GainControl, XMPNamespace: nsExif, XMPName: "GainControl"},
	{ID: 0xA408, Name: "Contrast", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: Contrast, XMPNamespace: nsExif, XMPName: "Contrast"},
	{ID: 0xA409, Name: "Saturation", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: Saturation, XMPNamespace: nsExif, XMPName: "Saturation"},
	{ID: 0xA40A, Name: "Sharpness", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: Contrast, XMPNamespace: nsExif, XMPName: "Sharpness"},
	{ID: 0xA40C, Name: "SubjectDistanceRange", Group: GroupExif, Type: TypeUInt16, Domain: DomainEnum, Enum: SubjectDistanceRange, XMPNamespace: nsExif, XMPName: "SubjectDistanceRange"},
	{ID: 0xA420, Name: "ImageUniqueID", Group: GroupExif, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "ImageUniqueID"},
	{ID: 0xA430, Name: "CameraOwnerName", Group: GroupExif, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExifEX, XMPName: "CameraOwnerName"},
	{ID: 0xA431, Name: "BodySerialNumber", Group: GroupExif, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExifEX, XMPName: "BodySerialNumber"},
	{ID: 0xA432, Name: "LensSpecification", Group: GroupExif, Type: TypeURational, XMPNamespace: nsExifEX, XMPName: "LensSpecification"},
	{ID: 0xA433, Name: "LensMake", Group: GroupExif, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExifEX, XMPName: "LensMake"},
	{ID: 0xA434, Name: "LensModel", Group: GroupExif, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExifEX, XMPName: "LensModel"},

	// GPS sub-IFD
	{ID: TagGPSVersionID, Name: "GPSVersionID", Group: GroupGPS, Type: TypeByte, XMPNamespace: nsExif, XMPName: "GPSVersionID"},
	{ID: TagGPSLatitudeRef, Name: "GPSLatitudeRef", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSLatitudeRef"},
	{ID: TagGPSLatitude, Name: "GPSLatitude", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSLatitude"},
	{ID: TagGPSLongitudeRef, Name: "GPSLongitudeRef", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSLongitudeRef"},
	{ID: TagGPSLongitude, Name: "GPSLongitude", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSLongitude"},
	{ID: 0x0005, Name: "GPSAltitudeRef", Group: GroupGPS, Type: TypeByte, Domain: DomainEnum, Enum: GPSAltitudeRef, XMPNamespace: nsExif, XMPName: "GPSAltitudeRef"},
	{ID: 0x0006, Name: "GPSAltitude", Group: GroupGPS, Type: TypeURational, Display: "%s m", XMPNamespace: nsExif, XMPName: "GPSAltitude"},
	{ID: TagGPSTimeStamp, Name: "GPSTimeStamp", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSTimeStamp"},
	{ID: 0x0008, Name: "GPSSatellites", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSSatellites"},
	{ID: 0x0009, Name: "GPSStatus", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSStatus"},
	{ID: 0x000A, Name: "GPSMeasureMode", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSMeasureMode"},
	{ID: 0x000B, Name: "GPSDOP", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSDOP"},
	{ID: 0x000C, Name: "GPSSpeedRef", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSSpeedRef"},
	{ID: 0x000D, Name: "GPSSpeed", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSSpeed"},
	{ID: 0x000E, Name: "GPSTrackRef", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSTrackRef"},
	{ID: 0x000F, Name: "GPSTrack", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSTrack"},
	{ID: 0x0010, Name: "GPSImgDirectionRef", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSImgDirectionRef"},
	{ID: 0x0011, Name: "GPSImgDirection", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSImgDirection"},
	{ID: 0x0012, Name: "GPSMapDatum", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSMapDatum"},
	{ID: TagGPSDestLatitudeRef, Name: "GPSDestLatitudeRef", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSDestLatitudeRef"},
	{ID: TagGPSDestLatitude, Name: "GPSDestLatitude", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSDestLatitude"},
	{ID: TagGPSDestLongRef, Name: "GPSDestLongitudeRef", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSDestLongitudeRef"},
	{ID: TagGPSDestLongitude, Name: "GPSDestLongitude", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSDestLongitude"},
	{ID: 0x0017, Name: "GPSDestBearingRef", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSDestBearingRef"},
	{ID: 0x0018, Name: "GPSDestBearing", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSDestBearing"},
	{ID: 0x0019, Name: "GPSDestDistanceRef", Group: GroupGPS, Type: TypeAscii, Domain: DomainText, XMPNamespace: nsExif, XMPName: "GPSDestDistanceRef"},
	{ID: 0x001A, Name: "GPSDestDistance", Group: GroupGPS, Type: TypeURational, XMPNamespace: nsExif, XMPName: "GPSDestDistance"},
	{ID: 0x001B, Name: "GPSProcessingMethod", Group: GroupGPS, Type: TypeRaw, XMPNamespace: nsExif, XMPName: "GPSProcessingMethod"},
	{ID: 0x001D, Name: "GPSDateStamp", Group: GroupGPS, Type: TypeAscii, Domain: DomainDateTime},
	{ID: 0x001E, Name: "GPSDifferential", Group: GroupGPS, Type: TypeUInt16, XMPNamespace: nsExif, XMPName: "GPSDifferential"},
}
