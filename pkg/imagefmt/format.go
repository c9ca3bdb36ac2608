// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package imagefmt

import "strings"

// Format identifies an image encoding.
type Format int

const (
	Unknown Format = iota
	JPEG
	JPEGXL
	PNG
	WebP
	Aseprite
	AVIF
	BMP
	DDS
	EXR
	Farbfeld
	GIF
	HDR
	HEIF
	ICO
	ILBM
	KTX2
	PCX
	PNM
	PSD
	QOI
	TGA
	TIFF
	VTF

	numFormats
)

type formatInfo struct {
	name string
	ext  string
	mime string
}

var formatTable = [numFormats]formatInfo{
	Unknown:  {name: "Unknown", ext: "unknown", mime: "application/octet-stream"},
	JPEG:     {name: "JPEG", ext: "jpg", mime: "image/jpeg"},
	JPEGXL:   {name: "JPEG XL", ext: "jpg", mime: "image/jxl"},
	PNG:      {name: "PNG", ext: "png", mime: "image/png"},
	WebP:     {name: "WebP", ext: "webp", mime: "image/webp"},
	Aseprite: {name: "Aseprite", ext: "ase", mime: "image/x-aseprite"},
	AVIF:     {name: "AVIF", ext: "avif", mime: "image/avif"},
	BMP:      {name: "BMP", ext: "bmp", mime: "image/bmp"},
	DDS:      {name: "DDS", ext: "dds", mime: "image/vnd-ms.dds"},
	EXR:      {name: "OpenEXR", ext: "exr", mime: "image/x-exr"},
	Farbfeld: {name: "Farbfeld", ext: "ff", mime: "image/x-farbfeld"},
	GIF:      {name: "GIF", ext: "gif", mime: "image/gif"},
	HDR:      {name: "Radiance HDR", ext: "hdr", mime: "image/vnd.radiance"},
	HEIF:     {name: "HEIF", ext: "heif", mime: "image/heif"},
	ICO:      {name: "ICO", ext: "ico", mime: "image/x-icon"},
	ILBM:     {name: "ILBM", ext: "iff", mime: "image/x-ilbm"},
	KTX2:     {name: "KTX2", ext: "ktx2", mime: "image/ktx2"},
	PCX:      {name: "PCX", ext: "pcx", mime: "image/x-pcx"},
	PNM:      {name: "PNM", ext: "pnm", mime: "image/x-portable-anymap"},
	PSD:      {name: "PSD", ext: "psd", mime: "image/vnd.adobe.photoshop"},
	QOI:      {name: "QOI", ext: "qoi", mime: "image/qoi"},
	TGA:      {name: "TGA", ext: "tga", mime: "image/x-tga"},
	TIFF:     {name: "TIFF", ext: "tiff", mime: "image/tiff"},
	VTF:      {name: "VTF", ext: "vtf", mime: "image/vnd.valve.source.texture"},
}

func (f Format) info() formatInfo {
	if f < 0 || f >= numFormats {
		return formatTable[Unknown]
	}
	return formatTable[f]
}

// String returns the human readable name of the format.
func (f Format) String() string {
	return f.info().name
}

// Ext returns the canonical file extension of the format, without the leading dot.
// Distinct formats may share an extension (JPEG and JPEG XL both map to "jpg").
func (f Format) Ext() string {
	return f.info().ext
}

// MIMEType returns the media type commonly associated with the format.
func (f Format) MIMEType() string {
	return f.info().mime
}

// Formats returns every detectable format, in declaration order.
func Formats() []Format {
	formats := make([]Format, 0, numFormats-1)
	for f := Unknown + 1; f < numFormats; f++ {
		formats = append(formats, f)
	}
	return formats
}

// ParseFormat looks a format up by name or extension, ignoring case and a leading dot.
// When several formats share an extension, the first one declared wins.
func ParseFormat(s string) (Format, bool) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	if s == "" {
		return Unknown, false
	}

	for _, f := range Formats() {
		if strings.ToLower(f.String()) == s || f.Ext() == s {
			return f, true
		}
	}
	return Unknown, false
}
