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

// WindowSize is the number of leading bytes needed to evaluate every signature.
const WindowSize = 12

// Mode selects how input is acquired and how a miss is reported.
type Mode int

const (
	// SliceMode classifies an in-memory buffer of any length and reports
	// a miss as Unknown.
	SliceMode Mode = iota + 1
	// WindowMode classifies exactly WindowSize bytes read from a source and
	// reports a miss as ErrNotRecognized.
	WindowMode
)

func (m Mode) String() string {
	switch m {
	case SliceMode:
		return "slice"
	case WindowMode:
		return "window"
	}
	return "invalid"
}

// Signature binds a format to the predicate identifying it.
type Signature struct {
	Format Format
	Match  Matcher

	// WindowOnly restricts the signature to WindowMode.
	WindowOnly bool
}

// Enabled reports whether the signature is evaluated in mode m.
func (s Signature) Enabled(m Mode) bool {
	return !s.WindowOnly || m == WindowMode
}

// signatures is evaluated top to bottom and the first match wins.
// PCX and TGA are weak heuristics and must stay below every anchored signature.
var signatures = []Signature{
	{Format: JPEG, Match: Prefix([]byte{0xFF, 0xD8})},
	{Format: JPEGXL, Match: Any(
		Prefix([]byte{0xFF, 0x0A}),
		Prefix([]byte{0x00, 0x00, 0x00, 0x0C, 'J', 'X', 'L', ' ', 0x0D, 0x0A, 0x87, 0x0A}),
	)},
	{Format: PNG, Match: Prefix([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})},
	{Format: WebP, Match: All(Prefix([]byte("RIFF")), At(8, []byte("WEBP")))},
	{Format: Aseprite, Match: Prefix([]byte("ASEF"))},
	{Format: AVIF, Match: All(At(4, []byte("ftyp")), At(8, []byte("avif")))},
	{Format: BMP, Match: Prefix([]byte("BM"))},
	{Format: DDS, Match: Prefix([]byte("DDS "))},
	{Format: EXR, Match: Prefix([]byte{0x76, 0x2F, 0x31, 0x01})},
	{Format: Farbfeld, Match: Prefix([]byte("farbfeld"))},
	{Format: GIF, Match: Any(Prefix([]byte("GIF87a")), Prefix([]byte("GIF89a")))},
	{Format: HDR, Match: Any(Prefix([]byte("#?RADIANCE")), Prefix([]byte("#?RGBE")))},
	{Format: HDR, Match: Prefix([]byte("#?")), WindowOnly: true},
	{Format: HEIF, Match: All(
		At(4, []byte("ftyp")),
		Any(At(8, []byte("heic")), At(8, []byte("heif"))),
	)},
	{Format: ICO, Match: Prefix([]byte{0x00, 0x00, 0x01, 0x00})},
	{Format: ILBM, Match: All(Prefix([]byte("FORM")), At(8, []byte("ILBM")))},
	{Format: KTX2, Match: Prefix([]byte{0xAB, 'K', 'T', 'X', ' ', '2', '0', 0xBB, 0x0D, 0x0A, 0x1A, 0x0A})},
	{Format: PNM, Match: All(Prefix([]byte("P")), InRange(1, '1', '6'))},
	{Format: PSD, Match: Prefix([]byte("8BPS"))},
	{Format: QOI, Match: Prefix([]byte("qoif"))},
	{Format: TIFF, Match: Any(
		Prefix([]byte{0x49, 0x49, 0x2A, 0x00}),
		Prefix([]byte{0x4D, 0x4D, 0x00, 0x2A}),
	)},
	{Format: VTF, Match: Prefix([]byte("VTF"))},
	{Format: PCX, Match: Prefix([]byte{0x0A, 0x00, 0x01}), WindowOnly: true},
	{Format: TGA, Match: OneOf(2, 0x02, 0x0A)},
}

// Signatures returns the ordered signatures evaluated in mode m.
// The returned slice is a copy and may be modified freely.
func Signatures(m Mode) []Signature {
	sigs := make([]Signature, 0, len(signatures))
	for _, sig := range signatures {
		if sig.Enabled(m) {
			sigs = append(sigs, sig)
		}
	}
	return sigs
}
