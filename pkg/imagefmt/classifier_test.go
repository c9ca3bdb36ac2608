package imagefmt_test

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ostafen/imgsniff/pkg/imagefmt"
	"github.com/stretchr/testify/require"
)

type sample struct {
	name   string
	data   []byte
	format imagefmt.Format
}

// pad extends b to n bytes with a filler that matches no signature.
func pad(b []byte, n int) []byte {
	out := make([]byte, max(n, len(b)))
	copy(out, b)
	for i := len(b); i < len(out); i++ {
		out[i] = 0xEE
	}
	return out
}

var canonical = []sample{
	{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xDB}, imagefmt.JPEG},
	{"jpeg-xl codestream", []byte{0xFF, 0x0A, 0x00, 0x00}, imagefmt.JPEGXL},
	{"jpeg-xl container", []byte{0x00, 0x00, 0x00, 0x0C, 0x4A, 0x58, 0x4C, 0x20, 0x0D, 0x0A, 0x87, 0x0A}, imagefmt.JPEGXL},
	{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, imagefmt.PNG},
	{"webp", []byte("RIFF\x00\x00\x00\x00WEBP"), imagefmt.WebP},
	{"aseprite", []byte("ASEF\x00\x01\x02\x03"), imagefmt.Aseprite},
	{"avif", []byte("\x00\x00\x00\x1Cftypavif"), imagefmt.AVIF},
	{"bmp", []byte("BM\x00\x01\x02\x03"), imagefmt.BMP},
	{"dds", []byte("DDS \x7C\x00\x00\x00"), imagefmt.DDS},
	{"exr", []byte{0x76, 0x2F, 0x31, 0x01, 0x02, 0x02}, imagefmt.EXR},
	{"farbfeld", []byte("farbfeld\x00\x00\x00\x00"), imagefmt.Farbfeld},
	{"gif87a", []byte("GIF87a\x00\x00"), imagefmt.GIF},
	{"gif89a", []byte("GIF89a\x00\x00"), imagefmt.GIF},
	{"hdr radiance", []byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n"), imagefmt.HDR},
	{"hdr rgbe", []byte("#?RGBE\n"), imagefmt.HDR},
	{"heic", []byte("\x00\x00\x00\x18ftypheic"), imagefmt.HEIF},
	{"heif", []byte("\x00\x00\x00\x18ftypheif"), imagefmt.HEIF},
	{"ico", []byte{0x00, 0x00, 0x01, 0x00, 0x02, 0x00}, imagefmt.ICO},
	{"ilbm", []byte("FORM\x00\x00\x00\x00ILBM"), imagefmt.ILBM},
	{"ktx2", []byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}, imagefmt.KTX2},
	{"pnm p1", []byte("P1\n"), imagefmt.PNM},
	{"pnm p6", []byte("P6\n# Comment\n"), imagefmt.PNM},
	{"psd", []byte("8BPS\x00\x01"), imagefmt.PSD},
	{"qoi", []byte("qoif\x00\x01"), imagefmt.QOI},
	{"tga", []byte{0x00, 0x01, 0x02, 0x00, 0x00}, imagefmt.TGA},
	{"tga rle", []byte{0x00, 0x00, 0x0A, 0x00}, imagefmt.TGA},
	{"tiff little endian", []byte{0x49, 0x49, 0x2A, 0x00}, imagefmt.TIFF},
	{"tiff big endian", []byte{0x4D, 0x4D, 0x00, 0x2A}, imagefmt.TIFF},
	{"vtf", []byte("VTF\x00"), imagefmt.VTF},
}

func TestDetect(t *testing.T) {
	for _, tc := range canonical {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.format, imagefmt.Detect(tc.data))
			require.Equal(t, tc.format, imagefmt.Detect(pad(tc.data, imagefmt.WindowSize)))
			require.Equal(t, tc.format, imagefmt.Detect(pad(tc.data, 4096)))
		})
	}
}

func TestDetectReader(t *testing.T) {
	for _, tc := range canonical {
		t.Run(tc.name, func(t *testing.T) {
			f, err := imagefmt.DetectReader(bytes.NewReader(pad(tc.data, 64)))
			require.NoError(t, err)
			require.Equal(t, tc.format, f)
		})
	}
}

func TestDetectUnknown(t *testing.T) {
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect([]byte{0x00, 0x11, 0x22, 0x33}))
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect(make([]byte, imagefmt.WindowSize)))
}

func TestDetectIsTotal(t *testing.T) {
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect(nil))
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect([]byte{}))

	// Every prefix of every signature must be handled without panicking.
	for _, tc := range canonical {
		for n := 0; n <= len(tc.data); n++ {
			require.NotPanics(t, func() { imagefmt.Detect(tc.data[:n]) })
		}
	}

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		buf := make([]byte, rnd.Intn(2*imagefmt.WindowSize))
		rnd.Read(buf)
		require.NotPanics(t, func() { imagefmt.Detect(buf) })
	}
}

func TestDetectShortInputs(t *testing.T) {
	// Signatures needing 12 bytes fail on shorter input instead of matching.
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect([]byte("RIFF\x00\x00\x00\x00WEB")))
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect([]byte("FORM\x00\x00\x00\x00")))
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect([]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A}))
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect([]byte("P")))
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect([]byte{0xFF}))
}

func TestDetectIsDeterministic(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		buf := make([]byte, imagefmt.WindowSize)
		rnd.Read(buf)
		require.Equal(t, imagefmt.Detect(buf), imagefmt.Detect(buf))
	}
	for _, tc := range canonical {
		require.Equal(t, imagefmt.Detect(tc.data), imagefmt.Detect(tc.data))
	}
}

func TestDetectPriority(t *testing.T) {
	require.Equal(t, imagefmt.JPEGXL, imagefmt.Detect(pad([]byte{0xFF, 0x0A, 0x00, 0x00}, 12)))
	require.Equal(t, imagefmt.JPEG, imagefmt.Detect(pad([]byte{0xFF, 0xD8, 0xFF, 0xDB}, 12)))

	// byte[2] satisfies the TGA heuristic but a stronger signature wins.
	require.Equal(t, imagefmt.BMP, imagefmt.Detect([]byte{'B', 'M', 0x02, 0x00}))
	require.Equal(t, imagefmt.PNM, imagefmt.Detect([]byte{'P', '3', 0x0A}))
	require.Equal(t, imagefmt.JPEG, imagefmt.Detect([]byte{0xFF, 0xD8, 0x02}))
	require.Equal(t, imagefmt.Aseprite, imagefmt.Detect(pad([]byte("ASEF"), 12)))

	// Nothing but the heuristic matches.
	require.Equal(t, imagefmt.TGA, imagefmt.Detect([]byte{'A', 'S', 0x02, 'X'}))
	require.Equal(t, imagefmt.TGA, imagefmt.Detect([]byte{'P', '7', 0x0A}))
}

func TestDetectWindowOnlySignatures(t *testing.T) {
	pcx := pad([]byte{0x0A, 0x00, 0x01, 0x08}, imagefmt.WindowSize)
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect(pcx))

	f, err := imagefmt.DetectReader(bytes.NewReader(pcx))
	require.NoError(t, err)
	require.Equal(t, imagefmt.PCX, f)

	hdr := pad([]byte("#?XYZ\n"), imagefmt.WindowSize)
	require.Equal(t, imagefmt.Unknown, imagefmt.Detect(hdr))

	f, err = imagefmt.DetectReader(bytes.NewReader(hdr))
	require.NoError(t, err)
	require.Equal(t, imagefmt.HDR, f)
}

func TestDetectReaderShortRead(t *testing.T) {
	for n := 0; n < imagefmt.WindowSize; n++ {
		f, err := imagefmt.DetectReader(bytes.NewReader([]byte{0xFF, 0xD8, 0xFF, 0xDB, 0, 0, 0, 0, 0, 0, 0}[:n]))
		require.ErrorIs(t, err, imagefmt.ErrShortRead)
		require.NotErrorIs(t, err, imagefmt.ErrNotRecognized)
		require.Equal(t, imagefmt.Unknown, f)
	}

	_, err := imagefmt.DetectReader(bytes.NewReader(nil))
	require.ErrorIs(t, err, imagefmt.ErrShortRead)
	require.ErrorIs(t, err, io.EOF)

	_, err = imagefmt.DetectReader(bytes.NewReader([]byte{0xFF, 0xD8}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDetectReaderPassesThroughIOErrors(t *testing.T) {
	errBroken := errors.New("broken pipe")

	_, err := imagefmt.DetectReader(iotest.ErrReader(errBroken))
	require.ErrorIs(t, err, imagefmt.ErrShortRead)
	require.ErrorIs(t, err, errBroken)

	r := io.MultiReader(bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}), iotest.ErrReader(errBroken))
	_, err = imagefmt.DetectReader(r)
	require.ErrorIs(t, err, imagefmt.ErrShortRead)
	require.ErrorIs(t, err, errBroken)
}

func TestDetectReaderReadsExactlyOneWindow(t *testing.T) {
	data := pad([]byte("GIF89a"), 100)
	r := bytes.NewReader(data)

	f, err := imagefmt.DetectReader(iotest.OneByteReader(r))
	require.NoError(t, err)
	require.Equal(t, imagefmt.GIF, f)
	require.Equal(t, len(data)-imagefmt.WindowSize, r.Len())
}

func TestDetectReaderNotRecognized(t *testing.T) {
	f, err := imagefmt.DetectReader(bytes.NewReader(make([]byte, imagefmt.WindowSize)))
	require.ErrorIs(t, err, imagefmt.ErrNotRecognized)
	require.NotErrorIs(t, err, imagefmt.ErrShortRead)
	require.Equal(t, imagefmt.Unknown, f)
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0644))
		return path
	}

	f, err := imagefmt.DetectFile(write("image.png", pad([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, 512)))
	require.NoError(t, err)
	require.Equal(t, imagefmt.PNG, f)

	_, err = imagefmt.DetectFile(write("empty", nil))
	require.ErrorIs(t, err, imagefmt.ErrShortRead)

	_, err = imagefmt.DetectFile(write("zeros", make([]byte, 64)))
	require.ErrorIs(t, err, imagefmt.ErrNotRecognized)
	require.True(t, strings.Contains(err.Error(), "zeros"))

	_, err = imagefmt.DetectFile(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NotErrorIs(t, err, imagefmt.ErrShortRead)
}

func TestClassifier(t *testing.T) {
	c := imagefmt.NewClassifier(imagefmt.WindowMode)
	require.Equal(t, imagefmt.WindowMode, c.Mode())

	f, ok := c.Classify([]byte{0x0A, 0x00, 0x01})
	require.True(t, ok)
	require.Equal(t, imagefmt.PCX, f)

	f, ok = imagefmt.NewClassifier(imagefmt.SliceMode).Classify([]byte{0x0A, 0x00, 0x01})
	require.False(t, ok)
	require.Equal(t, imagefmt.Unknown, f)
}
