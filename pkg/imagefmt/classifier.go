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

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrShortRead is returned when a source yields fewer than WindowSize bytes.
	ErrShortRead = errors.New("short read")

	// ErrNotRecognized is returned when a full window matches no signature.
	ErrNotRecognized = errors.New("format not recognized")
)

// Classifier evaluates an ordered list of signatures against a byte window.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	mode Mode
	sigs []Signature
}

var (
	sliceClassifier  = NewClassifier(SliceMode)
	windowClassifier = NewClassifier(WindowMode)
)

// NewClassifier returns a classifier over the built-in signatures enabled in mode m.
func NewClassifier(m Mode) *Classifier {
	return &Classifier{
		mode: m,
		sigs: Signatures(m),
	}
}

// Mode returns the mode the classifier was built for.
func (c *Classifier) Mode() Mode {
	return c.mode
}

// Classify returns the format of the first signature matching b.
// Signatures needing more bytes than len(b) do not match.
func (c *Classifier) Classify(b []byte) (Format, bool) {
	for _, sig := range c.sigs {
		if sig.Match.Match(b) {
			return sig.Format, true
		}
	}
	return Unknown, false
}

// Detect classifies the leading bytes of b. It never fails: input matching no
// signature, including an empty one, yields Unknown.
func Detect(b []byte) Format {
	f, _ := sliceClassifier.Classify(b)
	return f
}

// DetectReader reads exactly WindowSize bytes from r and classifies them.
// If fewer bytes are available the returned error wraps both ErrShortRead and the
// underlying read error. A full window matching no signature yields ErrNotRecognized.
func DetectReader(r io.Reader) (Format, error) {
	var window [WindowSize]byte

	n, err := io.ReadFull(r, window[:])
	if err != nil {
		return Unknown, fmt.Errorf("%w: got %d of %d bytes: %w", ErrShortRead, n, WindowSize, err)
	}

	f, ok := windowClassifier.Classify(window[:])
	if !ok {
		return Unknown, ErrNotRecognized
	}
	return f, nil
}

// DetectFile opens the file at path and classifies its first WindowSize bytes.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	defer f.Close()

	format, err := DetectReader(f)
	if err != nil {
		return Unknown, fmt.Errorf("%s: %w", path, err)
	}
	return format, nil
}
