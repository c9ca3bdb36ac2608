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

// Package imagefmt identifies image encodings from their leading bytes.
//
// Detection never decodes pixel data. An ordered table of signatures is
// evaluated first match wins, so strong anchored signatures shadow weak
// heuristics such as TGA.
//
// Two entry shapes share the same engine:
//
//	f := imagefmt.Detect(buf)              // any length, Unknown on miss
//	f, err := imagefmt.DetectReader(r)     // reads WindowSize bytes
//	f, err := imagefmt.DetectFile(path)
//
// DetectReader and DetectFile report ErrShortRead when fewer than WindowSize
// bytes are available and ErrNotRecognized when no signature matches. The
// bounded-window shape additionally recognizes PCX and any HDR file starting
// with "#?".
package imagefmt
