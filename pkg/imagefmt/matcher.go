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
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Matcher is a predicate over the leading bytes of a file.
type Matcher interface {
	// Match reports whether b satisfies the predicate. It must return false,
	// rather than panic, when b is shorter than Reach.
	Match(b []byte) bool

	// Reach is one past the last offset the predicate may read.
	Reach() int

	String() string
}

type bytesAt struct {
	off  int
	want []byte
}

// At matches the exact byte sequence want at offset off.
func At(off int, want []byte) Matcher {
	return bytesAt{off: off, want: want}
}

// Prefix matches the exact byte sequence want at offset 0.
func Prefix(want []byte) Matcher {
	return At(0, want)
}

func (m bytesAt) Match(b []byte) bool {
	if len(b) < m.Reach() {
		return false
	}
	return bytes.Equal(b[m.off:m.Reach()], m.want)
}

func (m bytesAt) Reach() int {
	return m.off + len(m.want)
}

func (m bytesAt) String() string {
	return fmt.Sprintf("@%d=%s", m.off, hex.EncodeToString(m.want))
}

type byteSet struct {
	off int
	set []byte
}

// OneOf matches a single byte at offset off equal to any byte in set.
func OneOf(off int, set ...byte) Matcher {
	return byteSet{off: off, set: set}
}

func (m byteSet) Match(b []byte) bool {
	if len(b) <= m.off {
		return false
	}
	return bytes.IndexByte(m.set, b[m.off]) >= 0
}

func (m byteSet) Reach() int {
	return m.off + 1
}

func (m byteSet) String() string {
	return fmt.Sprintf("@%d in {%s}", m.off, hexList(m.set))
}

type byteRange struct {
	off    int
	lo, hi byte
}

// InRange matches a single byte at offset off within [lo, hi].
func InRange(off int, lo, hi byte) Matcher {
	return byteRange{off: off, lo: lo, hi: hi}
}

func (m byteRange) Match(b []byte) bool {
	if len(b) <= m.off {
		return false
	}
	return b[m.off] >= m.lo && b[m.off] <= m.hi
}

func (m byteRange) Reach() int {
	return m.off + 1
}

func (m byteRange) String() string {
	return fmt.Sprintf("@%d in [%02x-%02x]", m.off, m.lo, m.hi)
}

type allOf []Matcher

// All matches when every one of ms matches.
func All(ms ...Matcher) Matcher {
	return allOf(ms)
}

func (ms allOf) Match(b []byte) bool {
	for _, m := range ms {
		if !m.Match(b) {
			return false
		}
	}
	return true
}

func (ms allOf) Reach() int {
	return maxReach(ms)
}

func (ms allOf) String() string {
	return join(ms, " && ")
}

type anyOf []Matcher

// Any matches when at least one of ms matches. Alternatives are tried in order.
func Any(ms ...Matcher) Matcher {
	return anyOf(ms)
}

func (ms anyOf) Match(b []byte) bool {
	for _, m := range ms {
		if m.Match(b) {
			return true
		}
	}
	return false
}

func (ms anyOf) Reach() int {
	return maxReach(ms)
}

func (ms anyOf) String() string {
	return "(" + join(ms, " || ") + ")"
}

func maxReach(ms []Matcher) int {
	n := 0
	for _, m := range ms {
		n = max(n, m.Reach())
	}
	return n
}

func join(ms []Matcher, sep string) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, sep)
}

func hexList(set []byte) string {
	parts := make([]string, len(set))
	for i, b := range set {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ",")
}
