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
package sysinfo

import (
	"bufio"
	"io"
	"runtime"
	"strings"
)

var SysUnknown = SysInfo{
	Name:    runtime.GOOS,
	Release: "unknown",
	Version: "unknown",
}

type SysInfo struct {
	Name    string // Operating system name as reported by the kernel (e.g. "Linux", "Darwin", "Windows").
	Release string // Distribution or product name (e.g. "Ubuntu 24.04 LTS").
	Version string // Kernel or build version.
}

// Stat describes the running operating system. Fields that cannot be
// determined are set to "unknown".
func Stat() (*SysInfo, error) {
	info, err := stat()
	if err != nil {
		return nil, err
	}
	if info.Name == "" {
		info.Name = SysUnknown.Name
	}
	if info.Release == "" {
		info.Release = SysUnknown.Release
	}
	if info.Version == "" {
		info.Version = SysUnknown.Version
	}
	return info, nil
}

// parseOSRelease extracts a display name from an os-release(5) file.
func parseOSRelease(r io.Reader) string {
	var name, version, pretty string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)

		switch key {
		case "PRETTY_NAME":
			pretty = value
		case "NAME":
			name = value
		case "VERSION":
			version = value
		}
	}

	if pretty != "" {
		return pretty
	}
	return strings.TrimSpace(name + " " + version)
}
