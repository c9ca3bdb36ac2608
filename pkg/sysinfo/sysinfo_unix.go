//go:build unix

package sysinfo

import (
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

func stat() (*SysInfo, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil, err
	}

	return &SysInfo{
		Name:    unix.ByteSliceToString(uts.Sysname[:]),
		Release: release(),
		Version: unix.ByteSliceToString(uts.Release[:]),
	}, nil
}

func release() string {
	for _, path := range []string{"/etc/os-release", "/usr/lib/os-release"} {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()

		return parseOSRelease(f)
	}

	// macOS ships no os-release file.
	out, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return ""
	}
	return "macOS " + strings.TrimSpace(string(out))
}
