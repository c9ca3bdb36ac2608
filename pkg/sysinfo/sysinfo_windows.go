//go:build windows

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func stat() (*SysInfo, error) {
	v := windows.RtlGetVersion()

	return &SysInfo{
		Name:    "Windows",
		Release: fmt.Sprintf("Windows %d.%d", v.MajorVersion, v.MinorVersion),
		Version: fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber),
	}, nil
}
