//go:build unix

package sysinfo

import "golang.org/x/sys/unix"

// kernelRelease returns the uname release, e.g. "6.8.9-300.fc40.x86_64".
func kernelRelease() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Release[:])
}
