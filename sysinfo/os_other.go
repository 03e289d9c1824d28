//go:build !linux && !darwin && !windows

package sysinfo

// osName falls back to the gopsutil platform name in Collect when no
// os-release file exists.
func osName() string {
	return readOSRelease("/")
}

func hostModel() string { return "" }
