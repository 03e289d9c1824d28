//go:build !unix

package sysinfo

// kernelRelease is filled from gopsutil's host info on these platforms.
func kernelRelease() string { return "" }
