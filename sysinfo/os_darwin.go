package sysinfo

import (
	"strings"

	"golang.org/x/sys/unix"
)

func osName() string {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil || v == "" {
		return "macOS"
	}
	return "macOS " + v
}

func hostModel() string {
	model, err := unix.Sysctl("hw.model")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(model)
}
