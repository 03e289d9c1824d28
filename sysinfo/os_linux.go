package sysinfo

import (
	"os"
	"path/filepath"
	"strings"
)

func osName() string {
	return readOSRelease("/")
}

// hostModel reads the DMI product fields exported by the kernel.
func hostModel() string {
	return readDMI("/sys/devices/virtual/dmi/id")
}

// placeholder values firmware vendors leave in DMI tables
var dmiFiller = []string{"to be filled", "default string", "not specified", "system product name", "none"}

func readDMI(dir string) string {
	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return ""
		}
		v := strings.TrimSpace(string(b))
		for _, junk := range dmiFiller {
			if strings.Contains(strings.ToLower(v), junk) {
				return ""
			}
		}
		return v
	}

	vendor, product, version := read("sys_vendor"), read("product_name"), read("product_version")
	if product == "" {
		product = read("board_name")
	}
	return strings.Join(strings.Fields(vendor+" "+product+" "+version), " ")
}
