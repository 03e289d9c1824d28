//go:build windows

// Package sysinfo - Windows-specific implementation
package sysinfo

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// osName retrieves the Windows product name from the registry, e.g.
// "Windows 11 Pro 23H2" or "Windows Server 2022 Datacenter".
func osName() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "Windows"
	}
	defer func() { _ = k.Close() }()

	productName, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return "Windows"
	}

	// Windows 11 still reports "Windows 10" as its product name; the build
	// number tells them apart.
	buildStr, _, _ := k.GetStringValue("CurrentBuild")
	if build, err := strconv.Atoi(buildStr); err == nil && build >= 22000 &&
		strings.Contains(strings.ToLower(productName), "windows 10") {
		productName = strings.Replace(productName, "Windows 10", "Windows 11", 1)
	}

	if displayVersion, _, err := k.GetStringValue("DisplayVersion"); err == nil && displayVersion != "" {
		return fmt.Sprintf("%s %s", productName, displayVersion)
	}
	return productName
}

// hostModel retrieves the computer manufacturer and model.
func hostModel() string {
	manufacturer := registryString(`SYSTEM\CurrentControlSet\Control\SystemInformation`, "SystemManufacturer")
	model := registryString(`SYSTEM\CurrentControlSet\Control\SystemInformation`, "SystemProductName")

	if manufacturer == "" {
		manufacturer = registryString(`HARDWARE\DESCRIPTION\System\BIOS`, "SystemManufacturer")
	}
	if model == "" {
		model = registryString(`HARDWARE\DESCRIPTION\System\BIOS`, "SystemProductName")
	}

	return strings.TrimSpace(manufacturer + " " + model)
}

// registryString reads a string value under HKEY_LOCAL_MACHINE, returning
// "" when the key or value is missing.
func registryString(path, valueName string) string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}
