package sysinfo

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// osReleasePaths are tried in order, relative to a filesystem root.
var osReleasePaths = []string{"etc/os-release", "usr/lib/os-release"}

// ParseOSRelease reads KEY=value pairs in the os-release(5) format. Quoted
// values are unquoted; comments and malformed lines are skipped.
func ParseOSRelease(r io.Reader) (map[string]string, error) {
	fields := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			if unq, err := strconv.Unquote(`"` + value[1:len(value)-1] + `"`); err == nil {
				value = unq
			} else {
				value = value[1 : len(value)-1]
			}
		}
		fields[key] = value
	}
	return fields, sc.Err()
}

// ReleaseName picks the display name from os-release fields.
//
// Parameters:
//   - fields: Parsed os-release pairs, as returned by ParseOSRelease
//
// Returns:
//   - PRETTY_NAME when set
//   - Otherwise NAME followed by VERSION
//   - Otherwise ID, which may be empty
func ReleaseName(fields map[string]string) string {
	if v := fields["PRETTY_NAME"]; v != "" {
		return v
	}
	if v := fields["NAME"]; v != "" {
		return strings.TrimSpace(v + " " + fields["VERSION"])
	}
	return fields["ID"]
}

// readOSRelease returns the release name found under root, or "".
func readOSRelease(root string) string {
	for _, p := range osReleasePaths {
		f, err := os.Open(filepath.Join(root, p))
		if err != nil {
			continue
		}
		fields, err := ParseOSRelease(f)
		f.Close()
		if err != nil {
			continue
		}
		if name := ReleaseName(fields); name != "" {
			return name
		}
	}
	return ""
}
