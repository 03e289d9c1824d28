package sysinfo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestTerminalName(t *testing.T) {
	tests := []struct {
		env  map[string]string
		want string
	}{
		{map[string]string{"WT_SESSION": "x", "TERM": "xterm"}, "Windows Terminal"},
		{map[string]string{"TERM_PROGRAM": "WezTerm", "TERM": "xterm-256color"}, "WezTerm"},
		{map[string]string{"TERM": "xterm-kitty"}, "xterm-kitty"},
		{nil, ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, terminalName(env(tc.env)))
	}
}

func TestShellName(t *testing.T) {
	tests := []struct {
		env  map[string]string
		want string
	}{
		{map[string]string{"SHELL": "/usr/bin/zsh"}, "zsh"},
		{map[string]string{"COMSPEC": `C:\Windows\system32\cmd.exe`}, "cmd"},
		{nil, ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, shellName(env(tc.env)))
	}
}

func TestParseOSRelease(t *testing.T) {
	src := `# generated
NAME="Fedora Linux"
VERSION="40 (Workstation Edition)"
ID=fedora
PRETTY_NAME="Fedora Linux 40 (Workstation Edition)"
BROKEN
HOME_URL='https://fedoraproject.org/'
`
	fields, err := ParseOSRelease(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "Fedora Linux", fields["NAME"])
	assert.Equal(t, "fedora", fields["ID"])
	assert.Equal(t, "https://fedoraproject.org/", fields["HOME_URL"])
	assert.NotContains(t, fields, "BROKEN")
	assert.Equal(t, "Fedora Linux 40 (Workstation Edition)", ReleaseName(fields))
}

func TestReleaseNameFallbacks(t *testing.T) {
	assert.Equal(t, "Void", ReleaseName(map[string]string{"NAME": "Void"}))
	assert.Equal(t, "Debian GNU/Linux 12", ReleaseName(map[string]string{"NAME": "Debian GNU/Linux", "VERSION": "12"}))
	assert.Equal(t, "alpine", ReleaseName(map[string]string{"ID": "alpine"}))
	assert.Equal(t, "", ReleaseName(nil))
}

func TestReadOSReleaseFallsBackToUsrLib(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "usr", "lib")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "os-release"), []byte("PRETTY_NAME=\"Arch Linux\"\n"), 0o644))

	assert.Equal(t, "Arch Linux", readOSRelease(root))
	assert.Equal(t, "", readOSRelease(t.TempDir()))
}

func TestCollectIsBestEffort(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f := Collect(ctx)
	require.NotNil(t, f)
	assert.Positive(t, f.Cores)
	for _, d := range f.Disks {
		assert.NotZero(t, d.Total, d.Mount)
		assert.LessOrEqual(t, d.Used, d.Total, d.Mount)
	}
}
