package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distrofetch/sysinfo"
)

func fakeHost(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	load := 1.0
	orig := collectFacts
	collectFacts = func(context.Context) *sysinfo.Facts {
		return &sysinfo.Facts{
			Username: "alice",
			Hostname: "box",
			OS:       "Fedora Linux 40 (Workstation Edition)",
			Kernel:   "6.8.9-300.fc40.x86_64",
			Uptime:   3 * time.Hour,
			Shell:    "bash",
			CPU:      "Test CPU",
			Cores:    4,
			Load:     &load,
			MemUsed:  2 << 30,
			MemTotal: 8 << 30,
			Disks:    []sysinfo.Disk{{Device: "/dev/sda1", Mount: "/", Used: 10 << 30, Total: 40 << 30}},
		}
	}
	t.Cleanup(func() { collectFacts = orig })
}

func TestRunShowsDetectedDistro(t *testing.T) {
	fakeHost(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--color-mode", "none"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	rows := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(rows[0], "          ,'''''."), "%q", rows[0])
	assert.Contains(t, rows[0], "alice ~ box (up 3 hours)")
	assert.Contains(t, out, "OS: Fedora Linux 40 (Workstation Edition)")
	assert.Contains(t, out, "Load: ~25 % (4 cores)")
	assert.Contains(t, out, "RAM: 2.0 GB / 8.0 GB (25.0 %)")
	assert.Contains(t, out, "● / (25.0 %)")
	assert.NotContains(t, out, "\x1b[")
	assert.Empty(t, stderr.String())
}

func TestRunDistroOverride(t *testing.T) {
	fakeHost(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--distro", "Arch", "--color-mode", "ansi"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "\x1b[1m\x1b[36m", "arch art is bold cyan")
}

func TestRunWithoutLogo(t *testing.T) {
	fakeHost(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--show-logo", "never", "--color-mode", "none"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "alice ~ box"))
}

func TestRunWithoutLogoKeepsDistroColor(t *testing.T) {
	fakeHost(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--show-logo", "never", "--distro", "Arch", "--color-mode", "ansi"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "\x1b[1;36malice\x1b[0m"), "%q", out)
	assert.NotContains(t, out, "/\\", "art stays hidden")
}

func TestRunAutoLogoOffTerminal(t *testing.T) {
	fakeHost(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--show-logo", "auto", "--color-mode", "none"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "alice ~ box"), "width query fails on a buffer")
}

func TestRunMissingImageFallsBack(t *testing.T) {
	fakeHost(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--image", "/nonexistent/logo.png", "--color-mode", "none"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), ",'''''.")
	assert.Contains(t, stderr.String(), "cannot show image")
}

func TestRunNoColorEnv(t *testing.T) {
	fakeHost(t)
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run(nil, &stdout, &stderr))
	assert.NotContains(t, stdout.String(), "\x1b[")
}

func TestRunListDistros(t *testing.T) {
	fakeHost(t)
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run([]string{"--list-distros"}, &stdout, &stderr))
	out := stdout.String()
	assert.Contains(t, out, "Fedora")
	assert.Contains(t, out, "Windows Server")
	assert.True(t, strings.HasSuffix(out, "(default)\n"))
}

func TestRunHelp(t *testing.T) {
	fakeHost(t)
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "--show-logo")
}

func TestRunUsageError(t *testing.T) {
	fakeHost(t)
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run([]string{"--color", "mauve-ish"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "unknown color")
	assert.Empty(t, stdout.String())
}
