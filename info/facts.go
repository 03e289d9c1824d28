package info

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"distrofetch/palette"
	"distrofetch/sysinfo"
)

// User is the identity header: "user ~ host (up 3 hours, 4 mins)" followed
// by a rule of the same visible width.
type User struct {
	User   string
	Host   string
	Uptime time.Duration
}

func (u User) Render(b palette.Brush) []string {
	var names []string
	for _, s := range []string{u.User, u.Host} {
		if s != "" {
			names = append(names, b.Bold(s))
		}
	}
	if len(names) == 0 {
		return nil
	}

	line := strings.Join(names, " ~ ")
	if u.Uptime > 0 {
		line += " " + b.Paint("(up "+sysinfo.FormatUptime(u.Uptime)+")")
	}
	return []string{line, strings.Repeat("-", ansi.StringWidth(line))}
}

// Host lists operating system facts.
type Host struct {
	Distro   string
	Model    string
	Kernel   string
	Shell    string
	Terminal string
}

func (h Host) Render(b palette.Brush) []string {
	return Fields{
		{"OS", h.Distro},
		{"Host", h.Model},
		{"Kernel", h.Kernel},
		{"Shell", h.Shell},
		{"Terminal", h.Terminal},
	}.Render(b)
}

// System lists CPU, load and memory. Load is the 15 minute load average
// and is nil when the platform does not report one.
type System struct {
	CPU      string
	Cores    int
	Load     *float64
	MemUsed  uint64
	MemTotal uint64
}

func (s System) Render(b palette.Brush) []string {
	var load, mem string
	if s.Load != nil && s.Cores > 0 {
		load = fmt.Sprintf("~%.0f %% (%d cores)", *s.Load/float64(s.Cores)*100, s.Cores)
	}
	if s.MemTotal > 0 {
		mem = fmt.Sprintf("%s / %s (%.1f %%)",
			sysinfo.FormatBytes(s.MemUsed),
			sysinfo.FormatBytes(s.MemTotal),
			float64(s.MemUsed)/float64(s.MemTotal)*100)
	}
	return Fields{
		{"CPU", s.CPU},
		{"Load", load},
		{"RAM", mem},
	}.Render(b)
}
