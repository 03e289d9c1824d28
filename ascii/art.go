// Package ascii expands colorized ASCII-art templates into printable
// terminal lines.
//
// Templates embed {N} placeholders that switch the foreground to the Nth
// palette color. Rendering is lazy: an Art yields one line per Next call,
// already escaped and padded to the template's display width, so the
// caller can zip it with other text without measuring it again.
package ascii

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"distrofetch/distro"
	"distrofetch/palette"
)

var placeholderRe = regexp.MustCompile(`\{([0-9]+)\}`)

// Art is a single-pass iterator over the rendered lines of a template.
type Art struct {
	lines   []string
	palette []palette.Color
	mode    palette.Mode
	width   int
	bold    bool

	fg  string
	pos int
}

// New renders the template of r in mode. The width is the record's
// precomputed width.
func New(r *distro.Record, mode palette.Mode) *Art {
	return newArt(r.Lines(), r.Palette(mode), mode, r.Width)
}

// NewTemplate renders an arbitrary template with colors. Placeholders that
// index past the end of colors fall back to the default foreground.
func NewTemplate(template string, colors []palette.Color, mode palette.Mode) *Art {
	template = strings.TrimRight(template, "\n")
	_, width := distro.Strip(template)
	if mode == palette.ModeNone {
		colors = nil
	}
	return newArt(strings.Split(template, "\n"), colors, mode, width)
}

func newArt(lines []string, colors []palette.Color, mode palette.Mode, width int) *Art {
	return &Art{
		lines:   lines,
		palette: colors,
		mode:    mode,
		width:   width,
		bold:    len(colors) > 0,
	}
}

// Width is the display width of every line Next returns.
func (a *Art) Width() int { return a.width }

// Len is the total number of lines of the art.
func (a *Art) Len() int { return len(a.lines) }

// Next returns the next rendered line, or false once the art is exhausted.
func (a *Art) Next() (string, bool) {
	if a.pos >= len(a.lines) {
		return "", false
	}
	line := a.render(a.lines[a.pos])
	a.pos++
	return line, true
}

// Lines drains the remaining lines.
func (a *Art) Lines() []string {
	var out []string
	for line, ok := a.Next(); ok; line, ok = a.Next() {
		out = append(out, line)
	}
	return out
}

func (a *Art) render(line string) string {
	var b strings.Builder
	styled := len(a.palette) > 0

	if styled {
		if a.bold {
			b.WriteString(palette.BoldSeq)
		}
		b.WriteString(a.fg)
	}

	visible := 0
	rest := line
	for {
		loc := placeholderRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			visible += runewidth.StringWidth(rest)
			break
		}

		text := rest[:loc[0]]
		b.WriteString(text)
		visible += runewidth.StringWidth(text)

		n, err := strconv.Atoi(rest[loc[2]:loc[3]])
		if err != nil {
			n = -1
		}
		a.fg = a.color(n)
		if styled {
			b.WriteString(a.fg)
		}
		rest = rest[loc[1]:]
	}

	if styled {
		b.WriteString(palette.Reset)
	}
	if pad := a.width - visible; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

func (a *Art) color(n int) string {
	if n >= 0 && n < len(a.palette) {
		return a.palette[n].Foreground(a.mode)
	}
	return palette.DefaultFg
}
