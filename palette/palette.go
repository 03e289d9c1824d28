// Package palette maps color identifiers from the distro catalog and the
// command line to terminal escape sequences.
//
// A Color is mode independent: the same identifier renders as a 24-bit
// sequence in ModeHex, degrades to the nearest of the 16 ANSI colors in
// ModeANSI, and renders as nothing in ModeNone.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ErrUnknownColor is returned when an identifier is neither a known ANSI
// color name, an ANSI index, nor a hex string.
var ErrUnknownColor = errors.New("unknown color")

// Escape sequences shared by the renderers.
const (
	Reset     = termenv.CSI + termenv.ResetSeq + "m"
	BoldSeq   = termenv.CSI + termenv.BoldSeq + "m"
	DefaultFg = termenv.CSI + "39m"
)

// Mode selects how colors are written to the terminal.
type Mode int

const (
	// ModeNone disables coloring entirely.
	ModeNone Mode = iota
	// ModeANSI limits output to the 16 ANSI colors.
	ModeANSI
	// ModeHex allows 24-bit colors.
	ModeHex
)

// ParseMode parses the --color-mode values hex, ansi and none.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex", "truecolor", "rgb":
		return ModeHex, nil
	case "ansi":
		return ModeANSI, nil
	case "none", "off":
		return ModeNone, nil
	}
	return ModeNone, fmt.Errorf("invalid color mode %q (want hex, ansi or none)", s)
}

func (m Mode) String() string {
	switch m {
	case ModeHex:
		return "hex"
	case ModeANSI:
		return "ansi"
	default:
		return "none"
	}
}

// Profile returns the termenv profile matching the mode.
func (m Mode) Profile() termenv.Profile {
	switch m {
	case ModeHex:
		return termenv.TrueColor
	case ModeANSI:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

var names = map[string]termenv.ANSIColor{
	"black":          termenv.ANSIBlack,
	"red":            termenv.ANSIRed,
	"green":          termenv.ANSIGreen,
	"yellow":         termenv.ANSIYellow,
	"blue":           termenv.ANSIBlue,
	"magenta":        termenv.ANSIMagenta,
	"purple":         termenv.ANSIMagenta,
	"cyan":           termenv.ANSICyan,
	"white":          termenv.ANSIWhite,
	"bright_black":   termenv.ANSIBrightBlack,
	"bright_red":     termenv.ANSIBrightRed,
	"bright_green":   termenv.ANSIBrightGreen,
	"bright_yellow":  termenv.ANSIBrightYellow,
	"bright_blue":    termenv.ANSIBrightBlue,
	"bright_magenta": termenv.ANSIBrightMagenta,
	"bright_purple":  termenv.ANSIBrightMagenta,
	"bright_cyan":    termenv.ANSIBrightCyan,
	"bright_white":   termenv.ANSIBrightWhite,
}

// Color is a parsed color identifier. The zero value is the terminal's
// default color.
type Color struct {
	name string
	tc   termenv.Color
}

// Default is the neutral terminal color.
var Default = Color{}

// Parse parses an identifier: "default", an ANSI name such as "blue" or
// "bright_red", an ANSI index 0-255, or a hex string "#rgb" / "#rrggbb".
func Parse(id string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(id))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)

	switch {
	case s == "" || s == "default" || s == "reset":
		return Default, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return Default, fmt.Errorf("%w: %q", ErrUnknownColor, id)
		}
		hex := c.Hex()
		return Color{name: hex, tc: termenv.RGBColor(hex)}, nil
	}

	if c, ok := names[s]; ok {
		return Color{name: s, tc: c}, nil
	}

	if i, err := strconv.Atoi(s); err == nil && i >= 0 && i < 256 {
		if i < 16 {
			return Color{name: s, tc: termenv.ANSIColor(i)}, nil
		}
		return Color{name: s, tc: termenv.ANSI256Color(i)}, nil
	}

	return Default, fmt.Errorf("%w: %q", ErrUnknownColor, id)
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(id string) Color {
	c, err := Parse(id)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseList parses every identifier in ids.
func ParseList(ids []string) ([]Color, error) {
	out := make([]Color, 0, len(ids))
	for _, id := range ids {
		c, err := Parse(id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// MustParseList is like ParseList but panics on error. For static tables.
func MustParseList(ids ...string) []Color {
	out, err := ParseList(ids)
	if err != nil {
		panic(err)
	}
	return out
}

func (c Color) String() string {
	if c.tc == nil {
		return "default"
	}
	return c.name
}

// IsDefault reports whether c is the neutral terminal color.
func (c Color) IsDefault() bool { return c.tc == nil }

// Term returns c converted to the profile of mode, or nil when the mode
// cannot show it.
func (c Color) Term(mode Mode) termenv.Color {
	if c.tc == nil {
		return nil
	}
	tc := mode.Profile().Convert(c.tc)
	if _, ok := tc.(termenv.NoColor); ok {
		return nil
	}
	return tc
}

// Foreground returns the escape sequence switching the foreground to c.
// The default color yields DefaultFg in a colored mode and "" in ModeNone.
func (c Color) Foreground(mode Mode) string {
	return c.escape(mode, false)
}

// Background returns the escape sequence switching the background to c.
func (c Color) Background(mode Mode) string {
	return c.escape(mode, true)
}

func (c Color) escape(mode Mode, bg bool) string {
	if mode == ModeNone {
		return ""
	}
	tc := c.Term(mode)
	if tc == nil {
		if bg {
			return termenv.CSI + "49m"
		}
		return DefaultFg
	}
	seq := tc.Sequence(bg)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
