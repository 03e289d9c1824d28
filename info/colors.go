package info

import (
	"strings"

	"distrofetch/palette"
)

var (
	swatches = palette.MustParseList("black", "red", "green", "yellow", "blue", "magenta", "cyan", "white")
	brights  = palette.MustParseList("bright_black", "bright_red", "bright_green", "bright_yellow",
		"bright_blue", "bright_magenta", "bright_cyan", "bright_white")
)

// Colors shows the terminal palette as a row of background swatches after
// a blank line. Bright adds a second row with the bright variants.
// Nothing is shown when colors are disabled.
type Colors struct {
	Bright bool
}

func (c Colors) Render(b palette.Brush) []string {
	if b.Mode == palette.ModeNone {
		return nil
	}
	lines := []string{"", row(b, swatches)}
	if c.Bright {
		lines = append(lines, row(b, brights))
	}
	return lines
}

func row(b palette.Brush, colors []palette.Color) string {
	var sb strings.Builder
	for _, c := range colors {
		sb.WriteString(b.With(c).Cells(3, " "))
	}
	return sb.String()
}
