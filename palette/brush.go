package palette

import "strings"

// Brush pairs the main color of a run with its color mode. Line-item
// renderers receive a Brush so every info line of one invocation shares
// the same color.
type Brush struct {
	Color Color
	Mode  Mode
}

// NewBrush returns a Brush painting with c in mode.
func NewBrush(c Color, mode Mode) Brush {
	return Brush{Color: c, Mode: mode}
}

// With returns a copy of b painting with c.
func (b Brush) With(c Color) Brush {
	b.Color = c
	return b
}

// Paint colors s with the brush color.
func (b Brush) Paint(s string) string {
	return b.Mode.Profile().String(s).Foreground(b.Color.Term(b.Mode)).String()
}

// Bold colors s with the brush color and renders it bold.
func (b Brush) Bold(s string) string {
	return b.Mode.Profile().String(s).Bold().Foreground(b.Color.Term(b.Mode)).String()
}

// Cells returns n blank cells with the brush color as background. In
// ModeNone the cells are filled with fill instead so they stay visible.
func (b Brush) Cells(n int, fill string) string {
	if n <= 0 {
		return ""
	}
	if b.Mode == ModeNone {
		return strings.Repeat(fill, n)
	}
	return b.Mode.Profile().String(strings.Repeat(" ", n)).Background(b.Color.Term(b.Mode)).String()
}
