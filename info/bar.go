package info

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"distrofetch/palette"
	"distrofetch/sysinfo"
)

// DefaultBarWidth is the width of the disk bar in cells.
const DefaultBarWidth = 32

// Cell fills used when colors are disabled.
const (
	usedCell = "█"
	freeCell = "░"
)

// maxLabel bounds item labels such as long mount points.
const maxLabel = 24

// BrightPalette colors successive bar items.
var BrightPalette = []palette.Color{
	palette.MustParse("bright_magenta"),
	palette.MustParse("bright_green"),
	palette.MustParse("bright_yellow"),
	palette.MustParse("bright_blue"),
	palette.MustParse("bright_red"),
	palette.MustParse("white"),
	palette.MustParse("bright_black"),
}

var filler = palette.MustParse("black")

// Item is one segment of a Bar. Used is drawn relative to the bar total;
// the label shows Used relative to Size.
type Item struct {
	Label string
	Used  uint64
	Size  uint64
}

// Percent returns Used as a percentage of Size.
func (it Item) Percent() float64 {
	if it.Size == 0 {
		return 0
	}
	return float64(it.Used) / float64(it.Size) * 100
}

// Bar is a stacked resource bar with a legend below it, two items per line.
type Bar struct {
	Title   string
	Total   uint64
	Items   []Item
	Palette []palette.Color
	Width   int
}

// Disks builds a bar over the given disks using BrightPalette.
func Disks(disks []sysinfo.Disk, width int) Bar {
	bar := Bar{Title: "Disks", Palette: BrightPalette, Width: width}
	for _, d := range disks {
		bar.Total += d.Total
		bar.Items = append(bar.Items, Item{Label: d.Mount, Used: d.Used, Size: d.Total})
	}
	return bar
}

// Cells returns the number of cells allotted to each item. Every item
// whose own percent exceeds one gets at least one cell and the allotment
// never exceeds Width; the rest of the bar is free space.
func (bar Bar) Cells() []int {
	cells := make([]int, len(bar.Items))
	if bar.Total == 0 || bar.Width <= 0 {
		return cells
	}
	floor := make([]int, len(bar.Items))
	allotted := 0
	for i, it := range bar.Items {
		w := int(math.Round(float64(it.Used) / float64(bar.Total) * float64(bar.Width)))
		if it.Percent() > 1 {
			floor[i] = 1
			w = max(w, 1)
		}
		cells[i] = w
		allotted += w
	}

	// Rounding can overshoot; take the excess from the widest items first.
	for allotted > bar.Width {
		widest := -1
		for i, w := range cells {
			if w > floor[i] && (widest < 0 || w > cells[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		cells[widest]--
		allotted--
	}

	remainder := bar.Width
	for i, w := range cells {
		cells[i] = min(w, remainder)
		remainder -= cells[i]
	}
	return cells
}

func (bar Bar) color(i int) palette.Color {
	if len(bar.Palette) == 0 {
		return palette.Default
	}
	return bar.Palette[i%len(bar.Palette)]
}

func (bar Bar) Render(b palette.Brush) []string {
	if len(bar.Items) == 0 || bar.Total == 0 || bar.Width <= 0 {
		return nil
	}

	head := b.Bold(bar.Title) + ": "
	var sb strings.Builder
	sb.WriteString(head)
	used := 0
	for i, w := range bar.Cells() {
		sb.WriteString(b.With(bar.color(i)).Cells(w, usedCell))
		used += w
	}
	sb.WriteString(b.With(filler).Cells(bar.Width-used, freeCell))
	lines := []string{sb.String()}

	indent := strings.Repeat(" ", ansi.StringWidth(head))
	for start := 0; start < len(bar.Items); start += 2 {
		var legend []string
		for i := start; i < min(start+2, len(bar.Items)); i++ {
			it := bar.Items[i]
			legend = append(legend, fmt.Sprintf("%s %s (%.1f %%)",
				b.With(bar.color(i)).Paint("●"),
				sysinfo.TruncateString(it.Label, maxLabel),
				it.Percent()))
		}
		lines = append(lines, indent+strings.Join(legend, " "))
	}
	return lines
}
