package termimage

import (
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"golang.org/x/image/draw"
)

// HalfBlock draws two pixels per cell with the upper half block character
// in 24-bit color. It works on any truecolor terminal.
type HalfBlock struct{}

func (HalfBlock) Name() string { return "halfblock" }

func (HalfBlock) AddImage(lines []string, img image.Image, gap int) (string, error) {
	rows := rowsFor(lines)
	cols := Size(img, rows)

	scaled := image.NewNRGBA(image.Rect(0, 0, cols, rows*2))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	pad := strings.Repeat(" ", gap)
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := pixel(scaled.At(x, 2*y)), pixel(scaled.At(x, 2*y+1))
			switch {
			case top == nil && bottom == nil:
				sb.WriteByte(' ')
			case top == nil:
				sb.WriteString(termenv.TrueColor.String("▄").Foreground(bottom).String())
			default:
				sb.WriteString(termenv.TrueColor.String("▀").Foreground(top).Background(bottom).String())
			}
		}
		if y < len(lines) && lines[y] != "" {
			sb.WriteString(pad)
			sb.WriteString(lines[y])
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// pixel converts c to a terminal color, or nil when it is mostly
// transparent.
func pixel(c color.Color) termenv.Color {
	if _, _, _, a := c.RGBA(); a < 0x8000 {
		return nil
	}
	cf, _ := colorful.MakeColor(c)
	return termenv.RGBColor(cf.Hex())
}
