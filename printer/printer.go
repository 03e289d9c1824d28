// Package printer composes the final output: distro art or an image on the
// left, the info panel on the right.
package printer

import (
	"image"
	"io"
	"os"
	"strings"

	"distrofetch/ascii"
	"distrofetch/distro"
	"distrofetch/info"
	"distrofetch/logging"
	"distrofetch/palette"
	"distrofetch/termimage"
)

// Margin is written before every row in ascii mode.
const Margin = "  "

// DefaultGap is the number of spaces between the art and the info panel.
const DefaultGap = 2

// Printer collects art, image and info blocks for one run. The zero value
// is not usable; create one with New.
type Printer struct {
	mode    palette.Mode
	color   *palette.Color
	infos   []info.Render
	distro  *distro.Record
	accent  *distro.Record
	image   image.Image
	backend termimage.Backend
	out     io.Writer
	gap     int
}

// New returns a Printer writing to stdout in mode.
func New(mode palette.Mode) *Printer {
	return &Printer{mode: mode, out: os.Stdout, gap: DefaultGap}
}

// WithColor overrides the main color otherwise taken from the distro.
func (p *Printer) WithColor(c palette.Color) *Printer {
	p.color = &c
	return p
}

// WithDistro sets the record whose art is shown.
func (p *Printer) WithDistro(r *distro.Record) *Printer {
	p.distro = r
	return p
}

// WithDistroColor takes the main color from r without showing its art.
func (p *Printer) WithDistroColor(r *distro.Record) *Printer {
	p.accent = r
	return p
}

// WithImage shows img through backend instead of the art.
func (p *Printer) WithImage(img image.Image, backend termimage.Backend) *Printer {
	p.image = img
	p.backend = backend
	return p
}

// WithInfo queues an info block. Blocks are rendered in the order added.
func (p *Printer) WithInfo(r ...info.Render) *Printer {
	p.infos = append(p.infos, r...)
	return p
}

// WithOutput replaces stdout.
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.out = w
	return p
}

// WithGap sets the spaces between art and info; negative values are
// treated as zero.
func (p *Printer) WithGap(n int) *Printer {
	p.gap = max(n, 0)
	return p
}

// MainColor is the color info blocks are painted with: the override, else
// the distro's primary color, else the terminal default. A distro set with
// WithDistro wins over one set with WithDistroColor.
func (p *Printer) MainColor() palette.Color {
	switch {
	case p.color != nil:
		return *p.color
	case p.distro != nil:
		return p.distro.Color(p.mode)
	case p.accent != nil:
		return p.accent.Color(p.mode)
	default:
		return palette.Default
	}
}

// Lines renders every queued info block.
func (p *Printer) Lines() []string {
	brush := palette.NewBrush(p.MainColor(), p.mode)
	var lines []string
	for _, r := range p.infos {
		lines = append(lines, r.Render(brush)...)
	}
	return lines
}

// Compose builds the complete output. Image mode takes precedence over the
// art, which takes precedence over plain text; an image that cannot be
// shown falls back to the next mode. Images are never drawn in ModeNone.
func (p *Printer) Compose() string {
	logger := logging.Get("printer")
	lines := p.Lines()

	if p.image != nil {
		if p.mode == palette.ModeNone {
			logger.Warn().Msg("colors disabled, showing art instead of image")
		} else if p.backend == nil {
			logger.Warn().Msg("no image backend, showing art instead")
		} else if out, err := p.backend.AddImage(lines, p.image, p.gap); err != nil {
			logger.Warn().Err(err).Str("backend", p.backend.Name()).Msg("image failed, showing art instead")
		} else {
			return out
		}
	}

	if p.distro != nil {
		return Zip(ascii.New(p.distro, p.mode), lines, p.gap)
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render writes the composed output in a single write.
func (p *Printer) Render() error {
	_, err := io.WriteString(p.out, p.Compose())
	return err
}

// Zip places art and lines side by side until both are exhausted. Rows
// without art are padded to the art width so the panel stays aligned.
//
// Parameters:
//   - art: The rendered distro art; Zip drains it
//   - lines: Info lines, already colored
//   - gap: Spaces between the art and each info line
//
// Returns:
//   - The output with one row per art line or info line, whichever is more
func Zip(art *ascii.Art, lines []string, gap int) string {
	pad := strings.Repeat(" ", gap)
	blank := strings.Repeat(" ", art.Width())

	var sb strings.Builder
	for i := 0; ; i++ {
		left, ok := art.Next()
		if !ok && i >= len(lines) {
			break
		}
		sb.WriteString(Margin)
		switch {
		case ok && i < len(lines):
			sb.WriteString(left + pad + lines[i])
		case ok:
			sb.WriteString(left)
		default:
			sb.WriteString(blank + pad + lines[i])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
