package termimage

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// chunkSize is the largest payload the kitty graphics protocol accepts
// per escape sequence.
const chunkSize = 4096

// Kitty transmits the image as PNG with the kitty graphics protocol and
// lets the terminal scale it to the target cell area.
type Kitty struct{}

func (Kitty) Name() string { return "kitty" }

func (Kitty) AddImage(lines []string, img image.Image, gap int) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	payload := base64.StdEncoding.EncodeToString(buf.Bytes())

	rows := rowsFor(lines)
	cols := Size(img, rows)

	var sb strings.Builder
	for i := 0; i < len(payload); i += chunkSize {
		end := min(i+chunkSize, len(payload))
		more := 0
		if end < len(payload) {
			more = 1
		}
		if i == 0 {
			// a=T transmit and display, C=1 keep the cursor at the top-left
			// corner, q=2 suppress terminal responses
			fmt.Fprintf(&sb, "\x1b_Gf=100,a=T,t=d,c=%d,r=%d,C=1,q=2,m=%d;", cols, rows, more)
		} else {
			fmt.Fprintf(&sb, "\x1b_Gm=%d;", more)
		}
		sb.WriteString(payload[i:end])
		sb.WriteString("\x1b\\")
	}

	offset := cols + gap
	for i := 0; i < rows; i++ {
		if i < len(lines) && lines[i] != "" {
			fmt.Fprintf(&sb, "\x1b[%dC%s", offset, lines[i])
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
