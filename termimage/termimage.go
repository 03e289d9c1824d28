// Package termimage shows a raster image in the terminal next to lines of
// text.
package termimage

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
	"strings"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

// ErrNoBackend is returned by Detect when the terminal cannot show images.
var ErrNoBackend = errors.New("no image backend for this terminal")

const (
	// MinRows is the image height used when there are fewer text lines.
	MinRows = 16
	// MaxCols caps the image width in cells.
	MaxCols = 48
)

// Backend draws an image on the left and lines of text to its right.
type Backend interface {
	Name() string
	// AddImage returns the complete output: the image occupies
	// max(len(lines), MinRows) rows and each line is placed gap cells
	// after its right edge.
	AddImage(lines []string, img image.Image, gap int) (string, error)
}

// Open decodes a PNG, JPEG, GIF, BMP or WebP file.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// Detect picks the best backend for the terminal described by getenv.
// Output that is not a terminal never gets an image.
func Detect(getenv func(string) string, isTTY bool) (Backend, error) {
	if !isTTY {
		return nil, ErrNoBackend
	}

	term := strings.ToLower(getenv("TERM"))
	program := strings.ToLower(getenv("TERM_PROGRAM"))
	switch {
	case getenv("KITTY_WINDOW_ID") != "",
		strings.Contains(term, "kitty"),
		strings.Contains(term, "ghostty"),
		program == "wezterm", program == "ghostty":
		return Kitty{}, nil
	}

	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return HalfBlock{}, nil
	}
	return nil, ErrNoBackend
}

// Size returns the cell area for img when it is rows cells tall. Cells are
// assumed to be twice as tall as they are wide.
//
// Parameters:
//   - img: The image to place
//   - rows: Height of the image area in cells
//
// Returns:
//   - The width in cells keeping the aspect ratio, between 1 and MaxCols
//   - 0 for an empty image or a non-positive row count
func Size(img image.Image, rows int) (cols int) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || rows <= 0 {
		return 0
	}
	cols = (b.Dx()*rows*2 + b.Dy()/2) / b.Dy()
	return max(1, min(cols, MaxCols))
}

func rowsFor(lines []string) int {
	return max(len(lines), MinRows)
}
