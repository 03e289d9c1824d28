package termimage

import (
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func uniform(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func noise(w, h int) *image.NRGBA {
	r := rand.New(rand.NewSource(1))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	r.Read(img.Pix)
	return img
}

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		tty  bool
		want string
	}{
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, true, "kitty"},
		{"kitty window", map[string]string{"KITTY_WINDOW_ID": "1", "TERM": "screen"}, true, "kitty"},
		{"wezterm", map[string]string{"TERM_PROGRAM": "WezTerm"}, true, "kitty"},
		{"ghostty", map[string]string{"TERM": "xterm-ghostty"}, true, "kitty"},
		{"truecolor", map[string]string{"TERM": "xterm-256color", "COLORTERM": "truecolor"}, true, "halfblock"},
		{"24bit", map[string]string{"COLORTERM": "24bit"}, true, "halfblock"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Detect(env(tc.env), tc.tty)
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.Name())
		})
	}
}

func TestDetectNoBackend(t *testing.T) {
	_, err := Detect(env(map[string]string{"TERM": "xterm-kitty"}), false)
	assert.ErrorIs(t, err, ErrNoBackend, "not a terminal")

	_, err = Detect(env(map[string]string{"TERM": "xterm"}), true)
	assert.ErrorIs(t, err, ErrNoBackend)
}

func TestSize(t *testing.T) {
	assert.Equal(t, 32, Size(uniform(100, 100, color.Black), 16))
	assert.Equal(t, 16, Size(uniform(50, 100, color.Black), 16))
	assert.Equal(t, MaxCols, Size(uniform(1000, 100, color.Black), 16))
	assert.Equal(t, 1, Size(uniform(1, 1000, color.Black), 16))
	assert.Equal(t, 0, Size(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 16))
}

func TestKittyLayout(t *testing.T) {
	out, err := Kitty{}.AddImage([]string{"a", "", "b"}, uniform(4, 4, color.White), 2)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "\x1b_Gf=100,a=T,t=d,c=32,r=16,C=1,q=2,m=0;"))
	assert.Contains(t, out, "\x1b\\\x1b[34Ca\n\n\x1b[34Cb\n")
	assert.Equal(t, MinRows, strings.Count(out, "\n"))
}

func TestKittyChunks(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	out, err := Kitty{}.AddImage(lines, noise(120, 120), 2)
	require.NoError(t, err)

	assert.Contains(t, out, ",r=20,")
	assert.Contains(t, out, ",m=1;")
	assert.Contains(t, out, "\x1b_Gm=1;")
	assert.Contains(t, out, "\x1b_Gm=0;")
	assert.Equal(t, 20, strings.Count(out, "\n"))

	for _, seq := range strings.Split(out, "\x1b\\") {
		start := strings.IndexByte(seq, ';')
		if !strings.HasPrefix(seq, "\x1b_G") || start < 0 {
			continue
		}
		assert.LessOrEqual(t, len(seq)-start-1, chunkSize)
	}
}

func TestHalfBlock(t *testing.T) {
	out, err := HalfBlock{}.AddImage([]string{"hello"}, uniform(4, 4, color.NRGBA{R: 255, A: 255}), 2)
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, rows, MinRows)

	cell := "\x1b[38;2;255;0;0;48;2;255;0;0m▀\x1b[0m"
	assert.Equal(t, strings.Repeat(cell, 32)+"  hello", rows[0])
	assert.Equal(t, strings.Repeat(cell, 32), rows[1])
	assert.Equal(t, 32+2+5, ansi.StringWidth(rows[0]))
}

func TestHalfBlockTransparent(t *testing.T) {
	out, err := HalfBlock{}.AddImage(nil, image.NewNRGBA(image.Rect(0, 0, 8, 8)), 2)
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, rows, MinRows)
	for _, row := range rows {
		assert.Equal(t, strings.Repeat(" ", 32), row)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "logo.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, uniform(6, 3, color.White)))
	require.NoError(t, f.Close())

	img, err := Open(pngPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 3), img.Bounds())

	bmpPath := filepath.Join(dir, "logo.bmp")
	f, err = os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, uniform(5, 2, color.Black)))
	require.NoError(t, f.Close())

	img, err = Open(bmpPath)
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = Open(junk)
	assert.ErrorIs(t, err, image.ErrFormat)
}
