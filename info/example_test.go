package info_test

import (
	"fmt"

	"distrofetch/info"
	"distrofetch/palette"
)

type buildInfo struct {
	Field    string
	FieldTwo string
	Optional *string
	Token    string `info:"-"`
	Channel  string `info:"Release channel"`
}

func ExampleReflect() {
	block := info.Reflect(buildInfo{
		Field:    "value",
		FieldTwo: "this is another value",
		Token:    "hidden",
		Channel:  "stable",
	})

	brush := palette.NewBrush(palette.Default, palette.ModeNone)
	for _, line := range block.Render(brush) {
		fmt.Println(line)
	}
	// Output:
	// Field: value
	// Field two: this is another value
	// Release channel: stable
}

func ExampleRenderFunc() {
	greeting := info.RenderFunc(func(b palette.Brush) []string {
		return []string{b.Bold("hello") + ", world"}
	})

	for _, line := range greeting.Render(palette.NewBrush(palette.MustParse("green"), palette.ModeANSI)) {
		fmt.Printf("%q\n", line)
	}
	// Output:
	// "\x1b[1;32mhello\x1b[0m, world"
}
