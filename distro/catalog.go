// Package distro holds the catalog of known operating-system distributions
// and classifies free-form OS names against it.
//
// The catalog is built once from a declarative YAML source (see
// distros.yaml), validated, and never mutated afterwards. Derived fields
// such as the stripped template and its display width are computed at
// build time so rendering never has to measure templates again.
package distro

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"distrofetch/palette"
)

//go:embed distros.yaml
var builtinSource []byte

// ErrMalformed is wrapped by every catalog validation error.
var ErrMalformed = errors.New("malformed distro catalog")

var tokenRe = regexp.MustCompile(`\{([0-9]+)\}`)

// Entry is one distribution as written in the catalog source.
type Entry struct {
	Name    string   `yaml:"-"`
	ASCII   string   `yaml:"ascii"`
	Colors  []string `yaml:"colors"`
	Hex     []string `yaml:"hex"`
	Regex   string   `yaml:"regex"`
	Default bool     `yaml:"default"`
}

// Record is a validated catalog entry with its derived fields.
type Record struct {
	ID       string
	Name     string
	Template string
	Stripped string
	Pattern  string
	Width    int
	Default  bool

	colors []palette.Color
	hex    []palette.Color
	re     *regexp.Regexp
}

// Colors returns the ANSI palette of the record.
func (r *Record) Colors() []palette.Color {
	return append([]palette.Color(nil), r.colors...)
}

// Palette returns the palette used to render the record in mode. Hex mode
// prefers the hex palette and falls back to the ANSI one; ModeNone has no
// palette at all.
func (r *Record) Palette(mode palette.Mode) []palette.Color {
	switch mode {
	case palette.ModeHex:
		if len(r.hex) > 0 {
			return r.hex
		}
		return r.colors
	case palette.ModeANSI:
		return r.colors
	default:
		return nil
	}
}

// Color returns the primary color of the record for mode, or the neutral
// default when the palette is empty.
func (r *Record) Color(mode palette.Mode) palette.Color {
	p := r.Palette(mode)
	if mode == palette.ModeNone {
		p = r.colors
	}
	if len(p) == 0 {
		return palette.Default
	}
	return p[0]
}

// Lines splits the template into its lines.
func (r *Record) Lines() []string {
	return strings.Split(r.Template, "\n")
}

func (r *Record) String() string { return r.Name }

// Catalog is an immutable, ordered set of distribution records.
type Catalog struct {
	records []*Record
	byID    map[string]*Record
	def     *Record
	any     *regexp.Regexp
}

// Builtin parses the catalog embedded in the binary.
func Builtin() (*Catalog, error) {
	return Parse(builtinSource)
}

// Parse reads a catalog from its YAML source: a mapping keyed by display
// name whose order is the registration order.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty source", ErrMalformed)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping of distro names", ErrMalformed)
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]

		var e Entry
		if err := val.Decode(&e); err != nil {
			return nil, fmt.Errorf("%w: %s (line %d): %v", ErrMalformed, key.Value, key.Line, err)
		}
		e.Name = key.Value
		entries = append(entries, e)
	}

	return New(entries)
}

// New validates entries and builds a catalog from them. Entries are
// registered in slice order; exactly one must be the default.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Record, len(entries))}

	var alternation []string
	for _, e := range entries {
		r, err := build(e)
		if err != nil {
			return nil, err
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate distro id %s", ErrMalformed, r.ID)
		}
		c.byID[r.ID] = r

		if r.Default {
			if c.def != nil {
				return nil, fmt.Errorf("%w: both %q and %q are marked default", ErrMalformed, c.def.Name, r.Name)
			}
			c.def = r
			continue
		}

		c.records = append(c.records, r)
		alternation = append(alternation, "(?:"+r.Pattern+")")
	}

	if c.def == nil {
		return nil, fmt.Errorf("%w: no default entry", ErrMalformed)
	}

	if len(alternation) > 0 {
		re, err := regexp.Compile(strings.Join(alternation, "|"))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		c.any = re
	}

	return c, nil
}

func build(e Entry) (*Record, error) {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrMalformed, e.Name, fmt.Sprintf(format, args...))
	}

	id := ID(e.Name)
	if id == "" {
		return nil, fail("name has no usable characters")
	}

	template := strings.TrimRight(e.ASCII, "\n")
	if strings.TrimSpace(tokenRe.ReplaceAllString(template, "")) == "" {
		return nil, fail("missing ascii template")
	}

	ids := e.Colors
	if ids == nil {
		ids = []string{"default"}
	}
	colors, err := palette.ParseList(ids)
	if err != nil {
		return nil, fail("colors: %v", err)
	}

	var hex []palette.Color
	if len(e.Hex) > 0 {
		if len(e.Hex) != len(colors) {
			return nil, fail("hex has %d colors, colors has %d", len(e.Hex), len(colors))
		}
		if hex, err = palette.ParseList(e.Hex); err != nil {
			return nil, fail("hex: %v", err)
		}
	}

	for _, m := range tokenRe.FindAllStringSubmatch(template, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n >= len(colors) {
			return nil, fail("placeholder %s out of range for %d colors", m[0], len(colors))
		}
	}

	r := &Record{
		ID:       id,
		Name:     e.Name,
		Template: template,
		Default:  e.Default,
		colors:   colors,
		hex:      hex,
	}
	r.Stripped, r.Width = Strip(template)

	if e.Default {
		return r, nil
	}

	r.Pattern = e.Regex
	if r.Pattern == "" {
		r.Pattern = Normalize(e.Name)
	}
	if r.Pattern == "" {
		return nil, fail("no regex and the name normalizes to nothing")
	}
	if r.re, err = regexp.Compile(r.Pattern); err != nil {
		return nil, fail("regex: %v", err)
	}
	return r, nil
}

// Strip removes every {N} placeholder from template and returns the result
// with its display width: the widest line once tokens are gone.
func Strip(template string) (string, int) {
	stripped := tokenRe.ReplaceAllString(template, "")
	width := 0
	for _, line := range strings.Split(stripped, "\n") {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return stripped, width
}

// ID derives a record identifier from a display name.
func ID(name string) string {
	return strings.ToUpper(separatorRe.ReplaceAllString(name, ""))
}

// Default returns the fallback record.
func (c *Catalog) Default() *Record { return c.def }

// Lookup finds a record by identifier or display name.
func (c *Catalog) Lookup(name string) (*Record, bool) {
	r, ok := c.byID[ID(name)]
	return r, ok
}

// Records returns the non-default records in registration order.
func (c *Catalog) Records() []*Record {
	return append([]*Record(nil), c.records...)
}

// Len returns the number of records, the default included.
func (c *Catalog) Len() int { return len(c.records) + 1 }
