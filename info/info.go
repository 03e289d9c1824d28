// Package info renders the text panel shown next to the distro art.
//
// Each block implements Render and returns its lines already escaped for the
// active color mode. Blocks with nothing to show return no lines.
package info

import (
	"reflect"
	"strings"
	"unicode"

	"distrofetch/palette"
)

// Render is implemented by every info block.
type Render interface {
	Render(b palette.Brush) []string
}

// RenderFunc adapts an ordinary function to Render.
type RenderFunc func(b palette.Brush) []string

func (f RenderFunc) Render(b palette.Brush) []string { return f(b) }

// Field is one labelled value.
type Field struct {
	Label string
	Value string
}

// Fields renders as one "Label: value" line per field, skipping empty
// values.
type Fields []Field

func (fs Fields) Render(b palette.Brush) []string {
	var lines []string
	for _, f := range fs {
		if f.Value == "" {
			continue
		}
		lines = append(lines, b.Bold(f.Label)+": "+f.Value)
	}
	return lines
}

// Reflect builds Fields from the exported string and *string fields of a
// struct. Labels come from an `info:"Label"` tag or are derived from the
// field name, so FieldTwo is shown as "Field two". A tag of "-" skips the
// field. Empty strings and nil pointers are omitted when rendering.
func Reflect(v any) Fields {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var fields Fields
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		label := sf.Tag.Get("info")
		if label == "-" {
			continue
		}
		if label == "" {
			label = Label(sf.Name)
		}

		fv := rv.Field(i)
		switch {
		case fv.Kind() == reflect.String:
			fields = append(fields, Field{Label: label, Value: fv.String()})
		case fv.Kind() == reflect.Pointer && sf.Type.Elem().Kind() == reflect.String:
			if fv.IsNil() {
				continue
			}
			fields = append(fields, Field{Label: label, Value: fv.Elem().String()})
		}
	}
	return fields
}

// Label turns a Go identifier into a display label: the first word keeps
// its capital, the following words are lowercased.
//
//	FieldTwo   -> Field two
//	field_two  -> Field two
//	CPUName    -> Cpu name
func Label(name string) string {
	runes := []rune(name)
	var sb strings.Builder
	for i, r := range runes {
		if r == '_' {
			sb.WriteRune(' ')
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteRune(' ')
			}
		}
		if i == 0 {
			sb.WriteRune(unicode.ToUpper(r))
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
