package distro

import (
	"regexp"
	"strings"
)

var separatorRe = regexp.MustCompile(`[\s_\-./!@]`)

// Normalize prepares an OS name for matching: separators and punctuation
// are removed, the result is lowercased, and every "linux" is dropped.
// The steps run in that order; "Debian GNU/Linux 10" becomes
// "debiangnu10".
func Normalize(s string) string {
	s = separatorRe.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "linux", "")
}

// Search classifies raw against the catalog. When several patterns match,
// the record registered last wins. Unknown names resolve to the default
// record; Search never fails.
func (c *Catalog) Search(raw string) *Record {
	matches := c.Matches(raw)
	if len(matches) == 0 {
		return c.def
	}
	return matches[len(matches)-1]
}

// Matches returns every record whose pattern matches raw, in registration
// order.
func (c *Catalog) Matches(raw string) []*Record {
	s := Normalize(raw)
	if c.any == nil || !c.any.MatchString(s) {
		return nil
	}

	var out []*Record
	for _, r := range c.records {
		if r.re.MatchString(s) {
			out = append(out, r)
		}
	}
	return out
}
