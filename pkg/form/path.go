package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var indexRegex = regexp.MustCompile(`\[(\d+)\]`)

// Path is a parsed field selector.
type Path struct {
	Form    string // form name from a dotted selector, empty when absent
	Name    string // control name without index
	Frame   string // child frame from a "?frame" suffix, empty when absent
	Index   int    // option index, valid when Indexed is set
	Indexed bool
}

// ParsePath splits a selector such as "bestellformular.numsqm[4]?main".
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Path{}, ErrInvalidPath
	}

	var p Path
	if i := strings.Index(s, "?"); i > 0 {
		p.Frame = s[i+1:]
		s = s[:i]
	} else if i == 0 {
		return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, s)
	}

	if m := indexRegex.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, s)
		}
		p.Index = n
		p.Indexed = true
	}
	s = StripIndex(s)

	if i := strings.LastIndex(s, "."); i > 0 && i < len(s)-1 {
		p.Form = s[:i]
		s = s[i+1:]
	}
	p.Name = s
	if p.Name == "" {
		return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, s)
	}
	return p, nil
}

// String renders the path back into selector form.
func (p Path) String() string {
	var b strings.Builder
	if p.Form != "" {
		b.WriteString(p.Form)
		b.WriteByte('.')
	}
	b.WriteString(p.Name)
	if p.Indexed {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(p.Index))
		b.WriteByte(']')
	}
	if p.Frame != "" {
		b.WriteByte('?')
		b.WriteString(p.Frame)
	}
	return b.String()
}

// StripIndex removes every "[n]" index from a selector.
func StripIndex(s string) string {
	return indexRegex.ReplaceAllString(s, "")
}
