package tmpl

import (
	"fmt"
	"regexp"
	"strings"
)

// Vars maps placeholder names to the values substituted for them.
type Vars map[string]any

// placeholder matches, in order: an escaped "$$", a bare "$name", a braced
// "${name}", or a lone "$" that starts nothing valid.
var placeholder = regexp.MustCompile(`\$(?:(\$)|([_a-zA-Z][_a-zA-Z0-9]*)|\{([_a-zA-Z][_a-zA-Z0-9]*)\}|())`)

// Template is an immutable string pattern with named placeholders.
type Template struct {
	pattern string
}

// New returns a Template for pattern. Patterns are not validated up front;
// malformed placeholders surface when the template is substituted.
func New(pattern string) Template {
	return Template{pattern: pattern}
}

// String returns the raw pattern.
func (t Template) String() string {
	return t.pattern
}

// Substitute replaces every placeholder with its binding. It fails with a
// *MissingBindingError naming the first placeholder without a binding, or an
// *InvalidPlaceholderError when a "$" starts no valid placeholder.
func (t Template) Substitute(vars Vars) (string, error) {
	return t.expand(vars, false)
}

// SafeSubstitute behaves like Substitute but leaves unresolved or malformed
// placeholders in the output exactly as written.
func (t Template) SafeSubstitute(vars Vars) string {
	out, _ := t.expand(vars, true)
	return out
}

// MustSubstitute is Substitute for templates whose bindings are fixed at the
// call site. It panics on error.
func (t Template) MustSubstitute(vars Vars) string {
	out, err := t.Substitute(vars)
	if err != nil {
		panic(err)
	}
	return out
}

func (t Template) expand(vars Vars, safe bool) (string, error) {
	matches := placeholder.FindAllStringSubmatchIndex(t.pattern, -1)
	if len(matches) == 0 {
		return t.pattern, nil
	}

	var b strings.Builder
	b.Grow(len(t.pattern))
	last := 0
	for _, m := range matches {
		b.WriteString(t.pattern[last:m[0]])
		last = m[1]
		raw := t.pattern[m[0]:m[1]]

		var name string
		switch {
		case m[2] >= 0:
			b.WriteByte('$')
			continue
		case m[4] >= 0:
			name = t.pattern[m[4]:m[5]]
		case m[6] >= 0:
			name = t.pattern[m[6]:m[7]]
		default:
			if !safe {
				return "", newInvalidPlaceholderError(t.pattern, m[0])
			}
			b.WriteString(raw)
			continue
		}

		value, ok := vars[name]
		if !ok {
			if !safe {
				return "", &MissingBindingError{Name: name}
			}
			b.WriteString(raw)
			continue
		}
		b.WriteString(fmt.Sprint(value))
	}
	b.WriteString(t.pattern[last:])
	return b.String(), nil
}
