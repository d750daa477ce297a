package style

import "strings"

// Placeholder stands for the parent selector in a relative selector.
const Placeholder = "&"

// HasPlaceholder reports whether selector refers to its parent. An "&"
// inside a quoted string or an attribute selector is literal text.
func HasPlaceholder(selector string) bool {
	_, ok := ReplacePlaceholder(selector, "")
	return ok
}

// ReplacePlaceholder substitutes parent for every placeholder in selector
// and reports whether any was found.
func ReplacePlaceholder(selector, parent string) (string, bool) {
	if !strings.Contains(selector, Placeholder) {
		return selector, false
	}

	var b strings.Builder
	b.Grow(len(selector) + len(parent))
	found := false
	depth := 0
	var quote byte
	for i := 0; i < len(selector); i++ {
		c := selector[i]
		switch {
		case c == '\\' && i+1 < len(selector):
			b.WriteByte(c)
			i++
			b.WriteByte(selector[i])
			continue
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[':
			depth++
		case c == ']' && depth > 0:
			depth--
		case c == '&' && depth == 0:
			found = true
			b.WriteString(parent)
			continue
		}
		b.WriteByte(c)
	}
	if !found {
		return selector, false
	}
	return b.String(), true
}
