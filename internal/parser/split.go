package parser

// splitTopLevel splits s on sep, ignoring separators inside brackets or
// parentheses and after a backslash. ok is false when nesting is unbalanced.
func splitTopLevel(s string, sep byte) (parts []string, ok bool) {
	var stack []byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			i++
		case '[', '(':
			stack = append(stack, c)
		case ']', ')':
			if len(stack) == 0 || stack[len(stack)-1] != opener(c) {
				return nil, false
			}
			stack = stack[:len(stack)-1]
		default:
			if c == sep && len(stack) == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if len(stack) > 0 {
		return nil, false
	}
	return append(parts, s[start:]), true
}

func firstTopLevel(s string, c byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case c:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func lastTopLevel(s string, c byte) int {
	depth := 0
	idx := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case c:
			if depth == 0 {
				idx = i
			}
		}
	}
	return idx
}

func opener(closer byte) byte {
	if closer == ']' {
		return '['
	}
	return '('
}
