package parser

import (
	"strings"
)

// Segment is one modifier element of a class string.
type Segment struct {
	Raw string
}

// UtilityToken is the decomposed trailing segment of a class string.
type UtilityToken struct {
	// Raw is the utility segment with the important marker removed.
	Raw            string
	Prefix         string
	Value          string
	Arbitrary      bool
	CustomProperty bool
	Negative       bool
	Opacity        string
	Important      bool
}

// FullValue returns the value with the opacity suffix rejoined, which is how
// fraction values such as "1/2" are recovered.
func (t UtilityToken) FullValue() string {
	if t.Opacity == "" {
		return t.Value
	}
	return t.Value + "/" + t.Opacity
}

// CustomPropertyParts splits a custom property value "--name:fallback" into
// its name and optional fallback.
func (t UtilityToken) CustomPropertyParts() (name, fallback string) {
	if !t.CustomProperty {
		return "", ""
	}
	name, fallback, _ = strings.Cut(t.Value, ":")
	return name, fallback
}

// Result is the outcome of parsing a class string. Modifiers are ordered
// outermost first. Utility is nil when the class is empty or malformed.
type Result struct {
	Modifiers []Segment
	Utility   *UtilityToken
}

type options struct {
	prefixes []string
}

// Option customizes Parse.
type Option func(*options)

// WithPrefixes supplies registered utility names used to split prefix from
// value. The longest matching name wins.
func WithPrefixes(prefixes []string) Option {
	return func(o *options) {
		o.prefixes = prefixes
	}
}

// Parse splits a class string into its modifier chain and utility token.
func Parse(class string, opts ...Option) Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	class = strings.TrimSpace(class)
	if class == "" {
		return Result{}
	}

	segments, ok := splitTopLevel(class, ':')
	if !ok {
		return Result{}
	}

	utility := parseUtility(segments[len(segments)-1], o.prefixes)
	if utility == nil {
		return Result{}
	}

	modifiers := make([]Segment, 0, len(segments)-1)
	for _, raw := range segments[:len(segments)-1] {
		modifiers = append(modifiers, Segment{Raw: raw})
	}

	return Result{Modifiers: modifiers, Utility: utility}
}

func parseUtility(raw string, prefixes []string) *UtilityToken {
	tok := &UtilityToken{}

	switch {
	case strings.HasPrefix(raw, "!"):
		tok.Important = true
		raw = raw[1:]
	case strings.HasSuffix(raw, "!"):
		tok.Important = true
		raw = raw[:len(raw)-1]
	}
	if raw == "" {
		return nil
	}
	tok.Raw = raw

	body := raw
	if strings.HasPrefix(body, "-") {
		tok.Negative = true
		body = body[1:]
	}
	if body == "" {
		return nil
	}

	if idx := lastTopLevel(body, '/'); idx >= 0 {
		suffix := body[idx+1:]
		if suffix == "" || idx == 0 {
			return nil
		}
		if isOpacitySuffix(suffix) {
			tok.Opacity = suffix
			body = body[:idx]
		}
	}

	tok.Prefix, tok.Value = splitPrefix(body, prefixes)
	if tok.Prefix == "" {
		return nil
	}

	switch {
	case strings.HasPrefix(tok.Value, "["):
		if !strings.HasSuffix(tok.Value, "]") || len(tok.Value) < 3 {
			return nil
		}
		tok.Arbitrary = true
		tok.Value = tok.Value[1 : len(tok.Value)-1]
	case strings.HasPrefix(tok.Value, "("):
		if !strings.HasSuffix(tok.Value, ")") {
			return nil
		}
		inner := tok.Value[1 : len(tok.Value)-1]
		if !strings.HasPrefix(inner, "--") || len(inner) < 3 {
			return nil
		}
		tok.CustomProperty = true
		tok.Value = inner
	}

	return tok
}

func splitPrefix(body string, prefixes []string) (string, string) {
	best := ""
	for _, p := range prefixes {
		if len(p) <= len(best) {
			continue
		}
		if body == p || strings.HasPrefix(body, p+"-") {
			best = p
		}
	}
	if best != "" {
		return best, strings.TrimPrefix(strings.TrimPrefix(body, best), "-")
	}

	idx := firstTopLevel(body, '-')
	if idx < 0 {
		return body, ""
	}
	return body[:idx], body[idx+1:]
}

// isOpacitySuffix accepts numbers, fractions' denominators, arbitrary values
// and custom property references.
func isOpacitySuffix(s string) bool {
	if strings.HasPrefix(s, "[") {
		return strings.HasSuffix(s, "]") && len(s) > 2
	}
	if strings.HasPrefix(s, "(") {
		return strings.HasSuffix(s, ")") && strings.HasPrefix(s, "(--")
	}
	dot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return true
}

// DecodeArbitrary converts underscores to spaces; an escaped "\_" stays an
// underscore.
func DecodeArbitrary(v string) string {
	if !strings.Contains(v, "_") {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == '\\' && i+1 < len(v) && v[i+1] == '_':
			b.WriteByte('_')
			i++
		case c == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
