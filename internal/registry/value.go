package registry

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/utilicss/internal/parser"
)

// BareValue is the tagged variant describing how a functional utility turns
// a bare (non-theme, non-arbitrary) value into CSS.
type BareValue interface {
	resolveBare(value string) (string, bool)
}

// BareNone rejects every bare value, raw keywords included; the utility
// resolves through the theme, arbitrary values or custom properties only.
type BareNone struct{}

// BareNumber multiplies a non-negative number by Scale and appends Unit:
// BareNumber{Unit: "rem", Scale: 0.25} maps "4" to "1rem".
type BareNumber struct {
	Unit  string
	Scale float64
}

// BareInteger accepts unsigned integers verbatim.
type BareInteger struct{}

// BarePercent maps a number to a percentage.
type BarePercent struct{}

// BareFunc delegates to a function.
type BareFunc func(value string) (string, bool)

func (BareNone) resolveBare(string) (string, bool) { return "", false }

func (b BareNumber) resolveBare(value string) (string, bool) {
	n, ok := parseNumber(value)
	if !ok {
		return "", false
	}
	scale := b.Scale
	if scale == 0 {
		scale = 1
	}
	n *= scale
	if n == 0 {
		return "0", true
	}
	return formatNumber(n) + b.Unit, true
}

func (BareInteger) resolveBare(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return value, true
}

func (BarePercent) resolveBare(value string) (string, bool) {
	n, ok := parseNumber(value)
	if !ok {
		return "", false
	}
	return formatNumber(n) + "%", true
}

func (f BareFunc) resolveBare(value string) (string, bool) { return f(value) }

// ResolveBare applies b to value. A nil b rejects everything.
func ResolveBare(b BareValue, value string) (string, bool) {
	if b == nil {
		return "", false
	}
	return b.resolveBare(value)
}

var dimensionPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)([a-z]+|%)?$`)

// negate flips the sign of a dimension, or wraps anything else in calc().
func negate(v string) string {
	switch {
	case v == "0":
		return v
	case strings.HasPrefix(v, "-") && dimensionPattern.MatchString(v):
		return v[1:]
	case dimensionPattern.MatchString(v):
		return "-" + v
	}
	return "calc(" + v + " * -1)"
}

// fraction maps "a/b" to a percentage of b.
func fraction(v string) (string, bool) {
	num, den, ok := strings.Cut(v, "/")
	if !ok {
		return "", false
	}
	a, okA := parseNumber(num)
	b, okB := parseNumber(den)
	if !okA || !okB || b == 0 {
		return "", false
	}
	if a == b {
		return "100%", true
	}
	return formatNumber(a/b*100) + "%", true
}

// resolveOpacity normalizes an opacity suffix to a percentage or a var().
func resolveOpacity(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "["):
		inner := parser.DecodeArbitrary(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		if n, ok := parseNumber(inner); ok && n <= 1 {
			return formatNumber(n*100) + "%", true
		}
		return inner, inner != ""
	case strings.HasPrefix(s, "("):
		return "var" + s, true
	}
	n, ok := parseNumber(s)
	if !ok || n > 100 {
		return "", false
	}
	return formatNumber(n) + "%", true
}

func applyOpacity(value, alpha string) string {
	if alpha == "" || alpha == "100%" {
		return value
	}
	return "color-mix(in oklab, " + value + " " + alpha + ", transparent)"
}

func parseNumber(s string) (float64, bool) {
	if s == "" || strings.Trim(s, "0123456789.") != "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
