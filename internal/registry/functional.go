package registry

import (
	"strings"

	"github.com/alexisbeaulieu97/utilicss/internal/parser"
	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

// Capability is a closed set of value forms a functional utility accepts.
type Capability uint8

const (
	SupportsArbitrary Capability = 1 << iota
	SupportsCustomProperty
	SupportsNegative
	SupportsFraction
	SupportsOpacity
)

// Has reports whether every flag in f is set.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

// ValueKind records which resolution step produced a value.
type ValueKind int

const (
	ValueArbitrary ValueKind = iota + 1
	ValueCustomProperty
	ValueTheme
	ValueFraction
	ValueBare
	// ValueRaw is the unresolved value of a utility with no bare resolver,
	// such as the keyword in "cursor-pointer".
	ValueRaw
)

// ResolvedValue is handed to a functional utility's Handle callback.
type ResolvedValue struct {
	Value   string
	Opacity string
	Kind    ValueKind
	Token   parser.UtilityToken
}

// WithOpacity returns Value mixed with Opacity, or Value when no opacity was
// requested.
func (v ResolvedValue) WithOpacity() string {
	return applyOpacity(v.Value, v.Opacity)
}

// FunctionalOptions declares a utility matched by name prefix. Values are
// resolved in a fixed order: opacity split, arbitrary, custom property, theme
// keys, fraction, negative bare value, bare value; then Handle runs and,
// when it produces nothing, a single Property declaration is emitted.
//
// With no Bare variant and no HandleBareValue, a value no earlier step
// resolves reaches Handle and the fallback verbatim as ValueRaw. Set Bare to
// BareNone to reject such values instead.
type FunctionalOptions struct {
	Name         string `validate:"required,utility_name"`
	Property     string `validate:"required_without=Handle"`
	Capabilities Capability
	ThemeKeys    []string
	Bare         BareValue

	HandleBareValue         func(value string) (string, bool)
	HandleNegativeBareValue func(value string) (string, bool)
	HandleCustomProperty    func(name, fallback string) string
	Handle                  func(v ResolvedValue, ctx Context) []style.Node

	Priority int
}

// FunctionalUtility registers a functional utility.
func (r *Registry) FunctionalUtility(opts FunctionalOptions) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	if opts.ThemeKeys != nil {
		opts.ThemeKeys = append([]string(nil), opts.ThemeKeys...)
	}

	f := &functional{opts: opts}
	return r.RegisterUtility(&Utility{
		Name:     opts.Name,
		Priority: opts.Priority,
		Match:    f.match,
		Handler:  f.handle,
	})
}

type functional struct {
	opts FunctionalOptions
}

func (f *functional) match(tok parser.UtilityToken) bool {
	caps := f.opts.Capabilities
	switch {
	case tok.Prefix != f.opts.Name:
		return false
	case tok.Negative && !caps.Has(SupportsNegative):
		return false
	case tok.Arbitrary && !caps.Has(SupportsArbitrary):
		return false
	case tok.CustomProperty && !caps.Has(SupportsCustomProperty):
		return false
	case tok.Opacity != "" && !caps.Has(SupportsOpacity) && !caps.Has(SupportsFraction):
		return false
	}
	return true
}

func (f *functional) handle(_ string, ctx Context, tok parser.UtilityToken, _ *Utility) ([]style.Node, error) {
	rv := ResolvedValue{Token: tok}
	raw := tok.Value

	if f.opts.Capabilities.Has(SupportsOpacity) && tok.Opacity != "" {
		alpha, ok := resolveOpacity(tok.Opacity)
		if !ok {
			return nil, nil
		}
		rv.Opacity = alpha
	} else if tok.Opacity != "" {
		raw = tok.FullValue()
	}

	value, kind, ok := f.resolve(raw, ctx, tok)
	if !ok {
		return nil, nil
	}
	rv.Value, rv.Kind = value, kind

	if f.opts.Handle != nil {
		if nodes := f.opts.Handle(rv, ctx); len(nodes) > 0 {
			return nodes, nil
		}
	}
	if f.opts.Property == "" {
		return nil, nil
	}
	return []style.Node{style.Decl(f.opts.Property, rv.WithOpacity())}, nil
}

func (f *functional) resolve(raw string, ctx Context, tok parser.UtilityToken) (string, ValueKind, bool) {
	caps := f.opts.Capabilities
	sign := func(v string) string {
		if tok.Negative {
			return negate(v)
		}
		return v
	}

	if tok.Arbitrary {
		return sign(parser.DecodeArbitrary(raw)), ValueArbitrary, true
	}

	if tok.CustomProperty {
		name, fallback := tok.CustomPropertyParts()
		if f.opts.HandleCustomProperty != nil {
			return sign(f.opts.HandleCustomProperty(name, fallback)), ValueCustomProperty, true
		}
		if fallback != "" {
			return sign("var(" + name + ", " + parser.DecodeArbitrary(fallback) + ")"), ValueCustomProperty, true
		}
		return sign("var(" + name + ")"), ValueCustomProperty, true
	}

	if ctx != nil {
		key := raw
		if key == "" {
			key = "DEFAULT"
		}
		for _, themeKey := range f.opts.ThemeKeys {
			if v, ok := ctx.Theme(themeKey, key); ok {
				return sign(v), ValueTheme, true
			}
		}
	}

	if caps.Has(SupportsFraction) && strings.Contains(raw, "/") {
		if v, ok := fraction(raw); ok {
			return sign(v), ValueFraction, true
		}
		return "", 0, false
	}

	if raw == "" {
		return "", 0, false
	}

	if tok.Negative && caps.Has(SupportsNegative) {
		if f.opts.HandleNegativeBareValue != nil {
			v, ok := f.opts.HandleNegativeBareValue(raw)
			return v, ValueBare, ok
		}
		v, ok := f.bare(raw)
		if !ok {
			return "", 0, false
		}
		return negate(v), ValueBare, true
	}

	if v, ok := f.bare(raw); ok {
		return v, ValueBare, true
	}
	if f.opts.Bare == nil && f.opts.HandleBareValue == nil && !tok.Negative {
		return raw, ValueRaw, true
	}
	return "", 0, false
}

func (f *functional) bare(raw string) (string, bool) {
	if f.opts.HandleBareValue != nil {
		return f.opts.HandleBareValue(raw)
	}
	return ResolveBare(f.opts.Bare, raw)
}
