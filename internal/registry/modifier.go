package registry

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/utilicss/internal/parser"
	"github.com/alexisbeaulieu97/utilicss/internal/style"
	cssErrors "github.com/alexisbeaulieu97/utilicss/pkg/errors"
)

// WrapKind selects the node a selector rewrite becomes.
type WrapKind int

const (
	WrapRule WrapKind = iota
	WrapAbsoluteRule
	WrapAtRule
)

// Rewrite describes one wrapper produced by a selector-rewriting modifier.
// For WrapAtRule, Name and Params are used; otherwise Selector.
type Rewrite struct {
	Kind     WrapKind
	Selector string
	Name     string
	Params   string
	Source   style.SourceTag
}

// Frame returns the childless node for the rewrite.
func (rw Rewrite) Frame() style.Node {
	switch rw.Kind {
	case WrapAbsoluteRule:
		return &style.AbsoluteRule{Selector: rw.Selector, Source: rw.Source}
	case WrapAtRule:
		return &style.AtRule{Name: rw.Name, Params: rw.Params, Source: rw.Source}
	}
	return &style.Rule{Selector: rw.Selector, Source: rw.Source}
}

// ModifierMatchFunc reports whether a modifier accepts a segment.
type ModifierMatchFunc func(seg parser.Segment, ctx Context) bool

// ModifySelectorFunc returns one rewrite per sibling root.
type ModifySelectorFunc func(seg parser.Segment, ctx Context) []Rewrite

// WrapFunc returns literal wrapper nodes, one per sibling root.
type WrapFunc func(seg parser.Segment, ctx Context) []style.Node

// Modifier is a variant plugin. Exactly one of ModifySelector and Wrap is set.
type Modifier struct {
	Name           string
	Match          ModifierMatchFunc
	ModifySelector ModifySelectorFunc
	Wrap           WrapFunc
	Source         style.SourceTag
}

func (m *Modifier) validate() error {
	if m.Name == "" {
		return cssErrors.NewValidationError("name", "modifier requires a name", nil)
	}
	if m.Match == nil {
		return cssErrors.NewValidationError(m.Name, "modifier requires Match", nil)
	}
	if (m.ModifySelector == nil) == (m.Wrap == nil) {
		return cssErrors.NewValidationError(m.Name, "modifier requires exactly one of ModifySelector and Wrap", nil)
	}
	return nil
}

// Matches calls Match inside a fault boundary.
func (m *Modifier) Matches(seg parser.Segment, ctx Context) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			err = cssErrors.NewPluginError(m.Name, cssErrors.PhaseMatch, &cssErrors.PanicError{Value: rec})
		}
	}()
	return m.Match(seg, ctx), nil
}

// Wrappers returns the childless wrapper nodes the modifier contributes for
// seg. More than one wrapper fans the wrapped subtree out into siblings.
func (m *Modifier) Wrappers(seg parser.Segment, ctx Context) (nodes []style.Node, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			nodes = nil
			err = cssErrors.NewPluginError(m.Name, cssErrors.PhaseModify, &cssErrors.PanicError{Value: rec})
		}
	}()

	if m.Wrap != nil {
		for _, n := range m.Wrap(seg, ctx) {
			if n == nil {
				continue
			}
			if !style.IsBranch(n) {
				return nil, cssErrors.NewPluginError(m.Name, cssErrors.PhaseModify, fmt.Errorf("wrapper %s cannot hold children", n.Kind()))
			}
			nodes = append(nodes, style.Strip(n))
		}
		return nodes, nil
	}

	for _, rw := range m.ModifySelector(seg, ctx) {
		if rw.Source == "" {
			rw.Source = m.Source
		}
		nodes = append(nodes, rw.Frame())
	}
	return nodes, nil
}

// StaticModifierOptions declares a modifier matched by exact name. Exactly
// one of Selector, Selectors, AtRule or Wrap must be given.
type StaticModifierOptions struct {
	Name      string `validate:"required"`
	Selector  string
	Selectors []string
	Absolute  bool
	AtRule    string
	Params    string
	Wrap      []style.Node
	Source    style.SourceTag
}

// StaticModifier registers a static modifier.
func (r *Registry) StaticModifier(opts StaticModifierOptions) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	set := 0
	for _, given := range []bool{opts.Selector != "", len(opts.Selectors) > 0, opts.AtRule != "", len(opts.Wrap) > 0} {
		if given {
			set++
		}
	}
	if set != 1 {
		return cssErrors.NewValidationError(opts.Name, "static modifier requires exactly one of Selector, Selectors, AtRule and Wrap", nil)
	}

	m := &Modifier{
		Name:   opts.Name,
		Source: opts.Source,
		Match: func(seg parser.Segment, _ Context) bool {
			return seg.Raw == opts.Name
		},
	}

	if len(opts.Wrap) > 0 {
		wrap := style.CloneAll(opts.Wrap)
		m.Wrap = func(parser.Segment, Context) []style.Node {
			return wrap
		}
		return r.RegisterModifier(m)
	}

	kind := WrapRule
	if opts.Absolute {
		kind = WrapAbsoluteRule
	}
	var rewrites []Rewrite
	switch {
	case opts.AtRule != "":
		rewrites = []Rewrite{{Kind: WrapAtRule, Name: opts.AtRule, Params: opts.Params, Source: opts.Source}}
	case opts.Selector != "":
		rewrites = []Rewrite{{Kind: kind, Selector: opts.Selector, Source: opts.Source}}
	default:
		for _, sel := range opts.Selectors {
			rewrites = append(rewrites, Rewrite{Kind: kind, Selector: sel, Source: opts.Source})
		}
	}
	m.ModifySelector = func(parser.Segment, Context) []Rewrite {
		return rewrites
	}
	return r.RegisterModifier(m)
}

// FunctionalModifierOptions declares a modifier matched as "<Name>-<value>".
// The value resolves, in order, as an arbitrary "[...]" value when
// SupportsArbitrary is set, a key of Values, or a key of the ThemeKey scale.
type FunctionalModifierOptions struct {
	Name              string `validate:"required"`
	Values            map[string]string
	ThemeKey          string
	SupportsArbitrary bool
	Rewrite           func(value string, arbitrary bool) []Rewrite `validate:"required"`
	Source            style.SourceTag
}

// FunctionalModifier registers a functional modifier.
func (r *Registry) FunctionalModifier(opts FunctionalModifierOptions) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	values := make(map[string]string, len(opts.Values))
	for k, v := range opts.Values {
		values[k] = v
	}

	resolve := func(seg parser.Segment, ctx Context) (string, bool, bool) {
		raw, ok := strings.CutPrefix(seg.Raw, opts.Name+"-")
		if !ok || raw == "" {
			return "", false, false
		}
		if strings.HasPrefix(raw, "[") {
			if !opts.SupportsArbitrary || !strings.HasSuffix(raw, "]") || len(raw) < 3 {
				return "", false, false
			}
			return parser.DecodeArbitrary(raw[1 : len(raw)-1]), true, true
		}
		if v, ok := values[raw]; ok {
			return v, false, true
		}
		if opts.ThemeKey != "" && ctx != nil {
			if v, ok := ctx.Theme(opts.ThemeKey, raw); ok {
				return v, false, true
			}
		}
		return "", false, false
	}

	return r.RegisterModifier(&Modifier{
		Name:   opts.Name,
		Source: opts.Source,
		Match: func(seg parser.Segment, ctx Context) bool {
			_, _, ok := resolve(seg, ctx)
			return ok
		},
		ModifySelector: func(seg parser.Segment, ctx Context) []Rewrite {
			value, arbitrary, ok := resolve(seg, ctx)
			if !ok {
				return nil
			}
			return opts.Rewrite(value, arbitrary)
		},
	})
}
