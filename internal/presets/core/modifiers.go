package core

import (
	"strings"

	"github.com/alexisbeaulieu97/utilicss/internal/parser"
	"github.com/alexisbeaulieu97/utilicss/internal/registry"
	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

// pseudoClasses maps modifier names to the pseudo-class they select. The
// group-* and peer-* modifiers reuse the table.
var pseudoClasses = []struct {
	name     string
	selector string
}{
	{"hover", ":hover"},
	{"focus", ":focus"},
	{"focus-visible", ":focus-visible"},
	{"focus-within", ":focus-within"},
	{"active", ":active"},
	{"visited", ":visited"},
	{"disabled", ":disabled"},
	{"checked", ":checked"},
	{"required", ":required"},
	{"invalid", ":invalid"},
	{"first", ":first-child"},
	{"last", ":last-child"},
	{"odd", ":nth-child(odd)"},
	{"even", ":nth-child(even)"},
	{"empty", ":empty"},
	{"open", ":is([open], :popover-open)"},
}

var pseudoElements = []registry.StaticModifierOptions{
	{Name: "before", Selector: "&::before"},
	{Name: "after", Selector: "&::after"},
	{Name: "placeholder", Selector: "&::placeholder"},
	{Name: "marker", Selectors: []string{"& *::marker", "&::marker"}},
	{Name: "selection", Selectors: []string{"& *::selection", "&::selection"}},
	{Name: "file", Selectors: []string{"&::file-selector-button", "&::-webkit-file-upload-button"}},
}

var mediaFeatures = []registry.StaticModifierOptions{
	{Name: "print", AtRule: "media", Params: "print"},
	{Name: "motion-safe", AtRule: "media", Params: "(prefers-reduced-motion: no-preference)"},
	{Name: "motion-reduce", AtRule: "media", Params: "(prefers-reduced-motion: reduce)"},
	{Name: "contrast-more", AtRule: "media", Params: "(prefers-contrast: more)"},
	{Name: "portrait", AtRule: "media", Params: "(orientation: portrait)"},
	{Name: "landscape", AtRule: "media", Params: "(orientation: landscape)"},
}

var ariaStates = map[string]string{
	"busy":     `busy="true"`,
	"checked":  `checked="true"`,
	"disabled": `disabled="true"`,
	"expanded": `expanded="true"`,
	"hidden":   `hidden="true"`,
	"pressed":  `pressed="true"`,
	"readonly": `readonly="true"`,
	"required": `required="true"`,
	"selected": `selected="true"`,
}

func registerModifiers(r *registry.Registry) error {
	steps := []func(*registry.Registry) error{
		registerPseudo,
		registerResponsive,
		registerDark,
		registerStructural,
		registerAttributes,
		registerAtRules,
		registerArbitrary,
	}
	for _, step := range steps {
		if err := step(r); err != nil {
			return err
		}
	}
	return nil
}

func registerPseudo(r *registry.Registry) error {
	for _, pc := range pseudoClasses {
		if err := r.StaticModifier(registry.StaticModifierOptions{
			Name:     pc.name,
			Selector: "&" + pc.selector,
			Source:   style.SourcePseudo,
		}); err != nil {
			return err
		}
	}
	for _, opts := range pseudoElements {
		opts.Source = style.SourcePseudo
		if err := r.StaticModifier(opts); err != nil {
			return err
		}
	}
	return nil
}

// registerResponsive adds one modifier per theme breakpoint plus min-* and
// max-* ranges. Breakpoints are read from the context at compile time.
func registerResponsive(r *registry.Registry) error {
	breakpoint := func(seg parser.Segment, ctx registry.Context) (string, bool) {
		if ctx == nil {
			return "", false
		}
		return ctx.Theme("breakpoints", seg.Raw)
	}
	if err := r.RegisterModifier(&registry.Modifier{
		Name:   "breakpoint",
		Source: style.SourceResponsive,
		Match: func(seg parser.Segment, ctx registry.Context) bool {
			_, ok := breakpoint(seg, ctx)
			return ok
		},
		ModifySelector: func(seg parser.Segment, ctx registry.Context) []registry.Rewrite {
			width, _ := breakpoint(seg, ctx)
			return []registry.Rewrite{{Kind: registry.WrapAtRule, Name: "media", Params: "(min-width: " + width + ")"}}
		},
	}); err != nil {
		return err
	}

	if err := r.FunctionalModifier(registry.FunctionalModifierOptions{
		Name:              "min",
		ThemeKey:          "breakpoints",
		SupportsArbitrary: true,
		Source:            style.SourceResponsive,
		Rewrite: func(value string, _ bool) []registry.Rewrite {
			return []registry.Rewrite{{Kind: registry.WrapAtRule, Name: "media", Params: "(min-width: " + value + ")"}}
		},
	}); err != nil {
		return err
	}
	return r.FunctionalModifier(registry.FunctionalModifierOptions{
		Name:              "max",
		ThemeKey:          "breakpoints",
		SupportsArbitrary: true,
		Source:            style.SourceResponsive,
		Rewrite: func(value string, _ bool) []registry.Rewrite {
			return []registry.Rewrite{{Kind: registry.WrapAtRule, Name: "media", Params: "not all and (min-width: " + value + ")"}}
		},
	})
}

// registerDark follows the dark_mode config value: media (default), class,
// selector, or dual which emits both the media query and the class form.
func registerDark(r *registry.Registry) error {
	return r.RegisterModifier(&registry.Modifier{
		Name:   "dark",
		Source: style.SourceDark,
		Match: func(seg parser.Segment, _ registry.Context) bool {
			return seg.Raw == "dark"
		},
		Wrap: func(_ parser.Segment, ctx registry.Context) []style.Node {
			mode, class := darkSettings(ctx)
			media := style.NewAtRule("media", "(prefers-color-scheme: dark)", style.SourceDark)
			ancestor := style.NewRule("."+class+" &", style.SourceDark)
			switch mode {
			case "class":
				return []style.Node{ancestor}
			case "selector":
				return []style.Node{style.NewRule("&:where(."+class+", ."+class+" *)", style.SourceDark)}
			case "dual":
				return []style.Node{media, ancestor}
			}
			return []style.Node{media}
		},
	})
}

func darkSettings(ctx registry.Context) (mode, class string) {
	mode, class = "media", "dark"
	if ctx == nil {
		return mode, class
	}
	if v, ok := ctx.Config("dark_mode"); ok {
		if s, ok := v.(string); ok && s != "" {
			mode = s
		}
	}
	if v, ok := ctx.Config("dark_class"); ok {
		if s, ok := v.(string); ok && s != "" {
			class = s
		}
	}
	return mode, class
}

// registerStructural adds group-*, peer-* and the universal child modifiers.
func registerStructural(r *registry.Registry) error {
	states := make(map[string]string, len(pseudoClasses))
	for _, pc := range pseudoClasses {
		states[pc.name] = pc.selector
	}

	if err := r.FunctionalModifier(registry.FunctionalModifierOptions{
		Name:              "group",
		Values:            states,
		SupportsArbitrary: true,
		Source:            style.SourceGroup,
		Rewrite: func(value string, _ bool) []registry.Rewrite {
			return []registry.Rewrite{{Selector: ".group" + value + " &"}}
		},
	}); err != nil {
		return err
	}
	if err := r.FunctionalModifier(registry.FunctionalModifierOptions{
		Name:              "peer",
		Values:            states,
		SupportsArbitrary: true,
		Source:            style.SourcePeer,
		Rewrite: func(value string, _ bool) []registry.Rewrite {
			return []registry.Rewrite{{Selector: ".peer" + value + " ~ &"}}
		},
	}); err != nil {
		return err
	}

	for _, opts := range []registry.StaticModifierOptions{
		{Name: "*", Selector: ":is(& > *)", Source: style.SourceUniversal},
		{Name: "**", Selector: ":is(& *)", Source: style.SourceUniversal},
	} {
		if err := r.StaticModifier(opts); err != nil {
			return err
		}
	}
	return nil
}

// registerAttributes adds aria-*, data-* and direction modifiers.
func registerAttributes(r *registry.Registry) error {
	if err := r.FunctionalModifier(registry.FunctionalModifierOptions{
		Name:              "aria",
		Values:            ariaStates,
		SupportsArbitrary: true,
		Source:            style.SourceAria,
		Rewrite: func(value string, _ bool) []registry.Rewrite {
			return []registry.Rewrite{{Selector: "&[aria-" + value + "]"}}
		},
	}); err != nil {
		return err
	}

	if err := r.RegisterModifier(&registry.Modifier{
		Name:   "data",
		Source: style.SourceData,
		Match: func(seg parser.Segment, _ registry.Context) bool {
			_, ok := dataAttribute(seg.Raw)
			return ok
		},
		ModifySelector: func(seg parser.Segment, _ registry.Context) []registry.Rewrite {
			attr, _ := dataAttribute(seg.Raw)
			return []registry.Rewrite{{Selector: "&[data-" + attr + "]"}}
		},
	}); err != nil {
		return err
	}

	for _, opts := range []registry.StaticModifierOptions{
		{Name: "ltr", Selector: `&:where(:dir(ltr), [dir="ltr"], [dir="ltr"] *)`, Source: style.SourceAttribute},
		{Name: "rtl", Selector: `&:where(:dir(rtl), [dir="rtl"], [dir="rtl"] *)`, Source: style.SourceAttribute},
	} {
		if err := r.StaticModifier(opts); err != nil {
			return err
		}
	}
	return nil
}

// dataAttribute accepts data-name and data-[name=value].
func dataAttribute(raw string) (string, bool) {
	rest, ok := strings.CutPrefix(raw, "data-")
	if !ok || rest == "" {
		return "", false
	}
	if strings.HasPrefix(rest, "[") {
		if len(rest) < 3 || !strings.HasSuffix(rest, "]") {
			return "", false
		}
		return parser.DecodeArbitrary(rest[1 : len(rest)-1]), true
	}
	if strings.ContainsAny(rest, "[]()") {
		return "", false
	}
	return rest, true
}

// registerAtRules adds media features, supports-*, @container queries and
// starting.
func registerAtRules(r *registry.Registry) error {
	for _, opts := range mediaFeatures {
		opts.Source = style.SourceMedia
		if err := r.StaticModifier(opts); err != nil {
			return err
		}
	}

	if err := r.FunctionalModifier(registry.FunctionalModifierOptions{
		Name:              "supports",
		Values:            map[string]string{"grid": "display: grid", "backdrop-blur": "backdrop-filter: blur(0)"},
		SupportsArbitrary: true,
		Source:            style.SourceSupports,
		Rewrite: func(value string, _ bool) []registry.Rewrite {
			params := value
			if !strings.HasPrefix(value, "(") && !strings.HasPrefix(value, "not ") && !strings.HasPrefix(value, "selector(") {
				params = "(" + value + ")"
			}
			return []registry.Rewrite{{Kind: registry.WrapAtRule, Name: "supports", Params: params}}
		},
	}); err != nil {
		return err
	}

	container := func(seg parser.Segment, ctx registry.Context) (string, bool) {
		name, ok := strings.CutPrefix(seg.Raw, "@")
		if !ok || name == "" {
			return "", false
		}
		if strings.HasPrefix(name, "[") {
			if len(name) < 3 || !strings.HasSuffix(name, "]") {
				return "", false
			}
			return parser.DecodeArbitrary(name[1 : len(name)-1]), true
		}
		if ctx == nil {
			return "", false
		}
		return ctx.Theme("containers", name)
	}
	if err := r.RegisterModifier(&registry.Modifier{
		Name:   "@container",
		Source: style.SourceContainer,
		Match: func(seg parser.Segment, ctx registry.Context) bool {
			_, ok := container(seg, ctx)
			return ok
		},
		ModifySelector: func(seg parser.Segment, ctx registry.Context) []registry.Rewrite {
			width, _ := container(seg, ctx)
			return []registry.Rewrite{{Kind: registry.WrapAtRule, Name: "container", Params: "(min-width: " + width + ")"}}
		},
	}); err != nil {
		return err
	}

	return r.StaticModifier(registry.StaticModifierOptions{
		Name:   "starting",
		AtRule: "starting-style",
		Source: style.SourceStarting,
	})
}

// registerArbitrary adds [selector] and [@at-rule params] modifiers. A
// selector without a placeholder is nested as "&" plus the selector.
func registerArbitrary(r *registry.Registry) error {
	inner := func(seg parser.Segment) (string, bool) {
		raw := seg.Raw
		if len(raw) < 3 || raw[0] != '[' || raw[len(raw)-1] != ']' {
			return "", false
		}
		return parser.DecodeArbitrary(raw[1 : len(raw)-1]), true
	}
	return r.RegisterModifier(&registry.Modifier{
		Name:   "arbitrary",
		Source: style.SourceAttribute,
		Match: func(seg parser.Segment, _ registry.Context) bool {
			_, ok := inner(seg)
			return ok
		},
		ModifySelector: func(seg parser.Segment, _ registry.Context) []registry.Rewrite {
			v, _ := inner(seg)
			if at, ok := strings.CutPrefix(v, "@"); ok {
				name, params, _ := strings.Cut(at, " ")
				return []registry.Rewrite{{Kind: registry.WrapAtRule, Name: name, Params: strings.TrimSpace(params), Source: style.SourceMedia}}
			}
			if !style.HasPlaceholder(v) {
				v = "&" + v
			}
			return []registry.Rewrite{{Selector: v}}
		},
	})
}
