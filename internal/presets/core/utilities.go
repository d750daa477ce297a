package core

import (
	"strings"

	"github.com/alexisbeaulieu97/utilicss/internal/registry"
	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

// Utility priorities order generated rules so that shorthand utilities are
// emitted before the longhands that refine them.
const (
	priorityLayout = iota * 10
	prioritySpacing
	prioritySpacingAxis
	prioritySpacingSide
	prioritySizing
	priorityTypography
	priorityColor
	priorityEffects
)

var spacing = registry.BareNumber{Unit: "rem", Scale: 0.25}

type staticDef struct {
	name  string
	decls []style.Property
}

func props(kv ...string) []style.Property {
	out := make([]style.Property, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, style.Property{Name: kv[i], Value: kv[i+1]})
	}
	return out
}

var statics = []staticDef{
	{"block", props("display", "block")},
	{"inline-block", props("display", "inline-block")},
	{"inline", props("display", "inline")},
	{"flex", props("display", "flex")},
	{"inline-flex", props("display", "inline-flex")},
	{"grid", props("display", "grid")},
	{"hidden", props("display", "none")},
	{"contents", props("display", "contents")},
	{"flex-row", props("flex-direction", "row")},
	{"flex-col", props("flex-direction", "column")},
	{"items-center", props("align-items", "center")},
	{"justify-between", props("justify-content", "space-between")},
	{"relative", props("position", "relative")},
	{"absolute", props("position", "absolute")},
	{"sr-only", props(
		"position", "absolute",
		"width", "1px",
		"height", "1px",
		"padding", "0",
		"margin", "-1px",
		"overflow", "hidden",
		"clip", "rect(0, 0, 0, 0)",
		"white-space", "nowrap",
		"border-width", "0",
	)},
	{"border", props("border-width", "1px")},
	{"underline", props("text-decoration-line", "underline")},
	{"italic", props("font-style", "italic")},
	{"truncate", props("overflow", "hidden", "text-overflow", "ellipsis", "white-space", "nowrap")},
	{"bg-linear-to-r", props("background-image", "linear-gradient(to right, var(--tw-gradient-stops))")},
	{"bg-linear-to-b", props("background-image", "linear-gradient(to bottom, var(--tw-gradient-stops))")},
}

// spacingUtilities maps a prefix to the properties it sets.
var spacingUtilities = []struct {
	name     string
	props    []string
	priority int
}{
	{"p", []string{"padding"}, prioritySpacing},
	{"px", []string{"padding-left", "padding-right"}, prioritySpacingAxis},
	{"py", []string{"padding-top", "padding-bottom"}, prioritySpacingAxis},
	{"pt", []string{"padding-top"}, prioritySpacingSide},
	{"pr", []string{"padding-right"}, prioritySpacingSide},
	{"pb", []string{"padding-bottom"}, prioritySpacingSide},
	{"pl", []string{"padding-left"}, prioritySpacingSide},
	{"m", []string{"margin"}, prioritySpacing},
	{"mx", []string{"margin-left", "margin-right"}, prioritySpacingAxis},
	{"my", []string{"margin-top", "margin-bottom"}, prioritySpacingAxis},
	{"mt", []string{"margin-top"}, prioritySpacingSide},
	{"mr", []string{"margin-right"}, prioritySpacingSide},
	{"mb", []string{"margin-bottom"}, prioritySpacingSide},
	{"ml", []string{"margin-left"}, prioritySpacingSide},
	{"gap", []string{"gap"}, prioritySpacing},
}

func registerUtilities(r *registry.Registry) error {
	for _, s := range statics {
		if err := r.StaticUtility(registry.StaticOptions{Name: s.name, Declarations: s.decls, Priority: priorityLayout}); err != nil {
			return err
		}
	}

	for _, su := range spacingUtilities {
		caps := registry.SupportsArbitrary | registry.SupportsCustomProperty
		if strings.HasPrefix(su.name, "m") {
			caps |= registry.SupportsNegative
		}
		if err := r.FunctionalUtility(registry.FunctionalOptions{
			Name:         su.name,
			Capabilities: caps,
			ThemeKeys:    []string{"spacing"},
			Bare:         spacing,
			Handle:       declareAll(su.props),
			Priority:     su.priority,
		}); err != nil {
			return err
		}
	}

	for _, opts := range []registry.FunctionalOptions{
		{
			Name:         "w",
			Property:     "width",
			Capabilities: registry.SupportsArbitrary | registry.SupportsCustomProperty | registry.SupportsFraction,
			ThemeKeys:    []string{"spacing"},
			Bare:         sizing("100vw"),
			Priority:     prioritySizing,
		},
		{
			Name:         "h",
			Property:     "height",
			Capabilities: registry.SupportsArbitrary | registry.SupportsCustomProperty | registry.SupportsFraction,
			ThemeKeys:    []string{"spacing"},
			Bare:         sizing("100vh"),
			Priority:     prioritySizing,
		},
		{
			Name:         "z",
			Property:     "z-index",
			Capabilities: registry.SupportsArbitrary | registry.SupportsNegative,
			Bare:         registry.BareInteger{},
			Priority:     priorityLayout,
		},
		{
			Name:         "opacity",
			Property:     "opacity",
			Capabilities: registry.SupportsArbitrary | registry.SupportsCustomProperty,
			Bare:         registry.BarePercent{},
			Priority:     priorityEffects,
		},
		{
			Name:         "rounded",
			Property:     "border-radius",
			Capabilities: registry.SupportsArbitrary | registry.SupportsCustomProperty,
			ThemeKeys:    []string{"radius"},
			Bare:         registry.BareNone{},
			Priority:     priorityEffects,
		},
		{
			Name:         "font",
			Property:     "font-weight",
			Capabilities: registry.SupportsArbitrary | registry.SupportsCustomProperty,
			ThemeKeys:    []string{"font-weight"},
			Bare:         registry.BareInteger{},
			Priority:     priorityTypography,
		},
		{
			Name:         "bg",
			Property:     "background-color",
			Capabilities: registry.SupportsArbitrary | registry.SupportsCustomProperty | registry.SupportsOpacity,
			ThemeKeys:    []string{"colors"},
			Bare:         registry.BareNone{},
			Priority:     priorityColor,
		},
		{
			Name:         "border",
			Property:     "border-color",
			Capabilities: registry.SupportsArbitrary | registry.SupportsCustomProperty | registry.SupportsOpacity,
			ThemeKeys:    []string{"colors"},
			Bare: registry.BareFunc(func(v string) (string, bool) {
				n, ok := registry.ResolveBare(registry.BareInteger{}, v)
				if !ok {
					return "", false
				}
				return n + "px", true
			}),
			Handle: func(v registry.ResolvedValue, _ registry.Context) []style.Node {
				if v.Kind == registry.ValueBare {
					return []style.Node{style.Decl("border-width", v.Value)}
				}
				return nil
			},
			Priority: priorityColor,
		},
		{
			Name:         "cursor",
			Property:     "cursor",
			Capabilities: registry.SupportsArbitrary | registry.SupportsCustomProperty,
			Priority:     priorityEffects,
		},
		{
			Name:         "object",
			Property:     "object-fit",
			Capabilities: registry.SupportsArbitrary,
			Priority:     priorityLayout,
		},
		{
			Name:         "ease",
			Capabilities: registry.SupportsArbitrary | registry.SupportsCustomProperty,
			Handle:       easeHandler,
			Priority:     priorityEffects,
		},
		{
			Name:         "text",
			Capabilities: registry.SupportsArbitrary | registry.SupportsCustomProperty | registry.SupportsOpacity,
			ThemeKeys:    []string{"font-size", "colors"},
			Bare:         registry.BareNone{},
			Handle:       textHandler,
			Priority:     priorityTypography,
		},
	} {
		if err := r.FunctionalUtility(opts); err != nil {
			return err
		}
	}
	return nil
}

// declareAll emits the resolved value for every property.
func declareAll(properties []string) func(registry.ResolvedValue, registry.Context) []style.Node {
	return func(v registry.ResolvedValue, _ registry.Context) []style.Node {
		nodes := make([]style.Node, 0, len(properties))
		for _, p := range properties {
			nodes = append(nodes, style.Decl(p, v.Value))
		}
		return nodes
	}
}

// sizing resolves keywords shared by width and height, then spacing steps.
func sizing(screen string) registry.BareFunc {
	keywords := map[string]string{
		"auto":   "auto",
		"full":   "100%",
		"screen": screen,
		"min":    "min-content",
		"max":    "max-content",
		"fit":    "fit-content",
	}
	return func(v string) (string, bool) {
		if kw, ok := keywords[v]; ok {
			return kw, true
		}
		return registry.ResolveBare(spacing, v)
	}
}

var easings = map[string]string{
	"linear": "linear",
	"in":     "cubic-bezier(0.4, 0, 1, 1)",
	"out":    "cubic-bezier(0, 0, 0.2, 1)",
	"in-out": "cubic-bezier(0.4, 0, 0.2, 1)",
}

// easeHandler maps timing keywords; other raw values are unsupported.
func easeHandler(v registry.ResolvedValue, _ registry.Context) []style.Node {
	value := v.Value
	if v.Kind == registry.ValueRaw {
		kw, ok := easings[v.Value]
		if !ok {
			return nil
		}
		value = kw
	}
	return []style.Node{style.Decl("transition-timing-function", value)}
}

// textHandler picks font-size for size keys and lengths, color otherwise.
func textHandler(v registry.ResolvedValue, ctx registry.Context) []style.Node {
	switch v.Kind {
	case registry.ValueTheme:
		if ctx != nil {
			if _, ok := ctx.Theme("font-size", v.Token.Value); ok {
				return []style.Node{style.Decl("font-size", v.Value)}
			}
		}
	case registry.ValueArbitrary:
		if looksLikeLength(v.Value) {
			return []style.Node{style.Decl("font-size", v.Value)}
		}
	}
	return []style.Node{style.Decl("color", v.WithOpacity())}
}

func looksLikeLength(v string) bool {
	if v == "" {
		return false
	}
	c := v[0]
	return (c >= '0' && c <= '9') || c == '.' || strings.HasPrefix(v, "clamp(") || strings.HasPrefix(v, "calc(")
}
