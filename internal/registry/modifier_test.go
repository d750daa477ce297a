package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/utilicss/internal/parser"
	"github.com/alexisbeaulieu97/utilicss/internal/style"
	cssErrors "github.com/alexisbeaulieu97/utilicss/pkg/errors"
)

func TestStaticModifierForms(t *testing.T) {
	t.Parallel()

	r := New(nil, nil)
	require.NoError(t, r.StaticModifier(StaticModifierOptions{Name: "hover", Selector: "&:hover", Source: style.SourcePseudo}))
	require.NoError(t, r.StaticModifier(StaticModifierOptions{
		Name:      "placeholder",
		Selectors: []string{"&::placeholder", "&::-webkit-input-placeholder"},
		Source:    style.SourcePseudo,
	}))
	require.NoError(t, r.StaticModifier(StaticModifierOptions{Name: "*", Selector: ":is(& > *)", Absolute: true, Source: style.SourceUniversal}))
	require.NoError(t, r.StaticModifier(StaticModifierOptions{Name: "print", AtRule: "media", Params: "print", Source: style.SourceMedia}))
	require.NoError(t, r.StaticModifier(StaticModifierOptions{
		Name: "dark",
		Wrap: []style.Node{
			style.NewAtRule("media", "(prefers-color-scheme: dark)", style.SourceDark, style.Decl("ignored", "child")),
			style.NewRule(".dark &", style.SourceDark),
		},
	}))

	cases := []struct {
		segment string
		want    []style.Node
	}{
		{"hover", []style.Node{&style.Rule{Selector: "&:hover", Source: style.SourcePseudo}}},
		{"placeholder", []style.Node{
			&style.Rule{Selector: "&::placeholder", Source: style.SourcePseudo},
			&style.Rule{Selector: "&::-webkit-input-placeholder", Source: style.SourcePseudo},
		}},
		{"*", []style.Node{&style.AbsoluteRule{Selector: ":is(& > *)", Source: style.SourceUniversal}}},
		{"print", []style.Node{&style.AtRule{Name: "media", Params: "print", Source: style.SourceMedia}}},
		{"dark", []style.Node{
			&style.AtRule{Name: "media", Params: "(prefers-color-scheme: dark)", Source: style.SourceDark},
			&style.Rule{Selector: ".dark &", Source: style.SourceDark},
		}},
	}

	for _, tc := range cases {
		seg := parser.Segment{Raw: tc.segment}
		m := r.FindModifier(seg, testContext)
		require.NotNil(t, m, tc.segment)

		got, err := m.Wrappers(seg, testContext)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, tc.segment)
	}

	require.Nil(t, r.FindModifier(parser.Segment{Raw: "focus"}, testContext))
}

func TestStaticModifierRequiresExactlyOneForm(t *testing.T) {
	t.Parallel()

	r := New(nil, nil)
	var validationErr *cssErrors.ValidationError

	require.ErrorAs(t, r.StaticModifier(StaticModifierOptions{Name: "hover"}), &validationErr)
	require.ErrorAs(t, r.StaticModifier(StaticModifierOptions{Name: "hover", Selector: "&:hover", AtRule: "media"}), &validationErr)
	require.ErrorAs(t, r.StaticModifier(StaticModifierOptions{Selector: "&:hover"}), &validationErr)
	require.Empty(t, r.Modifiers())
}

func TestFunctionalModifier(t *testing.T) {
	t.Parallel()

	ctx := mapContext{theme: map[string]map[string]string{"breakpoints": {"sm": "640px"}}}

	r := New(nil, nil)
	require.NoError(t, r.FunctionalModifier(FunctionalModifierOptions{
		Name:              "aria",
		Values:            map[string]string{"checked": `checked="true"`},
		SupportsArbitrary: true,
		Source:            style.SourceAria,
		Rewrite: func(value string, _ bool) []Rewrite {
			return []Rewrite{{Selector: "&[aria-" + value + "]"}}
		},
	}))
	require.NoError(t, r.FunctionalModifier(FunctionalModifierOptions{
		Name:     "max",
		ThemeKey: "breakpoints",
		Source:   style.SourceMedia,
		Rewrite: func(value string, _ bool) []Rewrite {
			return []Rewrite{{Kind: WrapAtRule, Name: "media", Params: "(width < " + value + ")"}}
		},
	}))

	cases := []struct {
		segment string
		want    []style.Node
	}{
		{"aria-checked", []style.Node{&style.Rule{Selector: `&[aria-checked="true"]`, Source: style.SourceAria}}},
		{"aria-[sort=ascending]", []style.Node{&style.Rule{Selector: "&[aria-sort=ascending]", Source: style.SourceAria}}},
		{"max-sm", []style.Node{&style.AtRule{Name: "media", Params: "(width < 640px)", Source: style.SourceMedia}}},
	}
	for _, tc := range cases {
		seg := parser.Segment{Raw: tc.segment}
		m := r.FindModifier(seg, ctx)
		require.NotNil(t, m, tc.segment)
		got, err := m.Wrappers(seg, ctx)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, tc.segment)
	}

	for _, miss := range []string{"aria", "aria-", "aria-busy", "aria-[x", "max-3xl", "max-[10px]"} {
		require.Nil(t, r.FindModifier(parser.Segment{Raw: miss}, ctx), miss)
	}
}

func TestModifierWrappersRecoverPanics(t *testing.T) {
	t.Parallel()

	m := &Modifier{
		Name:           "explode",
		Match:          func(parser.Segment, Context) bool { return true },
		ModifySelector: func(parser.Segment, Context) []Rewrite { panic("rewrite") },
	}

	nodes, err := m.Wrappers(parser.Segment{Raw: "explode"}, nil)
	require.Nil(t, nodes)
	var pluginErr *cssErrors.PluginError
	require.ErrorAs(t, err, &pluginErr)
	require.Equal(t, cssErrors.PhaseModify, pluginErr.Phase)
}

func TestModifierWrappersRejectLeafNodes(t *testing.T) {
	t.Parallel()

	m := &Modifier{
		Name:  "leafy",
		Match: func(parser.Segment, Context) bool { return true },
		Wrap: func(parser.Segment, Context) []style.Node {
			return []style.Node{style.NewRule(".x &", ""), style.Decl("color", "red")}
		},
	}

	nodes, err := m.Wrappers(parser.Segment{Raw: "leafy"}, nil)
	require.Nil(t, nodes)
	var pluginErr *cssErrors.PluginError
	require.ErrorAs(t, err, &pluginErr)
	require.Equal(t, "leafy", pluginErr.Plugin)
	require.Equal(t, cssErrors.PhaseModify, pluginErr.Phase)
	require.ErrorContains(t, err, "cannot hold children")
}
