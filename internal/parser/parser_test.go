package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		class     string
		prefixes  []string
		modifiers []string
		want      *UtilityToken
	}{
		{
			name:      "modifier and utility",
			class:     "hover:bg-red-500",
			modifiers: []string{"hover"},
			want:      &UtilityToken{Raw: "bg-red-500", Prefix: "bg", Value: "red-500"},
		},
		{
			name:      "modifier chain is outermost first",
			class:     "sm:dark:hover:bg-red-500/50",
			modifiers: []string{"sm", "dark", "hover"},
			want:      &UtilityToken{Raw: "bg-red-500/50", Prefix: "bg", Value: "red-500", Opacity: "50"},
		},
		{
			name:      "bracketed modifier is not split",
			class:     "[&>*:first-child]:p-4",
			modifiers: []string{"[&>*:first-child]"},
			want:      &UtilityToken{Raw: "p-4", Prefix: "p", Value: "4"},
		},
		{
			name:      "functional modifier with arbitrary value",
			class:     "aria-[expanded=true]:bg-(--my-color)",
			modifiers: []string{"aria-[expanded=true]"},
			want:      &UtilityToken{Raw: "bg-(--my-color)", Prefix: "bg", Value: "--my-color", CustomProperty: true},
		},
		{
			name:  "custom property with fallback keeps colon",
			class: "bg-(--brand:red)",
			want:  &UtilityToken{Raw: "bg-(--brand:red)", Prefix: "bg", Value: "--brand:red", CustomProperty: true},
		},
		{
			name:  "negative",
			class: "-mt-4",
			want:  &UtilityToken{Raw: "-mt-4", Prefix: "mt", Value: "4", Negative: true},
		},
		{
			name:  "fraction is carried as opacity suffix",
			class: "w-1/2",
			want:  &UtilityToken{Raw: "w-1/2", Prefix: "w", Value: "1", Opacity: "2"},
		},
		{
			name:  "slash inside brackets is opaque",
			class: "bg-[url(/img/a.png)]",
			want:  &UtilityToken{Raw: "bg-[url(/img/a.png)]", Prefix: "bg", Value: "url(/img/a.png)", Arbitrary: true},
		},
		{
			name:  "arbitrary opacity suffix",
			class: "bg-red-500/[.35]",
			want:  &UtilityToken{Raw: "bg-red-500/[.35]", Prefix: "bg", Value: "red-500", Opacity: "[.35]"},
		},
		{
			name:     "longest registered prefix wins",
			class:    "bg-linear-to-r",
			prefixes: []string{"bg", "bg-linear-to-r"},
			want:     &UtilityToken{Raw: "bg-linear-to-r", Prefix: "bg-linear-to-r"},
		},
		{
			name:     "registered prefix with value",
			class:    "bg-red-500",
			prefixes: []string{"bg-linear-to-r", "bg"},
			want:     &UtilityToken{Raw: "bg-red-500", Prefix: "bg", Value: "red-500"},
		},
		{
			name:     "multi-segment prefix without registration splits at first hyphen",
			class:    "grid-cols-3",
			prefixes: []string{"grid"},
			want:     &UtilityToken{Raw: "grid-cols-3", Prefix: "grid", Value: "cols-3"},
		},
		{
			name:  "bare name",
			class: "flex",
			want:  &UtilityToken{Raw: "flex", Prefix: "flex"},
		},
		{
			name:  "leading important",
			class: "!font-bold",
			want:  &UtilityToken{Raw: "font-bold", Prefix: "font", Value: "bold", Important: true},
		},
		{
			name:      "trailing important",
			class:     "md:p-2!",
			modifiers: []string{"md"},
			want:      &UtilityToken{Raw: "p-2", Prefix: "p", Value: "2", Important: true},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Parse(tc.class, WithPrefixes(tc.prefixes))
			require.Equal(t, tc.want, got.Utility)

			raws := make([]string, 0, len(got.Modifiers))
			for _, m := range got.Modifiers {
				raws = append(raws, m.Raw)
			}
			if tc.modifiers == nil {
				tc.modifiers = []string{}
			}
			require.Equal(t, tc.modifiers, raws)
		})
	}
}

func TestParseMalformedYieldsNoUtility(t *testing.T) {
	t.Parallel()

	for _, class := range []string{
		"",
		"   ",
		"hover:",
		"bg-[red",
		"bg-red]",
		"hover:bg-(--x",
		"[&>*:p-4",
		"-",
		"!",
		"bg-red/",
		"bg-(red)",
		"bg-[]",
	} {
		got := Parse(class)
		require.Nil(t, got.Utility, "class %q", class)
		require.Empty(t, got.Modifiers, "class %q", class)
	}
}

func TestFullValueAndCustomPropertyParts(t *testing.T) {
	t.Parallel()

	tok := Parse("w-1/2").Utility
	require.NotNil(t, tok)
	require.Equal(t, "1/2", tok.FullValue())

	tok = Parse("text-(--ink:black)").Utility
	require.NotNil(t, tok)
	name, fallback := tok.CustomPropertyParts()
	require.Equal(t, "--ink", name)
	require.Equal(t, "black", fallback)

	tok = Parse("text-red").Utility
	name, fallback = tok.CustomPropertyParts()
	require.Empty(t, name)
	require.Empty(t, fallback)
}

func TestDecodeArbitrary(t *testing.T) {
	t.Parallel()

	require.Equal(t, "calc(100% - 2rem)", DecodeArbitrary("calc(100%_-_2rem)"))
	require.Equal(t, "snake_case", DecodeArbitrary(`snake\_case`))
	require.Equal(t, "plain", DecodeArbitrary("plain"))
}
