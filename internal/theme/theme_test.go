package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	cssErrors "github.com/alexisbeaulieu97/utilicss/pkg/errors"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	th := Default()

	v, ok := th.Theme("colors", "red-500")
	require.True(t, ok)
	require.Equal(t, "#f00", v)

	v, ok = th.Theme("breakpoints", "sm")
	require.True(t, ok)
	require.Equal(t, "640px", v)

	v, ok = th.Theme("radius", "")
	require.True(t, ok)
	require.Equal(t, "0.25rem", v)

	_, ok = th.Theme("colors", "chartreuse-500")
	require.False(t, ok)

	require.Equal(t, "media", th.ConfigString("dark_mode"))
}

func TestParseYAMLLayersOverDefaults(t *testing.T) {
	t.Parallel()

	doc := `
dark_mode: class
dark_class: night
theme:
  colors:
    red:
      500: "#e11d48"
    brand:
      DEFAULT: "#0af"
      dark: "#05a"
  spacing:
    gutter: 2rem
config:
  features:
    container: true
`
	th, err := Parse("theme.yaml", []byte(doc), FormatYAML)
	require.NoError(t, err)

	cases := map[string]string{
		"red-500":    "#e11d48",
		"brand":      "#0af",
		"brand-dark": "#05a",
		"white":      "#fff",
	}
	for key, want := range cases {
		got, ok := th.Theme("colors", key)
		require.True(t, ok, key)
		require.Equal(t, want, got, key)
	}

	gutter, ok := th.Theme("spacing", "gutter")
	require.True(t, ok)
	require.Equal(t, "2rem", gutter)

	require.Equal(t, "class", th.ConfigString("dark_mode"))
	require.Equal(t, "night", th.ConfigString("dark_class"))

	feature, ok := th.Config("features.container")
	require.True(t, ok)
	require.Equal(t, true, feature)

	_, ok = th.Config("features.container.deeper")
	require.False(t, ok)
	_, ok = th.Config("")
	require.False(t, ok)
}

func TestParseTOML(t *testing.T) {
	t.Parallel()

	doc := `
dark_mode = "selector"

[theme.colors]
brand = "#0af"

[theme.breakpoints]
3xl = "1920px"

[config]
prefix = "tw"
`
	th, err := Parse("theme.toml", []byte(doc), FormatTOML)
	require.NoError(t, err)

	v, ok := th.Theme("breakpoints", "3xl")
	require.True(t, ok)
	require.Equal(t, "1920px", v)

	v, ok = th.Theme("breakpoints", "sm")
	require.True(t, ok)
	require.Equal(t, "640px", v)

	require.Equal(t, "selector", th.ConfigString("dark_mode"))
	require.Equal(t, "tw", th.ConfigString("prefix"))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		doc    string
		format Format
		assert func(t *testing.T, err error)
	}{
		{
			name:   "broken yaml reports line",
			doc:    "theme:\n  colors:\n    red: [\n",
			format: FormatYAML,
			assert: func(t *testing.T, err error) {
				var parseErr *cssErrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "theme.yaml", parseErr.Path)
			},
		},
		{
			name:   "broken toml reports row",
			doc:    "dark_mode = \n",
			format: FormatTOML,
			assert: func(t *testing.T, err error) {
				var parseErr *cssErrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:   "invalid dark mode",
			doc:    "dark_mode: sometimes\n",
			format: FormatYAML,
			assert: func(t *testing.T, err error) {
				var validationErr *cssErrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "file.darkmode", validationErr.Field)
			},
		},
		{
			name:   "invalid dark class",
			doc:    "dark_class: \"not a class\"\n",
			format: FormatYAML,
			assert: func(t *testing.T, err error) {
				var validationErr *cssErrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
		{
			name:   "list scale values are rejected",
			doc:    "theme:\n  colors:\n    red: [1, 2]\n",
			format: FormatYAML,
			assert: func(t *testing.T, err error) {
				var validationErr *cssErrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme.colors", validationErr.Field)
			},
		},
		{
			name:   "unknown format",
			doc:    "{}",
			format: Format("json"),
			assert: func(t *testing.T, err error) {
				var parseErr *cssErrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			name := "theme.yaml"
			if tc.format == FormatTOML {
				name = "theme.toml"
			}
			th, err := Parse(name, []byte(tc.doc), tc.format)
			require.Error(t, err)
			require.Nil(t, th)
			tc.assert(t, err)
		})
	}
}

func TestLoadFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  colors:\n    brand: \"#123\"\n"), 0o644))

	th, err := Load(path)
	require.NoError(t, err)
	v, ok := th.Theme("colors", "brand")
	require.True(t, ok)
	require.Equal(t, "#123", v)

	_, err = Load(filepath.Join(dir, "theme.json"))
	var parseErr *cssErrors.ParseError
	require.ErrorAs(t, err, &parseErr)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMergeDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := Default()
	merged := base.Merge(New(map[string]map[string]string{"colors": {"white": "#fefefe"}}, nil))

	v, _ := merged.Theme("colors", "white")
	require.Equal(t, "#fefefe", v)
	v, _ = base.Theme("colors", "white")
	require.Equal(t, "#fff", v)

	require.Contains(t, merged.Scales(), "colors")
	require.Contains(t, merged.Keys("breakpoints"), "2xl")
}
