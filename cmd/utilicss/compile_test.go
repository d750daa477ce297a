package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCompileCommand_Arguments(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, nil, "compile", "hover:bg-red-500", "p-4", "p-4", "nope")
	require.NoError(t, err)

	want := `.p-4 {
  padding: 1rem;
}
.hover\:bg-red-500:hover {
  background-color: #f00;
}
`
	require.Equal(t, want, stdout)
}

func TestCompileCommand_Stdin(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, strings.NewReader("block\n  sm:hidden\t"), "compile", "--indent", "\t")
	require.NoError(t, err)

	want := ".block {\n\tdisplay: block;\n}\n@media (min-width: 640px) {\n\t.sm\\:hidden {\n\t\tdisplay: none;\n\t}\n}\n"
	require.Equal(t, want, stdout)
}

func TestCompileCommand_Theme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	themePath := filepath.Join(dir, "theme.yaml")
	doc := `
dark_mode: class
dark_class: night
theme:
  colors:
    brand: "#123456"
`
	require.NoError(t, os.WriteFile(themePath, []byte(doc), 0o644))

	stdout, _, err := executeCommand(t, nil, "--theme", themePath, "compile", "dark:bg-brand")
	require.NoError(t, err)
	require.Equal(t, ".night .dark\\:bg-brand {\n  background-color: #123456;\n}\n", stdout)
}

func TestCompileCommand_BadTheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	themePath := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("dark_mode: sometimes\n"), 0o644))

	_, _, err := executeCommand(t, nil, "--theme", themePath, "compile", "block")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load theme")
}

func TestCompileCommand_OutputAndCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cssPath := filepath.Join(dir, "site.css")

	_, _, err := executeCommand(t, nil, "compile", "-o", cssPath, "p-4")
	require.NoError(t, err)

	written, err := os.ReadFile(cssPath)
	require.NoError(t, err)
	require.Equal(t, ".p-4 {\n  padding: 1rem;\n}\n", string(written))

	stdout, _, err := executeCommand(t, nil, "compile", "--check", cssPath, "p-4")
	require.NoError(t, err)
	require.Empty(t, stdout)

	stdout, _, err = executeCommand(t, nil, "compile", "--check", cssPath, "p-8")
	require.EqualError(t, err, cssPath+" is out of date")
	require.Contains(t, stdout, "-.p-4 {")
	require.Contains(t, stdout, "+.p-8 {")
	require.Contains(t, stdout, "+  padding: 2rem;")
}

func TestCompileCommand_CheckMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, nil, "compile", "--check", filepath.Join(t.TempDir(), "missing.css"), "p-4")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTreeCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, nil, "tree", "sm:p-4")
	require.NoError(t, err)

	want := `sm:p-4
└── @media (min-width: 640px) [responsive]
    └── &
        └── padding: 1rem
`
	require.Equal(t, want, stdout)
}

func TestTreeCommand_Raw(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, nil, "tree", "--raw", "nope", "block")
	require.NoError(t, err)

	want := `nope
└── (no styles)
block
└── display: block
`
	require.Equal(t, want, stdout)
}

func TestPresetsCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, nil, "presets", "--names")
	require.NoError(t, err)
	require.Contains(t, stdout, "PRESET")
	require.Contains(t, stdout, "core/utilities")
	require.Contains(t, stdout, "core/modifiers")
	require.Contains(t, stdout, "utilities: block")
	require.Contains(t, stdout, "modifiers: hover")
}

func TestReadClasses(t *testing.T) {
	t.Parallel()

	classes, err := readClasses(strings.NewReader("ignored"), []string{"p-4 m-2", "block"})
	require.NoError(t, err)
	require.Equal(t, []string{"p-4", "m-2", "block"}, classes)

	classes, err = readClasses(strings.NewReader(" a\nb\t c "), nil)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, classes)
}
