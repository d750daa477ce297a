package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: theme.yaml:12: unexpected token", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("dark_mode", "must be one of media class selector dual", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "dark_mode", validationErr.Field)
	require.Contains(t, err.Error(), "dark_mode")
}

func TestPluginErrorIncludesPluginAndClass(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad value")
	err := NewPluginError("bg", PhaseHandle, underlying)

	var pluginErr *PluginError
	require.ErrorAs(t, err, &pluginErr)
	require.Equal(t, "bg", pluginErr.Plugin)
	require.True(t, stdErrors.Is(err, underlying))

	withClass := pluginErr.WithClass("hover:bg-red")
	require.Equal(t, `plugin error [bg] during handle of "hover:bg-red": bad value`, withClass.Error())
	require.Empty(t, pluginErr.Class, "WithClass must not mutate the receiver")
}

func TestPanicErrorUnwrapsErrorValues(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("boom")
	err := &PanicError{Value: underlying}
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "panic: boom", err.Error())

	require.Equal(t, "panic: 42", (&PanicError{Value: 42}).Error())
}
