package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/utilicss/internal/cache"
	"github.com/alexisbeaulieu97/utilicss/internal/engine"
	"github.com/alexisbeaulieu97/utilicss/internal/logger"
	"github.com/alexisbeaulieu97/utilicss/internal/presets/core"
	"github.com/alexisbeaulieu97/utilicss/internal/registry"
	"github.com/alexisbeaulieu97/utilicss/internal/theme"
)

// appContext bundles the services a command needs.
type appContext struct {
	Logger   *logger.Logger
	Theme    *theme.Theme
	Registry *registry.Registry
	Engine   *engine.Engine
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: isTerminal(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	th := theme.Default()
	if flags.themePath != "" {
		th, err = theme.Load(flags.themePath)
		if err != nil {
			return nil, newCommandError("load theme", flags.themePath, err, "Check the file extension and that the document matches the theme schema.")
		}
		log.WithField("path", flags.themePath).Debug("theme loaded")
	}

	policy := registry.PolicyGraceful
	if flags.strict {
		policy = registry.PolicyStrict
	}
	reg := registry.New(&registry.Config{Policy: policy}, log)
	if err := reg.Load(core.Presets()...); err != nil {
		return nil, newCommandError("load presets", "registering built-in presets", err, "Re-run without --strict to skip faulting presets.")
	}

	eng := engine.New(reg, th,
		engine.WithLogger(log),
		engine.WithCache(cache.New(cache.DefaultExpiration, cache.DefaultCleanup)),
		engine.WithConcurrency(flags.concurrency),
	)

	return &appContext{Logger: log, Theme: th, Registry: reg, Engine: eng}, nil
}

// readClasses returns args when present, otherwise whitespace separated
// classes from in.
func readClasses(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		var classes []string
		for _, arg := range args {
			classes = append(classes, strings.Fields(arg)...)
		}
		return classes, nil
	}
	if in == nil {
		return nil, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read classes: %w", err)
	}
	return strings.Fields(string(data)), nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
