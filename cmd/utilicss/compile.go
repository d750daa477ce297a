package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/utilicss/internal/engine"
	"github.com/alexisbeaulieu97/utilicss/internal/printer"
	"github.com/alexisbeaulieu97/utilicss/pkg/diff"
)

type compileOptions struct {
	output string
	check  string
	indent string
}

func newCompileCmd(root *rootFlags) *cobra.Command {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile [classes...]",
		Short: "Compile utility classes into a stylesheet",
		Long: `Compile resolves every class and prints the resulting CSS. Classes are
taken from the arguments or, when none are given, read from stdin.

With --check the stylesheet is compared against an existing file instead of
being written; a difference prints a diff and exits non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the stylesheet to a file instead of stdout")
	cmd.Flags().StringVar(&opts.check, "check", "", "Compare against an existing stylesheet and fail on drift")
	cmd.Flags().StringVar(&opts.indent, "indent", "  ", "Indentation used for nested blocks")
	cmd.MarkFlagsMutuallyExclusive("output", "check")

	return cmd
}

func runCompile(cmd *cobra.Command, root *rootFlags, opts *compileOptions, args []string) error {
	classes, err := readClasses(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	results, err := app.Engine.Generate(cmd.Context(), classes)
	if err != nil {
		return err
	}
	app.Logger.WithFields(map[string]any{"classes": len(classes), "rules": len(results)}).Debug("compiled stylesheet")

	css, err := renderStylesheet(results, opts.indent)
	if err != nil {
		return err
	}

	switch {
	case opts.check != "":
		existing, err := os.ReadFile(opts.check)
		if err != nil {
			return newCommandError("check stylesheet", "reading "+opts.check, err, "Generate it first with --output.")
		}
		if d := diff.GenerateUnifiedDiff(existing, css, opts.check, "generated"); d != "" {
			fmt.Fprint(cmd.OutOrStdout(), d)
			return fmt.Errorf("%s is out of date", opts.check)
		}
		return nil
	case opts.output != "":
		if err := os.WriteFile(opts.output, css, 0o644); err != nil {
			return newCommandError("write stylesheet", opts.output, err, "Check that the directory exists and is writable.")
		}
		return nil
	default:
		_, err := cmd.OutOrStdout().Write(css)
		return err
	}
}

func renderStylesheet(results []engine.Result, indent string) ([]byte, error) {
	p := &printer.Printer{Indent: indent}
	var buf bytes.Buffer
	for _, r := range results {
		if err := p.Render(&buf, r.Class, r.Forest); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
