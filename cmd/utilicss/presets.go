package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/utilicss/internal/presets/core"
	"github.com/alexisbeaulieu97/utilicss/internal/registry"
)

type presetsOptions struct {
	names bool
}

func newPresetsCmd(root *rootFlags) *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets and what they register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.names, "names", false, "List utility and modifier names")

	return cmd
}

func runPresets(cmd *cobra.Command, opts *presetsOptions) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PRESET\tUTILITIES\tMODIFIERS")

	type listing struct {
		name      string
		utilities []string
		modifiers []string
	}
	var listings []listing

	for _, p := range core.Presets() {
		reg := registry.New(&registry.Config{Policy: registry.PolicyStrict}, nil)
		if err := reg.Load(p); err != nil {
			return newCommandError("list presets", "loading "+p.Name(), err, "This is a bug in the preset; please report it.")
		}

		l := listing{name: p.Name()}
		for _, u := range reg.Utilities() {
			l.utilities = append(l.utilities, u.Name)
		}
		for _, m := range reg.Modifiers() {
			l.modifiers = append(l.modifiers, m.Name)
		}
		listings = append(listings, l)
		fmt.Fprintf(writer, "%s\t%d\t%d\n", l.name, len(l.utilities), len(l.modifiers))
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	if !opts.names {
		return nil
	}
	out := cmd.OutOrStdout()
	for _, l := range listings {
		fmt.Fprintf(out, "\n%s\n", l.name)
		if len(l.utilities) > 0 {
			fmt.Fprintf(out, "  utilities: %s\n", strings.Join(l.utilities, " "))
		}
		if len(l.modifiers) > 0 {
			fmt.Fprintf(out, "  modifiers: %s\n", strings.Join(l.modifiers, " "))
		}
	}
	return nil
}
