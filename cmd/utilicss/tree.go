package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/utilicss/internal/printer"
	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

type treeOptions struct {
	raw     bool
	noColor bool
}

func newTreeCmd(root *rootFlags) *cobra.Command {
	opts := &treeOptions{}

	cmd := &cobra.Command{
		Use:   "tree [classes...]",
		Short: "Show the style tree each class compiles to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, root, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Show the tree before optimization")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runTree(cmd *cobra.Command, root *rootFlags, opts *treeOptions, args []string) error {
	classes, err := readClasses(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	ts := printer.PlainTreeStyle()
	if !opts.noColor && isTerminal(cmd.OutOrStdout()) {
		ts = printer.DefaultTreeStyle()
	}

	type entry struct {
		class string
		nodes []style.Node
	}
	var entries []entry
	if opts.raw {
		compiled, err := app.Engine.CompileAll(cmd.Context(), classes)
		if err != nil {
			return err
		}
		for _, c := range compiled {
			entries = append(entries, entry{c.Class, c.Nodes})
		}
	} else {
		results, err := app.Engine.Generate(cmd.Context(), classes)
		if err != nil {
			return err
		}
		for _, r := range results {
			entries = append(entries, entry{r.Class, r.Forest})
		}
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintln(out, e.class)
		if len(e.nodes) == 0 {
			fmt.Fprintln(out, "└── (no styles)")
			continue
		}
		if err := printer.Tree(out, e.nodes, ts); err != nil {
			return err
		}
	}
	return nil
}
