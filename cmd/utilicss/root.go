package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose     bool
	themePath   string
	strict      bool
	concurrency int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "utilicss",
		Short:         "Utilicss compiles utility classes into CSS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.themePath, "theme", "t", "", "Theme file (.yaml, .yml or .toml) layered over the defaults")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "Fail when a preset faults instead of skipping it")
	cmd.PersistentFlags().IntVar(&flags.concurrency, "concurrency", 0, "Classes compiled in parallel (0 uses GOMAXPROCS)")

	cmd.AddCommand(newCompileCmd(flags))
	cmd.AddCommand(newTreeCmd(flags))
	cmd.AddCommand(newPresetsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
