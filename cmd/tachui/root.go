package main

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

type rootFlags struct {
	themeFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tachui",
		Short:         "tachui manages theme configuration for the responsive styling system",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.themeFile, "theme", "theme.toml", "Path to theme.toml")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newVetCmd(flags))
	cmd.AddCommand(newBreakpointsCmd(flags))

	return cmd
}
