package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tachui/tachui/theme"
)

func newVetCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate a theme.toml file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := theme.LoadConfig(root.themeFile)
			if err != nil {
				return err
			}

			bp, err := cfg.BreakpointConfig()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d breakpoint overrides, %d colors)\n",
				root.themeFile, len(bp), len(cfg.Theme.Colors))
			return nil
		},
	}
}
