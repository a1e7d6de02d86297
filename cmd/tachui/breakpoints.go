package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tachui/tachui/breakpoint"
	"github.com/tachui/tachui/theme"
)

func newBreakpointsCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "breakpoints",
		Short: "Print the resolved breakpoint table",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := breakpoint.NewRegistry(nil)
			defer registry.Close()

			if _, err := os.Stat(root.themeFile); err == nil {
				cfg, err := theme.LoadConfig(root.themeFile)
				if err != nil {
					return err
				}
				bp, err := cfg.BreakpointConfig()
				if err != nil {
					return err
				}
				if len(bp) > 0 {
					if err := registry.Configure(bp); err != nil {
						return err
					}
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tTHRESHOLD\tPIXELS\tMEDIA QUERY")
			config := registry.Config()
			for _, k := range breakpoint.Keys() {
				query := registry.MediaQuery(k)
				if query == "" {
					query = "(none, mobile-first base)"
				}
				fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\n", k, config[k], registry.Pixels(k), query)
			}
			return w.Flush()
		},
	}
}
