// Package main provides the entry point for the duochart CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for duochart.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duochart",
		Short: "Side-by-side bubble charts from a two-metric CSV",
		Long: `duochart renders a small tabular dataset (category, metric1, metric2)
as two side-by-side bubble charts: one circle-packed chart per metric,
with circle area proportional to value.

Charts export to SVG or PNG, datasets persist as named profiles, and an
insights report summarizes deltas and shares between the two metrics.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewProfileCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
