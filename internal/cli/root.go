package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chromastudio",
	Short: "Color palette generator with WCAG contrast checks",
	Long: `chromastudio generates curated color palettes and scores how accessible
a selection of colors is against the WCAG 2.x contrast thresholds.

Run the web workspace, check arbitrary colors from the terminal, or browse
the built-in theme and mood palettes.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
