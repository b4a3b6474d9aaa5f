package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check <color>...",
	Short: "Check WCAG contrast between colors",
	Long: `Score every pair of the given colors against WCAG AA (4.5:1) and AAA (7:1).

Colors are given as name=hex or as a bare hex value, which doubles as its name.

Examples:
  chromastudio check "#1e3a8a" "#f8fafc"
  chromastudio check Ink=#111827 Paper=#ffffff Accent=#3b82f6
  chromastudio check --json "#000000" "#808080"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var checkJSON bool

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the report as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	colors, err := parseColorArgs(args)
	if err != nil {
		return err
	}

	app, err := NewAppContext(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	report := app.Checker.Check(cmd.Context(), "cli", colors)

	out := cmd.OutOrStdout()
	if checkJSON {
		return writeJSON(out, report)
	}
	renderReport(out, report, len(colors))
	return nil
}

// parseColorArgs turns name=hex or hex arguments into normalized colors.
func parseColorArgs(args []string) ([]domain.Color, error) {
	colors := make([]domain.Color, 0, len(args))
	for _, arg := range args {
		name, hex, named := strings.Cut(arg, "=")
		if !named {
			hex = arg
		}
		name = strings.TrimSpace(name)

		normalized, err := domain.NormalizeHex(hex)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", arg, err)
		}
		if !named {
			name = normalized
		}
		if name == "" {
			return nil, fmt.Errorf("color %q: name is empty", arg)
		}

		colors = append(colors, domain.Color{Name: name, Hex: normalized}.Normalized())
	}
	return colors, nil
}
