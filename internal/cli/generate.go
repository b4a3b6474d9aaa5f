package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
	"github.com/emiliopalmerini/chromastudio/internal/palette"
	"github.com/emiliopalmerini/chromastudio/internal/pkg/tui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a palette for a theme and mood",
	Long: `Print the palette for a theme and mood, optionally checking the
accessibility of all five colors together.

Themes: modern, warm, cool
Moods:  professional, creative, calm

Examples:
  chromastudio generate --theme warm --mood calm
  chromastudio generate --theme cool --mood creative --check
  chromastudio generate --json --check
  chromastudio generate --theme cool --mood calm --format css`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	generateTheme  string
	generateMood   string
	generateCheck  bool
	generateJSON   bool
	generateFormat string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateTheme, "theme", "t", string(palette.ThemeModern), "Design theme")
	generateCmd.Flags().StringVarP(&generateMood, "mood", "m", string(palette.MoodProfessional), "Mood")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "Also check the palette's accessibility")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print as JSON")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", formatText, "Output format: text, hex or css")
}

type generateOutput struct {
	Theme  string                      `json:"theme"`
	Mood   string                      `json:"mood"`
	Colors []palette.Swatch            `json:"colors"`
	Report *domain.AccessibilityReport `json:"report,omitempty"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	t, err := palette.ParseTheme(generateTheme)
	if err != nil {
		return fmt.Errorf("%w (expected one of: %s)", err, joinKeys(palette.Themes()))
	}
	m, err := palette.ParseMood(generateMood)
	if err != nil {
		return fmt.Errorf("%w (expected one of: %s)", err, joinKeys(palette.Moods()))
	}

	format, err := parseOutputFormat(generateFormat, generateJSON)
	if err != nil {
		return err
	}
	if format != "" && generateCheck {
		return fmt.Errorf("--format %s cannot be combined with --check", format)
	}

	swatches, err := palette.Generate(t, m)
	if err != nil {
		return err
	}
	if format != "" {
		export, err := palette.Export(palette.Colors(swatches), format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), export)
		return nil
	}

	result := generateOutput{Theme: string(t), Mood: string(m), Colors: swatches}
	if generateCheck {
		app, err := NewAppContext(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer app.Close()

		report := app.Checker.Check(cmd.Context(), "cli", palette.Colors(swatches))
		result.Report = &report
	}

	out := cmd.OutOrStdout()
	if generateJSON {
		return writeJSON(out, result)
	}

	fmt.Fprintln(out, theme.Default().Title.Render(t.Label()+" / "+m.Label()))
	renderSwatches(out, swatches)
	if result.Report != nil {
		fmt.Fprintln(out)
		renderReport(out, *result.Report, len(swatches))
	}
	return nil
}
