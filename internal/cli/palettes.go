package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/chromastudio/internal/palette"
	"github.com/emiliopalmerini/chromastudio/internal/pkg/tui/theme"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the built-in palettes",
	Long: `List every theme and mood combination with its five colors.

Examples:
  chromastudio palettes
  chromastudio palettes --json
  chromastudio palettes --format css`,
	Args: cobra.NoArgs,
	RunE: runPalettes,
}

var (
	palettesJSON   bool
	palettesFormat string
)

func init() {
	rootCmd.AddCommand(palettesCmd)
	palettesCmd.Flags().BoolVar(&palettesJSON, "json", false, "Print the catalog as JSON")
	palettesCmd.Flags().StringVarP(&palettesFormat, "format", "f", formatText, "Output format: text, hex or css")
}

func runPalettes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s := theme.Default()

	format, err := parseOutputFormat(palettesFormat, palettesJSON)
	if err != nil {
		return err
	}

	catalog := make(map[string][]palette.Swatch)
	for i, k := range palette.Keys() {
		swatches, err := palette.Generate(k.Theme, k.Mood)
		if err != nil {
			return err
		}
		if palettesJSON {
			catalog[k.String()] = swatches
			continue
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		if format != "" {
			export, err := palette.Export(palette.Colors(swatches), format)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, exportHeading(format, k))
			fmt.Fprintln(out, export)
			continue
		}
		fmt.Fprintln(out, s.Title.Render(k.Theme.Label()+" / "+k.Mood.Label()))
		renderSwatches(out, swatches)
	}

	if palettesJSON {
		return writeJSON(out, catalog)
	}
	return nil
}

// exportHeading labels one palette in a multi-palette export using the
// format's own comment syntax.
func exportHeading(f palette.Format, k palette.Key) string {
	if f == palette.FormatCSS {
		return "/* " + k.String() + " */"
	}
	return "# " + k.String()
}
