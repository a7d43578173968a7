package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tatlam/internal/app"
)

// RenderCmd returns the render command: one Markdown card per scenario.
func RenderCmd() *cobra.Command {
	var (
		category     string
		bundle       string
		limit        int
		out          string
		templatePath string
		subdirs      bool
		prefixID     bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render scenarios to Markdown cards, one file per record",
		Long: `Render fetches scenarios from the store and writes one card file per
record into the output directory. Filenames are derived from the title
(Hebrew preserved) and made unique with -1, -2, … suffixes on
collision.

Examples:
  tatlam render --out cards/
  tatlam render --category "גניבה" --out cards/ --prefix-id
  tatlam render --bundle B-2024-07 --limit 10 --out cards/ --subdirs-by-category
  tatlam render --template my_card.md.tmpl --out cards/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			if templatePath == "" {
				templatePath = c.Config.TemplatePath
			}

			count, err := c.Render.Render(cmd.Context(), app.RenderOptions{
				Category:          category,
				BundleID:          bundle,
				Limit:             limit,
				OutDir:            out,
				TemplatePath:      templatePath,
				SubdirsByCategory: subdirs,
				PrefixID:          prefixID,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s נוצרו %d קבצי Markdown בתיקייה %s\n", color.GreenString("✔"), count, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&bundle, "bundle", "", "filter by bundle ID")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of cards to produce (0 = all)")
	cmd.Flags().StringVar(&out, "out", "", "output directory (required)")
	cmd.Flags().StringVar(&templatePath, "template", "", "card template path (default: built-in template)")
	cmd.Flags().BoolVar(&subdirs, "subdirs-by-category", false, "write cards into per-category subdirectories")
	cmd.Flags().BoolVar(&prefixID, "prefix-id", false, "prefix filenames with the record ID")
	cmd.MarkFlagRequired("out")

	return cmd
}
