package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tatlam/internal/app"
)

// ExportCmd returns the export command: all matching scenarios into one
// JSON document.
func ExportCmd() *cobra.Command {
	var (
		category string
		bundleID string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export scenarios to a single JSON file",
		Long: `Export fetches scenarios from the store, normalizes every record and
writes the whole collection as one indented UTF-8 JSON array. Hebrew
text is written as-is, not escaped.

Examples:
  tatlam export --out scenarios.json
  tatlam export --category "פח"ע" --out pahe.json
  tatlam export --bundle_id B-2024-07 --out bundle.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			count, err := c.Export.Export(cmd.Context(), app.ExportOptions{
				Category: category,
				BundleID: bundleID,
				OutPath:  out,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s נכתבו %d רשומות ל-%s\n", color.GreenString("✔"), count, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&bundleID, "bundle_id", "", "filter by bundle ID")
	cmd.Flags().StringVar(&out, "out", "", "output file path (required)")
	cmd.MarkFlagRequired("out")

	return cmd
}
