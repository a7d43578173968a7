package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tatlam/internal/cli"
	"github.com/example/tatlam/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tatlam",
		Short:   "tatlam - export and render training scenarios",
		Version: version.String(),
		Long: `tatlam reads training-scenario records from the local store and turns
them into downstream artifacts: a consolidated JSON export or one
rendered Markdown card per scenario.`,
	}

	cli.RegisterGlobalFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.RenderCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
