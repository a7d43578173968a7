package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tatlam/internal/config"
	"github.com/example/tatlam/internal/db"
	"github.com/example/tatlam/internal/render"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate tatlam configuration and store health",
		Long: `Health check for the tatlam pipelines.

Validates:
- Config file and environment overrides
- Table identifier against the allow-list pattern
- Store reachability and scenario count
- Card template (configured path or built-in)

Examples:
  tatlam doctor           # Run full health check
  tatlam doctor --quiet   # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			if configDir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				configDir = cwd
			}

			results := []CheckResult{}

			cfg, err := config.Load(configDir)
			if err != nil {
				results = append(results, CheckResult{"config", "✗", err.Error()})
				cfg = config.Default()
			} else {
				results = append(results, CheckResult{"config", "✓", ""})
			}

			results = append(results, checkTable(cfg))
			results = append(results, checkStore(cfg))
			results = append(results, checkTemplate(cfg))

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
				}
				if quiet {
					continue
				}
				marker := color.GreenString(r.Status)
				switch r.Status {
				case "⚠":
					marker = color.YellowString(r.Status)
				case "✗":
					marker = color.RedString(r.Status)
				}
				fmt.Printf("%s %s\n", marker, r.Name)
				if r.Details != "" && r.Status != "✓" {
					fmt.Printf("  %s\n", r.Details)
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress output, exit code only")

	return cmd
}

func checkTable(cfg *config.Config) CheckResult {
	if _, err := db.SafeIdent(cfg.TableName); err != nil {
		return CheckResult{"table name", "✗", err.Error()}
	}
	return CheckResult{"table name", "✓", ""}
}

func checkStore(cfg *config.Config) CheckResult {
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		return CheckResult{"store", "⚠", fmt.Sprintf("no database at %s yet (created on first run)", cfg.DBPath)}
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return CheckResult{"store", "✗", err.Error()}
	}
	defer database.Close()

	tn, err := db.SafeIdent(cfg.TableName)
	if err != nil {
		return CheckResult{"store", "✗", err.Error()}
	}

	var count int
	if err := database.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", tn)).Scan(&count); err != nil {
		return CheckResult{"store", "⚠", fmt.Sprintf("table %s not initialized: %v", tn, err)}
	}

	return CheckResult{"store", "✓", fmt.Sprintf("%d scenarios", count)}
}

func checkTemplate(cfg *config.Config) CheckResult {
	if _, err := render.LoadTemplate(cfg.TemplatePath); err != nil {
		return CheckResult{"template", "✗", err.Error()}
	}
	if cfg.TemplatePath == "" {
		return CheckResult{"template", "✓", "built-in"}
	}
	return CheckResult{"template", "✓", ""}
}
