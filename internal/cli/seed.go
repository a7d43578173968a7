package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tatlam/internal/ports/secondary"
)

// seedScenario is the JSON input shape accepted by the seed command.
// List fields may be proper arrays or pre-encoded strings; both survive
// the round trip through the store.
type seedScenario struct {
	BundleID   string `json:"bundle_id"`
	ExternalID string `json:"external_id"`

	Title    string `json:"title"`
	Category string `json:"category"`

	ThreatLevel string `json:"threat_level"`
	Likelihood  string `json:"likelihood"`
	Complexity  string `json:"complexity"`

	Location              string `json:"location"`
	Background            string `json:"background"`
	OperationalBackground string `json:"operational_background"`

	Steps                any `json:"steps"`
	RequiredResponse     any `json:"required_response"`
	DebriefPoints        any `json:"debrief_points"`
	Comms                any `json:"comms"`
	DecisionPoints       any `json:"decision_points"`
	EscalationConditions any `json:"escalation_conditions"`
	LessonsLearned       any `json:"lessons_learned"`
	Variations           any `json:"variations"`
	Validation           any `json:"validation"`

	MediaLink      string `json:"media_link"`
	MaskUsage      string `json:"mask_usage"`
	CCTVUsage      string `json:"cctv_usage"`
	AuthorityNotes string `json:"authority_notes"`

	EndStateSuccess string `json:"end_state_success"`
	EndStateFailure string `json:"end_state_failure"`

	Owner      string `json:"owner"`
	ApprovedBy string `json:"approved_by"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// SeedCmd returns the seed command: bulk-insert scenarios from a JSON
// file through the repository port.
func SeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert scenarios from a JSON file into the store",
		Long: `Seed reads a JSON array of scenario objects and inserts each record.
Useful for loading fixtures or migrating an export back into a fresh
store.

Example:
  tatlam seed --file scenarios.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read seed file: %w", err)
			}

			var seeds []seedScenario
			if err := json.Unmarshal(data, &seeds); err != nil {
				return fmt.Errorf("failed to parse seed file: %w", err)
			}

			c, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			for i := range seeds {
				record := seeds[i].toRecord()
				if err := c.Scenarios.Insert(cmd.Context(), record); err != nil {
					return fmt.Errorf("failed to seed scenario %q: %w", record.Title, err)
				}
			}

			fmt.Printf("%s Seeded %d scenarios\n", color.GreenString("✓"), len(seeds))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with an array of scenarios (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func (s seedScenario) toRecord() *secondary.ScenarioRecord {
	return &secondary.ScenarioRecord{
		BundleID:              s.BundleID,
		ExternalID:            s.ExternalID,
		Title:                 s.Title,
		Category:              s.Category,
		ThreatLevel:           s.ThreatLevel,
		Likelihood:            s.Likelihood,
		Complexity:            s.Complexity,
		Location:              s.Location,
		Background:            s.Background,
		OperationalBackground: s.OperationalBackground,
		Steps:                 s.Steps,
		RequiredResponse:      s.RequiredResponse,
		DebriefPoints:         s.DebriefPoints,
		Comms:                 s.Comms,
		DecisionPoints:        s.DecisionPoints,
		EscalationConditions:  s.EscalationConditions,
		LessonsLearned:        s.LessonsLearned,
		Variations:            s.Variations,
		Validation:            s.Validation,
		MediaLink:             s.MediaLink,
		MaskUsage:             s.MaskUsage,
		CCTVUsage:             s.CCTVUsage,
		AuthorityNotes:        s.AuthorityNotes,
		EndStateSuccess:       s.EndStateSuccess,
		EndStateFailure:       s.EndStateFailure,
		Owner:                 s.Owner,
		ApprovedBy:            s.ApprovedBy,
		Status:                s.Status,
		CreatedAt:             s.CreatedAt,
	}
}
