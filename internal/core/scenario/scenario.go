// Package scenario holds the coerced scenario type and the defensive
// normalization applied to raw store records before export or rendering.
package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MaskUsage is the canonical tri-state for the mask_usage field.
type MaskUsage string

const (
	MaskYes     MaskUsage = "yes"
	MaskNo      MaskUsage = "no"
	MaskUnknown MaskUsage = "unknown"
)

// Scenario is a fully coerced scenario record: every list field is a
// non-nil slice, MaskUsage is one of the three canonical states and
// MediaLink is nil when the stored value was blank.
type Scenario struct {
	ID         int64  `json:"id"`
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

	Steps                []any `json:"steps"`
	RequiredResponse     []any `json:"required_response"`
	DebriefPoints        []any `json:"debrief_points"`
	Comms                []any `json:"comms"`
	DecisionPoints       []any `json:"decision_points"`
	EscalationConditions []any `json:"escalation_conditions"`
	LessonsLearned       []any `json:"lessons_learned"`
	Variations           []any `json:"variations"`
	Validation           []any `json:"validation"`

	MediaLink      *string   `json:"media_link"`
	MaskUsage      MaskUsage `json:"mask_usage"`
	CCTVUsage      string    `json:"cctv_usage"`
	AuthorityNotes string    `json:"authority_notes"`

	EndStateSuccess string `json:"end_state_success"`
	EndStateFailure string `json:"end_state_failure"`

	Owner           string `json:"owner"`
	ApprovedBy      string `json:"approved_by"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
	CreatedAt       string `json:"created_at"`
}

// Context returns the scenario's fields as a map keyed by the stored
// column names, for use as top-level template variables.
func (s Scenario) Context() (map[string]any, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to build template context: %w", err)
	}

	var ctx map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ctx); err != nil {
		return nil, fmt.Errorf("failed to build template context: %w", err)
	}
	return ctx, nil
}
