// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// ScenarioRepository defines the secondary port for scenario persistence.
// The export and render pipelines only read; Insert exists for the
// authoring workflow and the seed tooling.
type ScenarioRepository interface {
	// List retrieves scenarios matching the given filters, newest first.
	List(ctx context.Context, filters ScenarioFilters) ([]*ScenarioRecord, error)

	// Insert persists a new scenario and assigns its ID.
	Insert(ctx context.Context, scenario *ScenarioRecord) error
}

// ScenarioRecord represents a scenario as stored in persistence.
// The nine list fields are typed any: the sqlite adapter fills them with
// the raw TEXT column value (or nil for NULL), while the in-memory
// adapter may hold already-structured []any values. Normalization of
// either shape happens at read time in the scenario package.
type ScenarioRecord struct {
	ID         int64
	BundleID   string
	ExternalID string

	Title    string
	Category string

	ThreatLevel string
	Likelihood  string
	Complexity  string

	Location              string
	Background            string
	OperationalBackground string

	Steps                any
	RequiredResponse     any
	DebriefPoints        any
	Comms                any
	DecisionPoints       any
	EscalationConditions any
	LessonsLearned       any
	Variations           any
	Validation           any

	MediaLink      string
	MaskUsage      string
	CCTVUsage      string
	AuthorityNotes string

	EndStateSuccess string
	EndStateFailure string

	Owner           string
	ApprovedBy      string
	Status          string
	RejectionReason string
	CreatedAt       string
}

// ScenarioFilters contains filter options for querying scenarios.
// Category and BundleID combine with AND semantics when both are set.
// Limit <= 0 means no limit.
type ScenarioFilters struct {
	Category string
	BundleID string
	Limit    int
}
