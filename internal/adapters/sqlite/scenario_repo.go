// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/tatlam/internal/db"
	"github.com/example/tatlam/internal/ports/secondary"
)

const scenarioColumns = "id, bundle_id, external_id, title, category, threat_level, likelihood, complexity, location, background, operational_background, steps, required_response, debrief_points, comms, decision_points, escalation_conditions, lessons_learned, variations, validation, media_link, mask_usage, cctv_usage, authority_notes, end_state_success, end_state_failure, owner, approved_by, status, rejection_reason, created_at"

// ScenarioRepository implements secondary.ScenarioRepository with SQLite.
type ScenarioRepository struct {
	db    *sql.DB
	table string
}

// NewScenarioRepository creates a new SQLite scenario repository. The
// table name comes from deployment configuration and is validated
// against the identifier allow-list; a mismatch is a fatal
// configuration error, not a data error.
func NewScenarioRepository(database *sql.DB, table string) (*ScenarioRepository, error) {
	tn, err := db.SafeIdent(table)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario table: %w", err)
	}
	return &ScenarioRepository{db: database, table: tn}, nil
}

// List retrieves scenarios newest-first. Category and BundleID filters
// combine with AND semantics; Limit <= 0 returns everything.
func (r *ScenarioRepository) List(ctx context.Context, filters secondary.ScenarioFilters) ([]*secondary.ScenarioRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE 1=1", scenarioColumns, r.table)
	args := []any{}

	if filters.Category != "" {
		query += " AND category = ?"
		args = append(args, filters.Category)
	}

	if filters.BundleID != "" {
		query += " AND bundle_id = ?"
		args = append(args, filters.BundleID)
	}

	query += " ORDER BY id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []*secondary.ScenarioRecord
	for rows.Next() {
		record, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}

	return scenarios, nil
}

// Insert persists a new scenario and fills in its assigned ID. List
// fields are stored as JSON-encoded TEXT; raw string values are written
// through unchanged so pre-encoded (and malformed) payloads survive the
// round trip.
func (r *ScenarioRepository) Insert(ctx context.Context, scenario *secondary.ScenarioRecord) error {
	createdAt := scenario.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().Format(time.RFC3339)
	}

	owner := scenario.Owner
	if owner == "" {
		owner = "web"
	}

	status := scenario.Status
	if status == "" {
		status = "pending"
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (bundle_id, external_id, title, category, threat_level, likelihood, complexity, location, background, operational_background, steps, required_response, debrief_points, comms, decision_points, escalation_conditions, lessons_learned, variations, validation, media_link, mask_usage, cctv_usage, authority_notes, end_state_success, end_state_failure, owner, approved_by, status, rejection_reason, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		r.table,
	)

	result, err := r.db.ExecContext(ctx, query,
		scenario.BundleID,
		scenario.ExternalID,
		scenario.Title,
		scenario.Category,
		scenario.ThreatLevel,
		scenario.Likelihood,
		scenario.Complexity,
		scenario.Location,
		scenario.Background,
		scenario.OperationalBackground,
		encodeList(scenario.Steps),
		encodeList(scenario.RequiredResponse),
		encodeList(scenario.DebriefPoints),
		encodeList(scenario.Comms),
		encodeList(scenario.DecisionPoints),
		encodeList(scenario.EscalationConditions),
		encodeList(scenario.LessonsLearned),
		encodeList(scenario.Variations),
		encodeList(scenario.Validation),
		nullString(scenario.MediaLink),
		nullString(scenario.MaskUsage),
		scenario.CCTVUsage,
		scenario.AuthorityNotes,
		scenario.EndStateSuccess,
		scenario.EndStateFailure,
		owner,
		scenario.ApprovedBy,
		status,
		nullString(scenario.RejectionReason),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scenario: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read scenario id: %w", err)
	}
	scenario.ID = id
	scenario.CreatedAt = createdAt

	return nil
}

func scanScenario(rows *sql.Rows) (*secondary.ScenarioRecord, error) {
	var (
		bundleID, externalID                          sql.NullString
		title, category                               sql.NullString
		threatLevel, likelihood, complexity           sql.NullString
		location, background, operationalBackground   sql.NullString
		steps, requiredResponse, debriefPoints, comms sql.NullString
		decisionPoints, escalationConditions          sql.NullString
		lessonsLearned, variations, validation        sql.NullString
		mediaLink, maskUsage                          sql.NullString
		cctvUsage, authorityNotes                     sql.NullString
		endStateSuccess, endStateFailure              sql.NullString
		owner, approvedBy, status                     sql.NullString
		rejectionReason, createdAt                    sql.NullString
	)

	record := &secondary.ScenarioRecord{}
	err := rows.Scan(&record.ID, &bundleID, &externalID, &title, &category,
		&threatLevel, &likelihood, &complexity,
		&location, &background, &operationalBackground,
		&steps, &requiredResponse, &debriefPoints, &comms,
		&decisionPoints, &escalationConditions,
		&lessonsLearned, &variations, &validation,
		&mediaLink, &maskUsage, &cctvUsage, &authorityNotes,
		&endStateSuccess, &endStateFailure,
		&owner, &approvedBy, &status, &rejectionReason, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenario: %w", err)
	}

	record.BundleID = bundleID.String
	record.ExternalID = externalID.String
	record.Title = title.String
	record.Category = category.String
	record.ThreatLevel = threatLevel.String
	record.Likelihood = likelihood.String
	record.Complexity = complexity.String
	record.Location = location.String
	record.Background = background.String
	record.OperationalBackground = operationalBackground.String
	record.Steps = rawText(steps)
	record.RequiredResponse = rawText(requiredResponse)
	record.DebriefPoints = rawText(debriefPoints)
	record.Comms = rawText(comms)
	record.DecisionPoints = rawText(decisionPoints)
	record.EscalationConditions = rawText(escalationConditions)
	record.LessonsLearned = rawText(lessonsLearned)
	record.Variations = rawText(variations)
	record.Validation = rawText(validation)
	record.MediaLink = mediaLink.String
	record.MaskUsage = maskUsage.String
	record.CCTVUsage = cctvUsage.String
	record.AuthorityNotes = authorityNotes.String
	record.EndStateSuccess = endStateSuccess.String
	record.EndStateFailure = endStateFailure.String
	record.Owner = owner.String
	record.ApprovedBy = approvedBy.String
	record.Status = status.String
	record.RejectionReason = rejectionReason.String
	record.CreatedAt = createdAt.String

	return record, nil
}

// rawText keeps NULL list columns as nil so the normalizer can tell
// them apart from empty text.
func rawText(v sql.NullString) any {
	if !v.Valid {
		return nil
	}
	return v.String
}

// encodeList turns a list-field value into its stored TEXT form.
func encodeList(v any) string {
	switch val := v.(type) {
	case nil:
		return "[]"
	case string:
		return val
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return "[]"
		}
		return string(data)
	}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// Ensure ScenarioRepository implements the interface
var _ secondary.ScenarioRepository = (*ScenarioRepository)(nil)
