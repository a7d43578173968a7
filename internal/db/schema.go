package db

import (
	"database/sql"
	"fmt"
	"regexp"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SafeIdent validates a SQL identifier against the allow-list pattern
// before it is interpolated into a statement. A mismatch is a
// configuration error: identifiers come from deployment config, not
// from record data.
func SafeIdent(name string) (string, error) {
	if !identPattern.MatchString(name) {
		return "", fmt.Errorf("unsafe identifier %q", name)
	}
	return name, nil
}

// InitSchema creates the scenario table if it does not exist. List
// fields are stored as JSON-encoded TEXT.
func InitSchema(database *sql.DB, table string) error {
	tn, err := SafeIdent(table)
	if err != nil {
		return err
	}

	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		bundle_id TEXT NOT NULL DEFAULT '',
		external_id TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		threat_level TEXT NOT NULL DEFAULT '',
		likelihood TEXT NOT NULL DEFAULT '',
		complexity TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		background TEXT NOT NULL DEFAULT '',
		operational_background TEXT NOT NULL DEFAULT '',
		steps TEXT NOT NULL DEFAULT '[]',
		required_response TEXT NOT NULL DEFAULT '[]',
		debrief_points TEXT NOT NULL DEFAULT '[]',
		comms TEXT NOT NULL DEFAULT '[]',
		decision_points TEXT NOT NULL DEFAULT '[]',
		escalation_conditions TEXT NOT NULL DEFAULT '[]',
		lessons_learned TEXT NOT NULL DEFAULT '[]',
		variations TEXT NOT NULL DEFAULT '[]',
		validation TEXT NOT NULL DEFAULT '[]',
		media_link TEXT,
		mask_usage TEXT,
		cctv_usage TEXT NOT NULL DEFAULT '',
		authority_notes TEXT NOT NULL DEFAULT '',
		end_state_success TEXT NOT NULL DEFAULT '',
		end_state_failure TEXT NOT NULL DEFAULT '',
		owner TEXT NOT NULL DEFAULT 'web',
		approved_by TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		rejection_reason TEXT,
		created_at TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_%s_category ON %s(category);
	CREATE INDEX IF NOT EXISTS idx_%s_status ON %s(status);
	`, tn, tn, tn, tn, tn)

	if _, err := database.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
