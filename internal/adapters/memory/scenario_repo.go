// Package memory provides an in-memory scenario repository. It backs
// tests and tooling that need the repository port without a database.
package memory

import (
	"context"
	"sync"

	"github.com/example/tatlam/internal/ports/secondary"
)

// ScenarioRepository implements secondary.ScenarioRepository in memory.
type ScenarioRepository struct {
	mu      sync.Mutex
	nextID  int64
	records []*secondary.ScenarioRecord
}

// NewScenarioRepository creates an empty in-memory scenario repository.
func NewScenarioRepository() *ScenarioRepository {
	return &ScenarioRepository{nextID: 1}
}

// List returns scenarios newest-first with the same filter semantics as
// the sqlite adapter.
func (r *ScenarioRepository) List(_ context.Context, filters secondary.ScenarioFilters) ([]*secondary.ScenarioRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*secondary.ScenarioRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if filters.Category != "" && rec.Category != filters.Category {
			continue
		}
		if filters.BundleID != "" && rec.BundleID != filters.BundleID {
			continue
		}
		copied := *rec
		out = append(out, &copied)
		if filters.Limit > 0 && len(out) == filters.Limit {
			break
		}
	}
	return out, nil
}

// Insert stores the scenario and assigns the next ID.
func (r *ScenarioRepository) Insert(_ context.Context, scenario *secondary.ScenarioRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	scenario.ID = r.nextID
	r.nextID++
	copied := *scenario
	r.records = append(r.records, &copied)
	return nil
}

// Ensure ScenarioRepository implements the interface
var _ secondary.ScenarioRepository = (*ScenarioRepository)(nil)
