// Package app implements the pipeline services: the export pipeline
// that writes one consolidated JSON document and the render pipeline
// that writes one card file per scenario.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/example/tatlam/internal/core/scenario"
	"github.com/example/tatlam/internal/ports/secondary"
)

// ExportService implements the export pipeline: fetch, coerce,
// serialize the whole collection as one indented JSON array.
type ExportService struct {
	repo   secondary.ScenarioRepository
	logger *zap.Logger
}

// NewExportService creates an export service over the given repository.
func NewExportService(repo secondary.ScenarioRepository, logger *zap.Logger) *ExportService {
	return &ExportService{repo: repo, logger: logger}
}

// ExportOptions controls one export run.
type ExportOptions struct {
	Category string
	BundleID string
	OutPath  string
}

// Export writes all matching scenarios to opts.OutPath as one UTF-8
// JSON array (non-ASCII left unescaped, two-space indent), overwriting
// any existing file. Returns the number of exported records. An empty
// result set writes an empty array and succeeds.
func (s *ExportService) Export(ctx context.Context, opts ExportOptions) (int, error) {
	records, err := s.repo.List(ctx, secondary.ScenarioFilters{
		Category: opts.Category,
		BundleID: opts.BundleID,
	})
	if err != nil {
		return 0, err
	}

	coerced := make([]scenario.Scenario, 0, len(records))
	for _, record := range records {
		coerced = append(coerced, scenario.Coerce(record))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(coerced); err != nil {
		return 0, fmt.Errorf("failed to encode scenarios: %w", err)
	}

	if err := os.WriteFile(opts.OutPath, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("failed to write export file: %w", err)
	}

	s.logger.Info("exported scenarios",
		zap.Int("count", len(coerced)),
		zap.String("out", opts.OutPath))

	return len(coerced), nil
}
