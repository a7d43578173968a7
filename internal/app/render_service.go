package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/example/tatlam/internal/core/scenario"
	"github.com/example/tatlam/internal/ports/secondary"
	"github.com/example/tatlam/internal/render"
)

// RenderService implements the render pipeline: fetch, coerce, slug,
// resolve a collision-free path, render the card template, write.
type RenderService struct {
	repo   secondary.ScenarioRepository
	logger *zap.Logger
}

// NewRenderService creates a render service over the given repository.
func NewRenderService(repo secondary.ScenarioRepository, logger *zap.Logger) *RenderService {
	return &RenderService{repo: repo, logger: logger}
}

// RenderOptions controls one render run.
type RenderOptions struct {
	Category          string
	BundleID          string
	Limit             int
	OutDir            string
	TemplatePath      string
	SubdirsByCategory bool
	PrefixID          bool
}

// Render writes one card file per matching scenario under opts.OutDir
// and returns the number of files written. The template is loaded
// before any record is fetched: a bad template path fails the whole run
// up front. Filesystem errors abort the run; files already written for
// prior records are kept.
func (s *RenderService) Render(ctx context.Context, opts RenderOptions) (int, error) {
	tpl, err := render.LoadTemplate(opts.TemplatePath)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	records, err := s.repo.List(ctx, secondary.ScenarioFilters{
		Category: opts.Category,
		BundleID: opts.BundleID,
		Limit:    opts.Limit,
	})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, record := range records {
		coerced := scenario.Coerce(record)

		name := render.Slug(coerced.Title) + ".md"
		if opts.PrefixID {
			name = fmt.Sprintf("%d_%s", coerced.ID, name)
		}

		targetDir := opts.OutDir
		if opts.SubdirsByCategory {
			targetDir = filepath.Join(opts.OutDir, render.Slug(coerced.Category))
			if err := os.MkdirAll(targetDir, 0755); err != nil {
				return count, fmt.Errorf("failed to create category directory: %w", err)
			}
		}

		path := render.UniquePath(targetDir, name)

		doc, err := render.Card(tpl, coerced)
		if err != nil {
			return count, err
		}

		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			return count, fmt.Errorf("failed to write card: %w", err)
		}

		s.logger.Debug("wrote scenario card",
			zap.Int64("id", coerced.ID),
			zap.String("path", path))
		count++
	}

	s.logger.Info("rendered scenario cards",
		zap.Int("count", count),
		zap.String("out", opts.OutDir))

	return count, nil
}
