// Package wire assembles the application object graph. The entry point
// builds one Container from explicit config and logger values; nothing
// here is global state.
package wire

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/tatlam/internal/adapters/sqlite"
	"github.com/example/tatlam/internal/app"
	"github.com/example/tatlam/internal/config"
	"github.com/example/tatlam/internal/db"
	"github.com/example/tatlam/internal/ports/secondary"
)

// Container holds the wired services for one process.
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	DB        *sql.DB
	Scenarios secondary.ScenarioRepository
	Export    *app.ExportService
	Render    *app.RenderService
}

// New opens the store, ensures the schema and wires the services.
// Configuration errors (unreachable store, invalid table identifier)
// surface here, before any pipeline runs.
func New(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := db.InitSchema(database, cfg.TableName); err != nil {
		database.Close()
		return nil, err
	}

	repo, err := sqlite.NewScenarioRepository(database, cfg.TableName)
	if err != nil {
		database.Close()
		return nil, err
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        database,
		Scenarios: repo,
		Export:    app.NewExportService(repo, logger),
		Render:    app.NewRenderService(repo, logger),
	}, nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
