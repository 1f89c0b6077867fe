package app

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"protmotif/internal/api"
	"protmotif/internal/client"
	"protmotif/internal/motif"
	analysissvc "protmotif/internal/services/analysis"
	proteinsvc "protmotif/internal/services/protein"
	"protmotif/internal/store"
)

// Wire bundles all stores and services for the server and the CLI.
type Wire struct {
	DB        *gorm.DB
	Proteins  *store.ProteinDBStore
	Users     *store.UserDBStore
	Snapshots *store.SnapshotFileStore

	// Analysis serves ad-hoc requests under limits.max-protein-length.
	Analysis *analysissvc.Service
	// Protein stores submissions under limits.submit-max-length.
	Protein *proteinsvc.Service

	Config Config
	Logger *log.Logger
}

// NewWire opens the database and constructs the dependency graph from cfg.
func NewWire(cfg Config, logger *log.Logger) (*Wire, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("database ready", "driver", cfg.Database.Driver)

	proteins := store.NewProteinDBStore(db)
	snapshots := store.NewSnapshotFileStore(cfg.DataDir)
	scanner := motif.NewScanner(nil)

	return &Wire{
		DB:        db,
		Proteins:  proteins,
		Users:     store.NewUserDBStore(db),
		Snapshots: snapshots,
		Analysis:  analysissvc.New(cfg.Limits.MaxProteinLength, scanner),
		Protein: proteinsvc.New(
			proteins,
			snapshots,
			analysissvc.New(cfg.Limits.SubmitMaxLength, scanner),
		),
		Config: cfg,
		Logger: logger,
	}, nil
}

// Server returns the HTTP API backed by this wiring.
func (w *Wire) Server() *api.Server {
	return api.New(api.Config{
		Proteins:  w.Protein,
		Analyzer:  w.Analysis,
		Users:     w.Users,
		Ping:      w.Proteins.Ping,
		ExportDir: w.Snapshots.Dir(),
		Logger:    w.Logger,
	})
}

// Ping checks the database connection.
func (w *Wire) Ping(ctx context.Context) error { return w.Proteins.Ping(ctx) }

// Close releases the database connection.
func (w *Wire) Close() error {
	sqlDB, err := w.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Remote returns an API client for the configured server and user.
func Remote(cfg ClientConfig) *client.HTTP {
	return client.NewHTTP(cfg.Server, cfg.User)
}
