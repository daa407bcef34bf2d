package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/task-manager-api/internal/config"
	"github.com/phrazzld/task-manager-api/internal/platform/memory"
	"github.com/phrazzld/task-manager-api/internal/platform/metrics"
	"github.com/phrazzld/task-manager-api/internal/platform/tracing"
	"github.com/phrazzld/task-manager-api/internal/store"
)

// application bundles the long-lived dependencies handlers are built from:
// configuration, logger, the task store, the span provider and the metrics
// registry.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	taskStore store.TaskStore
	tracing   *tracing.Provider
	metrics   *metrics.Registry
}

// newApplication wires the application's dependencies. The task store is
// process-wide in-memory state: it starts empty and everything in it is
// discarded when the process exits.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	provider, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    logger,
		taskStore: memory.NewTaskStore(logger),
		tracing:   provider,
		metrics:   metrics.NewRegistry(),
	}, nil
}

// cleanup releases application resources, flushing any buffered spans.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.tracing.Shutdown(ctx); err != nil {
		app.logger.Error("Tracing shutdown failed", "error", err)
	}
}
