package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/task-manager-api/internal/api"
	apiMiddleware "github.com/phrazzld/task-manager-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.RequestLogger(app.logger))
	r.Use(apiMiddleware.Metrics(app.metrics))

	// Create API handlers from the application's dependencies
	taskHandler := api.NewTaskHandler(app.taskStore, app.tracing.Tracer(), app.logger)
	systemHandler := api.NewSystemHandler(app.tracing.Tracer(), app.logger)

	// Register routes
	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.Health)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	return r
}
