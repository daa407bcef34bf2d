package api

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/phrazzld/task-manager-api/internal/api/shared"
	"github.com/phrazzld/task-manager-api/internal/platform/logger"
	"github.com/phrazzld/task-manager-api/internal/platform/tracing"
)

// SystemHandler serves the informational root endpoint and the health check.
type SystemHandler struct {
	tracer trace.Tracer
	logger *slog.Logger
	now    func() time.Time
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(tracer trace.Tracer, log *slog.Logger) *SystemHandler {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	if log == nil {
		log = slog.Default()
	}

	return &SystemHandler{
		tracer: tracer,
		logger: log.With(slog.String("component", "system_handler")),
		now:    time.Now,
	}
}

// Root handles GET / requests. Informational only.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("root endpoint accessed")

	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message: "Welcome to Task Manager API",
		Docs:    "/docs",
		Health:  "/health",
		Metrics: "/metrics",
	})
}

// Health handles GET /health requests, used by liveness probes.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "health.check")
	defer span.End()
	r = r.WithContext(ctx)

	log := logger.FromContextOrDefault(ctx, h.logger)
	log.Info("health check performed")

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Service:   tracing.ServiceName,
	})
}
