// Package api provides HTTP handlers for the API.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/phrazzld/task-manager-api/internal/api/shared"
	"github.com/phrazzld/task-manager-api/internal/platform/logger"
	"github.com/phrazzld/task-manager-api/internal/store"
)

// TaskHandler handles task-related HTTP requests. Each operation opens one
// span bracketing the store call; the span is ended on every exit path.
type TaskHandler struct {
	taskStore store.TaskStore
	tracer    trace.Tracer
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler. A nil tracer gets a no-op tracer
// and a nil logger falls back to the process default.
func NewTaskHandler(taskStore store.TaskStore, tracer trace.Tracer, log *slog.Logger) *TaskHandler {
	if taskStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskStore cannot be nil for TaskHandler")
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TaskHandler{
		taskStore: taskStore,
		tracer:    tracer,
		logger:    log.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tasks.list")
	defer span.End()
	r = r.WithContext(ctx)

	log := logger.FromContextOrDefault(ctx, h.logger)

	tasks := h.taskStore.List(ctx)
	span.SetAttributes(attribute.Int("tasks.count", len(tasks)))

	log.Info("retrieved tasks", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tasks.get")
	defer span.End()
	r = r.WithContext(ctx)

	log := logger.FromContextOrDefault(ctx, h.logger)

	id, ok := getPathTaskID(w, r, log)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int64("task.id", id))

	task, err := h.taskStore.GetByID(ctx, id)
	if err != nil {
		h.respondStoreError(w, r, span, log, err, id)
		return
	}

	log.Info("retrieved task", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// CreateTask handles POST /tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tasks.create")
	defer span.End()
	r = r.WithContext(ctx)

	log := logger.FromContextOrDefault(ctx, h.logger)

	payload, ok := decodeTaskPayload(w, r, log)
	if !ok {
		return
	}

	task, err := h.taskStore.Create(ctx, payload.Title, payload.Description, payload.Completed)
	if err != nil {
		h.respondStoreError(w, r, span, log, err, 0)
		return
	}
	span.SetAttributes(attribute.Int64("task.id", task.ID))

	log.Info("created task",
		slog.Int64("task_id", task.ID),
		slog.String("title", task.Title))
	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// UpdateTask handles PUT /tasks/{id} requests. The payload replaces the
// task's title, description and completed flag wholesale.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tasks.update")
	defer span.End()
	r = r.WithContext(ctx)

	log := logger.FromContextOrDefault(ctx, h.logger)

	id, ok := getPathTaskID(w, r, log)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int64("task.id", id))

	payload, ok := decodeTaskPayload(w, r, log)
	if !ok {
		return
	}

	task, err := h.taskStore.Update(ctx, id, payload.Title, payload.Description, payload.Completed)
	if err != nil {
		h.respondStoreError(w, r, span, log, err, id)
		return
	}

	log.Info("updated task", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tasks.delete")
	defer span.End()
	r = r.WithContext(ctx)

	log := logger.FromContextOrDefault(ctx, h.logger)

	id, ok := getPathTaskID(w, r, log)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int64("task.id", id))

	if err := h.taskStore.Delete(ctx, id); err != nil {
		h.respondStoreError(w, r, span, log, err, id)
		return
	}

	log.Info("deleted task", slog.Int64("task_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// respondStoreError translates a store error into the HTTP response.
// Not-found is an expected outcome: it is recorded as a span event rather
// than an error status, and logged at WARN for observability.
func (h *TaskHandler) respondStoreError(
	w http.ResponseWriter,
	r *http.Request,
	span trace.Span,
	log *slog.Logger,
	err error,
	id int64,
) {
	if store.IsNotFoundError(err) {
		span.AddEvent("task not found", trace.WithAttributes(attribute.Int64("task.id", id)))
		log.Warn("task not found", slog.Int64("task_id", id))
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("Task with id %d not found", id))
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	log.Error("store operation failed", slog.Any("error", err))
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), "An unexpected error occurred")
}

// getPathTaskID extracts the integer task id from the URL path. A value that
// does not parse as an integer is a validation failure, not a not-found.
func getPathTaskID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Warn("invalid task id in path", slog.String("value", raw))
		shared.RespondWithValidationError(w, r, []shared.FieldViolation{
			{Field: "id", Message: "must be an integer"},
		})
		return 0, false
	}
	return id, true
}

// decodeTaskPayload decodes and validates the create/update request body,
// writing the 422 response itself when either step fails.
func decodeTaskPayload(w http.ResponseWriter, r *http.Request, log *slog.Logger) (TaskPayload, bool) {
	var payload TaskPayload
	if err := shared.DecodeJSON(r, &payload); err != nil {
		log.Warn("malformed task payload", slog.Any("error", err))
		shared.RespondWithValidationError(w, r, violationsFromError(err))
		return TaskPayload{}, false
	}
	if err := shared.ValidateRequest(&payload); err != nil {
		log.Warn("task payload failed validation", slog.Any("error", err))
		shared.RespondWithValidationError(w, r, violationsFromError(err))
		return TaskPayload{}, false
	}
	return payload, true
}
