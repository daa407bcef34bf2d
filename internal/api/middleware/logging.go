package middleware

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/task-manager-api/internal/platform/logger"
)

// RequestLogger attaches a request-scoped logger to the context, annotated
// with the router's request id so every log line from the request can be
// correlated. It should be applied early in the middleware chain, after
// chi's RequestID.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := base
			if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
				log = log.With(slog.String("request_id", reqID))
			}

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			ctx := logger.WithLogger(r.Context(), log)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
