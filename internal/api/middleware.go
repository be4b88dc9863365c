package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	loggerContextKey = contextKey("logger")
	actorContextKey  = contextKey("actor")

	requestIDHeader = "X-Request-ID"
	actorHeader     = "X-User-ID"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestLogger tags every request with an id, reusing the caller's one when it is a valid uuid,
// and logs the outcome.
func requestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			logger := base.With("method", r.Method, "path", r.URL.Path, "request_id", requestID)
			ctx := context.WithValue(r.Context(), loggerContextKey, logger)

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r.WithContext(ctx))

			logger.Info("request", "duration", time.Since(start), "status", sw.status)
		})
	}
}

// Recovering panics and logging
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				loggerFrom(r.Context()).Error("panic recovered", "error", err)
				http.Error(w, `{"message": "Internal Server Error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requireActor rejects requests without a valid acting user. The id is trusted as is: authentication
// happens upstream.
func requireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID, ok := parseActor(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "missing or invalid "+actorHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), actorContextKey, actorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func parseActor(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.Header.Get(actorHeader), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func actorFrom(ctx context.Context) int64 {
	id, _ := ctx.Value(actorContextKey).(int64)
	return id
}
