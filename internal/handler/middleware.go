package handler

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"resume-filter/internal/domain"
	apperrors "resume-filter/pkg/errors"

	"github.com/felixge/httpsnoop"
)

// RequestLogger logs method, path, status and latency of every request.
func RequestLogger(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", m.Code,
				"bytes", m.Written,
				"duration_ms", m.Duration.Milliseconds(),
			)
		})
	}
}

// Recoverer turns a handler panic into a 500 carrying the route's failure message.
func Recoverer(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					appErr := apperrors.NewInternalError(panicMessage(r), fmt.Errorf("panic: %v", rec))
					logger.Error("Recovered from panic", appErr,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					writeError(w, appErr.StatusCode, appErr.Message)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func panicMessage(r *http.Request) string {
	switch r.URL.Path {
	case "/upload":
		return msgProcessingFailed
	case "/resumes":
		return msgDatabaseError
	default:
		return msgInternalError
	}
}
