package web

import (
	"net/http"
	"time"

	"charm.land/log/v2"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogFormatter routes chi's request log through the app logger.
type requestLogFormatter struct {
	logger *log.Logger
}

func (f requestLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &requestLogEntry{
		logger: f.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
		),
	}
}

type requestLogEntry struct {
	logger *log.Logger
}

func (e *requestLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	e.logger.Info("request", "status", status, "bytes", bytes, "elapsed", elapsed)
}

func (e *requestLogEntry) Panic(v any, stack []byte) {
	e.logger.Error("panic", "value", v, "stack", string(stack))
}
