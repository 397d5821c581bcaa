package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logging logs one line per request: 5xx at error, 4xx at warn, the rest at
// info.
func Logging(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get("X-Request-Id")
			if reqID == "" {
				reqID = uuid.NewString()
				r.Header.Set("X-Request-Id", reqID)
			}
			w.Header().Set("X-Request-Id", reqID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			attrs := []any{
				"req_id", reqID,
				"method", r.Method,
				"path", routePath(r),
				"remote", r.RemoteAddr,
				"status", rec.status,
				"dur_ms", time.Since(start).Milliseconds(),
				"resp_bytes", rec.bytes,
			}
			switch {
			case rec.status >= http.StatusInternalServerError:
				base.Error("http_request", attrs...)
			case rec.status >= http.StatusBadRequest:
				base.Warn("http_request", attrs...)
			default:
				base.Info("http_request", attrs...)
			}
		})
	}
}
