// internal/server/middleware.go
package server

import (
	"net/http"
	"strconv"
	"time"

	"dental-site/internal/common/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger logs each request and counts it by route pattern, not raw
// path, so /images/* does not explode label cardinality.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		fields := map[string]interface{}{
			"method":    r.Method,
			"route":     route,
			"status":    status,
			"bytes":     ww.BytesWritten(),
			"duration":  time.Since(start).String(),
			"requestId": middleware.GetReqID(r.Context()),
		}
		if status >= http.StatusInternalServerError {
			s.logger.Warn("request served", fields)
			return
		}
		s.logger.Debug("request served", fields)
	})
}
