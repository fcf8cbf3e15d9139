package metrics

import (
	"net/http"
	"strconv"
	"time"

	"walt/internal/pkg/middlewares/request_id"
	"walt/internal/pkg/middlewares/route"
	"walt/pkg/logger"
)

// Middleware пишет access log и метрики запроса. 5xx логируются на уровне Error.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			HTTPRequestsInFlight.Inc()
			defer HTTPRequestsInFlight.Dec()

			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			status := strconv.Itoa(rw.statusCode)
			// шаблон роута вместо пути, иначе /driver/{name} раздувает кардинальность
			template := route.Template(r)

			HTTPRequestDuration.WithLabelValues(r.Method, template, status).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, template, status).Inc()

			fields := []logger.Field{
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", template),
				logger.NewField("status", rw.statusCode),
				logger.NewField("bytes", rw.bytes),
				logger.NewField("duration", duration.String()),
			}
			if rw.statusCode >= http.StatusInternalServerError {
				log.Error("HTTP request failed", fields...)
				return
			}
			log.Info("HTTP request", fields...)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}
