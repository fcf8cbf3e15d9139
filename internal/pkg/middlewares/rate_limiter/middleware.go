package rate_limiter

import (
	"net/http"
	"strconv"

	"walt/internal/pkg/middlewares/request_id"
	"walt/internal/pkg/middlewares/respond"
	"walt/internal/pkg/middlewares/route"
	"walt/pkg/logger"
)

// Middleware отвечает 429, когда limiter не выдал токен. qps попадает только в заголовок X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(qps)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			template := route.Template(r)
			RequestsRejectedTotal.WithLabelValues(r.Method, template).Inc()
			log.Warn("rate limit exceeded",
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("route", template),
				logger.NewField("remote_addr", r.RemoteAddr),
			)

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("Retry-After", "1")
			if err := respond.Error(w, http.StatusTooManyRequests, "rate limit exceeded, try again later"); err != nil {
				log.Error("write rate limit response", logger.NewField("error", err))
			}
		})
	}
}
