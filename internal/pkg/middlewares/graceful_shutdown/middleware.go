package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"walt/internal/pkg/middlewares/respond"
)

// Middleware во время readiness drain продолжает обслуживать запросы, но закрывает соединения,
// чтобы клиенты переподключились к другому инстансу. После отмены ongoingCtx запросы отклоняются.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isShuttingDown.Load() {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Connection", "close")
			if ongoingCtx.Err() != nil {
				w.Header().Set("Retry-After", "1")
				_ = respond.Error(w, http.StatusServiceUnavailable, "service is shutting down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
