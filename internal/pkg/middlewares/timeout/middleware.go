package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"walt/internal/pkg/middlewares/respond"
)

// Middleware ограничивает время обработки запроса. Если обработчик вышел по дедлайну,
// ничего не записав, клиент получает 504 вместо пустого 200.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &trackingWriter{ResponseWriter: w}
			next.ServeHTTP(tw, r.WithContext(ctx))

			if !tw.written && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				_ = respond.Error(w, http.StatusGatewayTimeout, "request timed out")
			}
		})
	}
}

type trackingWriter struct {
	http.ResponseWriter
	written bool
}

func (tw *trackingWriter) WriteHeader(code int) {
	tw.written = true
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *trackingWriter) Write(b []byte) (int, error) {
	tw.written = true
	return tw.ResponseWriter.Write(b)
}
