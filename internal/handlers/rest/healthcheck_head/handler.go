package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const storagePingTimeout = time.Second

// Handler отвечает 204, пока сервис не начал остановку и хранилище доступно.
type Handler struct {
	isShuttingDown *atomic.Bool
	storage        Storage
}

func New(isShuttingDown *atomic.Bool, storage Storage) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		storage:        storage,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storagePingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
