package healthcheck_head

import (
	"net/http"
	"sync/atomic"

	"assignment-service/internal/generated/dto"
	"assignment-service/internal/handlers/rest/respond"
	"assignment-service/pkg/logger"
)

const (
	statusOK           = "ok"
	statusShuttingDown = "shutting down"
	statusUnavailable  = "registry unavailable"
)

type Handler struct {
	log            handlerLogger
	registry       Registry
	isShuttingDown *atomic.Bool
}

func New(log handlerLogger, registry Registry, isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		log:            log.With(),
		registry:       registry,
		isShuttingDown: isShuttingDown,
	}
}

// ServeHTTP на HEAD отвечает только статусом, на GET дополнительно
// отдает размер реестра.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		h.reply(w, r, http.StatusServiceUnavailable, dto.HealthResponse{Status: statusShuttingDown})
		return
	}

	stats, err := h.registry.Stats(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("healthcheck")
		h.reply(w, r, http.StatusServiceUnavailable, dto.HealthResponse{Status: statusUnavailable})
		return
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.JSON(w, h.log, http.StatusOK, dto.HealthResponse{
		Status:   statusOK,
		Orders:   stats.Orders,
		Partners: stats.Partners,
	})
}

func (h *Handler) reply(w http.ResponseWriter, r *http.Request, status int, body dto.HealthResponse) {
	if r.Method == http.MethodHead {
		w.WriteHeader(status)
		return
	}
	respond.JSON(w, h.log, status, body)
}
