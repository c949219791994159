package unassigned_count_get

import (
	"net/http"

	"assignment-service/internal/generated/dto"
	"assignment-service/internal/handlers/rest/respond"
	"assignment-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountUnassignedOrders(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("count unassigned orders")
		respond.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.CountResponse{Count: count})
}
