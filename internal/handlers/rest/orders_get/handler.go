package orders_get

import (
	"net/http"

	"assignment-service/internal/converter"
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
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list orders")
		respond.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, converter.OrdersFromEntities(orders))
}
