package order_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"assignment-service/internal/handlers/rest/respond"
	"assignment-service/internal/service/order"
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
	orderID := mux.Vars(r)["orderId"]

	err := h.service.DeleteOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", orderID),
			).Error("delete order")
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.Message(w, h.log, http.StatusOK, "Order deleted and unassigned")
}
