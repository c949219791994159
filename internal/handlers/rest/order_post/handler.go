package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"assignment-service/internal/converter"
	"assignment-service/internal/generated/dto"
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
	var orderDTO dto.Order
	err := json.NewDecoder(r.Body).Decode(&orderDTO)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	err = h.service.AddOrder(r.Context(), converter.OrderToEntity(orderDTO))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderExists):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("add order")
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.Message(w, h.log, http.StatusCreated, "Order added successfully")
}
