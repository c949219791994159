package assignment_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"assignment-service/internal/generated/dto"
	"assignment-service/internal/handlers/rest/respond"
	"assignment-service/internal/service/order"
	"assignment-service/pkg/logger"
)

var errMissingIDs = errors.New("order id or partner id is missing")

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
	var request dto.AssignRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if request.OrderId == nil || request.PartnerId == nil {
		respond.Error(w, h.log, http.StatusBadRequest, errMissingIDs)
		return
	}

	err = h.service.AssignOrderToPartner(r.Context(), *request.OrderId, *request.PartnerId)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidPartnerID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrPartnerNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("assign order to partner")
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.Message(w, h.log, http.StatusOK, "Order assigned successfully")
}
