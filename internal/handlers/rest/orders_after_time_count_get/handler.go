package orders_after_time_count_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"assignment-service/internal/generated/dto"
	"assignment-service/internal/handlers/rest/respond"
	"assignment-service/internal/service/partner"
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
	vars := mux.Vars(r)
	rawTime := vars["time"]
	partnerID := vars["partnerId"]

	count, err := h.service.CountOrdersAfterTime(r.Context(), rawTime, partnerID)
	if err != nil {
		switch {
		case errors.Is(err, partner.ErrInvalidPartnerID),
			errors.Is(err, partner.ErrInvalidTimeFormat):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, partner.ErrPartnerNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("partner_id", partnerID),
			).Error("count orders after time")
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.CountResponse{Count: count})
}
