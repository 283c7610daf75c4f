package customer_shipment_get

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"locker-service/internal/dto"
	"locker-service/internal/entities"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/internal/service/shipment"
)

const customerIDHeader = "X-Customer-ID"

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
	customerID := strings.TrimSpace(r.Header.Get(customerIDHeader))
	if customerID == "" {
		respond.Error(w, h.log, http.StatusUnauthorized, errors.New("missing customer identity"))
		return
	}

	shipmentEntity, err := h.service.GetCustomerShipment(r.Context(), mux.Vars(r)["resi"], customerID)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidResi),
			errors.Is(err, shipment.ErrInvalidCustomerID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrShipmentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, entities.ErrNotOwner):
			respond.Error(w, h.log, http.StatusForbidden, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromShipment(shipmentEntity))
}
