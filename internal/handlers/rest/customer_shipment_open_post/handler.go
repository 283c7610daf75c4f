package customer_shipment_open_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"locker-service/internal/dto"
	"locker-service/internal/entities"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/internal/service/shipment"
)

// CustomerIDHeader carries the caller identity set by the session layer.
const CustomerIDHeader = "X-Customer-ID"

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
	customerID := strings.TrimSpace(r.Header.Get(CustomerIDHeader))
	if customerID == "" {
		respond.Error(w, h.log, http.StatusUnauthorized, errors.New("missing customer identity"))
		return
	}

	var openDTO dto.OpenRequest
	if err := json.NewDecoder(r.Body).Decode(&openDTO); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	command, err := h.service.RequestOpen(r.Context(), entities.OpenRequest{
		Resi:        mux.Vars(r)["resi"],
		CustomerID:  customerID,
		CourierType: openDTO.CourierType,
	})
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidResi),
			errors.Is(err, shipment.ErrInvalidCustomerID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrShipmentNotFound),
			errors.Is(err, entities.ErrLockerNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, entities.ErrNotOwner):
			respond.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, entities.ErrInvalidState):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusAccepted, dto.FromCommand(*command))
}
