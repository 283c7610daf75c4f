package shipment_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"locker-service/internal/dto"
	"locker-service/internal/entities"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/internal/service/courier"
	"locker-service/internal/service/shipment"
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
	var assignDTO dto.ShipmentAssign
	if err := json.NewDecoder(r.Body).Decode(&assignDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	shipmentEntity, err := h.service.Assign(r.Context(), assignDTO.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidResi),
			errors.Is(err, shipment.ErrInvalidLockerID),
			errors.Is(err, shipment.ErrInvalidCustomerID),
			errors.Is(err, shipment.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidCourierID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrLockerNotFound),
			errors.Is(err, entities.ErrCourierNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, entities.ErrConflict),
			errors.Is(err, entities.ErrInvalidState):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromShipment(shipmentEntity))
}
