package controller_logs_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"locker-service/internal/dto"
	"locker-service/internal/entities"
	"locker-service/internal/handlers/rest/respond"
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
	var logDTO dto.ControllerLogRequest
	if err := json.NewDecoder(r.Body).Decode(&logDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	err := h.service.PostLog(r.Context(), entities.ControllerLog{
		LockerID: mux.Vars(r)["lockerId"],
		Event:    entities.ShipmentEvent(logDTO.Event),
		Resi:     logDTO.Resi,
		Extra:    logDTO.Extra,
	})
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidLockerID),
			errors.Is(err, shipment.ErrInvalidResi),
			errors.Is(err, shipment.ErrInvalidEvent):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrLockerNotFound),
			errors.Is(err, entities.ErrShipmentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, entities.ErrInvalidState):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
