package courier_state_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"locker-service/internal/dto"
	"locker-service/internal/entities"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/internal/service/courier"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, courier.ErrInvalidCourierID)
		return
	}

	var stateDTO dto.CourierState
	if err := json.NewDecoder(r.Body).Decode(&stateDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	courierEntity, err := h.service.SetState(r.Context(), id, entities.CourierState(stateDTO.State))
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidStateValue):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrCourierNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromCourier(courierEntity))
}
