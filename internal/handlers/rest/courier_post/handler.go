package courier_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var courierDTO dto.CourierCreate
	if err := json.NewDecoder(r.Body).Decode(&courierDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	courierEntity, err := h.service.CreateCourier(r.Context(), courierDTO.Name, courierDTO.Plate)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidPlate):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrConflict):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromCourier(courierEntity))
}
