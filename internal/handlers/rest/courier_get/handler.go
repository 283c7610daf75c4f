package courier_get

import (
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, courier.ErrInvalidCourierID)
		return
	}

	courierEntity, err := h.service.GetCourier(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrCourierNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, courier.ErrInvalidCourierID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromCourier(courierEntity))
}
