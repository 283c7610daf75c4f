package locker_active_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"locker-service/internal/dto"
	"locker-service/internal/entities"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/internal/service/locker"
)

var errMissingActive = errors.New("active flag is required")

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
	var activeDTO dto.LockerActive
	if err := json.NewDecoder(r.Body).Decode(&activeDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if activeDTO.Active == nil {
		respond.Error(w, h.log, http.StatusBadRequest, errMissingActive)
		return
	}

	view, err := h.service.SetActive(r.Context(), mux.Vars(r)["lockerId"], *activeDTO.Active)
	if err != nil {
		switch {
		case errors.Is(err, locker.ErrInvalidLockerID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrLockerNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromLockerView(view))
}
