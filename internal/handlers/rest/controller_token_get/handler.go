package controller_token_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"locker-service/internal/dto"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/internal/service/locker"
	"locker-service/internal/service/token"
)

// Handler serves GET /controller/lockers/{lockerId}/token. The call counts
// as a heartbeat and registers unknown lockers.
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
	lockerID := mux.Vars(r)["lockerId"]

	lockerEntity, err := h.service.FetchToken(r.Context(), lockerID)
	if err != nil {
		switch {
		case errors.Is(err, locker.ErrInvalidLockerID),
			errors.Is(err, token.ErrInvalidLockerID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	respond.JSON(w, h.log, http.StatusOK, dto.LockerToken{
		LockerID: lockerEntity.ID,
		Token:    lockerEntity.Token,
	})
}
