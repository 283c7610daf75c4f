package controller_heartbeat_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"locker-service/internal/dto"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/internal/service/locker"
	"locker-service/internal/service/token"
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
	lockerID := mux.Vars(r)["lockerId"]

	heartbeat, err := h.service.Heartbeat(r.Context(), lockerID)
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

	respond.JSON(w, h.log, http.StatusOK, dto.Heartbeat{
		LockerID:      heartbeat.LockerID,
		Status:        heartbeat.Status.String(),
		LastHeartbeat: heartbeat.LastHeartbeat,
	})
}
