package controller_command_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"locker-service/internal/dto"
	"locker-service/internal/entities"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/internal/service/locker"
	"locker-service/pkg/logger"
)

// Handler serves GET /controller/lockers/{lockerId}/command. A returned
// command is consumed; the next poll gets 204 until a new one is queued.
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

	command, err := h.service.PollCommand(r.Context(), lockerID)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrNoCommand):
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, locker.ErrInvalidLockerID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("command delivered",
		logger.NewField("locker_id", command.LockerID),
		logger.NewField("command_id", command.ID),
		logger.NewField("resi", command.Resi),
	)

	w.Header().Set("Cache-Control", "no-store")
	respond.JSON(w, h.log, http.StatusOK, dto.FromCommand(*command))
}
