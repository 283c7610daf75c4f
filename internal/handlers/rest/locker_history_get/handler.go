package locker_history_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"locker-service/internal/dto"
	"locker-service/internal/entities"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/internal/service/locker"
)

var errInvalidLimit = errors.New("limit must be a positive integer")

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

// ServeHTTP accepts an optional ?limit=N; zero or absent means the
// service default.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respond.Error(w, h.log, http.StatusBadRequest, errInvalidLimit)
			return
		}
		limit = parsed
	}

	lockerID := mux.Vars(r)["lockerId"]
	records, err := h.service.History(r.Context(), lockerID, limit)
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

	respond.JSON(w, h.log, http.StatusOK, dto.FromHistory(lockerID, records))
}
