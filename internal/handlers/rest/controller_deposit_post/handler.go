package controller_deposit_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"locker-service/internal/dto"
	"locker-service/internal/entities"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/internal/service/deposit"
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
	var depositDTO dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&depositDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	result, err := h.service.Deposit(r.Context(), entities.DepositRequest{
		LockerID:      mux.Vars(r)["lockerId"],
		Token:         depositDTO.Token,
		Resi:          depositDTO.Resi,
		ShipmentToken: depositDTO.ShipmentToken,
	})
	if err != nil {
		switch {
		case errors.Is(err, deposit.ErrInvalidLockerID),
			errors.Is(err, deposit.ErrInvalidResi):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrLockerNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, entities.ErrInvalidToken):
			respond.Error(w, h.log, http.StatusUnauthorized, err)
		case errors.Is(err, entities.ErrNoMatchingPendingShipment),
			errors.Is(err, entities.ErrInvalidState):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDepositResult(result))
}
