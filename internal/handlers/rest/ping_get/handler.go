package ping_get

import (
	"net/http"
	"time"

	"locker-service/internal/dto"
	"locker-service/internal/handlers/rest/respond"
	"locker-service/pkg/logger"
)

// Handler answers liveness probes. Controllers also use server_time to
// spot clock drift against the heartbeat window.
type Handler struct {
	log     handlerLogger
	service string
	now     func() time.Time
}

func New(log handlerLogger, service string) *Handler {
	return NewWithClock(log, service, time.Now)
}

func NewWithClock(log handlerLogger, service string, now func() time.Time) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "ping_get")),
		service: service,
		now:     now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"
	serverTime := h.now().UTC()

	respond.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message:    &message,
		Service:    h.service,
		ServerTime: &serverTime,
	})
}
