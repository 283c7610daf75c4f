// Package respond writes JSON bodies for the REST handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"locker-service/internal/dto"
	"locker-service/pkg/logger"
)

func JSON(w http.ResponseWriter, log logger.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error writes {"error": err.Error()}. Internal errors are logged and
// replaced with the status text.
func Error(w http.ResponseWriter, log logger.Logger, status int, err error) {
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		msg = http.StatusText(status)
	}
	JSON(w, log, status, dto.Error{Error: msg})
}
