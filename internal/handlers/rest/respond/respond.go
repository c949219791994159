// Package respond пишет JSON-ответы REST-хендлеров.
package respond

import (
	"encoding/json"
	"net/http"

	"assignment-service/internal/generated/dto"
	"assignment-service/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func Message(w http.ResponseWriter, log errorLogger, status int, message string) {
	JSON(w, log, status, dto.MessageResponse{Message: message})
}

// Error пишет {"error": ...}. Для 5xx текст ошибки наружу не отдается.
func Error(w http.ResponseWriter, log errorLogger, status int, err error) {
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	JSON(w, log, status, dto.ErrorResponse{Error: message})
}
