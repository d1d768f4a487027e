package helpers

import (
	"encoding/json"
	"net/http"

	"newsapi/internal/logger"

	"go.uber.org/zap"
)

// Message is the body of every error response.
type Message struct {
	Msg string `json:"msg" example:"not found"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.Error("response encode failed", zap.Int("status", status), zap.Error(err))
	}
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Message{Msg: msg})
}
