package handlers

import (
	"net/http"

	"newsapi/internal/logger"
	"newsapi/internal/middleware"
	"newsapi/internal/services"
	"newsapi/internal/utils/helpers"

	"go.uber.org/zap"
)

type TopicHandler struct {
	svc services.TopicService
}

func NewTopicHandler(svc services.TopicService) *TopicHandler {
	return &TopicHandler{svc: svc}
}

// GetAll
// @Summary      List topics
// @Tags         topics
// @Produce      json
// @Success      200 {object} map[string][]models.Topic
// @Failure      500 {object} helpers.Message
// @Router       /api/topics [get]
func (h *TopicHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.GetAll(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Debug("topics sent", zap.Int("count", len(topics)))
	helpers.JSON(w, http.StatusOK, map[string]any{"topics": topics})
}
