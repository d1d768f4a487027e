package handlers

import (
	"net/http"

	"newsapi/internal/logger"
	"newsapi/internal/middleware"
	"newsapi/internal/models"
	"newsapi/internal/services"
	"newsapi/internal/utils/helpers"

	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// List
// @Summary      List articles
// @Description  Articles with their comment_count, optionally filtered by topic. Unknown query parameters are ignored.
// @Tags         articles
// @Produce      json
// @Param        topic    query string false "Topic slug"
// @Param        sort_by  query string false "article_id, title, topic, author, created_at (default) or votes"
// @Param        order    query string false "asc or desc (default)"
// @Success      200 {object} map[string][]models.Article
// @Failure      400 {object} helpers.Message
// @Failure      404 {object} helpers.Message
// @Router       /api/articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.List(r.Context(), services.ArticleQuery{
		Topic:  q.Get("topic"),
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
	})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"articles": list})
}

// GetByID
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Param        article_id path int true "Article ID"
// @Success      200 {object} map[string]models.Article
// @Failure      400 {object} helpers.Message
// @Failure      404 {object} helpers.Message
// @Router       /api/articles/{article_id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	a, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"article": a})
}

// UpdateVotes
// @Summary      Vote on an article
// @Description  Adds inc_votes (may be negative) to the article's votes.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article_id path int                 true "Article ID"
// @Param        body       body models.VotesRequest true "Vote increment"
// @Success      200 {object} map[string]models.Article
// @Failure      400 {object} helpers.Message
// @Failure      404 {object} helpers.Message
// @Router       /api/articles/{article_id} [patch]
func (h *ArticleHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	id, err := pathID(r, "article_id")
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	var req models.VotesRequest
	if err := decodeBody(r, &req); err != nil {
		log.Warn("invalid vote body", zap.Int("article_id", id), zap.Error(err))
		middleware.HandleError(w, r, err)
		return
	}

	a, err := h.svc.UpdateVotes(r.Context(), id, int(*req.IncVotes))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"article": a})
}
