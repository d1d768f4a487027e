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

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// ListByArticle
// @Summary      List an article's comments
// @Description  Newest first. An existing article without comments gives an empty list.
// @Tags         comments
// @Produce      json
// @Param        article_id path int true "Article ID"
// @Success      200 {object} map[string][]models.Comment
// @Failure      400 {object} helpers.Message
// @Failure      404 {object} helpers.Message
// @Router       /api/articles/{article_id}/comments [get]
func (h *CommentHandler) ListByArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	list, err := h.svc.ListByArticle(r.Context(), id)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"comments": list})
}

// Create
// @Summary      Comment on an article
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        article_id path int                         true "Article ID"
// @Param        body       body models.CreateCommentRequest true "Author and text"
// @Success      201 {object} map[string]models.Comment
// @Failure      400 {object} helpers.Message
// @Failure      404 {object} helpers.Message
// @Router       /api/articles/{article_id}/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	id, err := pathID(r, "article_id")
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	var req models.CreateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		log.Warn("invalid comment body", zap.Int("article_id", id), zap.Error(err))
		middleware.HandleError(w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), id, *req.Username, *req.Body)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, map[string]any{"comment": c})
}

// Delete
// @Summary      Delete a comment
// @Tags         comments
// @Param        comment_id path int true "Comment ID"
// @Success      204
// @Failure      400 {object} helpers.Message
// @Failure      404 {object} helpers.Message
// @Router       /api/comments/{comment_id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateVotes
// @Summary      Vote on a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        comment_id path int                 true "Comment ID"
// @Param        body       body models.VotesRequest true "Vote increment"
// @Success      200 {object} map[string]models.Comment
// @Failure      400 {object} helpers.Message
// @Failure      404 {object} helpers.Message
// @Router       /api/comments/{comment_id} [patch]
func (h *CommentHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	var req models.VotesRequest
	if err := decodeBody(r, &req); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	c, err := h.svc.UpdateVotes(r.Context(), id, int(*req.IncVotes))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"comment": c})
}
