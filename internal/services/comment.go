package services

import (
	"context"
	"fmt"

	"newsapi/internal/apperr"
	"newsapi/internal/logger"
	"newsapi/internal/models"
	"newsapi/internal/repository"

	"go.uber.org/zap"
)

type CommentService interface {
	ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error)
	Create(ctx context.Context, articleID int, username, body string) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
	UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error)
}

type commentService struct {
	repo     repository.CommentRepo
	articles repository.ArticleRepo
	users    repository.UserRepo
}

func NewCommentService(repo repository.CommentRepo, articles repository.ArticleRepo, users repository.UserRepo) CommentService {
	return &commentService{
		repo:     repo,
		articles: articles,
		users:    users,
	}
}

func (s *commentService) ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Debug("list comments", zap.Int("article_id", articleID))

	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}

	list, err := s.repo.ListByArticle(ctx, articleID)
	if err != nil {
		log.Error("list comments failed", zap.Int("article_id", articleID), zap.Error(err))
		return nil, err
	}

	log.Debug("comments listed", zap.Int("article_id", articleID), zap.Int("count", len(list)))
	return list, nil
}

func (s *commentService) Create(ctx context.Context, articleID int, username, body string) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("create comment",
		zap.Int("article_id", articleID),
		zap.String("username", username),
		zap.Int("body_len", len(body)),
	)

	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByUsername(ctx, username); err != nil {
		log.Warn("comment author lookup failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	// The body is stored exactly as sent; clients escape it when rendering.
	c, err := s.repo.Create(ctx, articleID, username, body)
	if err != nil {
		log.Error("create comment failed", zap.Int("article_id", articleID), zap.Error(err))
		return nil, err
	}

	log.Info("comment created", zap.Int("comment_id", c.CommentID), zap.Int("article_id", articleID))
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("delete comment", zap.Int("comment_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete comment failed", zap.Int("comment_id", id), zap.Error(err))
		return err
	}

	log.Info("comment deleted", zap.Int("comment_id", id))
	return nil
}

func (s *commentService) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("update comment votes", zap.Int("comment_id", id), zap.Int("inc_votes", delta))

	c, err := s.repo.UpdateVotes(ctx, id, delta)
	if err != nil {
		log.Warn("update comment votes failed", zap.Int("comment_id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *commentService) requireArticle(ctx context.Context, id int) error {
	ok, err := s.articles.Exists(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Error("article existence check failed", zap.Int("article_id", id), zap.Error(err))
		return err
	}
	if !ok {
		return apperr.NotFound(fmt.Errorf("article %d", id))
	}
	return nil
}
