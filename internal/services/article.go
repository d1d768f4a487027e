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

// ArticleQuery carries the raw listing parameters as they arrived in the query string.
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
}

type ArticleService interface {
	GetByID(ctx context.Context, id int) (*models.Article, error)
	List(ctx context.Context, q ArticleQuery) ([]*models.Article, error)
	UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error)
}

type articleService struct {
	repo   repository.ArticleRepo
	topics repository.TopicRepo
}

func NewArticleService(repo repository.ArticleRepo, topics repository.TopicRepo) ArticleService {
	return &articleService{repo: repo, topics: topics}
}

func (s *articleService) GetByID(ctx context.Context, id int) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("get article", zap.Int("article_id", id))

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("get article failed", zap.Int("article_id", id), zap.Error(err))
		return nil, err
	}
	return a, nil
}

// List validates sort_by and order before touching storage, then distinguishes an
// unknown topic (NotFound) from a known topic with no articles (empty list).
func (s *articleService) List(ctx context.Context, q ArticleQuery) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("list articles",
		zap.String("topic", q.Topic),
		zap.String("sort_by", q.SortBy),
		zap.String("order", q.Order),
	)

	col, err := repository.ParseSortColumn(q.SortBy)
	if err != nil {
		log.Warn("invalid sort_by", zap.String("sort_by", q.SortBy))
		return nil, err
	}
	dir, err := repository.ParseSortOrder(q.Order)
	if err != nil {
		log.Warn("invalid order", zap.String("order", q.Order))
		return nil, err
	}

	if q.Topic != "" {
		if _, err := s.topics.GetBySlug(ctx, q.Topic); err != nil {
			log.Warn("topic lookup failed", zap.String("topic", q.Topic), zap.Error(err))
			return nil, err
		}
	}

	list, err := s.repo.List(ctx, repository.ArticleFilter{Topic: q.Topic, SortBy: col, Order: dir})
	if err != nil {
		log.Error("list articles failed", zap.Error(err))
		return nil, err
	}

	log.Debug("articles listed", zap.Int("count", len(list)))
	return list, nil
}

func (s *articleService) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("update article votes", zap.Int("article_id", id), zap.Int("inc_votes", delta))

	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		log.Error("article existence check failed", zap.Int("article_id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound(fmt.Errorf("article %d", id))
	}

	a, err := s.repo.UpdateVotes(ctx, id, delta)
	if err != nil {
		log.Warn("update article votes failed", zap.Int("article_id", id), zap.Error(err))
		return nil, err
	}

	log.Info("article votes updated", zap.Int("article_id", id), zap.Int("votes", a.Votes))
	return a, nil
}
