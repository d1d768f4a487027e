package services

import (
	"context"

	"newsapi/internal/logger"
	"newsapi/internal/models"
	"newsapi/internal/repository"

	"go.uber.org/zap"
)

type TopicService interface {
	GetAll(ctx context.Context) ([]*models.Topic, error)
}

type topicService struct {
	repo repository.TopicRepo
}

func NewTopicService(repo repository.TopicRepo) TopicService {
	return &topicService{repo: repo}
}

func (s *topicService) GetAll(ctx context.Context) ([]*models.Topic, error) {
	log := logger.WithCtx(ctx)

	topics, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("list topics failed", zap.Error(err))
		return nil, err
	}

	log.Debug("topics listed", zap.Int("count", len(topics)))
	return topics, nil
}
