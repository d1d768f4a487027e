package services

import (
	"context"

	"newsapi/internal/logger"
	"newsapi/internal/models"
	"newsapi/internal/repository"

	"go.uber.org/zap"
)

type UserService interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type userService struct {
	repo repository.UserRepo
}

func NewUserService(repo repository.UserRepo) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetAll(ctx context.Context) ([]*models.User, error) {
	log := logger.WithCtx(ctx)

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("list users failed", zap.Error(err))
		return nil, err
	}

	log.Debug("users listed", zap.Int("count", len(users)))
	return users, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	log := logger.WithCtx(ctx)
	log.Debug("get user", zap.String("username", username))

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		log.Warn("get user failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return u, nil
}
