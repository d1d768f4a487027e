package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"newsapi/internal/apperr"
	"newsapi/internal/metrics"
	"newsapi/internal/models"
)

type TopicRepo interface {
	GetAll(ctx context.Context) ([]*models.Topic, error)
	GetBySlug(ctx context.Context, slug string) (*models.Topic, error)
}

type topicRepo struct{ db DB }

func NewTopicRepo(db DB) TopicRepo { return &topicRepo{db: db} }

func (r *topicRepo) GetAll(ctx context.Context) ([]*models.Topic, error) {
	defer metrics.TrackQuery("select", "topics")()

	rows, err := r.db.Query(ctx, `SELECT slug, description FROM topics`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := []*models.Topic{}
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, err
		}
		topics = append(topics, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepo) GetBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	defer metrics.TrackQuery("select", "topics")()

	var t models.Topic
	err := r.db.QueryRow(ctx, `SELECT slug, description FROM topics WHERE slug = $1`, slug).
		Scan(&t.Slug, &t.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(fmt.Errorf("topic %q", slug))
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
