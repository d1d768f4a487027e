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

type UserRepo interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepo struct{ db DB }

func NewUserRepo(db DB) UserRepo { return &userRepo{db: db} }

func (r *userRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	defer metrics.TrackQuery("select", "users")()

	rows, err := r.db.Query(ctx, `SELECT username, name, avatar_url FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	defer metrics.TrackQuery("select", "users")()

	const q = `
	SELECT username, name, avatar_url
	FROM users
	WHERE username = $1`

	var u models.User
	err := r.db.QueryRow(ctx, q, username).Scan(&u.Username, &u.Name, &u.AvatarURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(fmt.Errorf("user %q", username))
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
