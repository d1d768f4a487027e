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

type CommentRepo interface {
	ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error)
	Create(ctx context.Context, articleID int, author, body string) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
	UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error)
}

type commentRepo struct{ db DB }

func NewCommentRepo(db DB) CommentRepo { return &commentRepo{db: db} }

const commentColumns = `comment_id, article_id, author, body, votes, created_at`

// ListByArticle returns [] both for an article without comments and for a missing article.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error) {
	defer metrics.TrackQuery("select", "comments")()

	const q = `
	SELECT ` + commentColumns + `
	FROM comments
	WHERE article_id = $1
	ORDER BY created_at DESC, comment_id DESC`

	rows, err := r.db.Query(ctx, q, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *commentRepo) Create(ctx context.Context, articleID int, author, body string) (*models.Comment, error) {
	defer metrics.TrackQuery("insert", "comments")()

	const q = `
	INSERT INTO comments (author, body, article_id)
	VALUES ($1, $2, $3)
	RETURNING ` + commentColumns

	return scanComment(r.db.QueryRow(ctx, q, author, body, articleID))
}

func (r *commentRepo) Delete(ctx context.Context, id int) error {
	defer metrics.TrackQuery("delete", "comments")()

	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(fmt.Errorf("comment %d", id))
	}
	return nil
}

func (r *commentRepo) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	defer metrics.TrackQuery("update", "comments")()

	const q = `
	UPDATE comments
	SET votes = votes + $1
	WHERE comment_id = $2
	RETURNING ` + commentColumns

	c, err := scanComment(r.db.QueryRow(ctx, q, delta, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(fmt.Errorf("comment %d", id))
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	if err := row.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
