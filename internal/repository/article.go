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

type ArticleRepo interface {
	GetByID(ctx context.Context, id int) (*models.Article, error)
	List(ctx context.Context, f ArticleFilter) ([]*models.Article, error)
	UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type articleRepo struct{ db DB }

func NewArticleRepo(db DB) ArticleRepo { return &articleRepo{db: db} }

func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	defer metrics.TrackQuery("select", "articles")()

	q := "SELECT" + articleColumns + articleFromJoin + `
	WHERE articles.article_id = $1
	GROUP BY articles.article_id`

	a, err := scanArticle(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(fmt.Errorf("article %d", id))
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *articleRepo) List(ctx context.Context, f ArticleFilter) ([]*models.Article, error) {
	defer metrics.TrackQuery("select", "articles")()

	sql, args := buildListArticlesQuery(f)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateVotes applies votes += delta. The returned row carries a freshly counted comment_count.
func (r *articleRepo) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	defer metrics.TrackQuery("update", "articles")()

	const q = `
	WITH updated AS (
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING *
	)
	SELECT
		updated.article_id, updated.title, updated.topic, updated.author, updated.body,
		updated.created_at, updated.votes, updated.article_img_url,
		(SELECT COUNT(*)::INT FROM comments WHERE comments.article_id = updated.article_id) AS comment_count
	FROM updated`

	a, err := scanArticle(r.db.QueryRow(ctx, q, delta, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(fmt.Errorf("article %d", id))
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *articleRepo) Exists(ctx context.Context, id int) (bool, error) {
	defer metrics.TrackQuery("exists", "articles")()

	const q = `SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	if err := row.Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
