package repository

import (
	"fmt"
	"strings"

	"newsapi/internal/apperr"
)

// SortColumn is an article column the listing may be ordered by.
// Values only come from ParseSortColumn, so the SQL fragment is always one of the constants below.
type SortColumn struct{ col string }

var (
	SortByArticleID = SortColumn{"article_id"}
	SortByTitle     = SortColumn{"title"}
	SortByTopic     = SortColumn{"topic"}
	SortByAuthor    = SortColumn{"author"}
	SortByCreatedAt = SortColumn{"created_at"}
	SortByVotes     = SortColumn{"votes"}
)

var sortColumns = map[string]SortColumn{
	"article_id": SortByArticleID,
	"title":      SortByTitle,
	"topic":      SortByTopic,
	"author":     SortByAuthor,
	"created_at": SortByCreatedAt,
	"votes":      SortByVotes,
}

func (c SortColumn) String() string {
	if c.col == "" {
		return SortByCreatedAt.col
	}
	return c.col
}

// ParseSortColumn maps a sort_by value to a column; "" selects created_at.
func ParseSortColumn(s string) (SortColumn, error) {
	if s == "" {
		return SortByCreatedAt, nil
	}
	c, ok := sortColumns[s]
	if !ok {
		return SortColumn{}, apperr.BadRequest(fmt.Errorf("unsupported sort_by %q", s))
	}
	return c, nil
}

type SortOrder struct{ dir string }

var (
	OrderAsc  = SortOrder{"ASC"}
	OrderDesc = SortOrder{"DESC"}
)

func (o SortOrder) String() string {
	if o.dir == "" {
		return OrderDesc.dir
	}
	return o.dir
}

// ParseSortOrder accepts asc/desc in any case; "" selects desc.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "":
		return OrderDesc, nil
	case "asc":
		return OrderAsc, nil
	case "desc":
		return OrderDesc, nil
	default:
		return SortOrder{}, apperr.BadRequest(fmt.Errorf("unsupported order %q", s))
	}
}

type ArticleFilter struct {
	Topic  string // empty means all topics
	SortBy SortColumn
	Order  SortOrder
}

const articleColumns = `
		articles.article_id, articles.title, articles.topic, articles.author, articles.body,
		articles.created_at, articles.votes, articles.article_img_url,
		COUNT(comments.comment_id)::INT AS comment_count`

const articleFromJoin = `
	FROM articles
	LEFT JOIN comments ON comments.article_id = articles.article_id`

func buildListArticlesQuery(f ArticleFilter) (string, []any) {
	where := []string{}
	args := []any{}

	if f.Topic != "" {
		where = append(where, fmt.Sprintf("articles.topic = $%d", len(args)+1))
		args = append(args, f.Topic)
	}

	sql := "SELECT" + articleColumns + articleFromJoin
	if len(where) > 0 {
		sql += "\n\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\tGROUP BY articles.article_id"
	sql += fmt.Sprintf("\n\tORDER BY articles.%s %s, articles.article_id %s", f.SortBy, f.Order, f.Order)

	return sql, args
}
