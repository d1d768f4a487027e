package models

import "time"

type Comment struct {
	CommentID int       `db:"comment_id" json:"comment_id"`
	ArticleID int       `db:"article_id" json:"article_id"`
	Author    string    `db:"author"     json:"author"`
	Body      string    `db:"body"       json:"body"`
	Votes     int       `db:"votes"      json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	Username *string `json:"username" validate:"required" example:"rogersop"`
	Body     *string `json:"body"     validate:"required" example:"How Lovely!"`
}
