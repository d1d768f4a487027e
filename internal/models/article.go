package models

import "time"

type Article struct {
	ArticleID     int       `db:"article_id"      json:"article_id"`
	Title         string    `db:"title"           json:"title"`
	Topic         string    `db:"topic"           json:"topic"`
	Author        string    `db:"author"          json:"author"`
	Body          string    `db:"body"            json:"body"`
	CreatedAt     time.Time `db:"created_at"      json:"created_at"`
	Votes         int       `db:"votes"           json:"votes"`
	ArticleImgURL string    `db:"article_img_url" json:"article_img_url"`
	CommentCount  int       `db:"comment_count"   json:"comment_count"`
}

// swagger:model VotesRequest
type VotesRequest struct {
	IncVotes *int32 `json:"inc_votes" validate:"required" example:"1"`
}
