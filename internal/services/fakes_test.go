package services

import (
	"context"
	"fmt"
	"time"

	"newsapi/internal/apperr"
	"newsapi/internal/models"
	"newsapi/internal/repository"
)

type fakeTopicRepo struct {
	topics map[string]*models.Topic
	err    error
}

func (f *fakeTopicRepo) GetAll(_ context.Context) ([]*models.Topic, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*models.Topic{}
	for _, t := range f.topics {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTopicRepo) GetBySlug(_ context.Context, slug string) (*models.Topic, error) {
	t, ok := f.topics[slug]
	if !ok {
		return nil, apperr.NotFound(fmt.Errorf("topic %q", slug))
	}
	return t, nil
}

type fakeArticleRepo struct {
	articles   map[int]*models.Article
	lastFilter *repository.ArticleFilter
	listCalls  int
	existsErr  error
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id int) (*models.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, apperr.NotFound(fmt.Errorf("article %d", id))
	}
	return a, nil
}

func (f *fakeArticleRepo) List(_ context.Context, filter repository.ArticleFilter) ([]*models.Article, error) {
	f.listCalls++
	f.lastFilter = &filter
	out := []*models.Article{}
	for _, a := range f.articles {
		if filter.Topic == "" || a.Topic == filter.Topic {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) UpdateVotes(_ context.Context, id, delta int) (*models.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, apperr.NotFound(fmt.Errorf("article %d", id))
	}
	a.Votes += delta
	return a, nil
}

func (f *fakeArticleRepo) Exists(_ context.Context, id int) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.articles[id]
	return ok, nil
}

type fakeCommentRepo struct {
	comments map[int]*models.Comment
	nextID   int
	created  *models.Comment
}

func (f *fakeCommentRepo) ListByArticle(_ context.Context, articleID int) ([]*models.Comment, error) {
	out := []*models.Comment{}
	for _, c := range f.comments {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Create(_ context.Context, articleID int, author, body string) (*models.Comment, error) {
	f.nextID++
	c := &models.Comment{
		CommentID: f.nextID,
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		CreatedAt: time.Now(),
	}
	f.comments[c.CommentID] = c
	f.created = c
	return c, nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.comments[id]; !ok {
		return apperr.NotFound(fmt.Errorf("comment %d", id))
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) UpdateVotes(_ context.Context, id, delta int) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, apperr.NotFound(fmt.Errorf("comment %d", id))
	}
	c.Votes += delta
	return c, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, apperr.NotFound(fmt.Errorf("user %q", username))
	}
	return u, nil
}

func seedTopics() *fakeTopicRepo {
	return &fakeTopicRepo{topics: map[string]*models.Topic{
		"mitch": {Slug: "mitch", Description: "The man, the Mitch, the legend"},
		"cats":  {Slug: "cats", Description: "Not dogs"},
		"paper": {Slug: "paper", Description: "what books are made of"},
	}}
}

func seedArticles() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[int]*models.Article{
		1: {ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Votes: 100},
		2: {ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars"},
		5: {ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop"},
	}}
}

func seedUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{
		"butter_bridge": {Username: "butter_bridge", Name: "jonny"},
		"rogersop":      {Username: "rogersop", Name: "paul"},
		"lurker":        {Username: "lurker", Name: "do_nothing"},
	}}
}
