package services

import (
	"context"
	"testing"

	"newsapi/internal/apperr"
	"newsapi/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService() (CommentService, *fakeCommentRepo) {
	comments := &fakeCommentRepo{comments: map[int]*models.Comment{
		1: {CommentID: 1, ArticleID: 1, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16},
		2: {CommentID: 2, ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists.", Votes: 14},
	}, nextID: 18}
	return NewCommentService(comments, seedArticles(), seedUsers()), comments
}

func TestCommentService_ListByArticle(t *testing.T) {
	svc, _ := newCommentService()
	ctx := context.Background()

	list, err := svc.ListByArticle(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = svc.ListByArticle(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = svc.ListByArticle(ctx, 999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCommentService_Create(t *testing.T) {
	svc, repo := newCommentService()

	c, err := svc.Create(context.Background(), 5, "rogersop", "How Lovely!")
	require.NoError(t, err)
	assert.Equal(t, 19, c.CommentID)
	assert.Equal(t, "How Lovely!", c.Body)
	assert.Equal(t, "rogersop", c.Author)
	assert.Equal(t, 0, c.Votes)
	assert.Same(t, repo.created, c)
}

func TestCommentService_Create_BodyStoredVerbatim(t *testing.T) {
	svc, repo := newCommentService()

	bodies := []string{
		"x<y",
		"I <3 cats",
		"1 < 2 & 3 > 2",
		"<b>bold</b><script>alert(1)</script>",
		"<b></b>",
		"",
		gofakeit.Sentence(12) + ` "quoted" & it's fine`,
	}
	for _, body := range bodies {
		c, err := svc.Create(context.Background(), 1, "lurker", body)
		require.NoError(t, err, body)
		assert.Equal(t, body, c.Body)
		assert.Equal(t, body, repo.created.Body)
	}
}

func TestCommentService_Create_Missing(t *testing.T) {
	svc, repo := newCommentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 999, "rogersop", "hello")
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.Create(ctx, 1, "no_such_user", "hello")
	assert.True(t, apperr.IsNotFound(err))

	assert.Nil(t, repo.created)
}

func TestCommentService_Delete(t *testing.T) {
	svc, repo := newCommentService()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))
	assert.NotContains(t, repo.comments, 1)

	assert.True(t, apperr.IsNotFound(svc.Delete(ctx, 1)))
}

func TestCommentService_UpdateVotes(t *testing.T) {
	svc, _ := newCommentService()
	ctx := context.Background()

	c, err := svc.UpdateVotes(ctx, 2, -4)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Votes)

	_, err = svc.UpdateVotes(ctx, 999, 1)
	assert.True(t, apperr.IsNotFound(err))
}
