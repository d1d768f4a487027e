package services

import (
	"context"
	"errors"
	"testing"

	"newsapi/internal/apperr"
	"newsapi/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleService_GetByID(t *testing.T) {
	svc := NewArticleService(seedArticles(), seedTopics())

	a, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "butter_bridge", a.Author)

	_, err = svc.GetByID(context.Background(), 999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestArticleService_List_Defaults(t *testing.T) {
	repo := seedArticles()
	svc := NewArticleService(repo, seedTopics())

	list, err := svc.List(context.Background(), ArticleQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 3)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, repository.SortByCreatedAt, repo.lastFilter.SortBy)
	assert.Equal(t, repository.OrderDesc, repo.lastFilter.Order)
}

func TestArticleService_List_TopicFilter(t *testing.T) {
	svc := NewArticleService(seedArticles(), seedTopics())

	list, err := svc.List(context.Background(), ArticleQuery{Topic: "cats"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cats", list[0].Topic)
}

func TestArticleService_List_KnownTopicWithoutArticles(t *testing.T) {
	svc := NewArticleService(seedArticles(), seedTopics())

	list, err := svc.List(context.Background(), ArticleQuery{Topic: "paper"})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestArticleService_List_UnknownTopic(t *testing.T) {
	repo := seedArticles()
	svc := NewArticleService(repo, seedTopics())

	for _, topic := range []string{"dogs", "cats' OR '1'='1"} {
		_, err := svc.List(context.Background(), ArticleQuery{Topic: topic})
		assert.True(t, apperr.IsNotFound(err), topic)
	}
	assert.Zero(t, repo.listCalls)
}

func TestArticleService_List_InvalidSortIsCheckedFirst(t *testing.T) {
	repo := seedArticles()
	svc := NewArticleService(repo, seedTopics())

	_, err := svc.List(context.Background(), ArticleQuery{Topic: "dogs", SortBy: "body"})
	assert.True(t, apperr.IsBadRequest(err))

	_, err = svc.List(context.Background(), ArticleQuery{Order: "sideways"})
	assert.True(t, apperr.IsBadRequest(err))

	assert.Zero(t, repo.listCalls)
}

func TestArticleService_List_SortAndOrder(t *testing.T) {
	repo := seedArticles()
	svc := NewArticleService(repo, seedTopics())

	_, err := svc.List(context.Background(), ArticleQuery{SortBy: "votes", Order: "ASC"})
	require.NoError(t, err)
	assert.Equal(t, repository.SortByVotes, repo.lastFilter.SortBy)
	assert.Equal(t, repository.OrderAsc, repo.lastFilter.Order)
}

func TestArticleService_UpdateVotes_RoundTrip(t *testing.T) {
	svc := NewArticleService(seedArticles(), seedTopics())
	ctx := context.Background()

	a, err := svc.UpdateVotes(ctx, 2, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, a.Votes)

	a, err = svc.UpdateVotes(ctx, 2, -42)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Votes)
}

func TestArticleService_UpdateVotes_Missing(t *testing.T) {
	svc := NewArticleService(seedArticles(), seedTopics())

	_, err := svc.UpdateVotes(context.Background(), 999, 1)
	assert.True(t, apperr.IsNotFound(err))
}

func TestArticleService_UpdateVotes_StorageError(t *testing.T) {
	repo := seedArticles()
	repo.existsErr = errors.New("pool closed")
	svc := NewArticleService(repo, seedTopics())

	_, err := svc.UpdateVotes(context.Background(), 1, 1)
	assert.EqualError(t, err, "pool closed")
}
