package forum_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/safehaven/internal/adapters/storage/memory"
	"github.com/PabloGalante/safehaven/internal/app/forum"
	"github.com/PabloGalante/safehaven/internal/domain"
)

type countingStore struct {
	*memory.PostStore
	lists int
}

func (c *countingStore) ListPosts(ctx context.Context, limit int) ([]*domain.CommunityPost, error) {
	c.lists++
	return c.PostStore.ListPosts(ctx, limit)
}

type failingStore struct{}

func (failingStore) AddPost(ctx context.Context, post *domain.CommunityPost) error {
	return errors.New("deadline exceeded")
}

func (failingStore) ListPosts(ctx context.Context, limit int) ([]*domain.CommunityPost, error) {
	return nil, errors.New("deadline exceeded")
}

type rawStore struct {
	posts []*domain.CommunityPost
}

func (r *rawStore) AddPost(ctx context.Context, post *domain.CommunityPost) error { return nil }

func (r *rawStore) ListPosts(ctx context.Context, limit int) ([]*domain.CommunityPost, error) {
	return r.posts, nil
}

func TestPostRejectsBlankContent(t *testing.T) {
	store := &countingStore{PostStore: memory.NewPostStore()}
	svc := forum.NewService(store, time.Second, nil)
	ctx := context.Background()

	_, err := svc.Post(ctx, "", "")
	assert.ErrorIs(t, err, forum.ErrEmptyPost)

	_, err = svc.Post(ctx, "u1", "   ")
	assert.ErrorIs(t, err, forum.ErrEmptyPost)

	posts, err := store.PostStore.ListPosts(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRejectsMissingAuthor(t *testing.T) {
	svc := forum.NewService(memory.NewPostStore(), time.Second, nil)

	_, err := svc.Post(context.Background(), " ", "hello")
	assert.ErrorIs(t, err, forum.ErrMissingAuthor)
}

func TestPostThenListAfterCacheWindow(t *testing.T) {
	store := &countingStore{PostStore: memory.NewPostStore()}
	svc := forum.NewService(store, 30*time.Millisecond, nil)
	ctx := context.Background()

	assert.Empty(t, svc.List(ctx))

	_, err := svc.Post(ctx, "u1", "hello")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	posts := svc.List(ctx)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Content)
	assert.Equal(t, domain.UserID("u1"), posts[0].UserID)
}

func TestListIsCachedWithinWindow(t *testing.T) {
	store := &countingStore{PostStore: memory.NewPostStore()}
	svc := forum.NewService(store, time.Minute, nil)
	ctx := context.Background()

	svc.List(ctx)
	svc.List(ctx)
	svc.List(ctx)

	assert.Equal(t, 1, store.lists)
}

func TestListReadFailureIsEmpty(t *testing.T) {
	svc := forum.NewService(failingStore{}, time.Second, nil)

	posts := svc.List(context.Background())
	require.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostWriteFailureIsReported(t *testing.T) {
	svc := forum.NewService(failingStore{}, time.Second, nil)

	_, err := svc.Post(context.Background(), "u1", "hello")
	require.Error(t, err)
	assert.NotErrorIs(t, err, forum.ErrEmptyPost)
}

func TestStoreUnavailable(t *testing.T) {
	svc := forum.NewService(nil, time.Second, nil)

	assert.False(t, svc.Available())
	_, err := svc.Post(context.Background(), "u1", "hello")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Empty(t, svc.List(context.Background()))
}

func TestListFillsMissingFields(t *testing.T) {
	store := &rawStore{posts: []*domain.CommunityPost{
		{ID: "p1", Content: "no author, no time"},
	}}
	svc := forum.NewService(store, time.Second, nil)

	posts := svc.List(context.Background())
	require.Len(t, posts, 1)
	assert.Equal(t, domain.UserID(domain.AnonymousUser), posts[0].UserID)
	assert.Equal(t, domain.TimestampUnavailable, posts[0].Timestamp)
}
