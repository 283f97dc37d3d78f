package firestore

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/safehaven/internal/domain"
)

func TestDecodePost(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	post := decodePost("abc", map[string]interface{}{
		"userId":    "user_1a2b3c4d",
		"content":   "thinking of everyone here",
		"timestamp": ts,
	})

	assert.Equal(t, domain.PostID("abc"), post.ID)
	assert.Equal(t, domain.UserID("user_1a2b3c4d"), post.UserID)
	assert.Equal(t, "thinking of everyone here", post.Content)
	assert.Equal(t, "2025-03-14 09:26:53", post.Timestamp)
	assert.True(t, post.CreatedAt.Equal(ts))
}

func TestStampPostUsesCommitTime(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	post := &domain.CommunityPost{UserID: "user_1a2b3c4d", Content: "hello"}

	stampPost(post, "doc-1", &firestore.WriteResult{UpdateTime: ts})

	assert.Equal(t, domain.PostID("doc-1"), post.ID)
	assert.True(t, post.CreatedAt.Equal(ts))
	assert.Equal(t, "2025-03-14 09:26:53", post.Timestamp)
}

func TestStampPostWithoutWriteResult(t *testing.T) {
	post := &domain.CommunityPost{}

	stampPost(post, "doc-2", nil)

	assert.Equal(t, domain.PostID("doc-2"), post.ID)
	assert.True(t, post.CreatedAt.IsZero())
	assert.Equal(t, domain.TimestampUnavailable, post.Timestamp)
}

func TestDecodePostMalformedFields(t *testing.T) {
	cases := map[string]map[string]interface{}{
		"missing": {"content": "hi"},
		"string":  {"content": "hi", "timestamp": "yesterday"},
		"number":  {"content": "hi", "timestamp": int64(1700000000)},
		"nil":     {"content": "hi", "timestamp": nil},
		"nil ptr": {"content": "hi", "timestamp": (*time.Time)(nil)},
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			post := decodePost("id", data)
			assert.Equal(t, domain.TimestampUnavailable, post.Timestamp)
			assert.Equal(t, domain.UserID(domain.AnonymousUser), post.UserID)
			assert.Equal(t, "hi", post.Content)
		})
	}
}

func TestPostsPath(t *testing.T) {
	assert.Equal(t, "artifacts/my-app/public/data/community_posts", postsPath("my-app"))
}

func TestNewStoreRequiresProject(t *testing.T) {
	_, err := NewStore(context.Background(), Options{})
	require.Error(t, err)

	_, err = NewStore(context.Background(), Options{CredentialsJSON: []byte("not json")})
	require.Error(t, err)
}
