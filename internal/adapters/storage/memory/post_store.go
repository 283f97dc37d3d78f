package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGalante/safehaven/internal/domain"
)

// PostStore is an in-memory domain.PostStore.
// It is NOT persistent and is only suitable for development / local mode.
type PostStore struct {
	mu    sync.RWMutex
	posts []*domain.CommunityPost
	now   func() time.Time
}

func NewPostStore() *PostStore {
	return &PostStore{
		now: time.Now,
	}
}

// AddPost stores a copy of post, assigning its ID and timestamp the way a
// server-side store would.
func (s *PostStore) AddPost(ctx context.Context, post *domain.CommunityPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = domain.PostID(uuid.NewString())
	post.CreatedAt = s.now()
	post.Timestamp = domain.FormatTimestamp(post.CreatedAt)

	stored := *post
	s.posts = append(s.posts, &stored)
	return nil
}

// ListPosts returns the newest `limit` posts, newest first. limit <= 0 returns all.
func (s *PostStore) ListPosts(ctx context.Context, limit int) ([]*domain.CommunityPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.CommunityPost, 0, len(s.posts))
	for _, p := range s.posts {
		cp := *p
		out = append(out, &cp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
