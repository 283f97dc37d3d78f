// Package forum shapes reads and writes of the shared community feed.
package forum

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/PabloGalante/safehaven/internal/domain"
	"github.com/PabloGalante/safehaven/internal/observability"
)

// FeedLimit is the number of most recent posts shown on the feed.
const FeedLimit = 50

// DefaultCacheTTL bounds read volume under repeated polling.
const DefaultCacheTTL = time.Second

const feedKey = "feed"

var (
	ErrEmptyPost     = errors.New("post content is empty")
	ErrMissingAuthor = errors.New("post author is required")
)

type Service struct {
	store   domain.PostStore
	feed    *cache.Cache
	metrics *observability.Metrics
}

// NewService creates the feed service. store may be nil when the document
// store could not be initialized; posting then fails with
// domain.ErrStoreUnavailable and the feed reads as empty.
func NewService(store domain.PostStore, ttl time.Duration, metrics *observability.Metrics) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		store:   store,
		feed:    cache.New(ttl, 10*ttl),
		metrics: metrics,
	}
}

func (s *Service) Available() bool {
	return s.store != nil
}

// Post validates and forwards a new post. The store assigns its timestamp.
func (s *Service) Post(ctx context.Context, userID domain.UserID, content string) (*domain.CommunityPost, error) {
	log := observability.LoggerFromContext(ctx).With().
		Str("user_id", string(userID)).
		Logger()

	if strings.TrimSpace(content) == "" {
		s.metrics.ObservePost("rejected")
		return nil, ErrEmptyPost
	}
	if strings.TrimSpace(string(userID)) == "" {
		s.metrics.ObservePost("rejected")
		return nil, ErrMissingAuthor
	}
	if s.store == nil {
		s.metrics.ObservePost("unavailable")
		return nil, domain.ErrStoreUnavailable
	}

	post := &domain.CommunityPost{
		UserID:  userID,
		Content: content,
	}
	if err := s.store.AddPost(ctx, post); err != nil {
		log.Error().Stack().Err(err).Msg("failed to add post")
		s.metrics.ObservePost("error")
		return nil, fmt.Errorf("posting to community feed: %w", err)
	}

	// the author should see their own post on the next read
	s.feed.Delete(feedKey)
	s.metrics.ObservePost("ok")
	log.Info().Str("post_id", string(post.ID)).Msg("community post added")

	return post, nil
}

// List returns up to FeedLimit posts, newest first. Store failures are logged
// and read as an empty feed.
func (s *Service) List(ctx context.Context) []*domain.CommunityPost {
	if cached, ok := s.feed.Get(feedKey); ok {
		return cached.([]*domain.CommunityPost)
	}

	if s.store == nil {
		return []*domain.CommunityPost{}
	}

	posts, err := s.store.ListPosts(ctx, FeedLimit)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Stack().Err(err).Msg("failed to fetch community posts")
		return []*domain.CommunityPost{}
	}
	if posts == nil {
		posts = []*domain.CommunityPost{}
	}

	for _, p := range posts {
		if p.Timestamp == "" {
			p.Timestamp = domain.FormatTimestamp(p.CreatedAt)
		}
		if p.UserID == "" {
			p.UserID = domain.AnonymousUser
		}
	}

	s.feed.SetDefault(feedKey, posts)
	return posts
}
