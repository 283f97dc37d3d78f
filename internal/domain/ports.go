package domain

import (
	"context"
	"errors"
)

// LLMClient defines how the core application interacts with an LLM service.
type LLMClient interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

// PostStore persists community posts. Ordering and timestamps are owned by the store.
type PostStore interface {
	AddPost(ctx context.Context, post *CommunityPost) error
	ListPosts(ctx context.Context, limit int) ([]*CommunityPost, error)
}

var (
	ErrStoreUnavailable = errors.New("post store unavailable")
	ErrSessionNotFound  = errors.New("session not found")
)
