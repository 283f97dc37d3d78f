package firestore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/PabloGalante/safehaven/internal/domain"
)

// Options selects the Firebase project and credentials.
type Options struct {
	// ProjectID may be empty when CredentialsJSON carries a project_id.
	ProjectID string
	// CredentialsJSON is a service-account key. Empty means application default credentials.
	CredentialsJSON []byte
	// AppID scopes the public collection path; defaults to the project id.
	AppID string
}

type Store struct {
	client *firestore.Client
	appID  string
}

// One client per project, shared by every Store of the process.
var clients = struct {
	sync.Mutex
	byProject map[string]*firestore.Client
}{byProject: make(map[string]*firestore.Client)}

// NewStore creates a Firestore post store, reusing an existing client for the
// same project when there is one.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	projectID := opts.ProjectID
	if projectID == "" && len(opts.CredentialsJSON) > 0 {
		var key struct {
			ProjectID string `json:"project_id"`
		}
		if err := json.Unmarshal(opts.CredentialsJSON, &key); err != nil {
			return nil, fmt.Errorf("parsing firebase credentials: %w", err)
		}
		projectID = key.ProjectID
	}
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := getOrCreateClient(ctx, projectID, opts.CredentialsJSON)
	if err != nil {
		return nil, err
	}

	appID := opts.AppID
	if appID == "" {
		appID = projectID
	}

	return &Store{client: client, appID: appID}, nil
}

func getOrCreateClient(ctx context.Context, projectID string, credentials []byte) (*firestore.Client, error) {
	clients.Lock()
	defer clients.Unlock()

	if c, ok := clients.byProject[projectID]; ok {
		return c, nil
	}

	var opts []option.ClientOption
	if len(credentials) > 0 {
		opts = append(opts, option.WithCredentialsJSON(credentials))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}
	clients.byProject[projectID] = client
	return client, nil
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) postsCol() *firestore.CollectionRef {
	return s.client.Collection(postsPath(s.appID))
}

func postsPath(appID string) string {
	return "artifacts/" + appID + "/public/data/community_posts"
}

// ─────────────────────────────────────────
// PostStore implementation
// ─────────────────────────────────────────

func (s *Store) AddPost(ctx context.Context, post *domain.CommunityPost) error {
	doc := map[string]interface{}{
		"userId":    string(post.UserID),
		"content":   post.Content,
		"timestamp": firestore.ServerTimestamp,
	}

	ref, wr, err := s.postsCol().Add(ctx, doc)
	if err != nil {
		if status.Code(err) == codes.Unavailable {
			return fmt.Errorf("firestore AddPost: %w: %v", domain.ErrStoreUnavailable, err)
		}
		return fmt.Errorf("firestore AddPost: %w", err)
	}

	stampPost(post, ref.ID, wr)
	return nil
}

// stampPost copies the document id and server commit time onto a new post.
func stampPost(post *domain.CommunityPost, id string, wr *firestore.WriteResult) {
	post.ID = domain.PostID(id)
	if wr == nil || wr.UpdateTime.IsZero() {
		post.Timestamp = domain.TimestampUnavailable
		return
	}
	post.CreatedAt = wr.UpdateTime
	post.Timestamp = domain.FormatTimestamp(wr.UpdateTime)
}

func (s *Store) ListPosts(ctx context.Context, limit int) ([]*domain.CommunityPost, error) {
	q := s.postsCol().OrderBy("timestamp", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.CommunityPost
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListPosts: %w", err)
		}

		out = append(out, decodePost(snap.Ref.ID, snap.Data()))
	}
	return out, nil
}

// decodePost reads a stored post leniently: a missing author reads as
// Anonymous and a missing or malformed timestamp as "N/A".
func decodePost(id string, data map[string]interface{}) *domain.CommunityPost {
	post := &domain.CommunityPost{
		ID:        domain.PostID(id),
		UserID:    domain.AnonymousUser,
		Timestamp: domain.TimestampUnavailable,
	}

	if v, ok := data["userId"].(string); ok && v != "" {
		post.UserID = domain.UserID(v)
	}
	if v, ok := data["content"].(string); ok {
		post.Content = v
	}

	switch ts := data["timestamp"].(type) {
	case time.Time:
		post.CreatedAt = ts
		post.Timestamp = domain.FormatTimestamp(ts)
	case *time.Time:
		if ts != nil {
			post.CreatedAt = *ts
			post.Timestamp = domain.FormatTimestamp(*ts)
		}
	}

	return post
}
