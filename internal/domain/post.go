package domain

import "time"

// CommunityPost is a message shared on the community feed.
// CreatedAt is zero until the store assigns it; Timestamp holds the
// rendered value ("N/A" when the stored value was missing or malformed).
type CommunityPost struct {
	ID        PostID    `json:"id"`
	UserID    UserID    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Timestamp string    `json:"timestamp"`
}

// FormatTimestamp renders a store timestamp, falling back to TimestampUnavailable.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return TimestampUnavailable
	}
	return t.Format(TimestampLayout)
}
