package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/PabloGalante/safehaven/internal/app/session"
	"github.com/PabloGalante/safehaven/internal/domain"
	"github.com/PabloGalante/safehaven/internal/observability"
)

// ErrEmptyEntry is returned when the submitted text has no content.
var ErrEmptyEntry = errors.New("journal entry is empty")

// Encouragement is shown after a successful save.
const Encouragement = "Thank you for sharing your thoughts in your journal. It takes courage to express your feelings, and this is a valuable step in your healing journey. Remember that your feelings are valid, and it's okay to feel whatever you're feeling."

// Service holds the logic of writing and reading session journal entries.
// Entries live in the session state only and are never persisted.
type Service struct {
	now func() time.Time
}

// NewService creates a journal service.
func NewService() *Service {
	return &Service{
		now: time.Now,
	}
}

// Save appends text as a new entry stamped with the current local time.
func (s *Service) Save(ctx context.Context, st *session.State, text string) (*domain.JournalEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyEntry
	}

	entry := domain.JournalEntry{
		Timestamp: s.now().Format(domain.TimestampLayout),
		Content:   text,
	}
	st.Journal = append(st.Journal, entry)

	observability.LoggerFromContext(ctx).Info().
		Str("session_id", string(st.ID)).
		Int("entries", len(st.Journal)).
		Msg("journal entry saved")

	return &entry, nil
}

// Entries returns the session's entries, newest first.
func (s *Service) Entries(st *session.State) []domain.JournalEntry {
	out := make([]domain.JournalEntry, 0, len(st.Journal))
	for i := len(st.Journal) - 1; i >= 0; i-- {
		out = append(out, st.Journal[i])
	}
	return out
}
