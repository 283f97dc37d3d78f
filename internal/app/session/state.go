// Package session holds the typed per-user state of one browsing session.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGalante/safehaven/internal/domain"
)

// SearchState remembers the last knowledge-base search. Submitted distinguishes
// "no term given" from "term given, nothing found"; both have empty Results.
type SearchState struct {
	Submitted bool
	Term      string
	Results   []string
}

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is an inline message shown once on the next render.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// State is everything the application keeps for one session. It is owned by a
// single session; callers that serve concurrent requests hold Lock while using it.
type State struct {
	mu sync.Mutex

	ID          domain.SessionID
	UserID      domain.UserID
	CurrentPage domain.Page
	CreatedAt   time.Time

	Conversation *Conversation
	Journal      []domain.JournalEntry
	Search       SearchState

	// ChatAvailable is false for the whole session when the LLM failed to initialize.
	ChatAvailable bool
	// StoreAvailable is false when the community post store could not be reached at startup.
	StoreAvailable bool

	notices []Notice
}

// New creates the state of a fresh session with its defaults.
func New(chatAvailable, storeAvailable bool) *State {
	return &State{
		ID:             NewSessionID(),
		UserID:         NewUserID(),
		CurrentPage:    domain.PageChat,
		CreatedAt:      time.Now(),
		Conversation:   NewConversation(),
		Journal:        []domain.JournalEntry{},
		ChatAvailable:  chatAvailable,
		StoreAvailable: storeAvailable,
	}
}

func (s *State) Lock()   { s.mu.Lock() }
func (s *State) Unlock() { s.mu.Unlock() }

// Notify queues a notice for the next render.
func (s *State) Notify(level NoticeLevel, text string) {
	s.notices = append(s.notices, Notice{Level: level, Text: text})
}

// TakeNotices returns pending notices and clears them.
func (s *State) TakeNotices() []Notice {
	out := s.notices
	s.notices = nil
	return out
}

// NewSessionID returns an opaque random session key.
func NewSessionID() domain.SessionID {
	return domain.SessionID(uuid.NewString())
}

// NewUserID returns the public author token of a session: "user_" followed by
// eight random hex characters. It is not a credential.
func NewUserID() domain.UserID {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return domain.UserID("user_" + raw[:8])
}
