package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/PabloGalante/safehaven/internal/app/chat"
	"github.com/PabloGalante/safehaven/internal/app/forum"
	"github.com/PabloGalante/safehaven/internal/app/journal"
	"github.com/PabloGalante/safehaven/internal/content"
	"github.com/PabloGalante/safehaven/internal/domain"
	"github.com/PabloGalante/safehaven/internal/observability"
)

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type sessionResponse struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	CurrentPage    string            `json:"current_page"`
	ChatState      string            `json:"chat_state"`
	StoreAvailable bool              `json:"store_available"`
	CreatedAt      time.Time         `json:"created_at"`
	Messages       []messageResponse `json:"messages"`
}

type messageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Outcome          string          `json:"outcome"`
	Intent           string          `json:"intent"`
	UserMessage      messageResponse `json:"user_message"`
	AssistantMessage messageResponse `json:"assistant_message"`
}

type searchResponse struct {
	Term      string   `json:"term"`
	Submitted bool     `json:"submitted"`
	Results   []string `json:"results"`
}

type journalRequest struct {
	Content string `json:"content"`
}

type journalEntryResponse struct {
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}

type saveJournalResponse struct {
	Entry         journalEntryResponse `json:"entry"`
	Encouragement string               `json:"encouragement"`
}

type postRequest struct {
	Content string `json:"content"`
}

type postResponse struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	st := sessionFromContext(r.Context())

	st.Lock()
	resp := sessionResponse{
		ID:             string(st.ID),
		UserID:         string(st.UserID),
		CurrentPage:    string(st.CurrentPage),
		ChatState:      string(s.chat.State(st)),
		StoreAvailable: st.StoreAvailable && s.forum.Available(),
		CreatedAt:      st.CreatedAt,
		Messages:       toMessagesResponse(st.Conversation.All()),
	}
	st.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	st := sessionFromContext(r.Context())
	st.Lock()
	res := s.chat.Submit(r.Context(), st, req.Message)
	st.Unlock()

	switch res.Outcome {
	case chat.OutcomeUnavailable:
		writeError(w, http.StatusServiceUnavailable, chat.UnavailableText)
	case chat.OutcomeIgnored:
		badRequest(w, "message is required")
	default:
		writeJSON(w, http.StatusOK, chatResponse{
			Outcome:          string(res.Outcome),
			Intent:           string(res.Intent),
			UserMessage:      toMessageResponse(*res.UserMessage),
			AssistantMessage: toMessageResponse(*res.AssistantMessage),
		})
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	res := s.runSearch(term)

	writeJSON(w, http.StatusOK, searchResponse{
		Term:      res.Term,
		Submitted: res.Submitted,
		Results:   res.Results,
	})
}

func (s *Server) handleListJournal(w http.ResponseWriter, r *http.Request) {
	st := sessionFromContext(r.Context())

	st.Lock()
	entries := s.journal.Entries(st)
	st.Unlock()

	out := make([]journalEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toJournalEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSaveJournal(w http.ResponseWriter, r *http.Request) {
	var req journalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	st := sessionFromContext(r.Context())
	st.Lock()
	entry, err := s.journal.Save(r.Context(), st, req.Content)
	st.Unlock()

	if errors.Is(err, journal.ErrEmptyEntry) {
		badRequest(w, "content is required")
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, saveJournalResponse{
		Entry:         toJournalEntryResponse(*entry),
		Encouragement: journal.Encouragement,
	})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts := s.forum.List(r.Context())

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	st := sessionFromContext(r.Context())
	st.Lock()
	userID := st.UserID
	st.Unlock()

	post, err := s.forum.Post(r.Context(), userID, req.Content)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, toPostResponse(post))
	case errors.Is(err, forum.ErrEmptyPost):
		badRequest(w, "content is required")
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "community feed unavailable")
	default:
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("create post failed")
		writeError(w, http.StatusBadGateway, "could not post message")
	}
}

func handleFAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, content.FAQs())
}

// ─────────────────────────────────────────────
// Conversion Helpers
// ─────────────────────────────────────────────

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		Role:    string(m.Role),
		Content: m.Content,
	}
}

func toMessagesResponse(msgs []domain.Message) []messageResponse {
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return out
}

func toJournalEntryResponse(e domain.JournalEntry) journalEntryResponse {
	return journalEntryResponse{
		Timestamp: e.Timestamp,
		Content:   e.Content,
	}
}

func toPostResponse(p *domain.CommunityPost) postResponse {
	ts := p.Timestamp
	if ts == "" {
		ts = domain.FormatTimestamp(p.CreatedAt)
	}
	return postResponse{
		ID:        string(p.ID),
		UserID:    string(p.UserID),
		Content:   p.Content,
		Timestamp: ts,
	}
}
