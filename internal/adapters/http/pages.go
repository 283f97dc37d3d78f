package httpadapter

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/PabloGalante/safehaven/internal/app/chat"
	"github.com/PabloGalante/safehaven/internal/app/forum"
	"github.com/PabloGalante/safehaven/internal/app/journal"
	"github.com/PabloGalante/safehaven/internal/app/session"
	"github.com/PabloGalante/safehaven/internal/content"
	"github.com/PabloGalante/safehaven/internal/domain"
	"github.com/PabloGalante/safehaven/internal/observability"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	msgJournalSaved    = "Your entry has been saved for this session."
	msgJournalEmpty    = "Please write something before saving your journal entry."
	msgPostSaved       = "Your message has been posted!"
	msgPostEmpty       = "Please write something before posting to the community."
	msgPostUnavailable = "The community forum is currently unavailable. Please try again later."
	msgPostFailed      = "Your message could not be posted. Please try again."
	msgSearchPrompt    = "Enter a term in the search box to find information in the knowledge base."
	msgFeedEmpty       = "No community posts yet. Be the first to share!"
)

var navLabels = map[domain.Page]string{
	domain.PageChat:    "AI Support",
	domain.PageJournal: "Journal",
	domain.PageForum:   "Community",
	domain.PageSearch:  "Search",
	domain.PageFAQ:     "FAQs",
	domain.PageAbout:   "About",
}

type pageTemplates map[domain.Page]*template.Template

func parsePages() (pageTemplates, error) {
	out := make(pageTemplates, len(domain.Pages))
	for _, p := range domain.Pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+string(p)+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", p, err)
		}
		out[p] = t
	}
	return out, nil
}

type navItem struct {
	Page   domain.Page
	Label  string
	Active bool
}

// pageView is the data every page template renders from.
type pageView struct {
	AppName    string
	Tagline    string
	Disclaimer string
	Footer     string
	Nav        []navItem
	Page       domain.Page
	Notices    []session.Notice
	UserID     domain.UserID

	ChatAvailable   bool
	UnavailableText string
	Messages        []domain.Message

	Journal []domain.JournalEntry

	StoreAvailable bool
	Posts          []*domain.CommunityPost
	FeedEmptyText  string

	Search       session.SearchState
	SearchPrompt string
	NoResultText string

	FAQs  []content.FAQ
	About content.AboutPage
}

// ─────────────────────────────────────────────
// Page rendering
// ─────────────────────────────────────────────

func (s *Server) handleCurrentPage(w http.ResponseWriter, r *http.Request) {
	st := sessionFromContext(r.Context())
	st.Lock()
	page := st.CurrentPage
	st.Unlock()

	s.render(w, r, page)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["page"]
	page := domain.ParsePage(name)
	if string(page) != name {
		http.NotFound(w, r)
		return
	}

	st := sessionFromContext(r.Context())
	st.Lock()
	st.CurrentPage = page
	st.Unlock()

	s.render(w, r, page)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, page domain.Page) {
	st := sessionFromContext(r.Context())

	// the feed is read outside the session lock
	var posts []*domain.CommunityPost
	if page == domain.PageForum {
		posts = s.forum.List(r.Context())
	}

	st.Lock()
	view := s.buildView(st, page)
	st.Unlock()
	view.Posts = posts

	var buf bytes.Buffer
	if err := s.pages[page].ExecuteTemplate(&buf, "layout", view); err != nil {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("page", string(page)).Msg("render page failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// buildView must be called with the session locked.
func (s *Server) buildView(st *session.State, page domain.Page) pageView {
	nav := make([]navItem, 0, len(domain.Pages))
	for _, p := range domain.Pages {
		nav = append(nav, navItem{Page: p, Label: navLabels[p], Active: p == page})
	}

	view := pageView{
		AppName:    content.AppName,
		Tagline:    content.Tagline,
		Disclaimer: content.Disclaimer,
		Footer:     content.Footer,
		Nav:        nav,
		Page:       page,
		Notices:    st.TakeNotices(),
		UserID:     st.UserID,

		StoreAvailable: st.StoreAvailable && s.forum.Available(),
		FeedEmptyText:  msgFeedEmpty,
		SearchPrompt:   msgSearchPrompt,
	}

	switch page {
	case domain.PageChat:
		view.ChatAvailable = s.chat.State(st) != chat.StateUnavailable
		view.UnavailableText = chat.UnavailableText
		view.Messages = st.Conversation.All()
	case domain.PageJournal:
		view.Journal = s.journal.Entries(st)
	case domain.PageSearch:
		view.Search = st.Search
		view.NoResultText = fmt.Sprintf("No results found for '%s' in the knowledge base.", st.Search.Term)
	case domain.PageFAQ:
		view.FAQs = content.FAQs()
	case domain.PageAbout:
		view.About = content.About()
	}
	return view
}

// ─────────────────────────────────────────────
// Form submissions (post, then redirect to the page)
// ─────────────────────────────────────────────

func (s *Server) submitChat(w http.ResponseWriter, r *http.Request) {
	st := sessionFromContext(r.Context())
	input := r.FormValue("message")

	// the lock is held through generation: one turn in flight per session
	st.Lock()
	st.CurrentPage = domain.PageChat
	res := s.chat.Submit(r.Context(), st, input)
	if res.Outcome == chat.OutcomeUnavailable {
		st.Notify(session.NoticeError, chat.UnavailableText)
	}
	st.Unlock()

	redirect(w, r, domain.PageChat)
}

func (s *Server) submitJournal(w http.ResponseWriter, r *http.Request) {
	st := sessionFromContext(r.Context())
	text := r.FormValue("entry")

	st.Lock()
	st.CurrentPage = domain.PageJournal
	if _, err := s.journal.Save(r.Context(), st, text); err != nil {
		st.Notify(session.NoticeWarning, msgJournalEmpty)
	} else {
		st.Notify(session.NoticeSuccess, msgJournalSaved)
		st.Notify(session.NoticeInfo, journal.Encouragement)
	}
	st.Unlock()

	redirect(w, r, domain.PageJournal)
}

func (s *Server) submitPost(w http.ResponseWriter, r *http.Request) {
	st := sessionFromContext(r.Context())
	text := r.FormValue("content")

	st.Lock()
	st.CurrentPage = domain.PageForum
	userID := st.UserID
	st.Unlock()

	_, err := s.forum.Post(r.Context(), userID, text)

	st.Lock()
	switch {
	case err == nil:
		st.Notify(session.NoticeSuccess, msgPostSaved)
	case errors.Is(err, forum.ErrEmptyPost):
		st.Notify(session.NoticeWarning, msgPostEmpty)
	case errors.Is(err, domain.ErrStoreUnavailable):
		st.Notify(session.NoticeError, msgPostUnavailable)
	default:
		st.Notify(session.NoticeError, msgPostFailed)
	}
	st.Unlock()

	redirect(w, r, domain.PageForum)
}

func (s *Server) submitSearch(w http.ResponseWriter, r *http.Request) {
	st := sessionFromContext(r.Context())
	term := strings.TrimSpace(r.FormValue("term"))

	st.Lock()
	st.CurrentPage = domain.PageSearch
	st.Search = s.runSearch(term)
	st.Unlock()

	redirect(w, r, domain.PageSearch)
}

func (s *Server) runSearch(term string) session.SearchState {
	if term == "" {
		return session.SearchState{Results: []string{}}
	}
	return session.SearchState{
		Submitted: true,
		Term:      term,
		Results:   s.search.Search(term),
	}
}

func redirect(w http.ResponseWriter, r *http.Request, page domain.Page) {
	http.Redirect(w, r, "/"+string(page), http.StatusSeeOther)
}
