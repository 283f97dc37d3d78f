// Package httpadapter serves the SafeHaven pages and JSON API.
package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PabloGalante/safehaven/internal/app/chat"
	"github.com/PabloGalante/safehaven/internal/app/forum"
	"github.com/PabloGalante/safehaven/internal/app/journal"
	"github.com/PabloGalante/safehaven/internal/app/session"
	"github.com/PabloGalante/safehaven/internal/knowledge"
	"github.com/PabloGalante/safehaven/internal/observability"
)

// Deps are the collaborators the HTTP layer dispatches to.
type Deps struct {
	Chat     *chat.Service
	Journal  *journal.Service
	Forum    *forum.Service
	Search   *knowledge.Index
	Sessions session.Store
	Metrics  *observability.Metrics

	// SecureCookies marks the session cookie Secure; enable behind TLS.
	SecureCookies bool
}

type Server struct {
	chat          *chat.Service
	journal       *journal.Service
	forum         *forum.Service
	search        *knowledge.Index
	sessions      session.Store
	metrics       *observability.Metrics
	pages         pageTemplates
	secureCookies bool
}

func NewServer(d Deps) (http.Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		chat:          d.Chat,
		journal:       d.Journal,
		forum:         d.Forum,
		search:        d.Search,
		sessions:      d.Sessions,
		metrics:       d.Metrics,
		pages:         pages,
		secureCookies: d.SecureCookies,
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.withSession)
	api.HandleFunc("/session", s.handleGetSession).Methods(http.MethodGet)
	api.HandleFunc("/chat", s.handleChat).Methods(http.MethodPost)
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/journal", s.handleListJournal).Methods(http.MethodGet)
	api.HandleFunc("/journal", s.handleSaveJournal).Methods(http.MethodPost)
	api.HandleFunc("/posts", s.handleListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", s.handleCreatePost).Methods(http.MethodPost)
	api.HandleFunc("/faqs", handleFAQs).Methods(http.MethodGet)

	web := r.PathPrefix("/").Subrouter()
	web.Use(s.withSession)
	web.HandleFunc("/", s.handleCurrentPage).Methods(http.MethodGet)
	web.HandleFunc("/{page}", s.handlePage).Methods(http.MethodGet)
	web.HandleFunc("/chat", s.submitChat).Methods(http.MethodPost)
	web.HandleFunc("/journal", s.submitJournal).Methods(http.MethodPost)
	web.HandleFunc("/community", s.submitPost).Methods(http.MethodPost)
	web.HandleFunc("/search", s.submitSearch).Methods(http.MethodPost)

	return chainMiddlewares(r, withLogging, withRecovery, withRequestID), nil
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}

func internalError(w http.ResponseWriter, _ error) {
	writeError(w, http.StatusInternalServerError, "internal server error")
}
