package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGalante/safehaven/internal/app/session"
	"github.com/PabloGalante/safehaven/internal/domain"
	"github.com/PabloGalante/safehaven/internal/observability"
)

const (
	requestIDHeader = "X-Request-ID"
	// SessionCookie carries the opaque session key.
	SessionCookie = "safehaven_session"
)

type ctxKey string

const ctxKeySession ctxKey = "session"

// statusRecorder captures the response status for access logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestID assigns every request an id, reusing the caller's when present.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(observability.WithRequestID(r.Context(), id)))
	})
}

// withLogging wraps a handler and logs every request.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		observability.LoggerFromContext(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}

// withRecovery turns a panic into a 500 so one bad request cannot stop the server.
func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				observability.LoggerFromContext(r.Context()).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("recovered from panic")
				if strings.HasPrefix(r.URL.Path, "/api/") {
					internalError(w, errors.New("panic"))
					return
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// withSession resolves the session named by the cookie, creating a fresh one
// (and setting the cookie) when it is missing or expired.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := s.lookupSession(r)
		if st == nil {
			st = session.New(s.chat.Available(), s.forum.Available())
			s.sessions.Save(st)
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    string(st.ID),
				Path:     "/",
				HttpOnly: true,
				Secure:   s.secureCookies,
				SameSite: http.SameSiteLaxMode,
			})
			observability.LoggerFromContext(r.Context()).Info().
				Str("session_id", string(st.ID)).
				Str("user_id", string(st.UserID)).
				Msg("session started")
		}

		ctx := context.WithValue(r.Context(), ctxKeySession, st)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) lookupSession(r *http.Request) *session.State {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	st, err := s.sessions.Get(domain.SessionID(c.Value))
	if err != nil {
		return nil
	}
	return st
}

func sessionFromContext(ctx context.Context) *session.State {
	st, _ := ctx.Value(ctxKeySession).(*session.State)
	return st
}

// chainMiddlewares applies multiple middlewares in order.
func chainMiddlewares(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
