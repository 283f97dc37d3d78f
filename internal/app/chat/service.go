// Package chat runs one question/answer turn against the knowledge document.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/PabloGalante/safehaven/internal/app/session"
	"github.com/PabloGalante/safehaven/internal/domain"
	"github.com/PabloGalante/safehaven/internal/knowledge"
	"github.com/PabloGalante/safehaven/internal/observability"
)

const (
	// EmptyReplyText replaces a successful reply that carried no text.
	EmptyReplyText = "I wasn't able to provide an answer at the moment."
	// FailureReplyText is the only thing a user ever sees of a failed generation call.
	FailureReplyText = "I'm sorry, something went wrong. Please try again."
	// UnavailableText explains why the chat page accepts no input.
	UnavailableText = "The AI chat is currently unavailable. Please ensure your GOOGLE_API_KEY environment variable is set correctly and restart the app."

	suggestionPrefix = "\n\n**Resource Suggestion:** "
)

// TurnState is the position of a session in the chat state machine.
type TurnState string

const (
	StateIdle          TurnState = "idle"
	StateAwaitingReply TurnState = "awaiting_reply"
	StateUnavailable   TurnState = "unavailable"
)

// Outcome tells the caller what a submitted turn did.
type Outcome string

const (
	OutcomeIgnored     Outcome = "ignored"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeAnswered    Outcome = "answered"
	OutcomeFallback    Outcome = "fallback"
)

type TurnResult struct {
	Outcome          Outcome
	Intent           Intent
	UserMessage      *domain.Message
	AssistantMessage *domain.Message
}

type Service struct {
	llm       domain.LLMClient
	ready     bool
	knowledge *knowledge.Store
	metrics   *observability.Metrics
	now       func() time.Time
}

// NewService wires the chat flow. ready reports whether the LLM client
// initialized; both ready and a non-nil llm are required to accept input.
func NewService(
	llm domain.LLMClient,
	ready bool,
	kb *knowledge.Store,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		llm:       llm,
		ready:     ready,
		knowledge: kb,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Available reports whether the generation collaborator can take requests.
func (s *Service) Available() bool {
	return s.ready && s.llm != nil
}

// State returns the resting state of a session: idle, or unavailable for the
// whole session when chat is disabled.
func (s *Service) State(st *session.State) TurnState {
	if !s.Available() || !st.ChatAvailable {
		return StateUnavailable
	}
	return StateIdle
}

// Submit runs one turn. Generation failures never surface as errors: they are
// logged and replaced by FailureReplyText. Each non-empty turn adds exactly two
// messages to the conversation.
func (s *Service) Submit(ctx context.Context, st *session.State, input string) TurnResult {
	log := observability.LoggerFromContext(ctx).With().
		Str("session_id", string(st.ID)).
		Str("user_id", string(st.UserID)).
		Logger()

	if s.State(st) == StateUnavailable {
		log.Warn().Msg("chat submit while unavailable")
		s.metrics.ObserveChatTurn(string(OutcomeUnavailable))
		return TurnResult{Outcome: OutcomeUnavailable}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return TurnResult{Outcome: OutcomeIgnored}
	}

	st.Conversation.AppendUser(input)
	userMsg := &domain.Message{Role: domain.RoleUser, Content: input}

	intent := DetectIntent(input)
	prompt := Compose(input, s.knowledge.Text())

	log.Info().
		Str("state", string(StateAwaitingReply)).
		Str("intent", string(intent)).
		Int("prompt_len", len(prompt)).
		Msg("requesting reply")

	start := s.now()
	reply, err := s.llm.GenerateReply(ctx, prompt)
	s.metrics.ObserveLLM(s.now().Sub(start))

	outcome := OutcomeAnswered
	if err != nil {
		log.Error().Stack().Err(err).Msg("generate reply failed")
		reply = FailureReplyText
		outcome = OutcomeFallback
	} else {
		if strings.TrimSpace(reply) == "" {
			reply = EmptyReplyText
		}
		if suggestion := Suggest(input); suggestion != "" {
			reply += suggestionPrefix + suggestion
		}
	}

	st.Conversation.AppendAssistant(reply)
	s.metrics.ObserveChatTurn(string(outcome))

	log.Info().
		Str("state", string(StateIdle)).
		Str("outcome", string(outcome)).
		Int("message_count", st.Conversation.Len()).
		Msg("chat turn completed")

	return TurnResult{
		Outcome:          outcome,
		Intent:           intent,
		UserMessage:      userMsg,
		AssistantMessage: &domain.Message{Role: domain.RoleAssistant, Content: reply},
	}
}
