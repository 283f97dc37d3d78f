package session

import "github.com/PabloGalante/safehaven/internal/domain"

// Greeting is the assistant message every conversation starts with.
const Greeting = "Hello, and welcome to SafeHaven. I'm here to provide compassionate support and general information about miscarriage. Please remember that while I can offer guidance and resources, I'm not a substitute for professional medical or psychological care. How can I support you today?"

// Conversation is the ordered, append-only message log of one session.
type Conversation struct {
	messages []domain.Message
}

// NewConversation returns a log seeded with the assistant greeting.
func NewConversation() *Conversation {
	return &Conversation{
		messages: []domain.Message{{Role: domain.RoleAssistant, Content: Greeting}},
	}
}

func (c *Conversation) AppendUser(text string) {
	c.messages = append(c.messages, domain.Message{Role: domain.RoleUser, Content: text})
}

func (c *Conversation) AppendAssistant(text string) {
	c.messages = append(c.messages, domain.Message{Role: domain.RoleAssistant, Content: text})
}

// All returns a copy of the log in insertion order.
func (c *Conversation) All() []domain.Message {
	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}
