package llm

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM answers without any network call. Useful for local runs and tests.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

// GenerateReply echoes the user's question, taken from the last "User:" line
// of the prompt.
func (m *MockLLM) GenerateReply(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	question := prompt
	if i := strings.LastIndex(prompt, "User: "); i >= 0 {
		question = prompt[i+len("User: "):]
	}
	return fmt.Sprintf("Thank you for asking. You said %q. I can share general information, and a healthcare provider can help with anything specific to you.", strings.TrimSpace(question)), nil
}
