package session_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/safehaven/internal/app/session"
	"github.com/PabloGalante/safehaven/internal/domain"
)

func TestConversationStartsWithGreeting(t *testing.T) {
	c := session.NewConversation()

	msgs := c.All()
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.RoleAssistant, msgs[0].Role)
	assert.Equal(t, session.Greeting, msgs[0].Content)
}

func TestConversationAppendsInOrder(t *testing.T) {
	c := session.NewConversation()
	c.AppendUser("hi")
	c.AppendAssistant("hello")
	c.AppendUser("hi")

	msgs := c.All()
	require.Len(t, msgs, 4)
	assert.Equal(t, domain.Message{Role: domain.RoleUser, Content: "hi"}, msgs[1])
	assert.Equal(t, domain.Message{Role: domain.RoleAssistant, Content: "hello"}, msgs[2])
	assert.Equal(t, domain.Message{Role: domain.RoleUser, Content: "hi"}, msgs[3])
}

func TestConversationAllReturnsCopy(t *testing.T) {
	c := session.NewConversation()
	msgs := c.All()
	msgs[0].Content = "changed"

	assert.Equal(t, session.Greeting, c.All()[0].Content)
}

func TestNewStateDefaults(t *testing.T) {
	st := session.New(true, false)

	assert.NotEmpty(t, st.ID)
	assert.Regexp(t, regexp.MustCompile(`^user_[0-9a-f]{8}$`), string(st.UserID))
	assert.Equal(t, domain.PageChat, st.CurrentPage)
	assert.Equal(t, 1, st.Conversation.Len())
	assert.Empty(t, st.Journal)
	assert.False(t, st.Search.Submitted)
	assert.True(t, st.ChatAvailable)
	assert.False(t, st.StoreAvailable)
}

func TestNoticesAreShownOnce(t *testing.T) {
	st := session.New(true, true)
	st.Notify(session.NoticeWarning, "write something")

	got := st.TakeNotices()
	require.Len(t, got, 1)
	assert.Equal(t, session.NoticeWarning, got[0].Level)
	assert.Empty(t, st.TakeNotices())
}

func TestUserIDsDiffer(t *testing.T) {
	assert.NotEqual(t, session.NewUserID(), session.NewUserID())
}
