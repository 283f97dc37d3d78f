package journal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journalapp "github.com/PabloGalante/safehaven/internal/app/journal"
	"github.com/PabloGalante/safehaven/internal/app/session"
)

func TestSaveAndListNewestFirst(t *testing.T) {
	svc := journalapp.NewService()
	st := session.New(true, true)

	first, err := svc.Save(context.Background(), st, "first thoughts")
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, first.Timestamp)

	_, err = svc.Save(context.Background(), st, "second thoughts")
	require.NoError(t, err)

	entries := svc.Entries(st)
	require.Len(t, entries, 2)
	assert.Equal(t, "second thoughts", entries[0].Content)
	assert.Equal(t, "first thoughts", entries[1].Content)
	assert.Equal(t, "first thoughts", st.Journal[0].Content)
}

func TestSaveRejectsBlank(t *testing.T) {
	svc := journalapp.NewService()
	st := session.New(true, true)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Save(context.Background(), st, text)
		assert.ErrorIs(t, err, journalapp.ErrEmptyEntry)
	}
	assert.Empty(t, st.Journal)
}
