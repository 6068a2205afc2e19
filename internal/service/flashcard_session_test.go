package service

import (
	"testing"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deck(n int) []model.Flashcard {
	cards := make([]model.Flashcard, n)
	for i := range cards {
		cards[i] = model.Flashcard{
			UUIDBase: model.UUIDBase{ID: model.GenerateUUID()},
			Front:    "front",
			Back:     "back",
		}
	}
	return cards
}

func TestSessionWalksDeckForwardOnly(t *testing.T) {
	session := NewFlashcardSession(1, "greetings-01", deck(5))

	require.Len(t, session.Cards, 5)
	require.False(t, session.Complete)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		card := session.Current()
		require.NotNil(t, card, "card %d", i)
		assert.False(t, seen[card.ID], "card %q presented twice", card.ID)
		seen[card.ID] = true

		require.NoError(t, session.Answer(i%2 == 0))
	}

	assert.True(t, session.Complete)
	assert.Nil(t, session.Current())
}

func TestSessionCompletesExactlyOnce(t *testing.T) {
	session := NewFlashcardSession(1, "greetings-01", deck(2))

	require.NoError(t, session.Answer(true))
	require.False(t, session.Complete)
	require.NoError(t, session.Answer(false))
	require.True(t, session.Complete)

	// Further answers are rejected rather than re-counted.
	err := session.Answer(true)
	assert.ErrorIs(t, err, util.ErrSessionComplete)
	assert.Equal(t, 1, session.KnownCount())
	assert.Len(t, session.Unknown, 1)
}

func TestSessionCountsPartition(t *testing.T) {
	const n = 7
	session := NewFlashcardSession(42, "food-02", deck(n))

	for i := 0; i < n; i++ {
		require.NoError(t, session.Answer(i < 3))
	}

	assert.Equal(t, 3, session.KnownCount())
	assert.Equal(t, n, len(session.Known)+len(session.Unknown))
}

func TestSessionShuffleKeepsDeckIntact(t *testing.T) {
	cards := deck(10)
	session := NewFlashcardSession(1, "animals-03", cards)

	want := map[string]bool{}
	for _, c := range cards {
		want[c.ID] = true
	}
	for _, c := range session.Cards {
		assert.True(t, want[c.ID], "unexpected card %q in session", c.ID)
	}
	assert.Len(t, session.Cards, len(cards))
}
