package service

import (
	"math/rand"
	"time"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"
)

// SessionCard is one card of a session deck, in presentation order.
type SessionCard struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// FlashcardSession walks a shuffled deck forward-only: every answer advances
// to the next card, no card is revisited, and after the last card the
// session is complete. A restart means a fresh session, never a resume.
type FlashcardSession struct {
	ID        string        `json:"id"`
	UserID    uint          `json:"userId"`
	LessonID  string        `json:"lessonId"`
	Cards     []SessionCard `json:"cards"`
	Index     int           `json:"index"`
	Known     []string      `json:"known"`
	Unknown   []string      `json:"unknown"`
	Complete  bool          `json:"complete"`
	StartedAt time.Time     `json:"startedAt"`
}

// NewFlashcardSession shuffles the deck and starts at the first card.
func NewFlashcardSession(userID uint, lessonID string, cards []model.Flashcard) *FlashcardSession {
	deck := make([]SessionCard, len(cards))
	for i, c := range cards {
		deck[i] = SessionCard{ID: c.ID, Front: c.Front, Back: c.Back}
	}
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	return &FlashcardSession{
		ID:        model.GenerateUUID(),
		UserID:    userID,
		LessonID:  lessonID,
		Cards:     deck,
		StartedAt: time.Now(),
	}
}

// Current returns the card being presented, or nil once complete.
func (s *FlashcardSession) Current() *SessionCard {
	if s.Complete || s.Index >= len(s.Cards) {
		return nil
	}
	return &s.Cards[s.Index]
}

// Answer marks the current card known or unknown and advances. Answering the
// final card transitions the session to complete.
func (s *FlashcardSession) Answer(known bool) error {
	if s.Complete {
		return util.ErrSessionComplete
	}

	card := s.Cards[s.Index]
	if known {
		s.Known = append(s.Known, card.ID)
	} else {
		s.Unknown = append(s.Unknown, card.ID)
	}

	s.Index++
	if s.Index >= len(s.Cards) {
		s.Complete = true
	}
	return nil
}

// KnownCount is the session score.
func (s *FlashcardSession) KnownCount() int {
	return len(s.Known)
}
