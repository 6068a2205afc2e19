package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/config"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/repository"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const flashcardSessionKeyPrefix = "flashcard:session:"

type FlashcardService struct {
	FlashcardRepo *repository.FlashcardRepository
	LessonRepo    *repository.LessonRepository
	ProgressRepo  *repository.ProgressRepository
	Redis         *redis.Client
	SessionTTL    time.Duration
}

func NewFlashcardService(
	flashcardRepo *repository.FlashcardRepository,
	lessonRepo *repository.LessonRepository,
	progressRepo *repository.ProgressRepository,
	rdb *redis.Client,
	cfg *config.Config,
) *FlashcardService {
	return &FlashcardService{
		FlashcardRepo: flashcardRepo,
		LessonRepo:    lessonRepo,
		ProgressRepo:  progressRepo,
		Redis:         rdb,
		SessionTTL:    time.Duration(cfg.Flashcard.SessionTTLHours) * time.Hour,
	}
}

// SessionView is the client-facing snapshot of a session: the current card
// and counters, never the full remaining deck order.
type SessionView struct {
	SessionID string       `json:"sessionId"`
	LessonID  string       `json:"lessonId"`
	Total     int          `json:"total"`
	Position  int          `json:"position"`
	Card      *SessionCard `json:"card,omitempty"`
	Known     int          `json:"known"`
	Unknown   int          `json:"unknown"`
	Complete  bool         `json:"complete"`
}

func sessionView(s *FlashcardSession) *SessionView {
	return &SessionView{
		SessionID: s.ID,
		LessonID:  s.LessonID,
		Total:     len(s.Cards),
		Position:  s.Index,
		Card:      s.Current(),
		Known:     len(s.Known),
		Unknown:   len(s.Unknown),
		Complete:  s.Complete,
	}
}

func (s *FlashcardService) sessionKey(sessionID string) string {
	return flashcardSessionKeyPrefix + sessionID
}

func (s *FlashcardService) saveSession(ctx context.Context, session *FlashcardSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, s.sessionKey(session.ID), payload, s.SessionTTL).Err()
}

func (s *FlashcardService) loadSession(ctx context.Context, sessionID string) (*FlashcardSession, error) {
	val, err := s.Redis.Get(ctx, s.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, util.NotFoundError("flashcard session %q not found or expired", sessionID)
	}
	if err != nil {
		return nil, err
	}

	var session FlashcardSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// StartSession builds a fresh shuffled session over a lesson's deck. An
// earlier unfinished session for the same lesson is simply abandoned; it
// expires with its TTL.
func (s *FlashcardService) StartSession(ctx context.Context, userID uint, languageID, lessonID string) (*SessionView, error) {
	lesson, err := s.LessonRepo.FindByLanguageAndID(languageID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("lesson %q not found in language %q", lessonID, languageID)
		}
		return nil, err
	}
	if !lesson.Published {
		return nil, util.NotFoundError("lesson %q not found in language %q", lessonID, languageID)
	}

	cards, err := s.FlashcardRepo.FindByLesson(lesson.ID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, util.FailedPrecondition("lesson %q has no flashcards", lessonID)
	}

	session := NewFlashcardSession(userID, lesson.ID, cards)
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return sessionView(session), nil
}

func (s *FlashcardService) GetSession(ctx context.Context, userID uint, sessionID string) (*SessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.NewAppError(util.CodePermissionDenied, "session belongs to another user")
	}
	return sessionView(session), nil
}

// AnswerCard marks the current card and advances. The session key is
// rewritten under WATCH, so of two concurrent answers for the same card only
// one lands; the other fails its EXEC instead of advancing twice or, on the
// last card, persisting the tally a second time.
func (s *FlashcardService) AnswerCard(ctx context.Context, userID uint, sessionID string, known bool) (*SessionView, error) {
	key := s.sessionKey(sessionID)

	var session FlashcardSession
	err := s.Redis.Watch(ctx, func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return util.NotFoundError("flashcard session %q not found or expired", sessionID)
		}
		if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(val), &session); err != nil {
			return err
		}
		if session.UserID != userID {
			return util.NewAppError(util.CodePermissionDenied, "session belongs to another user")
		}

		if err := session.Answer(known); err != nil {
			if errors.Is(err, util.ErrSessionComplete) {
				return util.FailedPrecondition("flashcard session %q is already complete", sessionID)
			}
			return err
		}

		payload, err := json.Marshal(&session)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if session.Complete {
				pipe.Del(ctx, key)
			} else {
				pipe.Set(ctx, key, payload, s.SessionTTL)
			}
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return nil, util.FailedPrecondition("flashcard session %q was answered concurrently", sessionID)
	}
	if err != nil {
		return nil, err
	}

	if session.Complete {
		// Only the answer that won the DEL above reaches this write.
		_, err = s.ProgressRepo.RecordFlashcardSession(
			userID,
			model.FlashcardActivityKey(session.LessonID),
			session.Known,
			session.Unknown,
		)
		if err != nil {
			return nil, err
		}
		monitoring.QuizSubmissions.WithLabelValues(string(model.ActivityFlashcards)).Inc()
	}

	return sessionView(&session), nil
}
