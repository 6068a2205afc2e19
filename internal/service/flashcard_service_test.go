package service

import (
	"context"
	"testing"
	"time"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/repository"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFlashcardTestService(t *testing.T) (*FlashcardService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := &FlashcardService{
		FlashcardRepo: repository.NewFlashcardRepository(db),
		LessonRepo:    repository.NewLessonRepository(db),
		ProgressRepo:  repository.NewProgressRepository(db),
		Redis:         newTestRedis(t),
		SessionTTL:    time.Hour,
	}
	return svc, db
}

func seedFlashcardLesson(t *testing.T, db *gorm.DB, published bool) {
	t.Helper()
	lesson := &model.Lesson{
		UUIDBase:   model.UUIDBase{ID: "lsn-1"},
		LanguageID: "duala",
		Title:      "Vocabulary",
		Published:  published,
	}
	require.NoError(t, db.Create(lesson).Error)

	for _, card := range []model.Flashcard{
		{UUIDBase: model.UUIDBase{ID: "card-a"}, LessonID: "lsn-1", Front: "mbolo", Back: "hello", Order: 1},
		{UUIDBase: model.UUIDBase{ID: "card-b"}, LessonID: "lsn-1", Front: "masa", Back: "thank you", Order: 2},
		{UUIDBase: model.UUIDBase{ID: "card-c"}, LessonID: "lsn-1", Front: "na som", Back: "goodbye", Order: 3},
	} {
		require.NoError(t, db.Create(&card).Error)
	}
}

func TestStartSessionRejectsDraftLesson(t *testing.T) {
	svc, db := newFlashcardTestService(t)
	seedFlashcardLesson(t, db, false)

	_, err := svc.StartSession(context.Background(), 7, "duala", "lsn-1")
	requireAppError(t, err, util.CodeNotFound)
}

func TestAnswerCardRun(t *testing.T) {
	svc, db := newFlashcardTestService(t)
	seedFlashcardLesson(t, db, true)
	ctx := context.Background()

	view, err := svc.StartSession(ctx, 7, "duala", "lsn-1")
	require.NoError(t, err)
	require.Equal(t, 3, view.Total)
	require.NotNil(t, view.Card)

	for i, known := range []bool{true, false, true} {
		view, err = svc.AnswerCard(ctx, 7, view.SessionID, known)
		require.NoError(t, err)
		require.Equal(t, i+1, view.Position)
	}

	require.True(t, view.Complete)
	require.Nil(t, view.Card)
	require.Equal(t, 2, view.Known)
	require.Equal(t, 1, view.Unknown)

	progress, err := repository.NewProgressRepository(db).FindByUserAndActivity(7, "lsn-1_flashcards")
	require.NoError(t, err)
	require.Equal(t, 1, progress.Attempts)
	require.Equal(t, 2, progress.Score)
	require.Equal(t, 3, progress.TotalQuestions)
}

func TestAnswerCardAfterCompletionDoesNotRecount(t *testing.T) {
	svc, db := newFlashcardTestService(t)
	seedFlashcardLesson(t, db, true)
	ctx := context.Background()

	view, err := svc.StartSession(ctx, 7, "duala", "lsn-1")
	require.NoError(t, err)
	for range []int{0, 1, 2} {
		view, err = svc.AnswerCard(ctx, 7, view.SessionID, true)
		require.NoError(t, err)
	}
	require.True(t, view.Complete)

	// Completing the deck dropped the session key, so a duplicate answer for
	// the last card finds no session and nothing is counted again.
	_, err = svc.AnswerCard(ctx, 7, view.SessionID, true)
	requireAppError(t, err, util.CodeNotFound)

	progress, err := repository.NewProgressRepository(db).FindByUserAndActivity(7, "lsn-1_flashcards")
	require.NoError(t, err)
	require.Equal(t, 1, progress.Attempts)
}

func TestAnswerCardOwnerCheck(t *testing.T) {
	svc, db := newFlashcardTestService(t)
	seedFlashcardLesson(t, db, true)
	ctx := context.Background()

	view, err := svc.StartSession(ctx, 7, "duala", "lsn-1")
	require.NoError(t, err)

	_, err = svc.AnswerCard(ctx, 8, view.SessionID, true)
	requireAppError(t, err, util.CodePermissionDenied)
}
