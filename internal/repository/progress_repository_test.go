package repository

import (
	"fmt"
	"testing"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.UserProgress{},
		&model.QuizSubmissionRecord{},
	))
	return db
}

func TestRecordQuizAttemptMergesCounters(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	scores := []int{3, 5, 2}
	for i, score := range scores {
		res, err := repo.RecordQuizAttempt(7, "quiz-1", fmt.Sprintf("sub-%d", i), score, 5, map[string]string{"q1": "a"})
		require.NoError(t, err)
		require.False(t, res.Replayed)
		require.Equal(t, i+1, res.Progress.Attempts)
	}

	progress, err := repo.FindByUserAndActivity(7, "quiz-1")
	require.NoError(t, err)
	require.Equal(t, 3, progress.Attempts)
	require.Equal(t, 5, progress.HighScore) // best of 3, 5, 2
	require.Equal(t, 2, progress.Score)     // latest attempt
	require.True(t, progress.Completed)
}

func TestRecordQuizAttemptIsolatesUsersAndActivities(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	_, err := repo.RecordQuizAttempt(7, "quiz-1", "sub-a", 4, 5, nil)
	require.NoError(t, err)
	_, err = repo.RecordQuizAttempt(7, "quiz-2", "sub-b", 1, 5, nil)
	require.NoError(t, err)
	_, err = repo.RecordQuizAttempt(8, "quiz-1", "sub-c", 2, 5, nil)
	require.NoError(t, err)

	progress, err := repo.FindByUserAndActivity(7, "quiz-1")
	require.NoError(t, err)
	require.Equal(t, 1, progress.Attempts)
	require.Equal(t, 4, progress.HighScore)
}

func TestRecordQuizAttemptReplayIsNoOp(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	first, err := repo.RecordQuizAttempt(7, "quiz-1", "dup", 4, 5, map[string]string{"q1": "a"})
	require.NoError(t, err)
	require.False(t, first.Replayed)

	// Same submission id with a different grade: nothing may be re-counted,
	// and the record of the original write comes back.
	replay, err := repo.RecordQuizAttempt(7, "quiz-1", "dup", 9, 9, map[string]string{"q1": "b"})
	require.NoError(t, err)
	require.True(t, replay.Replayed)
	require.NotNil(t, replay.Submission)
	require.Equal(t, 4, replay.Submission.Score)
	require.Equal(t, 5, replay.Submission.Total)

	progress, err := repo.FindByUserAndActivity(7, "quiz-1")
	require.NoError(t, err)
	require.Equal(t, 1, progress.Attempts)
	require.Equal(t, 4, progress.HighScore)
	require.Equal(t, 4, progress.Score)
}

func TestRecordFlashcardSessionMergesCounters(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	_, err := repo.RecordFlashcardSession(7, "lesson-1_flashcards", []string{"a", "b", "c"}, []string{"d"})
	require.NoError(t, err)

	progress, err := repo.RecordFlashcardSession(7, "lesson-1_flashcards", []string{"a"}, []string{"b", "c", "d"})
	require.NoError(t, err)
	require.Equal(t, 2, progress.Attempts)
	require.Equal(t, 3, progress.HighScore)
	require.Equal(t, 1, progress.Score)
	require.Equal(t, []string{"a"}, progress.KnownCards)
	require.Equal(t, []string{"b", "c", "d"}, progress.UnknownCards)
}

func TestMarkLessonCompleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	for i := 0; i < 2; i++ {
		progress, err := repo.MarkLessonComplete(7, "lesson-1")
		require.NoError(t, err)
		require.True(t, progress.Completed)
		require.Equal(t, "lesson-1_completed", progress.ActivityID)
		require.Equal(t, 1, progress.Attempts)
	}

	var count int64
	require.NoError(t, db.Model(&model.UserProgress{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}
