package service

import (
	"testing"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/repository"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizService(t *testing.T) (*QuizService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewLessonRepository(db),
		repository.NewProgressRepository(db),
	)
	return svc, db
}

func seedStepQuizLesson(t *testing.T, db *gorm.DB, published bool) {
	t.Helper()
	lesson := &model.Lesson{
		UUIDBase:   model.UUIDBase{ID: "lsn-1"},
		LanguageID: "duala",
		Title:      "Greetings",
		Published:  published,
		Steps: []model.Step{
			{Type: model.StepIntroduction, Content: "Mbolo"},
			{Type: model.StepQuiz, Questions: []model.StepQuestion{
				{ID: "q1", Text: "Hello?", Options: []string{"Mbolo", "Na som"}, CorrectAnswer: "Mbolo"},
			}},
		},
	}
	require.NoError(t, db.Create(lesson).Error)
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()
	appErr, ok := util.AsAppError(err)
	require.True(t, ok, "got %v, want an *AppError", err)
	require.Equal(t, code, appErr.Code)
}

func TestSubmitLessonStepQuizRejectsDrafts(t *testing.T) {
	svc, db := newQuizService(t)
	seedStepQuizLesson(t, db, false)

	_, err := svc.SubmitLessonStepQuiz(1, "duala", "lsn-1", 1, "sub-1", map[string]string{"q1": "Mbolo"})
	requireAppError(t, err, util.CodeNotFound)
}

func TestSubmitLessonStepQuizPublishedLesson(t *testing.T) {
	svc, db := newQuizService(t)
	seedStepQuizLesson(t, db, true)

	resp, err := svc.SubmitLessonStepQuiz(1, "duala", "lsn-1", 1, "sub-1", map[string]string{"q1": "Mbolo"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Score)
	require.Equal(t, 1, resp.Attempts)
	require.False(t, resp.Replayed)

	progress, err := repository.NewProgressRepository(db).FindByUserAndActivity(1, "lsn-1_step1")
	require.NoError(t, err)
	require.Equal(t, 1, progress.HighScore)
}

func TestSubmitQuizReplayEchoesStoredResult(t *testing.T) {
	svc, db := newQuizService(t)
	quiz := &model.Quiz{
		UUIDBase:   model.UUIDBase{ID: "quiz-1"},
		LanguageID: "duala",
		Title:      "Basics",
		Questions: []model.Question{
			{UUIDBase: model.UUIDBase{ID: "q1"}, QuizID: "quiz-1", Text: "Hello?", Options: []string{"Mbolo", "Na som"}, CorrectAnswer: "Mbolo", Points: 1},
			{UUIDBase: model.UUIDBase{ID: "q2"}, QuizID: "quiz-1", Text: "Thanks?", Options: []string{"Masa", "Njo"}, CorrectAnswer: "Masa", Points: 1},
		},
	}
	require.NoError(t, db.Create(quiz).Error)

	answers := map[string]string{"q1": "Mbolo", "q2": "Masa"}
	first, err := svc.SubmitQuiz(1, "duala", "quiz-1", "sub-1", answers)
	require.NoError(t, err)
	require.Equal(t, 2, first.Score)
	require.Equal(t, 1, first.Attempts)

	// The quiz is edited between the original submission and the retry. The
	// retry must answer with what was graded and counted, not a regrade.
	require.NoError(t, db.Model(&model.Question{}).Where("id = ?", "q1").Update("correct_answer", "Na som").Error)

	replay, err := svc.SubmitQuiz(1, "duala", "quiz-1", "sub-1", answers)
	require.NoError(t, err)
	require.True(t, replay.Replayed)
	require.Equal(t, 2, replay.Score)
	require.Equal(t, 2, replay.TotalQuestions)
	require.Equal(t, 100.0, replay.Percentage)
	require.Equal(t, 1, replay.Attempts)
	require.Equal(t, 2, replay.HighScore)
}

func TestBuildResponseReplayUsesStoredSubmission(t *testing.T) {
	svc := &QuizService{}
	score := Score([]GradedQuestion{{ID: "q1", CorrectAnswer: "a"}}, map[string]string{"q1": "a"})

	attempt := &repository.AttemptResult{
		Replayed:   true,
		Submission: &model.QuizSubmissionRecord{Score: 3, Total: 4},
		Progress:   &model.UserProgress{HighScore: 3, Attempts: 2},
	}
	resp := svc.buildResponse(score, attempt)

	require.True(t, resp.Replayed)
	require.Equal(t, 3, resp.Score)
	require.Equal(t, 4, resp.TotalQuestions)
	require.Equal(t, 75.0, resp.Percentage)
	require.Equal(t, 2, resp.Attempts)
}
