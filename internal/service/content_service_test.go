package service

import (
	"testing"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/repository"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"gorm.io/gorm"
)

func assertInvalidArgument(t *testing.T, err error) {
	t.Helper()
	appErr, ok := util.AsAppError(err)
	if !ok {
		t.Fatalf("got %v, want an *AppError", err)
	}
	if appErr.Code != util.CodeInvalidArgument {
		t.Errorf("code = %q, want %q", appErr.Code, util.CodeInvalidArgument)
	}
}

func TestValidateQuestion(t *testing.T) {
	if err := validateQuestion("How do you greet?", []string{"mbolo", "na som"}, "mbolo", 1); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	assertInvalidArgument(t, validateQuestion("", []string{"a", "b"}, "a", 1))
	assertInvalidArgument(t, validateQuestion("q", []string{"only one"}, "only one", 1))
	assertInvalidArgument(t, validateQuestion("q", []string{"a", "b"}, "c", 1))
	assertInvalidArgument(t, validateQuestion("q", []string{"a", "b"}, "a", -1))
}

func TestValidateSteps(t *testing.T) {
	good := []model.Step{
		{Type: model.StepIntroduction, Content: "Welcome"},
		{Type: model.StepVocabulary, Items: []model.VocabularyItem{{Term: "mbolo", Translation: "hello"}}},
		{Type: model.StepQuiz, Questions: []model.StepQuestion{
			{ID: "q1", Text: "Pick one", Options: []string{"a", "b"}, CorrectAnswer: "a"},
		}},
		{Type: model.StepSummary, Content: "Done"},
	}
	if err := validateSteps(good); err != nil {
		t.Errorf("valid steps rejected: %v", err)
	}

	assertInvalidArgument(t, validateSteps([]model.Step{{Type: model.StepIntroduction}}))
	assertInvalidArgument(t, validateSteps([]model.Step{{Type: model.StepVocabulary}}))
	assertInvalidArgument(t, validateSteps([]model.Step{{Type: model.StepQuiz}}))
	assertInvalidArgument(t, validateSteps([]model.Step{{Type: "karaoke", Content: "x"}}))

	// A quiz step question whose answer is not among its options must be
	// rejected before it can ever reach the grader.
	assertInvalidArgument(t, validateSteps([]model.Step{
		{Type: model.StepQuiz, Questions: []model.StepQuestion{
			{ID: "q1", Text: "Pick one", Options: []string{"a", "b"}, CorrectAnswer: "z"},
		}},
	}))
}

func newContentTestService(t *testing.T) (*ContentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewContentService(
		repository.NewLanguageRepository(db),
		repository.NewLessonRepository(db),
		repository.NewQuizRepository(db),
		repository.NewFlashcardRepository(db),
		nil,
		newTestRedis(t),
	)
	return svc, db
}

func TestGetFlashcardsHidesDraftLessons(t *testing.T) {
	svc, db := newContentTestService(t)

	lesson := &model.Lesson{UUIDBase: model.UUIDBase{ID: "lsn-1"}, LanguageID: "duala", Title: "Vocabulary"}
	if err := db.Create(lesson).Error; err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	card := &model.Flashcard{UUIDBase: model.UUIDBase{ID: "card-a"}, LessonID: "lsn-1", Front: "mbolo", Back: "hello"}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("create flashcard: %v", err)
	}

	// While the lesson is a draft, its deck reads as not-found for everyone
	// but content creators.
	_, err := svc.GetFlashcards("duala", "lsn-1", false)
	appErr, ok := util.AsAppError(err)
	if !ok || appErr.Code != util.CodeNotFound {
		t.Fatalf("GetFlashcards on draft = %v, want not-found", err)
	}

	cards, err := svc.GetFlashcards("duala", "lsn-1", true)
	if err != nil || len(cards) != 1 {
		t.Fatalf("GetFlashcards as creator = %v cards, err %v; want 1 card", len(cards), err)
	}

	if err := db.Model(&model.Lesson{}).Where("id = ?", "lsn-1").Update("published", true).Error; err != nil {
		t.Fatalf("publish lesson: %v", err)
	}
	cards, err = svc.GetFlashcards("duala", "lsn-1", false)
	if err != nil || len(cards) != 1 {
		t.Fatalf("GetFlashcards after publish = %v cards, err %v; want 1 card", len(cards), err)
	}
}
