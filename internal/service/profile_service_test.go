package service

import (
	"testing"
	"time"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
)

func TestAggregateEmptyHistory(t *testing.T) {
	summary := Aggregate(nil)

	if summary.CompletedLessons != 0 {
		t.Errorf("CompletedLessons = %d, want 0", summary.CompletedLessons)
	}
	if summary.QuizzesTaken != 0 {
		t.Errorf("QuizzesTaken = %d, want 0", summary.QuizzesTaken)
	}
	if summary.AverageQuizScore != 0 {
		t.Errorf("AverageQuizScore = %v, want 0", summary.AverageQuizScore)
	}
	if summary.LastActivityDate != nil {
		t.Errorf("LastActivityDate = %v, want nil", summary.LastActivityDate)
	}
}

func TestAggregateQuizAverage(t *testing.T) {
	records := []model.UserProgress{
		{Type: model.ActivityQuiz, Score: 15, TotalQuestions: 20},
		{Type: model.ActivityQuiz, Score: 10, TotalQuestions: 20},
	}
	summary := Aggregate(records)

	if summary.QuizzesTaken != 2 {
		t.Errorf("QuizzesTaken = %d, want 2", summary.QuizzesTaken)
	}
	// (75 + 50) / 2
	if summary.AverageQuizScore != 62.5 {
		t.Errorf("AverageQuizScore = %v, want 62.5", summary.AverageQuizScore)
	}
}

func TestAggregateSkipsZeroQuestionQuizzes(t *testing.T) {
	records := []model.UserProgress{
		{Type: model.ActivityQuiz, Score: 15, TotalQuestions: 20},
		{Type: model.ActivityQuiz, Score: 0, TotalQuestions: 0},
	}
	summary := Aggregate(records)

	// Both count as taken, but the malformed record contributes 0 to the mean
	// instead of dividing by zero.
	if summary.QuizzesTaken != 2 {
		t.Errorf("QuizzesTaken = %d, want 2", summary.QuizzesTaken)
	}
	if summary.AverageQuizScore != 37.5 {
		t.Errorf("AverageQuizScore = %v, want 37.5", summary.AverageQuizScore)
	}
}

func TestAggregateCompletedLessons(t *testing.T) {
	records := []model.UserProgress{
		{Type: model.ActivityLesson, Completed: true},
		{Type: model.ActivityLesson, Completed: true},
		{Type: model.ActivityLesson, Completed: false},
		{Type: model.ActivityFlashcards, Completed: true}, // not a lesson
	}
	summary := Aggregate(records)

	if summary.CompletedLessons != 2 {
		t.Errorf("CompletedLessons = %d, want 2", summary.CompletedLessons)
	}
}

func TestAggregateLastActivityDate(t *testing.T) {
	early := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 2, 19, 30, 0, 0, time.UTC)

	records := []model.UserProgress{
		{Type: model.ActivityQuiz, Score: 1, TotalQuestions: 1, LastAttemptedAt: &late},
		{Type: model.ActivityLesson, Completed: true, CompletedAt: &early},
	}
	summary := Aggregate(records)

	if summary.LastActivityDate == nil {
		t.Fatal("LastActivityDate = nil, want the latest timestamp")
	}
	if !summary.LastActivityDate.Equal(late) {
		t.Errorf("LastActivityDate = %v, want %v", summary.LastActivityDate, late)
	}
}
