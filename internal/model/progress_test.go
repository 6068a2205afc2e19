package model

import "testing"

// Activity keys must stay byte-compatible with progress rows written by
// earlier releases, or returning users lose their history.
func TestActivityKeyFormats(t *testing.T) {
	if got := QuizActivityKey("quiz-abc"); got != "quiz-abc" {
		t.Errorf("QuizActivityKey = %q, want %q", got, "quiz-abc")
	}
	if got := QuizStepActivityKey("lesson-1", 2); got != "lesson-1_step2" {
		t.Errorf("QuizStepActivityKey = %q, want %q", got, "lesson-1_step2")
	}
	if got := FlashcardActivityKey("lesson-1"); got != "lesson-1_flashcards" {
		t.Errorf("FlashcardActivityKey = %q, want %q", got, "lesson-1_flashcards")
	}
	if got := LessonActivityKey("lesson-1"); got != "lesson-1_completed" {
		t.Errorf("LessonActivityKey = %q, want %q", got, "lesson-1_completed")
	}
}
