package service

import (
	"testing"
)

func TestScoreAllCorrect(t *testing.T) {
	questions := []GradedQuestion{
		{ID: "q1", CorrectAnswer: "mbolo", Points: 1},
		{ID: "q2", CorrectAnswer: "na som", Points: 1},
	}
	answers := map[string]string{"q1": "mbolo", "q2": "na som"}

	result := Score(questions, answers)

	if result.Score != 2 {
		t.Errorf("Score = %d, want 2", result.Score)
	}
	if result.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d, want 2", result.TotalQuestions)
	}
	if result.Percentage != 100.0 {
		t.Errorf("Percentage = %v, want 100.0", result.Percentage)
	}
}

func TestScoreStrictEquality(t *testing.T) {
	questions := []GradedQuestion{{ID: "q1", CorrectAnswer: "Mbolo"}}

	// Case and whitespace differences never award points.
	for _, submitted := range []string{"mbolo", "Mbolo ", " Mbolo", "MBOLO"} {
		result := Score(questions, map[string]string{"q1": submitted})
		if result.Score != 0 {
			t.Errorf("Score(%q) = %d, want 0", submitted, result.Score)
		}
	}

	result := Score(questions, map[string]string{"q1": "Mbolo"})
	if result.Score != 1 {
		t.Errorf("Score on exact match = %d, want 1", result.Score)
	}
}

func TestScoreUnansweredQuestions(t *testing.T) {
	questions := []GradedQuestion{
		{ID: "q1", CorrectAnswer: "a"},
		{ID: "q2", CorrectAnswer: "b"},
		{ID: "q3", CorrectAnswer: "c"},
	}
	// q2 and q3 are left unanswered: scored as zero, never an error.
	result := Score(questions, map[string]string{"q1": "a"})

	if result.Score != 1 {
		t.Errorf("Score = %d, want 1", result.Score)
	}
	if result.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", result.TotalQuestions)
	}
	if result.Percentage != 33.33 {
		t.Errorf("Percentage = %v, want 33.33", result.Percentage)
	}
}

func TestScoreWeightedQuestions(t *testing.T) {
	questions := []GradedQuestion{
		{ID: "q1", CorrectAnswer: "a", Points: 10},
		{ID: "q2", CorrectAnswer: "b", Points: 10},
	}
	result := Score(questions, map[string]string{"q1": "a", "q2": "b"})

	if result.Score != 20 {
		t.Errorf("Score = %d, want 20", result.Score)
	}
	if result.TotalPossibleScore != 20 {
		t.Errorf("TotalPossibleScore = %d, want 20", result.TotalPossibleScore)
	}
	if result.Percentage != 100.0 {
		t.Errorf("Percentage = %v, want 100.0", result.Percentage)
	}
}

func TestScoreDefaultsZeroPointsToOne(t *testing.T) {
	questions := []GradedQuestion{
		{ID: "q1", CorrectAnswer: "a"},             // no Points set
		{ID: "q2", CorrectAnswer: "b", Points: -5}, // bad data from an old import
	}
	result := Score(questions, map[string]string{"q1": "a", "q2": "b"})

	if result.Score != 2 {
		t.Errorf("Score = %d, want 2", result.Score)
	}
	if result.TotalPossibleScore != 2 {
		t.Errorf("TotalPossibleScore = %d, want 2", result.TotalPossibleScore)
	}
}

func TestScoreEmptyQuiz(t *testing.T) {
	result := Score(nil, map[string]string{"q1": "a"})

	if result.Score != 0 || result.TotalQuestions != 0 || result.Percentage != 0 {
		t.Errorf("empty quiz scored %+v, want all zeros", result)
	}
}

func TestScoreExtraAnswersIgnored(t *testing.T) {
	questions := []GradedQuestion{{ID: "q1", CorrectAnswer: "a"}}
	// Answers for questions that do not exist must not affect the score.
	result := Score(questions, map[string]string{"q1": "a", "ghost": "x"})

	if result.Score != 1 || result.TotalQuestions != 1 {
		t.Errorf("got %+v, want score 1 of 1", result)
	}
}

func TestScorePercentageRounding(t *testing.T) {
	questions := []GradedQuestion{
		{ID: "q1", CorrectAnswer: "a"},
		{ID: "q2", CorrectAnswer: "b"},
		{ID: "q3", CorrectAnswer: "c"},
	}
	result := Score(questions, map[string]string{"q1": "a", "q2": "b"})

	// 2/3 rounds half away from zero to two decimals.
	if result.Percentage != 66.67 {
		t.Errorf("Percentage = %v, want 66.67", result.Percentage)
	}
}
