package service

import (
	"errors"
	"fmt"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/repository"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/monitoring"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	LessonRepo   *repository.LessonRepository
	ProgressRepo *repository.ProgressRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, lessonRepo *repository.LessonRepository, progressRepo *repository.ProgressRepository) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		LessonRepo:   lessonRepo,
		ProgressRepo: progressRepo,
	}
}

// GradedQuestion is the minimal shape the scorer needs. Both standalone quiz
// questions and questions embedded in lesson steps reduce to it.
type GradedQuestion struct {
	ID            string
	CorrectAnswer string
	Points        int
}

// ScoreResult is the grading outcome for one submission.
type ScoreResult struct {
	Score              int     `json:"score"`
	TotalQuestions     int     `json:"totalQuestions"`
	TotalPossibleScore int     `json:"totalPossibleScore"`
	Percentage         float64 `json:"percentage"`
}

// Score grades a submission. A question is worth its Points (default 1) and
// awards them only on an exact string match between the submitted option and
// the correct answer. A question with no submitted answer scores 0; it is
// never an error.
func Score(questions []GradedQuestion, answers map[string]string) ScoreResult {
	result := ScoreResult{TotalQuestions: len(questions)}

	for _, q := range questions {
		points := q.Points
		if points <= 0 {
			points = 1
		}
		result.TotalPossibleScore += points

		if selected, ok := answers[q.ID]; ok && selected == q.CorrectAnswer {
			result.Score += points
		}
	}

	if result.TotalPossibleScore > 0 {
		result.Percentage = util.Round2(float64(result.Score) / float64(result.TotalPossibleScore) * 100)
	}

	return result
}

func gradedFromQuestions(questions []model.Question) []GradedQuestion {
	graded := make([]GradedQuestion, len(questions))
	for i, q := range questions {
		graded[i] = GradedQuestion{ID: q.ID, CorrectAnswer: q.CorrectAnswer, Points: q.Points}
	}
	return graded
}

func gradedFromStep(questions []model.StepQuestion) []GradedQuestion {
	graded := make([]GradedQuestion, len(questions))
	for i, q := range questions {
		graded[i] = GradedQuestion{ID: q.ID, CorrectAnswer: q.CorrectAnswer, Points: q.Points}
	}
	return graded
}

// SubmitResponse is returned by both submission paths.
type SubmitResponse struct {
	Success        bool    `json:"success"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	Percentage     float64 `json:"percentage"`
	HighScore      int     `json:"highScore"`
	Attempts       int     `json:"attempts"`
	Replayed       bool    `json:"replayed,omitempty"`
	Message        string  `json:"message"`
}

func (s *QuizService) buildResponse(score ScoreResult, attempt *repository.AttemptResult) *SubmitResponse {
	resp := &SubmitResponse{
		Success:        true,
		Score:          score.Score,
		TotalQuestions: score.TotalQuestions,
		Percentage:     score.Percentage,
		Replayed:       attempt.Replayed,
	}
	if attempt.Replayed && attempt.Submission != nil {
		// A replayed submission answers with the result that was counted for
		// its id. The question set may have been edited since, so a regrade
		// could disagree with what the progress row recorded.
		resp.Score = attempt.Submission.Score
		resp.TotalQuestions = attempt.Submission.Total
		resp.Percentage = 0
		if attempt.Submission.Total > 0 {
			resp.Percentage = util.Round2(float64(attempt.Submission.Score) / float64(attempt.Submission.Total) * 100)
		}
	}
	resp.Message = fmt.Sprintf("Quiz submitted successfully! Score: %d/%d", resp.Score, resp.TotalQuestions)
	if attempt.Progress != nil {
		resp.HighScore = attempt.Progress.HighScore
		resp.Attempts = attempt.Progress.Attempts
	}
	return resp
}

// SubmitQuiz grades a standalone quiz server-side and merges the result into
// the caller's progress. The client-supplied submissionID makes retries safe;
// an empty one gets a fresh UUID, which keeps the write correct but
// unretryable.
func (s *QuizService) SubmitQuiz(userID uint, languageID, quizID, submissionID string, answers map[string]string) (*SubmitResponse, error) {
	quiz, err := s.QuizRepo.FindByLanguageAndID(languageID, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("quiz %q not found in language %q", quizID, languageID)
		}
		return nil, err
	}

	if len(quiz.Questions) == 0 {
		return nil, util.FailedPrecondition("quiz %q has no questions", quizID)
	}

	if submissionID == "" {
		submissionID = model.GenerateUUID()
	}

	score := Score(gradedFromQuestions(quiz.Questions), answers)

	attempt, err := s.ProgressRepo.RecordQuizAttempt(
		userID,
		model.QuizActivityKey(quizID),
		submissionID,
		score.Score,
		score.TotalQuestions,
		answers,
	)
	if err != nil {
		return nil, err
	}

	monitoring.QuizSubmissions.WithLabelValues(string(model.ActivityQuiz)).Inc()
	return s.buildResponse(score, attempt), nil
}

// SubmitLessonStepQuiz grades a quiz step embedded in a lesson. It validates
// that the lesson and step exist and that the step is actually gradable, so
// a client can never persist a forged score against arbitrary content.
func (s *QuizService) SubmitLessonStepQuiz(userID uint, languageID, lessonID string, stepIndex int, submissionID string, answers map[string]string) (*SubmitResponse, error) {
	if languageID == "" || lessonID == "" || stepIndex < 0 {
		return nil, util.InvalidArgument("languageId, lessonId and a non-negative stepIndex are required")
	}

	lesson, err := s.LessonRepo.FindByLanguageAndID(languageID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("lesson %q not found in language %q", lessonID, languageID)
		}
		return nil, err
	}

	// Drafts don't exist as far as learner flows are concerned.
	if !lesson.Published {
		return nil, util.NotFoundError("lesson %q not found in language %q", lessonID, languageID)
	}

	if stepIndex >= len(lesson.Steps) {
		return nil, util.NotFoundError("lesson %q has no step %d", lessonID, stepIndex)
	}

	step := lesson.Steps[stepIndex]
	if !step.IsQuiz() {
		return nil, util.FailedPrecondition("step %d of lesson %q is %q, not a quiz", stepIndex, lessonID, step.Type)
	}
	if len(step.Questions) == 0 {
		return nil, util.FailedPrecondition("quiz step %d of lesson %q has no questions", stepIndex, lessonID)
	}

	if submissionID == "" {
		submissionID = model.GenerateUUID()
	}

	score := Score(gradedFromStep(step.Questions), answers)

	attempt, err := s.ProgressRepo.RecordQuizAttempt(
		userID,
		model.QuizStepActivityKey(lessonID, stepIndex),
		submissionID,
		score.Score,
		score.TotalQuestions,
		answers,
	)
	if err != nil {
		return nil, err
	}

	monitoring.QuizSubmissions.WithLabelValues(string(model.ActivityQuiz)).Inc()
	return s.buildResponse(score, attempt), nil
}
