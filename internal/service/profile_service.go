package service

import (
	"errors"
	"time"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/repository"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"gorm.io/gorm"
)

type ProfileService struct {
	UserRepo     *repository.UserRepository
	LessonRepo   *repository.LessonRepository
	ProgressRepo *repository.ProgressRepository
}

func NewProfileService(userRepo *repository.UserRepository, lessonRepo *repository.LessonRepository, progressRepo *repository.ProgressRepository) *ProfileService {
	return &ProfileService{
		UserRepo:     userRepo,
		LessonRepo:   lessonRepo,
		ProgressRepo: progressRepo,
	}
}

// ProfileSummary is the reduction of a user's whole progress history shown
// on the dashboard.
type ProfileSummary struct {
	CompletedLessons int        `json:"completedLessons"`
	QuizzesTaken     int        `json:"quizzesTaken"`
	AverageQuizScore float64    `json:"averageQuizScore"`
	LastActivityDate *time.Time `json:"lastActivityDate"`
}

// Aggregate reduces progress records in a single pass. Quiz records
// contribute score/total as a percentage to the mean; lesson records count
// when completed; the last activity date is the max timestamp seen across
// all record types. Progress histories are bounded by catalog size, so a
// full scan per dashboard view is fine.
func Aggregate(records []model.UserProgress) ProfileSummary {
	var summary ProfileSummary
	var quizPctSum float64
	var latest time.Time

	for _, rec := range records {
		switch rec.Type {
		case model.ActivityLesson:
			if rec.Completed {
				summary.CompletedLessons++
			}
		case model.ActivityQuiz:
			summary.QuizzesTaken++
			if rec.TotalQuestions > 0 {
				quizPctSum += float64(rec.Score) / float64(rec.TotalQuestions) * 100
			}
		}

		if rec.LastAttemptedAt != nil && rec.LastAttemptedAt.After(latest) {
			latest = *rec.LastAttemptedAt
		}
		if rec.CompletedAt != nil && rec.CompletedAt.After(latest) {
			latest = *rec.CompletedAt
		}
	}

	if summary.QuizzesTaken > 0 {
		summary.AverageQuizScore = util.Round2(quizPctSum / float64(summary.QuizzesTaken))
	}
	if !latest.IsZero() {
		summary.LastActivityDate = &latest
	}

	return summary
}

type DashboardResponse struct {
	User     *model.User          `json:"user"`
	Summary  ProfileSummary       `json:"summary"`
	Progress []model.UserProgress `json:"progress"`
}

func (s *ProfileService) GetDashboard(userID uint) (*DashboardResponse, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	records, err := s.ProgressRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		User:     user,
		Summary:  Aggregate(records),
		Progress: records,
	}, nil
}

func (s *ProfileService) GetProgress(userID uint) ([]model.UserProgress, error) {
	return s.ProgressRepo.FindAllByUser(userID)
}

// CompleteLesson records the completion marker for a lesson the user has
// worked through.
func (s *ProfileService) CompleteLesson(userID uint, languageID, lessonID string) (*model.UserProgress, error) {
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

	return s.ProgressRepo.MarkLessonComplete(userID, lessonID)
}
