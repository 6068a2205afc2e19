package repository

import (
	"encoding/json"
	"time"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// AttemptResult is what a merge of one submission produced. Replayed means
// the submission id had been recorded before and nothing was re-counted;
// Submission is then the record of the original write, so callers can echo
// the result that was actually counted.
type AttemptResult struct {
	Progress   *model.UserProgress
	Submission *model.QuizSubmissionRecord
	Replayed   bool
}

func (r *ProgressRepository) FindByUserAndActivity(userID uint, activityID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND activity_id = ?", userID, activityID).First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) FindAllByUser(userID uint) ([]model.UserProgress, error) {
	var records []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).Order("updated_at DESC").Find(&records).Error
	return records, err
}

// RecordQuizAttempt merges one graded submission into the (user, activity)
// progress row. The whole merge runs in one transaction with the counters
// computed in SQL: `attempts + 1` and the high-score CASE cannot lose
// updates under concurrent submissions, and the unique submission id makes
// a client retry a no-op rather than a second attempt.
func (r *ProgressRepository) RecordQuizAttempt(userID uint, activityID, submissionID string, score, total int, answers map[string]string) (*AttemptResult, error) {
	result := &AttemptResult{}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		submission := model.QuizSubmissionRecord{
			SubmissionID: submissionID,
			UserID:       userID,
			ActivityID:   activityID,
			Score:        score,
			Total:        total,
			Answers:      answers,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "submission_id"}},
			DoNothing: true,
		}).Create(&submission)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			result.Replayed = true
			var existing model.QuizSubmissionRecord
			if err := tx.Where("submission_id = ?", submissionID).First(&existing).Error; err != nil {
				return err
			}
			result.Submission = &existing
			return nil
		}
		result.Submission = &submission

		now := time.Now()
		answersJSON, err := json.Marshal(answers)
		if err != nil {
			return err
		}

		progress := model.UserProgress{
			UserID:          userID,
			ActivityID:      activityID,
			Type:            model.ActivityQuiz,
			Score:           score,
			TotalQuestions:  total,
			HighScore:       score,
			Attempts:        1,
			Completed:       true,
			Answers:         answers,
			CompletedAt:     &now,
			LastAttemptedAt: &now,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "activity_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"score":             score,
				"total_questions":   total,
				"high_score":        gorm.Expr("CASE WHEN high_score > ? THEN high_score ELSE ? END", score, score),
				"attempts":          gorm.Expr("attempts + 1"),
				"answers":           string(answersJSON),
				"last_attempted_at": now,
				"updated_at":        now,
			}),
		}).Create(&progress).Error; err != nil {
			return err
		}

		return tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("last_activity", now).
			Error
	})
	if err != nil {
		return nil, err
	}

	progress, err := r.FindByUserAndActivity(userID, activityID)
	if err != nil {
		return nil, err
	}
	result.Progress = progress
	return result, nil
}

// RecordFlashcardSession persists a finished deck walk under the lesson's
// flashcard activity key. Same merge rules as quiz attempts.
func (r *ProgressRepository) RecordFlashcardSession(userID uint, activityID string, known, unknown []string) (*model.UserProgress, error) {
	score := len(known)
	total := len(known) + len(unknown)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		knownJSON, err := json.Marshal(known)
		if err != nil {
			return err
		}
		unknownJSON, err := json.Marshal(unknown)
		if err != nil {
			return err
		}

		progress := model.UserProgress{
			UserID:          userID,
			ActivityID:      activityID,
			Type:            model.ActivityFlashcards,
			Score:           score,
			TotalQuestions:  total,
			HighScore:       score,
			Attempts:        1,
			Completed:       true,
			KnownCards:      known,
			UnknownCards:    unknown,
			CompletedAt:     &now,
			LastAttemptedAt: &now,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "activity_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"score":             score,
				"total_questions":   total,
				"high_score":        gorm.Expr("CASE WHEN high_score > ? THEN high_score ELSE ? END", score, score),
				"attempts":          gorm.Expr("attempts + 1"),
				"known_cards":       string(knownJSON),
				"unknown_cards":     string(unknownJSON),
				"last_attempted_at": now,
				"updated_at":        now,
			}),
		}).Create(&progress).Error; err != nil {
			return err
		}

		return tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("last_activity", now).
			Error
	})
	if err != nil {
		return nil, err
	}

	return r.FindByUserAndActivity(userID, activityID)
}

// MarkLessonComplete writes the lesson completion marker. Completing an
// already-completed lesson only refreshes the timestamp.
func (r *ProgressRepository) MarkLessonComplete(userID uint, lessonID string) (*model.UserProgress, error) {
	activityID := model.LessonActivityKey(lessonID)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		progress := model.UserProgress{
			UserID:      userID,
			ActivityID:  activityID,
			Type:        model.ActivityLesson,
			Completed:   true,
			Attempts:    1,
			CompletedAt: &now,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "activity_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"completed":    true,
				"completed_at": now,
				"updated_at":   now,
			}),
		}).Create(&progress).Error; err != nil {
			return err
		}

		return tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("last_activity", now).
			Error
	})
	if err != nil {
		return nil, err
	}

	return r.FindByUserAndActivity(userID, activityID)
}
