package model

import (
	"fmt"
	"time"
)

type ActivityType string

const (
	ActivityQuiz       ActivityType = "quiz"
	ActivityFlashcards ActivityType = "flashcards"
	ActivityLesson     ActivityType = "lesson"
)

// Activity key formats. Earlier exports of the product used these exact
// strings, so they are kept verbatim for data compatibility.
func QuizActivityKey(quizID string) string {
	return quizID
}

func QuizStepActivityKey(lessonID string, stepIndex int) string {
	return fmt.Sprintf("%s_step%d", lessonID, stepIndex)
}

func FlashcardActivityKey(lessonID string) string {
	return lessonID + "_flashcards"
}

func LessonActivityKey(lessonID string) string {
	return lessonID + "_completed"
}

// UserProgress is the single canonical progress record: one row per
// (user, activity) pair. Attempt counting and high-score tracking happen
// in SQL so concurrent submissions cannot lose updates.
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID          uint              `gorm:"uniqueIndex:idx_user_activity;not null" json:"userId"`
	ActivityID      string            `gorm:"uniqueIndex:idx_user_activity;size:128;not null" json:"activityId"`
	Type            ActivityType      `gorm:"size:16;not null" json:"type"`
	Score           int               `gorm:"default:0" json:"score"`
	TotalQuestions  int               `gorm:"default:0" json:"totalQuestions"`
	HighScore       int               `gorm:"default:0" json:"highScore"`
	Attempts        int               `gorm:"default:0" json:"attempts"`
	Completed       bool              `gorm:"default:false" json:"completed"`
	Answers         map[string]string `gorm:"type:json;serializer:json" json:"answers,omitempty"`
	KnownCards      []string          `gorm:"type:json;serializer:json" json:"knownCards,omitempty"`
	UnknownCards    []string          `gorm:"type:json;serializer:json" json:"unknownCards,omitempty"`
	CompletedAt     *time.Time        `json:"completedAt,omitempty"`
	LastAttemptedAt *time.Time        `json:"lastAttemptedAt,omitempty"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// QuizSubmissionRecord pins each logical submission to a client-generated
// UUID. A retried write hits the unique index instead of incrementing
// attempts a second time.
type QuizSubmissionRecord struct {
	BaseModel
	SubmissionID string            `gorm:"uniqueIndex;size:36;not null" json:"submissionId"`
	UserID       uint              `gorm:"index;not null" json:"userId"`
	ActivityID   string            `gorm:"size:128;not null" json:"activityId"`
	Score        int               `gorm:"not null" json:"score"`
	Total        int               `gorm:"not null" json:"totalQuestions"`
	Answers      map[string]string `gorm:"type:json;serializer:json" json:"answers,omitempty"`
}

func (QuizSubmissionRecord) TableName() string {
	return "quiz_submissions"
}
