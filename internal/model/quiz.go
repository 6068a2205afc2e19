package model

// swagger:model Quiz
type Quiz struct {
	UUIDBase
	LanguageID  string `gorm:"index;size:64;not null" json:"languageId"`
	LessonID    string `gorm:"index;size:36" json:"lessonId,omitempty"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Order       int    `gorm:"default:0" json:"order"`

	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Question belongs to a standalone Quiz. CorrectAnswer is matched against
// the submitted option text with strict string equality.
// swagger:model Question
type Question struct {
	UUIDBase
	QuizID        string   `gorm:"index;size:36;not null" json:"quizId"`
	Text          string   `gorm:"type:text;not null" json:"text"`
	Options       []string `gorm:"type:json;serializer:json" json:"options"`
	CorrectAnswer string   `gorm:"size:255;not null" json:"correctAnswer,omitempty"`
	Points        int      `gorm:"default:1" json:"points"`
	Order         int      `gorm:"default:0" json:"order"`
}

func (Question) TableName() string {
	return "questions"
}
