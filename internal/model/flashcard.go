package model

// swagger:model Flashcard
type Flashcard struct {
	UUIDBase
	LessonID string `gorm:"index;size:36;not null" json:"lessonId"`
	Front    string `gorm:"type:text;not null" json:"front"`
	Back     string `gorm:"type:text;not null" json:"back"`
	Order    int    `gorm:"default:0" json:"order"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}
