package model

import (
	"time"

	"gorm.io/gorm"
)

// Language is a root content document. Its ID is a creator-chosen slug
// ("duala", "bassa") because lesson and quiz paths embed it.
// swagger:model Language
type Language struct {
	ID          string         `gorm:"primaryKey;size:64" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	FlagEmoji   string         `gorm:"size:16" json:"flagEmoji,omitempty"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Lessons []Lesson `gorm:"foreignKey:LanguageID" json:"lessons,omitempty"`
	Quizzes []Quiz   `gorm:"foreignKey:LanguageID" json:"quizzes,omitempty"`
}

func (Language) TableName() string {
	return "languages"
}
