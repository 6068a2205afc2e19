package model

import (
	"strings"
	"time"
)

type UserRole string

const (
	Learner        UserRole = "learner"
	ContentCreator UserRole = "content_creator"
	Administrator  UserRole = "administrator"
)

// ParseRole normalizes the role spellings that accumulated in older exports
// ("Learner", "Content Creator", "contentCreator", ...) onto the single
// canonical enum. Unknown strings fall back to learner.
func ParseRole(s string) UserRole {
	switch strings.ToLower(strings.TrimSpace(strings.NewReplacer(" ", "_", "-", "_").Replace(s))) {
	case "content_creator", "contentcreator", "creator":
		return ContentCreator
	case "administrator", "admin":
		return Administrator
	default:
		return Learner
	}
}

// ParseRoleStrict accepts only the canonical spellings. Write paths use it
// so a misspelled role errors out instead of falling back to learner.
func ParseRoleStrict(s string) (UserRole, bool) {
	role := UserRole(strings.ToLower(strings.TrimSpace(s)))
	return role, role.Valid()
}

func (r UserRole) Valid() bool {
	switch r {
	case Learner, ContentCreator, Administrator:
		return true
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	DisplayName             string    `gorm:"size:100;not null" json:"displayName"`
	Email                   string    `gorm:"size:100;unique;not null" json:"email"`
	Password                string    `gorm:"size:100;not null" json:"-"`
	Role                    UserRole  `gorm:"size:32;default:'learner'" json:"role"`
	SelectedLanguages       []string  `gorm:"type:json;serializer:json" json:"selectedLanguages"`
	ActiveLearningLanguage  string    `gorm:"size:64" json:"activeLearningLanguage"`
	PrimaryLanguageInterest string    `gorm:"size:64" json:"primaryLanguageInterest"`
	LastActivity            time.Time `gorm:"autoCreateTime" json:"lastActivity"`
	LastSeen                time.Time `gorm:"autoCreateTime" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
