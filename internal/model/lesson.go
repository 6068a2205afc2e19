package model

type StepType string

const (
	StepIntroduction StepType = "introduction"
	StepExplanation  StepType = "explanation"
	StepSummary      StepType = "summary"
	StepVocabulary   StepType = "vocabulary"
	StepQuiz         StepType = "quiz"
	StepPractice     StepType = "practice"
)

// VocabularyItem is one term/translation pair inside a vocabulary step.
type VocabularyItem struct {
	Term        string `json:"term"`
	Translation string `json:"translation"`
	AudioURL    string `json:"audioUrl,omitempty"`
}

// StepQuestion is a question embedded directly in a quiz or practice step,
// as opposed to a Question row belonging to a standalone Quiz.
type StepQuestion struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Points        int      `json:"points,omitempty"`
}

// Step is the tagged variant making up a lesson's steps array. Which fields
// are meaningful depends on Type: content steps carry Content/ImageURL,
// vocabulary steps carry Items, quiz and practice steps carry Questions.
// swagger:model Step
type Step struct {
	Type      StepType         `json:"type"`
	Title     string           `json:"title,omitempty"`
	Content   string           `json:"content,omitempty"`
	ImageURL  string           `json:"imageUrl,omitempty"`
	Items     []VocabularyItem `json:"items,omitempty"`
	Questions []StepQuestion   `json:"questions,omitempty"`
}

// IsQuiz reports whether the step is gradable.
func (s Step) IsQuiz() bool {
	return s.Type == StepQuiz || s.Type == StepPractice
}

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	LanguageID  string `gorm:"index;size:64;not null" json:"languageId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Order       int    `gorm:"default:0" json:"order"`
	TextContent string `gorm:"type:text" json:"textContent,omitempty"`
	ImageURL    string `gorm:"size:512" json:"imageUrl,omitempty"`
	AudioURL    string `gorm:"size:512" json:"audioUrl,omitempty"`
	Steps       []Step `gorm:"type:json;serializer:json" json:"steps,omitempty"`
	Published   bool   `gorm:"default:false" json:"published"`

	Flashcards []Flashcard `gorm:"foreignKey:LessonID" json:"flashcards,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}
