package repository

import (
	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, "id = ?", id).Error
	return &lesson, err
}

// FindByLanguageAndID scopes the lookup to a language so a lesson cannot be
// addressed through another language's path.
func (r *LessonRepository) FindByLanguageAndID(languageID, id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("language_id = ? AND id = ?", languageID, id).First(&lesson).Error
	return &lesson, err
}

func (r *LessonRepository) FindByLanguage(languageID string, publishedOnly bool) ([]model.Lesson, error) {
	var lessons []model.Lesson
	q := r.DB.Where("language_id = ?", languageID)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	err := q.Order("`order` ASC").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id string) error {
	return r.DB.Delete(&model.Lesson{}, "id = ?", id).Error
}
