package repository

import (
	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"

	"gorm.io/gorm"
)

type FlashcardRepository struct {
	DB *gorm.DB
}

func NewFlashcardRepository(db *gorm.DB) *FlashcardRepository {
	return &FlashcardRepository{DB: db}
}

func (r *FlashcardRepository) Create(card *model.Flashcard) error {
	return r.DB.Create(card).Error
}

func (r *FlashcardRepository) FindByID(id string) (*model.Flashcard, error) {
	var card model.Flashcard
	err := r.DB.First(&card, "id = ?", id).Error
	return &card, err
}

func (r *FlashcardRepository) FindByLesson(lessonID string) ([]model.Flashcard, error) {
	var cards []model.Flashcard
	err := r.DB.Where("lesson_id = ?", lessonID).Order("`order` ASC").Find(&cards).Error
	return cards, err
}

func (r *FlashcardRepository) Update(card *model.Flashcard) error {
	return r.DB.Save(card).Error
}

func (r *FlashcardRepository) Delete(id string) error {
	return r.DB.Delete(&model.Flashcard{}, "id = ?", id).Error
}
