package repository

import (
	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"

	"gorm.io/gorm"
)

type LanguageRepository struct {
	DB *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{DB: db}
}

func (r *LanguageRepository) Create(language *model.Language) error {
	return r.DB.Create(language).Error
}

func (r *LanguageRepository) FindByID(id string) (*model.Language, error) {
	var language model.Language
	err := r.DB.First(&language, "id = ?", id).Error
	return &language, err
}

func (r *LanguageRepository) FindAll() ([]model.Language, error) {
	var languages []model.Language
	err := r.DB.Order("name ASC").Find(&languages).Error
	return languages, err
}

func (r *LanguageRepository) Update(language *model.Language) error {
	return r.DB.Save(language).Error
}

func (r *LanguageRepository) Delete(id string) error {
	return r.DB.Delete(&model.Language{}, "id = ?", id).Error
}
