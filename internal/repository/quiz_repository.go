package repository

import (
	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

// FindByID loads a quiz with its questions in authored order.
func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("`order` ASC")
	}).First(&quiz, "id = ?", id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByLanguageAndID(languageID, id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("`order` ASC")
	}).Where("language_id = ? AND id = ?", languageID, id).First(&quiz).Error
	return &quiz, err
}

func (r *QuizRepository) FindByLanguage(languageID string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("language_id = ?", languageID).Order("`order` ASC").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Question{}, "quiz_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, "id = ?", id).Error
	})
}

func (r *QuizRepository) CreateQuestion(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuizRepository) FindQuestion(quizID, questionID string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Where("quiz_id = ? AND id = ?", quizID, questionID).First(&question).Error
	return &question, err
}

func (r *QuizRepository) UpdateQuestion(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuizRepository) DeleteQuestion(quizID, questionID string) error {
	return r.DB.Where("quiz_id = ?", quizID).Delete(&model.Question{}, "id = ?", questionID).Error
}
