package database

import (
	"fmt"
	"log"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/config"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Language{},
		&model.Lesson{},
		&model.Quiz{},
		&model.Question{},
		&model.Flashcard{},
		&model.UserProgress{},
		&model.QuizSubmissionRecord{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed a starter language so a fresh install is browsable.
	var count int64
	db.Model(&model.Language{}).Count(&count)
	if count == 0 {
		db.Create(&model.Language{
			ID:          "duala",
			Name:        "Duala",
			FlagEmoji:   "🇨🇲",
			Description: "A Bantu language spoken along the coast of Cameroon.",
		})
	}

	return db, nil
}
