package service

import (
	"errors"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/repository"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo     *repository.UserRepository
	LanguageRepo *repository.LanguageRepository
}

func NewUserService(userRepo *repository.UserRepository, languageRepo *repository.LanguageRepository) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		LanguageRepo: languageRepo,
	}
}

type ProfileUpdate struct {
	DisplayName             string `json:"displayName"`
	PrimaryLanguageInterest string `json:"primaryLanguageInterest"`
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if update.DisplayName != "" {
		user.DisplayName = update.DisplayName
	}
	if update.PrimaryLanguageInterest != "" {
		user.PrimaryLanguageInterest = update.PrimaryLanguageInterest
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

type LanguageSelection struct {
	SelectedLanguages      []string `json:"selectedLanguages"`
	ActiveLearningLanguage string   `json:"activeLearningLanguage"`
}

// SelectLanguages stores the user's chosen languages. Every id must exist,
// and the active learning language must be among the selection.
func (s *UserService) SelectLanguages(userID uint, selection LanguageSelection) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	for _, langID := range selection.SelectedLanguages {
		if _, err := s.LanguageRepo.FindByID(langID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.NotFoundError("language %q not found", langID)
			}
			return nil, err
		}
	}

	if selection.ActiveLearningLanguage != "" {
		active := false
		for _, langID := range selection.SelectedLanguages {
			if langID == selection.ActiveLearningLanguage {
				active = true
				break
			}
		}
		if !active {
			return nil, util.InvalidArgument("activeLearningLanguage %q is not in selectedLanguages", selection.ActiveLearningLanguage)
		}
	}

	user.SelectedLanguages = selection.SelectedLanguages
	user.ActiveLearningLanguage = selection.ActiveLearningLanguage

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(page, limit int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.UserRepo.List(page, limit)
}

// SetRole changes a user's role. Only the canonical enum spellings are
// accepted here: the lenient ParseRole would turn an admin's typo into a
// silent demotion to learner.
func (s *UserService) SetRole(userID uint, role string) error {
	parsed, ok := model.ParseRoleStrict(role)
	if !ok {
		return util.InvalidArgument("unknown role %q", role)
	}

	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.UpdateRole(userID, parsed)
}
