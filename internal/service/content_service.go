package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/repository"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	languagesCacheKey = "content:languages"
	lessonsCachePfx   = "content:lessons:"
	contentCacheTTL   = 10 * time.Minute
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{1,63}$`)

// ContentService is the authoring layer used by content creators, plus the
// cached read paths everyone else hits.
type ContentService struct {
	LanguageRepo  *repository.LanguageRepository
	LessonRepo    *repository.LessonRepository
	QuizRepo      *repository.QuizRepository
	FlashcardRepo *repository.FlashcardRepository
	Storage       *StorageService
	Redis         *redis.Client
}

func NewContentService(
	languageRepo *repository.LanguageRepository,
	lessonRepo *repository.LessonRepository,
	quizRepo *repository.QuizRepository,
	flashcardRepo *repository.FlashcardRepository,
	storage *StorageService,
	rdb *redis.Client,
) *ContentService {
	return &ContentService{
		LanguageRepo:  languageRepo,
		LessonRepo:    lessonRepo,
		QuizRepo:      quizRepo,
		FlashcardRepo: flashcardRepo,
		Storage:       storage,
		Redis:         rdb,
	}
}

func (s *ContentService) invalidateLanguages(ctx context.Context) {
	if err := s.Redis.Del(ctx, languagesCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate language cache", zap.Error(err))
	}
}

func (s *ContentService) invalidateLessons(ctx context.Context, languageID string) {
	if err := s.Redis.Del(ctx, lessonsCachePfx+languageID).Err(); err != nil {
		logger.Log.Warn("failed to invalidate lesson cache", zap.String("languageId", languageID), zap.Error(err))
	}
}

// --- validation -------------------------------------------------------------

// validateQuestion enforces at the write boundary what the grader assumes:
// the correct answer must be one of the options.
func validateQuestion(text string, options []string, correctAnswer string, points int) error {
	if strings.TrimSpace(text) == "" {
		return util.InvalidArgument("question text is required")
	}
	if len(options) < 2 {
		return util.InvalidArgument("a question needs at least 2 options")
	}
	if points < 0 {
		return util.InvalidArgument("points must not be negative")
	}
	for _, opt := range options {
		if opt == correctAnswer {
			return nil
		}
	}
	return util.InvalidArgument("correctAnswer %q is not one of the options", correctAnswer)
}

func validateSteps(steps []model.Step) error {
	for i, step := range steps {
		switch step.Type {
		case model.StepIntroduction, model.StepExplanation, model.StepSummary:
			if strings.TrimSpace(step.Content) == "" {
				return util.InvalidArgument("step %d (%s) has no content", i, step.Type)
			}
		case model.StepVocabulary:
			if len(step.Items) == 0 {
				return util.InvalidArgument("vocabulary step %d has no items", i)
			}
		case model.StepQuiz, model.StepPractice:
			if len(step.Questions) == 0 {
				return util.InvalidArgument("%s step %d has no questions", step.Type, i)
			}
			for _, q := range step.Questions {
				if q.ID == "" {
					return util.InvalidArgument("%s step %d has a question without an id", step.Type, i)
				}
				if err := validateQuestion(q.Text, q.Options, q.CorrectAnswer, q.Points); err != nil {
					return err
				}
			}
		default:
			return util.InvalidArgument("step %d has unknown type %q", i, step.Type)
		}
	}
	return nil
}

// --- languages --------------------------------------------------------------

func (s *ContentService) GetLanguages(ctx context.Context) ([]model.Language, error) {
	if val, err := s.Redis.Get(ctx, languagesCacheKey).Result(); err == nil {
		var cached []model.Language
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	languages, err := s.LanguageRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(languages); err == nil {
		s.Redis.Set(ctx, languagesCacheKey, payload, contentCacheTTL)
	}
	return languages, nil
}

func (s *ContentService) GetLanguage(id string) (*model.Language, error) {
	language, err := s.LanguageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("language %q not found", id)
		}
		return nil, err
	}
	return language, nil
}

func (s *ContentService) CreateLanguage(ctx context.Context, language *model.Language) error {
	if !slugPattern.MatchString(language.ID) {
		return util.InvalidArgument("language id %q must be a lowercase slug", language.ID)
	}
	if strings.TrimSpace(language.Name) == "" {
		return util.InvalidArgument("language name is required")
	}

	if _, err := s.LanguageRepo.FindByID(language.ID); err == nil {
		return util.NewAppError(util.CodeAlreadyExists, fmt.Sprintf("language %q already exists", language.ID))
	}

	if err := s.LanguageRepo.Create(language); err != nil {
		return err
	}
	s.invalidateLanguages(ctx)
	return nil
}

func (s *ContentService) UpdateLanguage(ctx context.Context, id string, name, flagEmoji, description string) (*model.Language, error) {
	language, err := s.GetLanguage(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		language.Name = name
	}
	if flagEmoji != "" {
		language.FlagEmoji = flagEmoji
	}
	if description != "" {
		language.Description = description
	}

	if err := s.LanguageRepo.Update(language); err != nil {
		return nil, err
	}
	s.invalidateLanguages(ctx)
	return language, nil
}

func (s *ContentService) DeleteLanguage(ctx context.Context, id string) error {
	if _, err := s.GetLanguage(id); err != nil {
		return err
	}
	if err := s.LanguageRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateLanguages(ctx)
	s.invalidateLessons(ctx, id)
	return nil
}

// --- lessons ----------------------------------------------------------------

// GetLessons lists a language's lessons. Drafts are only included for
// content creators; the published list is cached.
func (s *ContentService) GetLessons(ctx context.Context, languageID string, includeDrafts bool) ([]model.Lesson, error) {
	if _, err := s.GetLanguage(languageID); err != nil {
		return nil, err
	}

	if includeDrafts {
		return s.LessonRepo.FindByLanguage(languageID, false)
	}

	cacheKey := lessonsCachePfx + languageID
	if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var cached []model.Lesson
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	lessons, err := s.LessonRepo.FindByLanguage(languageID, true)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(lessons); err == nil {
		s.Redis.Set(ctx, cacheKey, payload, contentCacheTTL)
	}
	return lessons, nil
}

func (s *ContentService) GetLesson(languageID, lessonID string, includeDrafts bool) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByLanguageAndID(languageID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("lesson %q not found in language %q", lessonID, languageID)
		}
		return nil, err
	}
	if !lesson.Published && !includeDrafts {
		return nil, util.NotFoundError("lesson %q not found in language %q", lessonID, languageID)
	}
	return lesson, nil
}

func (s *ContentService) CreateLesson(ctx context.Context, lesson *model.Lesson) error {
	if _, err := s.GetLanguage(lesson.LanguageID); err != nil {
		return err
	}
	if strings.TrimSpace(lesson.Title) == "" {
		return util.InvalidArgument("lesson title is required")
	}
	if err := validateSteps(lesson.Steps); err != nil {
		return err
	}

	if err := s.LessonRepo.Create(lesson); err != nil {
		return err
	}
	s.invalidateLessons(ctx, lesson.LanguageID)
	return nil
}

func (s *ContentService) UpdateLesson(ctx context.Context, languageID, lessonID string, updated *model.Lesson) (*model.Lesson, error) {
	lesson, err := s.GetLesson(languageID, lessonID, true)
	if err != nil {
		return nil, err
	}
	if err := validateSteps(updated.Steps); err != nil {
		return nil, err
	}

	lesson.Title = updated.Title
	lesson.Description = updated.Description
	lesson.Order = updated.Order
	lesson.TextContent = updated.TextContent
	lesson.ImageURL = updated.ImageURL
	lesson.AudioURL = updated.AudioURL
	lesson.Steps = updated.Steps
	lesson.Published = updated.Published

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	s.invalidateLessons(ctx, languageID)
	return lesson, nil
}

func (s *ContentService) DeleteLesson(ctx context.Context, languageID, lessonID string) error {
	if _, err := s.GetLesson(languageID, lessonID, true); err != nil {
		return err
	}
	if err := s.LessonRepo.Delete(lessonID); err != nil {
		return err
	}
	s.invalidateLessons(ctx, languageID)
	return nil
}

// --- quizzes ----------------------------------------------------------------

func (s *ContentService) GetQuizzes(languageID string) ([]model.Quiz, error) {
	if _, err := s.GetLanguage(languageID); err != nil {
		return nil, err
	}
	return s.QuizRepo.FindByLanguage(languageID)
}

// GetQuiz loads a quiz. For non-creators the correct answers are blanked so
// the grading stays server-side.
func (s *ContentService) GetQuiz(languageID, quizID string, revealAnswers bool) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByLanguageAndID(languageID, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("quiz %q not found in language %q", quizID, languageID)
		}
		return nil, err
	}

	if !revealAnswers {
		for i := range quiz.Questions {
			quiz.Questions[i].CorrectAnswer = ""
		}
	}
	return quiz, nil
}

func (s *ContentService) CreateQuiz(quiz *model.Quiz) error {
	if _, err := s.GetLanguage(quiz.LanguageID); err != nil {
		return err
	}
	if strings.TrimSpace(quiz.Title) == "" {
		return util.InvalidArgument("quiz title is required")
	}
	for _, q := range quiz.Questions {
		if err := validateQuestion(q.Text, q.Options, q.CorrectAnswer, q.Points); err != nil {
			return err
		}
	}
	return s.QuizRepo.Create(quiz)
}

func (s *ContentService) UpdateQuiz(languageID, quizID string, title, description string, order int) (*model.Quiz, error) {
	quiz, err := s.GetQuiz(languageID, quizID, true)
	if err != nil {
		return nil, err
	}

	if title != "" {
		quiz.Title = title
	}
	if description != "" {
		quiz.Description = description
	}
	quiz.Order = order

	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *ContentService) DeleteQuiz(languageID, quizID string) error {
	if _, err := s.GetQuiz(languageID, quizID, true); err != nil {
		return err
	}
	return s.QuizRepo.Delete(quizID)
}

func (s *ContentService) AddQuestion(languageID, quizID string, question *model.Question) error {
	if _, err := s.GetQuiz(languageID, quizID, true); err != nil {
		return err
	}
	if err := validateQuestion(question.Text, question.Options, question.CorrectAnswer, question.Points); err != nil {
		return err
	}
	question.QuizID = quizID
	if question.Points == 0 {
		question.Points = 1
	}
	return s.QuizRepo.CreateQuestion(question)
}

func (s *ContentService) UpdateQuestion(languageID, quizID, questionID string, updated *model.Question) (*model.Question, error) {
	if _, err := s.GetQuiz(languageID, quizID, true); err != nil {
		return nil, err
	}

	question, err := s.QuizRepo.FindQuestion(quizID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("question %q not found in quiz %q", questionID, quizID)
		}
		return nil, err
	}

	if err := validateQuestion(updated.Text, updated.Options, updated.CorrectAnswer, updated.Points); err != nil {
		return nil, err
	}

	question.Text = updated.Text
	question.Options = updated.Options
	question.CorrectAnswer = updated.CorrectAnswer
	question.Points = updated.Points
	question.Order = updated.Order

	if err := s.QuizRepo.UpdateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ContentService) DeleteQuestion(languageID, quizID, questionID string) error {
	if _, err := s.GetQuiz(languageID, quizID, true); err != nil {
		return err
	}
	return s.QuizRepo.DeleteQuestion(quizID, questionID)
}

// --- flashcards -------------------------------------------------------------

// GetFlashcards lists a lesson's deck. Draft lessons hide their cards from
// everyone but content creators, same as the lesson itself.
func (s *ContentService) GetFlashcards(languageID, lessonID string, includeDrafts bool) ([]model.Flashcard, error) {
	if _, err := s.GetLesson(languageID, lessonID, includeDrafts); err != nil {
		return nil, err
	}
	return s.FlashcardRepo.FindByLesson(lessonID)
}

func (s *ContentService) CreateFlashcard(languageID, lessonID string, card *model.Flashcard) error {
	if _, err := s.GetLesson(languageID, lessonID, true); err != nil {
		return err
	}
	if strings.TrimSpace(card.Front) == "" || strings.TrimSpace(card.Back) == "" {
		return util.InvalidArgument("flashcard front and back are required")
	}
	card.LessonID = lessonID
	return s.FlashcardRepo.Create(card)
}

func (s *ContentService) UpdateFlashcard(languageID, lessonID, cardID string, front, back string, order int) (*model.Flashcard, error) {
	if _, err := s.GetLesson(languageID, lessonID, true); err != nil {
		return nil, err
	}

	card, err := s.FlashcardRepo.FindByID(cardID)
	if err != nil || card.LessonID != lessonID {
		return nil, util.NotFoundError("flashcard %q not found in lesson %q", cardID, lessonID)
	}

	if front != "" {
		card.Front = front
	}
	if back != "" {
		card.Back = back
	}
	card.Order = order

	if err := s.FlashcardRepo.Update(card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *ContentService) DeleteFlashcard(languageID, lessonID, cardID string) error {
	if _, err := s.GetLesson(languageID, lessonID, true); err != nil {
		return err
	}
	return s.FlashcardRepo.Delete(cardID)
}

// --- media ------------------------------------------------------------------

// UploadMedia stores an image or audio file and returns its URL. Audio is
// probed first; a file ffmpeg cannot decode never reaches storage.
func (s *ContentService) UploadMedia(ctx context.Context, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))

	isImage := false
	for _, allowed := range util.AllowedImageExtensions {
		if ext == allowed {
			isImage = true
			break
		}
	}
	isAudio := false
	for _, allowed := range util.AllowedAudioExtensions {
		if ext == allowed {
			isAudio = true
			break
		}
	}
	if !isImage && !isAudio {
		return "", util.InvalidArgument("unsupported media extension %q", ext)
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := fmt.Sprintf("media/%s%s", model.GenerateUUID(), ext)

	if isAudio {
		tmp, err := os.CreateTemp("", "lingoroots-audio-*"+ext)
		if err != nil {
			return "", err
		}
		defer os.Remove(tmp.Name())

		if _, err := io.Copy(tmp, src); err != nil {
			tmp.Close()
			return "", err
		}
		tmp.Close()

		info, err := util.GetAudioInfo(tmp.Name())
		if err != nil {
			return "", util.InvalidArgument("audio file is not decodable: %v", err)
		}
		logger.Log.Info("audio upload probed",
			zap.String("filename", header.Filename),
			zap.Float64("duration", info.Duration),
			zap.String("codec", info.Codec),
		)

		probed, err := os.Open(tmp.Name())
		if err != nil {
			return "", err
		}
		defer probed.Close()

		return s.Storage.Upload(ctx, filename, probed, header.Size, header.Header.Get("Content-Type"))
	}

	return s.Storage.Upload(ctx, filename, src, header.Size, header.Header.Get("Content-Type"))
}
