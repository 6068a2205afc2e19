package controller

import (
	"strconv"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/service"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService    *service.QuizService
	ContentService *service.ContentService
}

func NewQuizController(quizService *service.QuizService, contentService *service.ContentService) *QuizController {
	return &QuizController{
		QuizService:    quizService,
		ContentService: contentService,
	}
}

// GetQuizzes godoc
// @Summary List a language's quizzes
// @Tags quizzes
// @Produce json
// @Param languageId path string true "language id"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/languages/{languageId}/quizzes [get]
func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	quizzes, err := c.ContentService.GetQuizzes(ctx.Param("languageId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary Get one quiz with questions
// @Description Correct answers are only included for content creators
// @Tags quizzes
// @Produce json
// @Param languageId path string true "language id"
// @Param quizId path string true "quiz id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/languages/{languageId}/quizzes/{quizId} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.ContentService.GetQuiz(ctx.Param("languageId"), ctx.Param("quizId"), isCreator(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// QuizSubmissionRequest carries the learner's answers keyed by question id.
// SubmissionID is generated client-side so a retried request is recognized
// and not counted twice.
type QuizSubmissionRequest struct {
	SubmissionID string            `json:"submissionId"`
	Answers      map[string]string `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Submit answers for a standalone quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param quizId path string true "quiz id"
// @Param body body QuizSubmissionRequest true "answers"
// @Success 200 {object} util.Response{data=service.SubmitResponse}
// @Failure 404 {object} util.Response
// @Failure 412 {object} util.Response
// @Router /api/languages/{languageId}/quizzes/{quizId}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuizSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitQuiz(user.UserID, ctx.Param("languageId"), ctx.Param("quizId"), req.SubmissionID, req.Answers)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// SubmitLessonStepQuiz godoc
// @Summary Submit answers for a quiz step embedded in a lesson
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param lessonId path string true "lesson id"
// @Param stepIndex path int true "step index"
// @Param body body QuizSubmissionRequest true "answers"
// @Success 200 {object} util.Response{data=service.SubmitResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 412 {object} util.Response
// @Router /api/languages/{languageId}/lessons/{lessonId}/steps/{stepIndex}/submit [post]
func (c *QuizController) SubmitLessonStepQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stepIndex, err := strconv.Atoi(ctx.Param("stepIndex"))
	if err != nil {
		util.BadRequest(ctx, "stepIndex must be an integer")
		return
	}

	var req QuizSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitLessonStepQuiz(user.UserID, ctx.Param("languageId"), ctx.Param("lessonId"), stepIndex, req.SubmissionID, req.Answers)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

type QuizRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	LessonID    string `json:"lessonId"`
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param body body QuizRequest true "quiz"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Router /api/languages/{languageId}/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz := &model.Quiz{
		LanguageID:  ctx.Param("languageId"),
		LessonID:    req.LessonID,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	}

	if err := c.ContentService.CreateQuiz(quiz); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param quizId path string true "quiz id"
// @Param body body QuizRequest true "quiz"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/languages/{languageId}/quizzes/{quizId} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.ContentService.UpdateQuiz(ctx.Param("languageId"), ctx.Param("quizId"), req.Title, req.Description, req.Order)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz and its questions
// @Tags quizzes
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param quizId path string true "quiz id"
// @Success 200 {object} util.Response
// @Router /api/languages/{languageId}/quizzes/{quizId} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	if err := c.ContentService.DeleteQuiz(ctx.Param("languageId"), ctx.Param("quizId")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

type QuestionRequest struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
	Points        int      `json:"points"`
	Order         int      `json:"order"`
}

// AddQuestion godoc
// @Summary Add a question to a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param quizId path string true "quiz id"
// @Param body body QuestionRequest true "question"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Router /api/languages/{languageId}/quizzes/{quizId}/questions [post]
func (c *QuizController) AddQuestion(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.Question{
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Points:        req.Points,
		Order:         req.Order,
	}

	if err := c.ContentService.AddQuestion(ctx.Param("languageId"), ctx.Param("quizId"), question); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param quizId path string true "quiz id"
// @Param questionId path string true "question id"
// @Param body body QuestionRequest true "question"
// @Success 200 {object} util.Response{data=model.Question}
// @Router /api/languages/{languageId}/quizzes/{quizId}/questions/{questionId} [put]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ContentService.UpdateQuestion(ctx.Param("languageId"), ctx.Param("quizId"), ctx.Param("questionId"), &model.Question{
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Points:        req.Points,
		Order:         req.Order,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags quizzes
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param quizId path string true "quiz id"
// @Param questionId path string true "question id"
// @Success 200 {object} util.Response
// @Router /api/languages/{languageId}/quizzes/{quizId}/questions/{questionId} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	if err := c.ContentService.DeleteQuestion(ctx.Param("languageId"), ctx.Param("quizId"), ctx.Param("questionId")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
