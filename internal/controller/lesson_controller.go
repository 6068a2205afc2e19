package controller

import (
	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/service"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	ContentService *service.ContentService
	ProfileService *service.ProfileService
}

func NewLessonController(contentService *service.ContentService, profileService *service.ProfileService) *LessonController {
	return &LessonController{
		ContentService: contentService,
		ProfileService: profileService,
	}
}

// isCreator reports whether the caller may see drafts and answers.
func isCreator(ctx *gin.Context) bool {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		return false
	}
	return claims.Role == model.ContentCreator || claims.Role == model.Administrator
}

// GetLessons godoc
// @Summary List a language's lessons
// @Description Guests and learners see published lessons; content creators also see drafts
// @Tags lessons
// @Produce json
// @Param languageId path string true "language id"
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/languages/{languageId}/lessons [get]
func (c *LessonController) GetLessons(ctx *gin.Context) {
	lessons, err := c.ContentService.GetLessons(ctx.Request.Context(), ctx.Param("languageId"), isCreator(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// GetLesson godoc
// @Summary Get one lesson
// @Tags lessons
// @Produce json
// @Param languageId path string true "language id"
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/languages/{languageId}/lessons/{lessonId} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	lesson, err := c.ContentService.GetLesson(ctx.Param("languageId"), ctx.Param("lessonId"), isCreator(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

type LessonRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	Order       int          `json:"order"`
	TextContent string       `json:"textContent"`
	ImageURL    string       `json:"imageUrl"`
	AudioURL    string       `json:"audioUrl"`
	Steps       []model.Step `json:"steps"`
	Published   bool         `json:"published"`
}

// CreateLesson godoc
// @Summary Create a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param body body LessonRequest true "lesson"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response
// @Router /api/languages/{languageId}/lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson := &model.Lesson{
		LanguageID:  ctx.Param("languageId"),
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
		TextContent: req.TextContent,
		ImageURL:    req.ImageURL,
		AudioURL:    req.AudioURL,
		Steps:       req.Steps,
		Published:   req.Published,
	}

	if err := c.ContentService.CreateLesson(ctx.Request.Context(), lesson); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param lessonId path string true "lesson id"
// @Param body body LessonRequest true "lesson"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Router /api/languages/{languageId}/lessons/{lessonId} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.ContentService.UpdateLesson(ctx.Request.Context(), ctx.Param("languageId"), ctx.Param("lessonId"), &model.Lesson{
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
		TextContent: req.TextContent,
		ImageURL:    req.ImageURL,
		AudioURL:    req.AudioURL,
		Steps:       req.Steps,
		Published:   req.Published,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson
// @Tags lessons
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/languages/{languageId}/lessons/{lessonId} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	if err := c.ContentService.DeleteLesson(ctx.Request.Context(), ctx.Param("languageId"), ctx.Param("lessonId")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// CompleteLesson godoc
// @Summary Mark a lesson complete
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Failure 404 {object} util.Response
// @Router /api/languages/{languageId}/lessons/{lessonId}/complete [post]
func (c *LessonController) CompleteLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProfileService.CompleteLesson(user.UserID, ctx.Param("languageId"), ctx.Param("lessonId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
