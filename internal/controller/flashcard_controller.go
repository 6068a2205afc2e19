package controller

import (
	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/service"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type FlashcardController struct {
	FlashcardService *service.FlashcardService
	ContentService   *service.ContentService
}

func NewFlashcardController(flashcardService *service.FlashcardService, contentService *service.ContentService) *FlashcardController {
	return &FlashcardController{
		FlashcardService: flashcardService,
		ContentService:   contentService,
	}
}

// GetFlashcards godoc
// @Summary List a lesson's flashcards
// @Description Draft lessons hide their flashcards from everyone but content creators
// @Tags flashcards
// @Produce json
// @Param languageId path string true "language id"
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response{data=[]model.Flashcard}
// @Router /api/languages/{languageId}/lessons/{lessonId}/flashcards [get]
func (c *FlashcardController) GetFlashcards(ctx *gin.Context) {
	cards, err := c.ContentService.GetFlashcards(ctx.Param("languageId"), ctx.Param("lessonId"), isCreator(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, cards)
}

// StartSession godoc
// @Summary Start a flashcard session over a lesson's deck
// @Tags flashcards
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param lessonId path string true "lesson id"
// @Success 201 {object} util.Response{data=service.SessionView}
// @Failure 404 {object} util.Response
// @Failure 412 {object} util.Response
// @Router /api/languages/{languageId}/lessons/{lessonId}/flashcards/session [post]
func (c *FlashcardController) StartSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.FlashcardService.StartSession(ctx.Request.Context(), user.UserID, ctx.Param("languageId"), ctx.Param("lessonId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// GetSession godoc
// @Summary Current state of a flashcard session
// @Tags flashcards
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path string true "session id"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 404 {object} util.Response
// @Router /api/flashcards/session/{sessionId} [get]
func (c *FlashcardController) GetSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.FlashcardService.GetSession(ctx.Request.Context(), user.UserID, ctx.Param("sessionId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type FlashcardAnswerRequest struct {
	Known *bool `json:"known" binding:"required"`
}

// AnswerCard godoc
// @Summary Mark the current card known or unknown
// @Description Answering the last card completes the session and records progress
// @Tags flashcards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path string true "session id"
// @Param body body FlashcardAnswerRequest true "answer"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 404 {object} util.Response
// @Failure 412 {object} util.Response
// @Router /api/flashcards/session/{sessionId}/answer [post]
func (c *FlashcardController) AnswerCard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req FlashcardAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.FlashcardService.AnswerCard(ctx.Request.Context(), user.UserID, ctx.Param("sessionId"), *req.Known)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type FlashcardRequest struct {
	Front string `json:"front" binding:"required"`
	Back  string `json:"back" binding:"required"`
	Order int    `json:"order"`
}

// CreateFlashcard godoc
// @Summary Add a flashcard to a lesson
// @Tags flashcards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param lessonId path string true "lesson id"
// @Param body body FlashcardRequest true "flashcard"
// @Success 201 {object} util.Response{data=model.Flashcard}
// @Router /api/languages/{languageId}/lessons/{lessonId}/flashcards [post]
func (c *FlashcardController) CreateFlashcard(ctx *gin.Context) {
	var req FlashcardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	card := &model.Flashcard{
		Front: req.Front,
		Back:  req.Back,
		Order: req.Order,
	}

	if err := c.ContentService.CreateFlashcard(ctx.Param("languageId"), ctx.Param("lessonId"), card); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, card)
}

// UpdateFlashcard godoc
// @Summary Update a flashcard
// @Tags flashcards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param lessonId path string true "lesson id"
// @Param cardId path string true "flashcard id"
// @Param body body FlashcardRequest true "flashcard"
// @Success 200 {object} util.Response{data=model.Flashcard}
// @Router /api/languages/{languageId}/lessons/{lessonId}/flashcards/{cardId} [put]
func (c *FlashcardController) UpdateFlashcard(ctx *gin.Context) {
	var req FlashcardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	card, err := c.ContentService.UpdateFlashcard(ctx.Param("languageId"), ctx.Param("lessonId"), ctx.Param("cardId"), req.Front, req.Back, req.Order)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, card)
}

// DeleteFlashcard godoc
// @Summary Delete a flashcard
// @Tags flashcards
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param lessonId path string true "lesson id"
// @Param cardId path string true "flashcard id"
// @Success 200 {object} util.Response
// @Router /api/languages/{languageId}/lessons/{lessonId}/flashcards/{cardId} [delete]
func (c *FlashcardController) DeleteFlashcard(ctx *gin.Context) {
	if err := c.ContentService.DeleteFlashcard(ctx.Param("languageId"), ctx.Param("lessonId"), ctx.Param("cardId")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
