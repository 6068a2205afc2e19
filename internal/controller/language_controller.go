package controller

import (
	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/service"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type LanguageController struct {
	ContentService *service.ContentService
}

func NewLanguageController(contentService *service.ContentService) *LanguageController {
	return &LanguageController{ContentService: contentService}
}

// GetLanguages godoc
// @Summary List languages
// @Tags languages
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Language}
// @Router /api/languages [get]
func (c *LanguageController) GetLanguages(ctx *gin.Context) {
	languages, err := c.ContentService.GetLanguages(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, languages)
}

// GetLanguage godoc
// @Summary Get one language
// @Tags languages
// @Produce json
// @Param languageId path string true "language id"
// @Success 200 {object} util.Response{data=model.Language}
// @Failure 404 {object} util.Response
// @Router /api/languages/{languageId} [get]
func (c *LanguageController) GetLanguage(ctx *gin.Context) {
	language, err := c.ContentService.GetLanguage(ctx.Param("languageId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, language)
}

type LanguageRequest struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	FlagEmoji   string `json:"flagEmoji"`
	Description string `json:"description"`
}

// CreateLanguage godoc
// @Summary Create a language
// @Tags languages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body LanguageRequest true "language"
// @Success 201 {object} util.Response{data=model.Language}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/languages [post]
func (c *LanguageController) CreateLanguage(ctx *gin.Context) {
	var req LanguageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	language := &model.Language{
		ID:          req.ID,
		Name:        req.Name,
		FlagEmoji:   req.FlagEmoji,
		Description: req.Description,
	}

	if err := c.ContentService.CreateLanguage(ctx.Request.Context(), language); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, language)
}

type LanguageUpdateRequest struct {
	Name        string `json:"name"`
	FlagEmoji   string `json:"flagEmoji"`
	Description string `json:"description"`
}

// UpdateLanguage godoc
// @Summary Update a language
// @Tags languages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Param body body LanguageUpdateRequest true "fields to update"
// @Success 200 {object} util.Response{data=model.Language}
// @Router /api/languages/{languageId} [put]
func (c *LanguageController) UpdateLanguage(ctx *gin.Context) {
	var req LanguageUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	language, err := c.ContentService.UpdateLanguage(ctx.Request.Context(), ctx.Param("languageId"), req.Name, req.FlagEmoji, req.Description)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, language)
}

// DeleteLanguage godoc
// @Summary Delete a language
// @Tags languages
// @Security ApiKeyAuth
// @Param languageId path string true "language id"
// @Success 200 {object} util.Response
// @Router /api/languages/{languageId} [delete]
func (c *LanguageController) DeleteLanguage(ctx *gin.Context) {
	if err := c.ContentService.DeleteLanguage(ctx.Request.Context(), ctx.Param("languageId")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
