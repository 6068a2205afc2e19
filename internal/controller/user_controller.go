package controller

import (
	"strconv"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/service"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type ProfileUpdateRequest struct {
	DisplayName             string `json:"displayName"`
	PrimaryLanguageInterest string `json:"primaryLanguageInterest"`
}

// UpdateProfile godoc
// @Summary Update the caller's profile fields
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.UserService.UpdateProfile(user.UserID, service.ProfileUpdate{
		DisplayName:             req.DisplayName,
		PrimaryLanguageInterest: req.PrimaryLanguageInterest,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, updated)
}

type LanguageSelectionRequest struct {
	SelectedLanguages      []string `json:"selectedLanguages" binding:"required,min=1"`
	ActiveLearningLanguage string   `json:"activeLearningLanguage" binding:"required"`
}

// SelectLanguages godoc
// @Summary Choose the languages the caller is learning
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body LanguageSelectionRequest true "Language selection"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/user/languages [put]
func (c *UserController) SelectLanguages(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LanguageSelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.UserService.SelectLanguages(user.UserID, service.LanguageSelection{
		SelectedLanguages:      req.SelectedLanguages,
		ActiveLearningLanguage: req.ActiveLearningLanguage,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, updated)
}

// ListUsers godoc
// @Summary Paginated user listing
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.UserService.List(page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

type RoleUpdateRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetRole godoc
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param request body RoleUpdateRequest true "New role"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/role [put]
func (c *UserController) SetRole(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req RoleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetRole(uint(userID), req.Role); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "role updated"})
}
