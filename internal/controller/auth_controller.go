package controller

import (
	"errors"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/service"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

// RegisterRequest defines the registration payload.
// swagger:model RegisterRequest
type RegisterRequest struct {
	DisplayName             string `json:"displayName" binding:"required"`
	Email                   string `json:"email" binding:"required,email"`
	Password                string `json:"password" binding:"required,min=8"`
	Role                    string `json:"role" binding:"omitempty,oneof=learner content_creator"`
	PrimaryLanguageInterest string `json:"primaryLanguageInterest"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a learner or content creator account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "registration payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	role := model.Learner
	if req.Role != "" {
		role = model.ParseRole(req.Role)
	}

	user := &model.User{
		DisplayName:             req.DisplayName,
		Email:                   req.Email,
		Password:                req.Password,
		Role:                    role,
		PrimaryLanguageInterest: req.PrimaryLanguageInterest,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, 409, "email already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Exchanges credentials for a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// GetProfile godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
