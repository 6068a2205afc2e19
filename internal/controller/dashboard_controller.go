package controller

import (
	"github.com/KINGAKWO/lingoRoots-sub000/internal/service"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	ProfileService *service.ProfileService
}

func NewDashboardController(profileService *service.ProfileService) *DashboardController {
	return &DashboardController{ProfileService: profileService}
}

// GetDashboard godoc
// @Summary Profile summary and progress history
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardResponse}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.ProfileService.GetDashboard(user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// GetProgress godoc
// @Summary All of the caller's progress records
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.UserProgress}
// @Router /api/progress [get]
func (c *DashboardController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ProfileService.GetProgress(user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, records)
}
