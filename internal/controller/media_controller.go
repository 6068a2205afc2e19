package controller

import (
	"github.com/KINGAKWO/lingoRoots-sub000/internal/service"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	ContentService *service.ContentService
}

func NewMediaController(contentService *service.ContentService) *MediaController {
	return &MediaController{ContentService: contentService}
}

// Upload godoc
// @Summary Upload an image or audio attachment for lesson content
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Media file"
// @Success 201 {object} util.Response
// @Router /api/upload/media [post]
func (c *MediaController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.ContentService.UploadMedia(ctx.Request.Context(), header)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"url": url})
}
