package controllers

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/middleware"
)

// ResourceController handles shared resource operations
type ResourceController struct {
	resourceService *services.ResourceService
	logger          zerolog.Logger
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService, logger zerolog.Logger) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
		logger:          logger,
	}
}

// GetResources lists all shared resources
// @Summary List resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Resource}
// @Router /resources [get]
func (c *ResourceController) GetResources(ctx *gin.Context) {
	resources, err := c.resourceService.GetResources(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resources))
}

// CreateResource shares a new resource
// @Summary Share a resource
// @Description Accepts a JSON body with an external fileUrl, or a multipart form with a file upload. The resource type is inferred from the file extension when not given.
// @Tags resources
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateResourceRequest false "Resource details"
// @Success 201 {object} dto.APIResponse{data=models.Resource}
// @Failure 400 {object} dto.ErrorResponse "Missing file or fileUrl"
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	var file *multipart.FileHeader

	if strings.HasPrefix(ctx.GetHeader("Content-Type"), "multipart/form-data") {
		if err := ctx.ShouldBind(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
		if fh, err := ctx.FormFile("file"); err == nil {
			file = fh
		}
	} else {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
	}

	res, err := c.resourceService.CreateResource(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req, file)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Resource creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(res))
}

// DeleteResource removes a shared resource
// @Summary Delete a resource
// @Description The uploader or an admin removes a resource; a locally stored file is deleted from disk too.
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	err := c.resourceService.DeleteResource(ctx.Request.Context(), id, middleware.CurrentUserID(ctx), middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Resource removed"}))
}
