package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/middleware"
)

// ProfileController handles profile reads and updates
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile returns the caller's own profile
// @Summary Get own profile
// @Description Returns the full profile with an up-to-date completion score
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	user, err := c.profileService.GetProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// UpdateProfile applies a partial update to the caller's profile
// @Summary Update own profile
// @Description Accepts a JSON body or a multipart form with optional profileImage and resume files. Fields omitted from the request keep their stored values; name, email, and role cannot change here.
// @Tags profile
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest false "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.ErrorResponse "Malformed field value"
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	var upload *dto.ProfileUpload

	contentType := ctx.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		form, err := ctx.MultipartForm()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid multipart form").WithDetails(err.Error())))
			return
		}
		if err := req.BindForm(form.Value); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
			return
		}

		upload = &dto.ProfileUpload{}
		if files := form.File["profileImage"]; len(files) > 0 {
			upload.ProfileImage = files[0]
		}
		if files := form.File["resume"]; len(files) > 0 {
			upload.Resume = files[0]
		}
	} else {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
	}

	user, err := c.profileService.UpdateProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req, upload)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", middleware.CurrentUserID(ctx)).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// GetStudents returns a summary listing of all students
// @Summary List students
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentSummary}
// @Failure 403 {object} dto.ErrorResponse "Faculty or admin only"
// @Router /students [get]
func (c *ProfileController) GetStudents(ctx *gin.Context) {
	students, err := c.profileService.GetStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// GetUserProfile returns another user's profile
// @Summary Get a user's profile
// @Description Faculty and admins may view any profile; other users only their own.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /profile/{id} [get]
func (c *ProfileController) GetUserProfile(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID").WithField("id")))
		return
	}

	role := middleware.CurrentRole(ctx)
	if id != middleware.CurrentUserID(ctx) && role != models.RoleFaculty && role != models.RoleAdmin {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
		return
	}

	user, err := c.profileService.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}
