package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edustack/coachhub/internal/app/models/dto"
	"github.com/edustack/coachhub/internal/app/services"
	"github.com/edustack/coachhub/internal/middleware"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
	"github.com/edustack/coachhub/internal/pkg/filestorage"
	"github.com/edustack/coachhub/internal/pkg/helpers"
	"github.com/edustack/coachhub/internal/pkg/logger"
	"github.com/edustack/coachhub/internal/pkg/validation"
)

// CoachingController handles coaching directory endpoints
type CoachingController struct {
	coachingService services.CoachingService
	storage         filestorage.FileStorage
}

// NewCoachingController creates a new CoachingController
func NewCoachingController(coachingService services.CoachingService, storage filestorage.FileStorage) *CoachingController {
	return &CoachingController{
		coachingService: coachingService,
		storage:         storage,
	}
}

// List returns the filtered public directory
// @Summary List coaching centers
// @Tags coaching
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param search query string false "Search term over name, city and subjects"
// @Param subject query string false "Exact subject"
// @Param rating query string false "Minimum rating, e.g. 4+ Stars"
// @Param priceRange query string false "Monthly fee range, e.g. 1000-3000 or 3000+"
// @Success 200 {object} dto.APIResponse{data=dto.CoachingListResponse}
// @Router /coaching [get]
func (ctrl *CoachingController) List(c *gin.Context) {
	var filter dto.ListCoachingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, size := helpers.ParsePaginationParams(c)

	resp, pagination, err := ctrl.coachingService.List(c.Request.Context(), page, size, filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      resp,
			Pagination: pagination,
		},
		Timestamp: time.Now(),
	})
}

// GetBySlug returns the full detail view of one center
// @Summary Get a coaching center by slug
// @Tags coaching
// @Produce json
// @Param slug path string true "Coaching center slug"
// @Success 200 {object} dto.APIResponse{data=dto.CoachingDetail}
// @Router /coaching/{slug} [get]
func (ctrl *CoachingController) GetBySlug(c *gin.Context) {
	slugParam := c.Param("slug")
	if !validation.IsValidSlug(slugParam) {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid slug"))
		return
	}

	detail, err := ctrl.coachingService.GetBySlug(c.Request.Context(), slugParam)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: detail, Timestamp: time.Now()})
}

// Register creates a coaching center owned by the caller
// @Summary Register a coaching center
// @Tags coaching
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCoachingRequest true "Registration payload"
// @Success 201 {object} dto.APIResponse
// @Router /coaching [post]
func (ctrl *CoachingController) Register(c *gin.Context) {
	var req dto.CreateCoachingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ownerID, _ := middleware.GetUserID(c)

	center, err := ctrl.coachingService.Register(c.Request.Context(), ownerID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: center, Timestamp: time.Now()})
}

// Update applies a partial update to the caller's center
// @Summary Update a coaching center
// @Tags coaching
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Coaching center id"
// @Param request body dto.UpdateCoachingRequest true "Update payload"
// @Success 200 {object} dto.APIResponse
// @Router /coaching/{id} [put]
func (ctrl *CoachingController) Update(c *gin.Context) {
	coachingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || coachingID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid coaching center id"))
		return
	}

	var req dto.UpdateCoachingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ownerID, _ := middleware.GetUserID(c)

	center, err := ctrl.coachingService.Update(c.Request.Context(), ownerID, coachingID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: center, Timestamp: time.Now()})
}

// MyCenters lists the caller's own centers
// @Summary List my coaching centers
// @Tags coaching
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CoachingSummary}
// @Router /coaching/mine [get]
func (ctrl *CoachingController) MyCenters(c *gin.Context) {
	ownerID, _ := middleware.GetUserID(c)

	summaries, err := ctrl.coachingService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: summaries, Timestamp: time.Now()})
}

// UploadImage stores a coaching image and returns its file id and URL.
// Uploads happen before registration; a failed upload never blocks the
// center itself, the client just submits without the image.
// @Summary Upload a coaching image
// @Tags coaching
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} dto.APIResponse
// @Router /coaching/images [post]
func (ctrl *CoachingController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("file is required"))
		return
	}

	fileID, err := ctrl.storage.SaveFileWithPath(fileHeader, "coaching")
	if err != nil {
		logger.Error().Err(err).Msg("Coaching image upload failed")
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{
		Data: gin.H{
			"fileId": fileID,
			"url":    ctrl.storage.ViewURL(fileID),
		},
		Timestamp: time.Now(),
	})
}
