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
)

// RequestController handles demo-class request endpoints
type RequestController struct {
	requestService services.RequestService
}

// NewRequestController creates a new RequestController
func NewRequestController(requestService services.RequestService) *RequestController {
	return &RequestController{requestService: requestService}
}

// Create opens a demo-class request
// @Summary Request a demo class
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDemoRequest true "Demo request payload"
// @Success 201 {object} dto.APIResponse
// @Router /requests [post]
func (ctrl *RequestController) Create(c *gin.Context) {
	var req dto.CreateDemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	userID, _ := middleware.GetUserID(c)

	request, err := ctrl.requestService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: request, Timestamp: time.Now()})
}

// MyRequests lists the caller's own requests
// @Summary List my demo class requests
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /requests/mine [get]
func (ctrl *RequestController) MyRequests(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	requests, err := ctrl.requestService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: requests, Timestamp: time.Now()})
}

// ListForCoaching lists requests against a center the caller owns
// @Summary List requests for my coaching center
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Coaching center id"
// @Success 200 {object} dto.APIResponse
// @Router /coaching/id/{id}/requests [get]
func (ctrl *RequestController) ListForCoaching(c *gin.Context) {
	coachingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || coachingID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid coaching center id"))
		return
	}

	ownerID, _ := middleware.GetUserID(c)

	requests, err := ctrl.requestService.ListForCoaching(c.Request.Context(), ownerID, coachingID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: requests, Timestamp: time.Now()})
}

// Decide approves or rejects a pending request
// @Summary Approve or reject a demo class request
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request id"
// @Param request body dto.UpdateDemoRequestStatus true "Decision payload"
// @Success 200 {object} dto.APIResponse
// @Router /requests/{id}/status [put]
func (ctrl *RequestController) Decide(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || requestID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid request id"))
		return
	}

	var req dto.UpdateDemoRequestStatus
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ownerID, _ := middleware.GetUserID(c)

	request, err := ctrl.requestService.Decide(c.Request.Context(), ownerID, requestID, req.Status)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: request, Timestamp: time.Now()})
}
