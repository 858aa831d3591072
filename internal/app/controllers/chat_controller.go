package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edustack/coachhub/internal/app/models/dto"
	"github.com/edustack/coachhub/internal/app/services"
	"github.com/edustack/coachhub/internal/middleware"
)

// ChatController handles AI tutoring endpoints
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// Ask sends one tutoring question
// @Summary Ask the AI tutor
// @Tags chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question with optional history"
// @Success 200 {object} dto.APIResponse{data=dto.ChatResponse}
// @Router /chat [post]
func (ctrl *ChatController) Ask(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.chatService.Ask(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}
