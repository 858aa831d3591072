package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edustack/coachhub/internal/app/models"
	"github.com/edustack/coachhub/internal/app/models/dto"
	"github.com/edustack/coachhub/internal/app/services"
	"github.com/edustack/coachhub/internal/middleware"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
	"github.com/edustack/coachhub/internal/pkg/filestorage"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
	storage     filestorage.FileStorage
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, storage filestorage.FileStorage) *AuthController {
	return &AuthController{
		authService: authService,
		storage:     storage,
	}
}

// Register creates a new account
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := ctrl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{
		Data:      ctrl.toUserResponse(user),
		Timestamp: time.Now(),
	})
}

// Login verifies credentials and returns a token pair
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login payload"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	_, tokens, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: tokens, Timestamp: time.Now()})
}

// RefreshToken exchanges a refresh token for a new pair
// @Summary Refresh the access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh payload"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Router /auth/refresh [post]
func (ctrl *AuthController) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tokens, err := ctrl.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: tokens, Timestamp: time.Now()})
}

// Logout revokes the refresh token
// @Summary Log out
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token to revoke"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := ctrl.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Logged out"},
		Timestamp: time.Now(),
	})
}

// Me returns the authenticated account
// @Summary Get the current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	user, err := ctrl.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Data:      ctrl.toUserResponse(user),
		Timestamp: time.Now(),
	})
}

// UploadProfileImage stores a new avatar and points the account at it. The
// old image file is left behind; uploads are cheap and ids are opaque.
// @Summary Upload a profile image
// @Tags auth
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Router /auth/me/image [post]
func (ctrl *AuthController) UploadProfileImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("file is required"))
		return
	}

	fileID, err := ctrl.storage.SaveFileWithPath(fileHeader, "avatars")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	userID, _ := middleware.GetUserID(c)

	user, err := ctrl.authService.UpdateProfileImage(c.Request.Context(), userID, fileID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Data:      ctrl.toUserResponse(user),
		Timestamp: time.Now(),
	})
}

func (ctrl *AuthController) toUserResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Phone:    user.Phone,
		RoleType: string(user.RoleType),
	}
	if user.ProfileImage != "" {
		resp.ProfileImage = ctrl.storage.ViewURL(user.ProfileImage)
	}
	return resp
}
