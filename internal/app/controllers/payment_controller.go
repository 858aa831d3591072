package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edustack/coachhub/internal/app/models/dto"
	"github.com/edustack/coachhub/internal/app/services"
	"github.com/edustack/coachhub/internal/middleware"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
)

// PaymentController handles the simulated UPI payment endpoints
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreateIntent opens a pending payment
// @Summary Start a registration fee payment
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Payment payload"
// @Success 201 {object} dto.APIResponse{data=dto.PaymentIntentResponse}
// @Router /payments [post]
func (ctrl *PaymentController) CreateIntent(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	userID, _ := middleware.GetUserID(c)

	intent, err := ctrl.paymentService.CreateIntent(c.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: intent, Timestamp: time.Now()})
}

// QRCode serves the payment's UPI QR as a PNG image
// @Summary Get the UPI QR code for a payment
// @Tags payments
// @Security BearerAuth
// @Produce png
// @Param id path int true "Payment id"
// @Success 200 {file} binary
// @Router /payments/{id}/qr [get]
func (ctrl *PaymentController) QRCode(c *gin.Context) {
	paymentID, ok := paymentIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)

	png, err := ctrl.paymentService.QRCode(c.Request.Context(), userID, paymentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Verify settles a pending payment and returns the outcome
// @Summary Verify a payment
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Payment id"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentResultResponse}
// @Router /payments/{id}/verify [post]
func (ctrl *PaymentController) Verify(c *gin.Context) {
	paymentID, ok := paymentIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)

	result, err := ctrl.paymentService.Verify(c.Request.Context(), userID, paymentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: result, Timestamp: time.Now()})
}

// Get returns the recorded state of a payment
// @Summary Get a payment
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Payment id"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentResultResponse}
// @Router /payments/{id} [get]
func (ctrl *PaymentController) Get(c *gin.Context) {
	paymentID, ok := paymentIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)

	result, err := ctrl.paymentService.GetResult(c.Request.Context(), userID, paymentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: result, Timestamp: time.Now()})
}

// List returns the caller's payment history
// @Summary List my payments
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.PaymentResultResponse}
// @Router /payments [get]
func (ctrl *PaymentController) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	results, err := ctrl.paymentService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: results, Timestamp: time.Now()})
}

// Receipt serves the PDF receipt for a successful payment
// @Summary Download a payment receipt
// @Tags payments
// @Security BearerAuth
// @Produce application/pdf
// @Param id path int true "Payment id"
// @Success 200 {file} binary
// @Router /payments/{id}/receipt [get]
func (ctrl *PaymentController) Receipt(c *gin.Context) {
	paymentID, ok := paymentIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)

	pdf, err := ctrl.paymentService.Receipt(c.Request.Context(), userID, paymentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", paymentID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func paymentIDParam(c *gin.Context) (int64, bool) {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || paymentID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid payment id"))
		return 0, false
	}
	return paymentID, true
}
