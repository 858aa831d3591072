package controllers

import (
	"github.com/edustack/coachhub/internal/app/services"
	"github.com/edustack/coachhub/internal/pkg/filestorage"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController     *AuthController
	CoachingController *CoachingController
	BookController     *BookController
	RequestController  *RequestController
	PaymentController  *PaymentController
	ChatController     *ChatController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services, storage filestorage.FileStorage) *Controllers {
	return &Controllers{
		AuthController:     NewAuthController(svcs.AuthService, storage),
		CoachingController: NewCoachingController(svcs.CoachingService, storage),
		BookController:     NewBookController(svcs.BookService, storage),
		RequestController:  NewRequestController(svcs.RequestService),
		PaymentController:  NewPaymentController(svcs.PaymentService),
		ChatController:     NewChatController(svcs.ChatService),
	}
}
