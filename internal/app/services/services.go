package services

import (
	"github.com/edustack/coachhub/internal/app/repositories"
	"github.com/edustack/coachhub/internal/pkg/auth"
	"github.com/edustack/coachhub/internal/pkg/cache"
	"github.com/edustack/coachhub/internal/pkg/filestorage"
	"github.com/edustack/coachhub/internal/pkg/genai"
)

// Services holds all the service instances
type Services struct {
	AuthService     AuthService
	CoachingService CoachingService
	BookService     BookService
	RequestService  RequestService
	PaymentService  PaymentService
	ChatService     ChatService
}

// Deps carries everything the service layer is built from
type Deps struct {
	Repos        *repositories.Repositories
	JWTService   *auth.JWTService
	Storage      filestorage.FileStorage
	ListingCache *cache.Cache
	Generator    genai.TextGenerator
	Gateway      PaymentGateway
	PaymentCfg   PaymentConfig
}

// NewServices initializes all services
func NewServices(d Deps) *Services {
	return &Services{
		AuthService:     NewAuthService(d.Repos.UserRepository, d.Repos.TokenRepository, d.JWTService),
		CoachingService: NewCoachingService(d.Repos.CoachingRepository, d.Storage, d.ListingCache),
		BookService:     NewBookService(d.Repos.BookRepository, d.Storage),
		RequestService:  NewRequestService(d.Repos.RequestRepository, d.Repos.CoachingRepository),
		PaymentService:  NewPaymentService(d.Repos.PaymentRepository, d.Repos.UserRepository, d.Gateway, d.PaymentCfg),
		ChatService:     NewChatService(d.Generator),
	}
}
