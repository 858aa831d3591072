package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/edustack/coachhub/internal/app/models"
	"github.com/edustack/coachhub/internal/app/models/dto"
	"github.com/edustack/coachhub/internal/app/repositories"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
	"github.com/edustack/coachhub/internal/pkg/logger"
	"github.com/edustack/coachhub/internal/pkg/receipt"
	"github.com/edustack/coachhub/internal/pkg/upi"
)

// PaymentConfig carries the merchant identity and the fixed registration fee
type PaymentConfig struct {
	PayeeID      string
	MerchantName string
	Currency     string
	AmountRupees int
	PublicURL    string
}

// PaymentService defines the interface for the simulated payment flow
type PaymentService interface {
	CreateIntent(ctx context.Context, userID int64, req *dto.CreatePaymentRequest) (*dto.PaymentIntentResponse, error)
	QRCode(ctx context.Context, userID, paymentID int64) ([]byte, error)
	Verify(ctx context.Context, userID, paymentID int64) (*dto.PaymentResultResponse, error)
	GetResult(ctx context.Context, userID, paymentID int64) (*dto.PaymentResultResponse, error)
	ListByUser(ctx context.Context, userID int64) ([]dto.PaymentResultResponse, error)
	Receipt(ctx context.Context, userID, paymentID int64) ([]byte, error)
}

type paymentService struct {
	paymentRepo *repositories.PaymentRepository
	userRepo    *repositories.UserRepository
	gateway     PaymentGateway
	cfg         PaymentConfig
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo *repositories.PaymentRepository,
	userRepo *repositories.UserRepository,
	gateway PaymentGateway,
	cfg PaymentConfig,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		cfg:         cfg,
	}
}

// CreateIntent opens a PENDING payment and returns the UPI deep link plus
// where the client can fetch the QR image.
func (s *paymentService) CreateIntent(ctx context.Context, userID int64, req *dto.CreatePaymentRequest) (*dto.PaymentIntentResponse, error) {
	description := req.Description
	if description == "" {
		description = "Coaching registration fee"
	}

	payment := &models.Payment{
		UserID:       userID,
		CoachingID:   req.CoachingID,
		AmountRupees: s.cfg.AmountRupees,
		Currency:     s.cfg.Currency,
		MerchantName: s.cfg.MerchantName,
		Description:  description,
	}

	id, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("paymentID", id).Int64("userID", userID).Msg("Payment intent created")

	return &dto.PaymentIntentResponse{
		PaymentID:    id,
		DeepLink:     upi.DeepLink(s.intent()),
		QRCodeURL:    fmt.Sprintf("%s/api/v1/payments/%d/qr", s.cfg.PublicURL, id),
		AmountRupees: s.cfg.AmountRupees,
		Currency:     s.cfg.Currency,
		MerchantName: s.cfg.MerchantName,
	}, nil
}

// QRCode renders the payment's UPI intent as a PNG
func (s *paymentService) QRCode(ctx context.Context, userID, paymentID int64) ([]byte, error) {
	if _, err := s.ownedPayment(ctx, userID, paymentID); err != nil {
		return nil, err
	}
	return upi.QRCode(s.intent(), 256)
}

// Verify settles a payment through the gateway and records the outcome.
// A FAILED payment may be verified again (the client's retry); SUCCESS is
// terminal and returns the recorded result without touching the gateway.
func (s *paymentService) Verify(ctx context.Context, userID, paymentID int64) (*dto.PaymentResultResponse, error) {
	payment, err := s.ownedPayment(ctx, userID, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status == models.PaymentStatusSuccess {
		return s.toResult(payment), nil
	}

	outcome, err := s.gateway.Verify(ctx, paymentID, payment.AmountRupees)
	if err != nil {
		return nil, err
	}

	status := models.PaymentStatusFailed
	if outcome.Success {
		status = models.PaymentStatusSuccess
	}

	if err := s.paymentRepo.Settle(ctx, paymentID, status, outcome.TransactionID, outcome.FailureReason); err != nil {
		// Lost the settle race; whatever landed first is the answer
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	settled, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("paymentID", paymentID).
		Str("status", string(settled.Status)).
		Msg("Payment verified")

	return s.toResult(settled), nil
}

// GetResult returns the recorded state of a payment
func (s *paymentService) GetResult(ctx context.Context, userID, paymentID int64) (*dto.PaymentResultResponse, error) {
	payment, err := s.ownedPayment(ctx, userID, paymentID)
	if err != nil {
		return nil, err
	}
	return s.toResult(payment), nil
}

// ListByUser returns the caller's payment history
func (s *paymentService) ListByUser(ctx context.Context, userID int64) ([]dto.PaymentResultResponse, error) {
	payments, err := s.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]dto.PaymentResultResponse, 0, len(payments))
	for _, p := range payments {
		results = append(results, *s.toResult(p))
	}
	return results, nil
}

// Receipt renders the PDF receipt for a successful payment
func (s *paymentService) Receipt(ctx context.Context, userID, paymentID int64) ([]byte, error) {
	payment, err := s.ownedPayment(ctx, userID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentStatusSuccess {
		return nil, apperrors.NewBadRequestError("receipt is only available for successful payments")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	paidAt := payment.CreatedAt
	if payment.VerifiedAt != nil {
		paidAt = *payment.VerifiedAt
	}

	return receipt.Render(receipt.Data{
		TransactionID: payment.TransactionID,
		MerchantName:  payment.MerchantName,
		Description:   payment.Description,
		AmountRupees:  payment.AmountRupees,
		Currency:      payment.Currency,
		PaidAt:        paidAt,
		PayerName:     user.FullName,
		PayerEmail:    user.Email,
	})
}

// ownedPayment loads a payment and checks it belongs to the caller. A
// foreign payment reads as not found rather than forbidden, so payment ids
// cannot be probed.
func (s *paymentService) ownedPayment(ctx context.Context, userID, paymentID int64) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.UserID != userID {
		return nil, apperrors.ErrPaymentNotFound
	}
	return payment, nil
}

func (s *paymentService) intent() upi.Intent {
	return upi.Intent{
		PayeeID:      s.cfg.PayeeID,
		MerchantName: s.cfg.MerchantName,
		AmountRupees: s.cfg.AmountRupees,
		Currency:     s.cfg.Currency,
	}
}

func (s *paymentService) toResult(p *models.Payment) *dto.PaymentResultResponse {
	result := &dto.PaymentResultResponse{
		PaymentID:     p.ID,
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		AmountRupees:  p.AmountRupees,
		MerchantName:  p.MerchantName,
		Description:   p.Description,
		FailureReason: p.FailureReason,
		VerifiedAt:    p.VerifiedAt,
	}
	if p.Status == models.PaymentStatusSuccess {
		result.ReceiptURL = fmt.Sprintf("%s/api/v1/payments/%d/receipt", s.cfg.PublicURL, p.ID)
	}
	return result
}
