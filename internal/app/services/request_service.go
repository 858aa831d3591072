package services

import (
	"context"
	"errors"

	"github.com/edustack/coachhub/internal/app/models"
	"github.com/edustack/coachhub/internal/app/models/dto"
	"github.com/edustack/coachhub/internal/app/repositories"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
	"github.com/edustack/coachhub/internal/pkg/logger"
)

// RequestService defines the interface for demo-class request operations
type RequestService interface {
	Create(ctx context.Context, userID int64, req *dto.CreateDemoRequest) (*models.DemoRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.DemoRequest, error)
	ListForCoaching(ctx context.Context, ownerID, coachingID int64) ([]*models.DemoRequest, error)
	Decide(ctx context.Context, ownerID, requestID int64, status string) (*models.DemoRequest, error)
}

type requestService struct {
	requestRepo  *repositories.RequestRepository
	coachingRepo *repositories.CoachingRepository
}

// NewRequestService creates a new RequestService
func NewRequestService(
	requestRepo *repositories.RequestRepository,
	coachingRepo *repositories.CoachingRepository,
) RequestService {
	return &requestService{
		requestRepo:  requestRepo,
		coachingRepo: coachingRepo,
	}
}

// Create opens a demo-class request. One pending request per student per
// center; a second attempt is rejected until the first is decided.
func (s *requestService) Create(ctx context.Context, userID int64, req *dto.CreateDemoRequest) (*models.DemoRequest, error) {
	if _, _, _, err := s.coachingRepo.GetByID(ctx, req.CoachingID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCoachingNotFound
		}
		return nil, err
	}

	open, err := s.requestRepo.HasOpenRequest(ctx, userID, req.CoachingID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, apperrors.ErrRequestAlreadyOpen
	}

	request := &models.DemoRequest{
		UserID:     userID,
		CoachingID: req.CoachingID,
		Type:       models.RequestTypeDemoClass,
		Message:    req.Message,
	}

	id, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	created, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("requestID", id).Int64("coachingID", req.CoachingID).Msg("Demo class requested")
	return created, nil
}

// ListByUser retrieves the student's own requests
func (s *requestService) ListByUser(ctx context.Context, userID int64) ([]*models.DemoRequest, error) {
	return s.requestRepo.ListByUser(ctx, userID)
}

// ListForCoaching retrieves requests against a center the caller owns
func (s *requestService) ListForCoaching(ctx context.Context, ownerID, coachingID int64) ([]*models.DemoRequest, error) {
	rec, _, _, err := s.coachingRepo.GetByID(ctx, coachingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCoachingNotFound
		}
		return nil, err
	}
	if rec.OwnerID != ownerID {
		return nil, apperrors.ErrCoachingNotOwned
	}

	return s.requestRepo.ListByCoaching(ctx, coachingID)
}

// Decide approves or rejects a pending request against the caller's center
func (s *requestService) Decide(ctx context.Context, ownerID, requestID int64, status string) (*models.DemoRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}

	rec, _, _, err := s.coachingRepo.GetByID(ctx, request.CoachingID)
	if err != nil {
		return nil, err
	}
	if rec.OwnerID != ownerID {
		return nil, apperrors.ErrCoachingNotOwned
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, models.RequestStatus(status)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Row exists but is no longer PENDING
			return nil, apperrors.NewConflictError("request has already been decided")
		}
		return nil, err
	}

	return s.requestRepo.GetByID(ctx, requestID)
}
