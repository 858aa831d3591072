package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edustack/coachhub/internal/app/codec"
	"github.com/edustack/coachhub/internal/app/models"
	"github.com/edustack/coachhub/internal/app/models/dto"
	"github.com/edustack/coachhub/internal/app/repositories"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
	"github.com/edustack/coachhub/internal/pkg/cache"
	"github.com/edustack/coachhub/internal/pkg/filestorage"
	"github.com/edustack/coachhub/internal/pkg/helpers"
	"github.com/edustack/coachhub/internal/pkg/logger"
	"github.com/edustack/coachhub/internal/pkg/slug"
)

// CoachingService defines the interface for coaching center operations
type CoachingService interface {
	Register(ctx context.Context, ownerID int64, req *dto.CreateCoachingRequest) (*models.CoachingCenter, error)
	GetBySlug(ctx context.Context, slugStr string) (*dto.CoachingDetail, error)
	List(ctx context.Context, page, size int, filter dto.ListCoachingFilter) (*dto.CoachingListResponse, dto.PaginationInfo, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]dto.CoachingSummary, error)
	Update(ctx context.Context, ownerID, coachingID int64, req *dto.UpdateCoachingRequest) (*models.CoachingCenter, error)
}

type coachingService struct {
	coachingRepo *repositories.CoachingRepository
	storage      filestorage.FileStorage
	listingCache *cache.Cache
}

// NewCoachingService creates a new CoachingService
func NewCoachingService(
	coachingRepo *repositories.CoachingRepository,
	storage filestorage.FileStorage,
	listingCache *cache.Cache,
) CoachingService {
	return &coachingService{
		coachingRepo: coachingRepo,
		storage:      storage,
		listingCache: listingCache,
	}
}

// Register creates a coaching center owned by the caller. The slug is derived
// from the name; a collision is rejected so the owner can pick a distinct
// name rather than silently landing on a mangled URL.
func (s *coachingService) Register(ctx context.Context, ownerID int64, req *dto.CreateCoachingRequest) (*models.CoachingCenter, error) {
	if err := validateSubjectNames(req); err != nil {
		return nil, err
	}

	slugStr := slug.Make(req.Name)
	if slugStr == "" {
		return nil, apperrors.NewBadRequestError("name must contain at least one letter or digit")
	}

	center := buildCenter(ownerID, slugStr, req)

	id, createdAt, err := s.coachingRepo.Create(ctx, codec.Encode(center))
	if err != nil {
		return nil, err
	}
	center.ID = id
	center.CreatedAt = createdAt
	center.UpdatedAt = createdAt

	s.invalidateListing(ctx)
	logger.Info().Int64("coachingID", id).Str("slug", slugStr).Msg("Coaching center registered")

	return center, nil
}

// GetBySlug retrieves the full detail view for one center
func (s *coachingService) GetBySlug(ctx context.Context, slugStr string) (*dto.CoachingDetail, error) {
	rec, createdAt, updatedAt, err := s.coachingRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCoachingNotFound
		}
		return nil, err
	}

	center, err := codec.Decode(rec)
	if err != nil {
		logger.Error().Err(err).Str("slug", slugStr).Msg("Stored coaching record failed to decode")
		return nil, err
	}
	center.CreatedAt = createdAt
	center.UpdatedAt = updatedAt

	return s.toDetail(center), nil
}

// List returns one filtered page of the public directory. The unfiltered
// page is cached; the filter runs per request over the cached page so every
// filter combination shares one fetch.
func (s *coachingService) List(ctx context.Context, page, size int, filter dto.ListCoachingFilter) (*dto.CoachingListResponse, dto.PaginationInfo, error) {
	summaries, total, err := s.fetchPage(ctx, page, size)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	filtered := ApplyListingFilter(summaries, filter)

	resp := &dto.CoachingListResponse{
		Items:     filtered,
		Total:     len(filtered),
		FetchedAt: time.Now(),
	}
	return resp, helpers.NewPaginationInfo(total, page, size), nil
}

// ListByOwner returns the caller's own centers as summaries
func (s *coachingService) ListByOwner(ctx context.Context, ownerID int64) ([]dto.CoachingSummary, error) {
	records, err := s.coachingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.CoachingSummary, 0, len(records))
	for _, rec := range records {
		center, err := codec.Decode(rec)
		if err != nil {
			logger.Error().Err(err).Int64("coachingID", rec.ID).Msg("Skipping undecodable coaching record")
			continue
		}
		summaries = append(summaries, s.toSummary(center))
	}
	return summaries, nil
}

// Update applies a partial update to a center owned by the caller. The whole
// record is re-encoded and rewritten, so batches and faculty always land as
// one consistent set of arrays.
func (s *coachingService) Update(ctx context.Context, ownerID, coachingID int64, req *dto.UpdateCoachingRequest) (*models.CoachingCenter, error) {
	rec, createdAt, _, err := s.coachingRepo.GetByID(ctx, coachingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCoachingNotFound
		}
		return nil, err
	}
	if rec.OwnerID != ownerID {
		return nil, apperrors.ErrCoachingNotOwned
	}

	center, err := codec.Decode(rec)
	if err != nil {
		logger.Error().Err(err).Int64("coachingID", coachingID).Msg("Stored coaching record failed to decode")
		return nil, err
	}

	applyUpdate(center, req)
	if err := validateUpdatedSubjects(center); err != nil {
		return nil, err
	}

	if err := s.coachingRepo.Update(ctx, codec.Encode(center)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCoachingNotFound
		}
		return nil, err
	}

	center.CreatedAt = createdAt
	center.UpdatedAt = time.Now()
	s.invalidateListing(ctx)

	return center, nil
}

// fetchPage loads one unfiltered page of summaries, read-through cached
func (s *coachingService) fetchPage(ctx context.Context, page, size int) ([]dto.CoachingSummary, int64, error) {
	type cachedPage struct {
		Items []dto.CoachingSummary `json:"items"`
		Total int64                 `json:"total"`
	}

	key := fmt.Sprintf("coaching:listing:%d:%d", page, size)
	if raw, ok := s.listingCache.Get(ctx, key); ok {
		var cp cachedPage
		if err := json.Unmarshal(raw, &cp); err == nil {
			return cp.Items, cp.Total, nil
		}
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	records, err := s.coachingRepo.ListPage(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.coachingRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]dto.CoachingSummary, 0, len(records))
	for _, rec := range records {
		center, err := codec.Decode(rec)
		if err != nil {
			// One bad record must not take the whole directory down
			logger.Error().Err(err).Int64("coachingID", rec.ID).Msg("Skipping undecodable coaching record")
			continue
		}
		summaries = append(summaries, s.toSummary(center))
	}

	if raw, err := json.Marshal(cachedPage{Items: summaries, Total: total}); err == nil {
		s.listingCache.Set(ctx, key, raw)
	}

	return summaries, total, nil
}

func (s *coachingService) invalidateListing(ctx context.Context) {
	// First page is what nearly everyone sees; deeper pages age out via TTL
	s.listingCache.Invalidate(ctx, fmt.Sprintf("coaching:listing:%d:%d", 1, helpers.DefaultPageSize))
}

func (s *coachingService) toSummary(center *models.CoachingCenter) dto.CoachingSummary {
	sum := dto.CoachingSummary{
		ID:            center.ID,
		Slug:          center.Slug,
		Name:          center.BasicInfo.Name,
		City:          center.BasicInfo.City,
		Description:   center.BasicInfo.Description,
		Subjects:      center.Subjects,
		Rating:        center.Rating,
		MinMonthlyFee: center.MinMonthlyFee(),
	}
	if center.Logo != "" {
		sum.LogoURL = s.storage.ViewURL(center.Logo)
	}
	if center.CoverImage != "" {
		sum.CoverURL = s.storage.ViewURL(center.CoverImage)
	}
	return sum
}

func (s *coachingService) toDetail(center *models.CoachingCenter) *dto.CoachingDetail {
	detail := &dto.CoachingDetail{
		CoachingCenter:     *center,
		ClassroomImageURLs: make([]string, 0, len(center.ClassroomImages)),
	}
	if center.Logo != "" {
		detail.LogoURL = s.storage.ViewURL(center.Logo)
	}
	if center.CoverImage != "" {
		detail.CoverURL = s.storage.ViewURL(center.CoverImage)
	}
	for _, id := range center.ClassroomImages {
		detail.ClassroomImageURLs = append(detail.ClassroomImageURLs, s.storage.ViewURL(id))
	}
	return detail
}

// buildCenter maps the registration payload onto the nested model
func buildCenter(ownerID int64, slugStr string, req *dto.CreateCoachingRequest) *models.CoachingCenter {
	center := &models.CoachingCenter{
		OwnerID: ownerID,
		Slug:    slugStr,
		BasicInfo: models.BasicInfo{
			Name:            strings.TrimSpace(req.Name),
			Description:     req.Description,
			Address:         req.Address,
			City:            req.City,
			Phone:           req.Phone,
			Email:           req.Email,
			Website:         req.Website,
			EstablishedYear: req.EstablishedYear,
		},
		Logo:            req.Logo,
		CoverImage:      req.CoverImage,
		ClassroomImages: emptyIfNil(req.ClassroomImages),
		Facilities:      req.Facilities,
		Subjects:        req.Subjects,
	}

	center.Batches = make([]models.Batch, len(req.Batches))
	for i, b := range req.Batches {
		seats := b.AvailableSeats
		if seats == 0 {
			seats = b.Capacity
		}
		center.Batches[i] = models.Batch{
			Name:           b.Name,
			Subjects:       b.Subjects,
			Timing:         b.Timing,
			Capacity:       b.Capacity,
			AvailableSeats: seats,
			MonthlyFee:     b.MonthlyFee,
			Duration:       b.Duration,
		}
	}

	center.Faculty = make([]models.Faculty, len(req.Faculty))
	for i, f := range req.Faculty {
		center.Faculty[i] = models.Faculty{
			Name:          f.Name,
			Qualification: f.Qualification,
			Experience:    f.Experience,
			Subject:       f.Subject,
			Bio:           f.Bio,
			Image:         f.Image,
		}
	}

	return center
}

// applyUpdate copies the non-nil fields of the payload onto the center
func applyUpdate(center *models.CoachingCenter, req *dto.UpdateCoachingRequest) {
	if req.Description != nil {
		center.BasicInfo.Description = *req.Description
	}
	if req.Address != nil {
		center.BasicInfo.Address = *req.Address
	}
	if req.City != nil {
		center.BasicInfo.City = *req.City
	}
	if req.Phone != nil {
		center.BasicInfo.Phone = *req.Phone
	}
	if req.Email != nil {
		center.BasicInfo.Email = *req.Email
	}
	if req.Website != nil {
		center.BasicInfo.Website = *req.Website
	}
	if req.Logo != nil {
		center.Logo = *req.Logo
	}
	if req.CoverImage != nil {
		center.CoverImage = *req.CoverImage
	}
	if req.ClassroomImages != nil {
		center.ClassroomImages = req.ClassroomImages
	}
	if req.Facilities != nil {
		center.Facilities = req.Facilities
	}
	if req.Subjects != nil {
		center.Subjects = req.Subjects
	}
	if req.Batches != nil {
		center.Batches = make([]models.Batch, len(req.Batches))
		for i, b := range req.Batches {
			center.Batches[i] = models.Batch{
				Name:           b.Name,
				Subjects:       b.Subjects,
				Timing:         b.Timing,
				Capacity:       b.Capacity,
				AvailableSeats: b.AvailableSeats,
				MonthlyFee:     b.MonthlyFee,
				Duration:       b.Duration,
			}
		}
	}
	if req.Faculty != nil {
		center.Faculty = make([]models.Faculty, len(req.Faculty))
		for i, f := range req.Faculty {
			center.Faculty[i] = models.Faculty{
				Name:          f.Name,
				Qualification: f.Qualification,
				Experience:    f.Experience,
				Subject:       f.Subject,
				Bio:           f.Bio,
				Image:         f.Image,
			}
		}
	}
}

// validateSubjectNames rejects subject names that would collide with the
// storage separator used to keep per-batch subject groups together.
func validateSubjectNames(req *dto.CreateCoachingRequest) error {
	for _, s := range req.Subjects {
		if strings.Contains(s, "|") {
			return apperrors.NewBadRequestError("subject names must not contain '|'")
		}
	}
	for _, b := range req.Batches {
		for _, s := range b.Subjects {
			if strings.Contains(s, "|") {
				return apperrors.NewBadRequestError("subject names must not contain '|'")
			}
		}
	}
	return nil
}

func validateUpdatedSubjects(center *models.CoachingCenter) error {
	for _, s := range center.Subjects {
		if strings.Contains(s, "|") {
			return apperrors.NewBadRequestError("subject names must not contain '|'")
		}
	}
	for _, b := range center.Batches {
		for _, s := range b.Subjects {
			if strings.Contains(s, "|") {
				return apperrors.NewBadRequestError("subject names must not contain '|'")
			}
		}
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
