package services

import (
	"context"
	"errors"

	"github.com/edustack/coachhub/internal/app/models"
	"github.com/edustack/coachhub/internal/app/models/dto"
	"github.com/edustack/coachhub/internal/app/repositories"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
	"github.com/edustack/coachhub/internal/pkg/filestorage"
	"github.com/edustack/coachhub/internal/pkg/helpers"
	"github.com/edustack/coachhub/internal/pkg/logger"
)

// BookService defines the interface for marketplace operations
type BookService interface {
	Create(ctx context.Context, sellerID int64, req *dto.CreateBookRequest) (*dto.BookResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.BookResponse, error)
	List(ctx context.Context, page, size int, filter dto.ListBooksFilter) ([]dto.BookResponse, dto.PaginationInfo, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]dto.BookResponse, error)
	MarkSold(ctx context.Context, sellerID, bookID int64) error
}

type bookService struct {
	bookRepo *repositories.BookRepository
	storage  filestorage.FileStorage
}

// NewBookService creates a new BookService
func NewBookService(bookRepo *repositories.BookRepository, storage filestorage.FileStorage) BookService {
	return &bookService{
		bookRepo: bookRepo,
		storage:  storage,
	}
}

// Create lists a book for sale
func (s *bookService) Create(ctx context.Context, sellerID int64, req *dto.CreateBookRequest) (*dto.BookResponse, error) {
	book := &models.Book{
		SellerID:    sellerID,
		Title:       req.Title,
		Author:      req.Author,
		Subject:     req.Subject,
		Condition:   models.BookCondition(req.Condition),
		PriceRupees: req.PriceRupees,
		MRPRupees:   req.MRPRupees,
		Description: req.Description,
		Image:       req.Image,
		City:        req.City,
	}

	id, err := s.bookRepo.Create(ctx, book)
	if err != nil {
		return nil, err
	}
	book.ID = id

	logger.Info().Int64("bookID", id).Int64("sellerID", sellerID).Msg("Book listed for sale")
	return s.toResponse(book), nil
}

// GetByID retrieves one listing
func (s *bookService) GetByID(ctx context.Context, id int64) (*dto.BookResponse, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, err
	}
	return s.toResponse(book), nil
}

// List retrieves one page of unsold listings matching the filter
func (s *bookService) List(ctx context.Context, page, size int, filter dto.ListBooksFilter) ([]dto.BookResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	books, total, err := s.bookRepo.List(ctx, filter.Search, filter.Subject, filter.Condition, filter.Sort, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		responses = append(responses, *s.toResponse(b))
	}
	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// ListBySeller retrieves the caller's own listings
func (s *bookService) ListBySeller(ctx context.Context, sellerID int64) ([]dto.BookResponse, error) {
	books, err := s.bookRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		responses = append(responses, *s.toResponse(b))
	}
	return responses, nil
}

// MarkSold flags the caller's own listing as sold
func (s *bookService) MarkSold(ctx context.Context, sellerID, bookID int64) error {
	if err := s.bookRepo.MarkSold(ctx, bookID, sellerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrBookNotFound
		}
		return err
	}
	return nil
}

func (s *bookService) toResponse(b *models.Book) *dto.BookResponse {
	resp := &dto.BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Subject:     b.Subject,
		Condition:   string(b.Condition),
		PriceRupees: b.PriceRupees,
		MRPRupees:   b.MRPRupees,
		Description: b.Description,
		City:        b.City,
		Sold:        b.Sold,
	}
	if b.Image != "" {
		resp.ImageURL = s.storage.ViewURL(b.Image)
	}
	return resp
}
