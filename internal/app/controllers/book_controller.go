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
	"github.com/edustack/coachhub/internal/pkg/filestorage"
	"github.com/edustack/coachhub/internal/pkg/helpers"
)

// BookController handles book marketplace endpoints
type BookController struct {
	bookService services.BookService
	storage     filestorage.FileStorage
}

// NewBookController creates a new BookController
func NewBookController(bookService services.BookService, storage filestorage.FileStorage) *BookController {
	return &BookController{
		bookService: bookService,
		storage:     storage,
	}
}

// List returns one page of unsold listings
// @Summary List books for sale
// @Tags books
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param search query string false "Search over title, author and subject"
// @Param subject query string false "Exact subject"
// @Param condition query string false "Book condition"
// @Param sort query string false "price_asc, price_desc or newest"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /books [get]
func (ctrl *BookController) List(c *gin.Context) {
	var filter dto.ListBooksFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, size := helpers.ParsePaginationParams(c)

	books, pagination, err := ctrl.bookService.List(c.Request.Context(), page, size, filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      books,
			Pagination: pagination,
		},
		Timestamp: time.Now(),
	})
}

// Get returns one listing
// @Summary Get a book listing
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} dto.APIResponse{data=dto.BookResponse}
// @Router /books/{id} [get]
func (ctrl *BookController) Get(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid book id"))
		return
	}

	book, err := ctrl.bookService.GetByID(c.Request.Context(), bookID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: book, Timestamp: time.Now()})
}

// Create lists a book for sale
// @Summary List a book for sale
// @Tags books
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBookRequest true "Listing payload"
// @Success 201 {object} dto.APIResponse{data=dto.BookResponse}
// @Router /books [post]
func (ctrl *BookController) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	sellerID, _ := middleware.GetUserID(c)

	book, err := ctrl.bookService.Create(c.Request.Context(), sellerID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: book, Timestamp: time.Now()})
}

// MyListings returns the caller's own listings, sold included
// @Summary List my book listings
// @Tags books
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.BookResponse}
// @Router /books/mine [get]
func (ctrl *BookController) MyListings(c *gin.Context) {
	sellerID, _ := middleware.GetUserID(c)

	books, err := ctrl.bookService.ListBySeller(c.Request.Context(), sellerID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: books, Timestamp: time.Now()})
}

// MarkSold flags the caller's listing as sold
// @Summary Mark a book as sold
// @Tags books
// @Security BearerAuth
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /books/{id}/sold [post]
func (ctrl *BookController) MarkSold(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid book id"))
		return
	}

	sellerID, _ := middleware.GetUserID(c)

	if err := ctrl.bookService.MarkSold(c.Request.Context(), sellerID, bookID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Book marked as sold"},
		Timestamp: time.Now(),
	})
}

// UploadImage stores a book image and returns its file id and URL
// @Summary Upload a book image
// @Tags books
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} dto.APIResponse
// @Router /books/images [post]
func (ctrl *BookController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("file is required"))
		return
	}

	fileID, err := ctrl.storage.SaveFileWithPath(fileHeader, "books")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{
		Data: gin.H{
			"fileId": fileID,
			"url":    ctrl.storage.ViewURL(fileID),
		},
		Timestamp: time.Now(),
	})
}
