package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustack/coachhub/internal/app/models"
	"github.com/edustack/coachhub/internal/pkg/logger"
)

var bookColumns = []string{
	"id", "seller_id", "title", "author", "subject", "condition",
	"price_rupees", "mrp_rupees", "description", "image", "city", "sold", "created_at",
}

// BookRepository handles book marketplace database operations
type BookRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new book listing
func (r *BookRepository) Create(ctx context.Context, book *models.Book) (int64, error) {
	sql, args, err := r.sb.Insert("books").
		Columns("seller_id", "title", "author", "subject", "condition",
			"price_rupees", "mrp_rupees", "description", "image", "city").
		Values(book.SellerID, book.Title, book.Author, book.Subject, book.Condition,
			book.PriceRupees, book.MRPRupees, book.Description, book.Image, book.City).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create book query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create book query")
		return 0, fmt.Errorf("error creating book: %w", err)
	}

	return id, nil
}

// GetByID retrieves a single book listing
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	sql, args, err := r.sb.Select(bookColumns...).
		From("books").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get book query: %w", err)
	}

	book, err := scanBookRow(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting book: %w", err)
	}

	return book, nil
}

// List retrieves unsold listings matching the filter. The search term matches
// title, author or subject case-insensitively; sort is one of the orderings
// exposed to clients and falls back to newest-first.
func (r *BookRepository) List(ctx context.Context, search, subject, condition, sort string, offset uint64, limit int) ([]*models.Book, int64, error) {
	base := r.sb.Select().From("books").Where(squirrel.Eq{"sold": false})

	if search != "" {
		pattern := "%" + search + "%"
		base = base.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"author": pattern},
			squirrel.ILike{"subject": pattern},
		})
	}
	if subject != "" {
		base = base.Where(squirrel.Eq{"subject": subject})
	}
	if condition != "" {
		base = base.Where(squirrel.Eq{"condition": condition})
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count books query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting books: %w", err)
	}

	var orderBy string
	switch sort {
	case "price_asc":
		orderBy = "price_rupees ASC"
	case "price_desc":
		orderBy = "price_rupees DESC"
	default:
		orderBy = "created_at DESC"
	}

	listSQL, listArgs, err := base.Columns(bookColumns...).
		OrderBy(orderBy).
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list books query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list books query")
		return nil, 0, fmt.Errorf("error querying books: %w", err)
	}
	defer rows.Close()

	books := []*models.Book{}
	for rows.Next() {
		book, err := scanBookRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning book row: %w", err)
		}
		books = append(books, book)
	}

	return books, total, rows.Err()
}

// ListBySeller retrieves all listings posted by one seller, sold included
func (r *BookRepository) ListBySeller(ctx context.Context, sellerID int64) ([]*models.Book, error) {
	sql, args, err := r.sb.Select(bookColumns...).
		From("books").
		Where(squirrel.Eq{"seller_id": sellerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list by seller query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying books by seller: %w", err)
	}
	defer rows.Close()

	books := []*models.Book{}
	for rows.Next() {
		book, err := scanBookRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning book row: %w", err)
		}
		books = append(books, book)
	}

	return books, rows.Err()
}

// MarkSold flags a listing as sold
func (r *BookRepository) MarkSold(ctx context.Context, id int64, sellerID int64) error {
	sql, args, err := r.sb.Update("books").
		Set("sold", true).
		Where(squirrel.Eq{"id": id, "seller_id": sellerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark sold query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error marking book sold: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the total number of book listings
func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting books: %w", err)
	}
	return total, nil
}

func scanBookRow(row pgx.Row) (*models.Book, error) {
	book := &models.Book{}
	err := row.Scan(
		&book.ID, &book.SellerID, &book.Title, &book.Author, &book.Subject, &book.Condition,
		&book.PriceRupees, &book.MRPRupees, &book.Description, &book.Image, &book.City,
		&book.Sold, &book.CreatedAt)
	if err != nil {
		return nil, err
	}
	return book, nil
}
