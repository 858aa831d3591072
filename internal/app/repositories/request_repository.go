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

var requestColumns = []string{
	"id", "user_id", "coaching_id", "request_type", "status", "message",
	"created_at", "updated_at",
}

// RequestRepository handles demo-class request database operations
type RequestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new demo-class request in PENDING state
func (r *RequestRepository) Create(ctx context.Context, req *models.DemoRequest) (int64, error) {
	sql, args, err := r.sb.Insert("demo_requests").
		Columns("user_id", "coaching_id", "request_type", "status", "message").
		Values(req.UserID, req.CoachingID, req.Type, models.RequestStatusPending, req.Message).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create request query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create request query")
		return 0, fmt.Errorf("error creating demo request: %w", err)
	}

	return id, nil
}

// GetByID retrieves a single demo request
func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*models.DemoRequest, error) {
	sql, args, err := r.sb.Select(requestColumns...).
		From("demo_requests").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get request query: %w", err)
	}

	req, err := scanRequestRow(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting demo request: %w", err)
	}

	return req, nil
}

// HasOpenRequest reports whether the student already has a PENDING request
// against the given coaching center.
func (r *RequestRepository) HasOpenRequest(ctx context.Context, userID, coachingID int64) (bool, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("demo_requests").
		Where(squirrel.Eq{
			"user_id":     userID,
			"coaching_id": coachingID,
			"status":      models.RequestStatusPending,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build open request query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("error checking open request: %w", err)
	}

	return count > 0, nil
}

// ListByUser retrieves a student's requests, newest first
func (r *RequestRepository) ListByUser(ctx context.Context, userID int64) ([]*models.DemoRequest, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListByCoaching retrieves all requests raised against one coaching center
func (r *RequestRepository) ListByCoaching(ctx context.Context, coachingID int64) ([]*models.DemoRequest, error) {
	return r.list(ctx, squirrel.Eq{"coaching_id": coachingID})
}

func (r *RequestRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.DemoRequest, error) {
	sql, args, err := r.sb.Select(requestColumns...).
		From("demo_requests").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list requests query")
		return nil, fmt.Errorf("error querying demo requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.DemoRequest{}
	for rows.Next() {
		req, err := scanRequestRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning request row: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateStatus moves a request out of PENDING. The status guard keeps an
// already decided request from being decided twice.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error {
	sql, args, err := r.sb.Update("demo_requests").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": models.RequestStatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update request status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("requestID", id).Msg("Error updating request status")
		return fmt.Errorf("error updating request status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanRequestRow(row pgx.Row) (*models.DemoRequest, error) {
	req := &models.DemoRequest{}
	err := row.Scan(
		&req.ID, &req.UserID, &req.CoachingID, &req.Type, &req.Status, &req.Message,
		&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return req, nil
}
