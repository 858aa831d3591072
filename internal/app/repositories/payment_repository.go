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

var paymentColumns = []string{
	"id", "user_id", "coaching_id", "amount_rupees", "currency", "status",
	"transaction_id", "merchant_name", "description", "failure_reason",
	"created_at", "verified_at",
}

// PaymentRepository handles payment record database operations
type PaymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new payment record in PENDING state
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) (int64, error) {
	sql, args, err := r.sb.Insert("payments").
		Columns("user_id", "coaching_id", "amount_rupees", "currency", "status",
			"merchant_name", "description").
		Values(p.UserID, p.CoachingID, p.AmountRupees, p.Currency, models.PaymentStatusPending,
			p.MerchantName, p.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create payment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create payment query")
		return 0, fmt.Errorf("error creating payment: %w", err)
	}

	return id, nil
}

// GetByID retrieves a single payment record
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	sql, args, err := r.sb.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get payment query: %w", err)
	}

	p, err := scanPaymentRow(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting payment: %w", err)
	}

	return p, nil
}

// ListByUser retrieves a user's payment history, newest first
func (r *PaymentRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Payment, error) {
	sql, args, err := r.sb.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p, err := scanPaymentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// Settle records the outcome of verification. SUCCESS is terminal; a FAILED
// payment may be settled again so the client's retry can re-run
// verification.
func (r *PaymentRepository) Settle(ctx context.Context, id int64, status models.PaymentStatus, transactionID, failureReason string) error {
	sql, args, err := r.sb.Update("payments").
		SetMap(map[string]interface{}{
			"status":         status,
			"transaction_id": transactionID,
			"failure_reason": failureReason,
			"verified_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": models.PaymentStatusSuccess}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build settle payment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("paymentID", id).Msg("Error settling payment")
		return fmt.Errorf("error settling payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanPaymentRow(row pgx.Row) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.CoachingID, &p.AmountRupees, &p.Currency, &p.Status,
		&p.TransactionID, &p.MerchantName, &p.Description, &p.FailureReason,
		&p.CreatedAt, &p.VerifiedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}
