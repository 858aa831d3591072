package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for lookups that return zero rows
var ErrNotFound = errors.New("not found")

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	TokenRepository    *TokenRepository
	CoachingRepository *CoachingRepository
	BookRepository     *BookRepository
	RequestRepository  *RequestRepository
	PaymentRepository  *PaymentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		TokenRepository:    NewTokenRepository(db),
		CoachingRepository: NewCoachingRepository(db),
		BookRepository:     NewBookRepository(db),
		RequestRepository:  NewRequestRepository(db),
		PaymentRepository:  NewPaymentRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
