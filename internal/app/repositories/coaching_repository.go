package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustack/coachhub/internal/app/codec"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
	"github.com/edustack/coachhub/internal/pkg/logger"
)

// coachingColumns lists every column of coaching_centers in scan order.
// The batches_* and faculty_* array columns are the flattened form produced
// by the codec package; they are only ever written together from one
// encoded record.
var coachingColumns = []string{
	"id", "owner_id", "slug", "name", "description", "address", "city",
	"phone", "email", "website", "established_year",
	"logo", "cover_image", "classroom_images", "facilities", "subjects", "rating",
	"batches_names", "batches_subjects", "batches_timings", "batches_capacities",
	"batches_available_seats", "batches_monthly_fees", "batches_durations",
	"faculty_names", "faculty_qualifications", "faculty_experiences",
	"faculty_subjects", "faculty_bios", "faculty_images",
	"created_at", "updated_at",
}

// CoachingRepository handles coaching center database operations. It reads
// and writes the flat parallel-array form; decoding back to the nested form
// happens in the service layer via the codec.
type CoachingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCoachingRepository creates a new CoachingRepository
func NewCoachingRepository(db *pgxpool.Pool) *CoachingRepository {
	return &CoachingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an encoded coaching record and returns its id. A duplicate
// slug surfaces as ErrSlugAlreadyExists; slug uniqueness belongs to the
// database index, not application pre-checks.
func (r *CoachingRepository) Create(ctx context.Context, rec *codec.FlatCoachingRecord) (int64, time.Time, error) {
	sql, args, err := r.sb.Insert("coaching_centers").
		Columns(
			"owner_id", "slug", "name", "description", "address", "city",
			"phone", "email", "website", "established_year",
			"logo", "cover_image", "classroom_images", "facilities", "subjects", "rating",
			"batches_names", "batches_subjects", "batches_timings", "batches_capacities",
			"batches_available_seats", "batches_monthly_fees", "batches_durations",
			"faculty_names", "faculty_qualifications", "faculty_experiences",
			"faculty_subjects", "faculty_bios", "faculty_images").
		Values(
			rec.OwnerID, rec.Slug, rec.Name, rec.Description, rec.Address, rec.City,
			rec.Phone, rec.Email, rec.Website, rec.EstablishedYear,
			rec.Logo, rec.CoverImage, rec.ClassroomImages, rec.Facilities, rec.Subjects, rec.Rating,
			rec.BatchNames, rec.BatchSubjects, rec.BatchTimings, rec.BatchCapacities,
			rec.BatchAvailableSeats, rec.BatchMonthlyFees, rec.BatchDurations,
			rec.FacultyNames, rec.FacultyQualifications, rec.FacultyExperiences,
			rec.FacultySubjects, rec.FacultyBios, rec.FacultyImages).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create coaching SQL")
		return 0, time.Time{}, fmt.Errorf("failed to build create coaching query: %w", err)
	}

	var id int64
	var createdAt time.Time
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id, &createdAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, time.Time{}, apperrors.ErrSlugAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create coaching query")
		return 0, time.Time{}, fmt.Errorf("error creating coaching center: %w", err)
	}

	return id, createdAt, nil
}

// GetBySlug retrieves one flat record by slug
func (r *CoachingRepository) GetBySlug(ctx context.Context, slug string) (*codec.FlatCoachingRecord, time.Time, time.Time, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug})
}

// GetByID retrieves one flat record by id
func (r *CoachingRepository) GetByID(ctx context.Context, id int64) (*codec.FlatCoachingRecord, time.Time, time.Time, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *CoachingRepository) getOne(ctx context.Context, where squirrel.Eq) (*codec.FlatCoachingRecord, time.Time, time.Time, error) {
	sql, args, err := r.sb.Select(coachingColumns...).
		From("coaching_centers").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get coaching SQL")
		return nil, time.Time{}, time.Time{}, fmt.Errorf("failed to build get coaching query: %w", err)
	}

	rec, createdAt, updatedAt, err := scanCoachingRow(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, time.Time{}, time.Time{}, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning coaching row")
		return nil, time.Time{}, time.Time{}, fmt.Errorf("error getting coaching center: %w", err)
	}

	return rec, createdAt, updatedAt, nil
}

// ListPage retrieves one page of flat records ordered by rating then name
func (r *CoachingRepository) ListPage(ctx context.Context, offset uint64, limit int) ([]*codec.FlatCoachingRecord, error) {
	sql, args, err := r.sb.Select(coachingColumns...).
		From("coaching_centers").
		OrderBy("rating DESC", "name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list coaching SQL")
		return nil, fmt.Errorf("failed to build list coaching query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list coaching query")
		return nil, fmt.Errorf("error querying coaching centers: %w", err)
	}
	defer rows.Close()

	records := []*codec.FlatCoachingRecord{}
	for rows.Next() {
		rec, _, _, err := scanCoachingRow(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning coaching row during list")
			return nil, fmt.Errorf("error scanning coaching row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coaching rows: %w", err)
	}

	return records, nil
}

// ListByOwner retrieves every flat record registered by one owner
func (r *CoachingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*codec.FlatCoachingRecord, error) {
	sql, args, err := r.sb.Select(coachingColumns...).
		From("coaching_centers").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list by owner query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying coaching centers by owner: %w", err)
	}
	defer rows.Close()

	records := []*codec.FlatCoachingRecord{}
	for rows.Next() {
		rec, _, _, err := scanCoachingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning coaching row: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Count returns the total number of coaching centers
func (r *CoachingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM coaching_centers").Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting coaching centers: %w", err)
	}
	return total, nil
}

// Update rewrites a coaching record in place. Every array column is written
// together from the encoded record, so a partial batch/faculty update can
// never leave the columns at different lengths.
func (r *CoachingRepository) Update(ctx context.Context, rec *codec.FlatCoachingRecord) error {
	sql, args, err := r.sb.Update("coaching_centers").
		SetMap(map[string]interface{}{
			"description":             rec.Description,
			"address":                 rec.Address,
			"city":                    rec.City,
			"phone":                   rec.Phone,
			"email":                   rec.Email,
			"website":                 rec.Website,
			"logo":                    rec.Logo,
			"cover_image":             rec.CoverImage,
			"classroom_images":        rec.ClassroomImages,
			"facilities":              rec.Facilities,
			"subjects":                rec.Subjects,
			"batches_names":           rec.BatchNames,
			"batches_subjects":        rec.BatchSubjects,
			"batches_timings":         rec.BatchTimings,
			"batches_capacities":      rec.BatchCapacities,
			"batches_available_seats": rec.BatchAvailableSeats,
			"batches_monthly_fees":    rec.BatchMonthlyFees,
			"batches_durations":       rec.BatchDurations,
			"faculty_names":           rec.FacultyNames,
			"faculty_qualifications":  rec.FacultyQualifications,
			"faculty_experiences":     rec.FacultyExperiences,
			"faculty_subjects":        rec.FacultySubjects,
			"faculty_bios":            rec.FacultyBios,
			"faculty_images":          rec.FacultyImages,
			"updated_at":              squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update coaching SQL")
		return fmt.Errorf("failed to build update coaching query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("coachingID", rec.ID).Msg("Error executing update coaching query")
		return fmt.Errorf("error updating coaching center: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// scanCoachingRow scans one row into a flat record. pgx maps the Postgres
// array columns onto the record's slices directly.
func scanCoachingRow(row pgx.Row) (*codec.FlatCoachingRecord, time.Time, time.Time, error) {
	rec := &codec.FlatCoachingRecord{}
	var createdAt, updatedAt time.Time
	err := row.Scan(
		&rec.ID, &rec.OwnerID, &rec.Slug, &rec.Name, &rec.Description, &rec.Address, &rec.City,
		&rec.Phone, &rec.Email, &rec.Website, &rec.EstablishedYear,
		&rec.Logo, &rec.CoverImage, &rec.ClassroomImages, &rec.Facilities, &rec.Subjects, &rec.Rating,
		&rec.BatchNames, &rec.BatchSubjects, &rec.BatchTimings, &rec.BatchCapacities,
		&rec.BatchAvailableSeats, &rec.BatchMonthlyFees, &rec.BatchDurations,
		&rec.FacultyNames, &rec.FacultyQualifications, &rec.FacultyExperiences,
		&rec.FacultySubjects, &rec.FacultyBios, &rec.FacultyImages,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	return rec, createdAt, updatedAt, nil
}
