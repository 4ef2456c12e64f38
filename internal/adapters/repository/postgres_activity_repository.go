package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

var _ domain.ActivityRepository = (*PostgresActivityRepository)(nil)

type PostgresActivityRepository struct {
	db *sqlx.DB
}

func NewPostgresActivityRepository(db *sqlx.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Create(ctx context.Context, record *domain.ActivityRecord) error {
	query := `
		INSERT INTO activity_records (
			id, date, steps, calories_burned,
			distance_km, active_minutes, created_at, updated_at
		) VALUES (
			:id, :date, :steps, :calories_burned,
			:distance_km, :active_minutes, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return domain.ErrRecordImmutable
		case codeCheckViolation:
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return err
	}
	return nil
}

func (r *PostgresActivityRepository) Update(ctx context.Context, record *domain.ActivityRecord) error {
	record.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE activity_records
		SET steps = :steps,
		    calories_burned = :calories_burned,
		    distance_km = :distance_km,
		    active_minutes = :active_minutes,
		    updated_at = :updated_at
		WHERE date = :date`

	result, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		if pgCode(err) == codeCheckViolation {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresActivityRepository) GetByDate(ctx context.Context, date time.Time) (*domain.ActivityRecord, error) {
	var record domain.ActivityRecord
	query := `SELECT * FROM activity_records WHERE date = $1`

	err := r.db.GetContext(ctx, &record, query, domain.Day(date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	record.Date = domain.Day(record.Date)
	return &record, nil
}

func (r *PostgresActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityRecord, error) {
	records := []*domain.ActivityRecord{}

	query := `
		SELECT * FROM activity_records
		ORDER BY date DESC
		LIMIT $1`

	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, err
	}
	for _, rec := range records {
		rec.Date = domain.Day(rec.Date)
	}
	return records, nil
}
