package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

var _ domain.NutritionRepository = (*PostgresNutritionRepository)(nil)

type PostgresNutritionRepository struct {
	db *sqlx.DB
}

func NewPostgresNutritionRepository(db *sqlx.DB) *PostgresNutritionRepository {
	return &PostgresNutritionRepository{db: db}
}

func (r *PostgresNutritionRepository) Create(ctx context.Context, record *domain.NutritionRecord) error {
	query := `
		INSERT INTO nutrition_records (
			id, date, calories_consumed, protein_g, carbs_g,
			fat_g, water_glasses, created_at, updated_at
		) VALUES (
			:id, :date, :calories_consumed, :protein_g, :carbs_g,
			:fat_g, :water_glasses, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.ErrRecordImmutable
		}
		return err
	}
	return nil
}

func (r *PostgresNutritionRepository) Update(ctx context.Context, record *domain.NutritionRecord) error {
	record.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE nutrition_records
		SET calories_consumed = :calories_consumed,
		    protein_g = :protein_g,
		    carbs_g = :carbs_g,
		    fat_g = :fat_g,
		    water_glasses = :water_glasses,
		    updated_at = :updated_at
		WHERE date = :date`

	result, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
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

func (r *PostgresNutritionRepository) GetByDate(ctx context.Context, date time.Time) (*domain.NutritionRecord, error) {
	var record domain.NutritionRecord
	query := `SELECT * FROM nutrition_records WHERE date = $1`

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

func (r *PostgresNutritionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.NutritionRecord, error) {
	records := []*domain.NutritionRecord{}

	query := `
		SELECT * FROM nutrition_records
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
