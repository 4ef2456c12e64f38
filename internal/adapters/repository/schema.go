package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS activity_records (
    id              UUID PRIMARY KEY,
    date            DATE NOT NULL UNIQUE,
    steps           INTEGER NOT NULL CHECK (steps >= 0),
    calories_burned INTEGER NOT NULL CHECK (calories_burned >= 0),
    distance_km     DOUBLE PRECISION NOT NULL CHECK (distance_km >= 0),
    active_minutes  INTEGER NOT NULL CHECK (active_minutes >= 0),
    created_at      TIMESTAMPTZ NOT NULL,
    updated_at      TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS nutrition_records (
    id                UUID PRIMARY KEY,
    date              DATE NOT NULL UNIQUE,
    calories_consumed INTEGER NOT NULL CHECK (calories_consumed >= 0),
    protein_g         DOUBLE PRECISION NOT NULL CHECK (protein_g >= 0),
    carbs_g           DOUBLE PRECISION NOT NULL CHECK (carbs_g >= 0),
    fat_g             DOUBLE PRECISION NOT NULL CHECK (fat_g >= 0),
    water_glasses     INTEGER NOT NULL CHECK (water_glasses >= 0),
    created_at        TIMESTAMPTZ NOT NULL,
    updated_at        TIMESTAMPTZ NOT NULL
);`

// EnsureSchema creates the log tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
