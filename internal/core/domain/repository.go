package domain

import (
	"context"
	"errors"
	"time"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable local storage the goal store writes through.
// Values are whole serialized objects; a Set replaces the previous value atomically.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type ActivityRepository interface {
	// Create appends a new daily record. A second record for the same date is ErrRecordImmutable.
	Create(ctx context.Context, record *ActivityRecord) error

	// Update replaces the counters of an existing record.
	Update(ctx context.Context, record *ActivityRecord) error

	// GetByDate returns the record stored for the UTC calendar day of date.
	GetByDate(ctx context.Context, date time.Time) (*ActivityRecord, error)

	// ListRecent returns up to limit records, most recent first.
	ListRecent(ctx context.Context, limit int) ([]*ActivityRecord, error)
}

type NutritionRepository interface {
	Create(ctx context.Context, record *NutritionRecord) error
	Update(ctx context.Context, record *NutritionRecord) error
	GetByDate(ctx context.Context, date time.Time) (*NutritionRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*NutritionRecord, error)
}

type ProfileRepository interface {
	Get(ctx context.Context) (*UserProfile, error)
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
