package domain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrRecordImmutable = errors.New("records for past days cannot be modified")
)

const DateLayout = "2006-01-02"

type ActivityRecord struct {
	ID             string    `json:"id" db:"id"`
	Date           time.Time `json:"date" db:"date"`
	Steps          int       `json:"steps" db:"steps"`
	CaloriesBurned int       `json:"calories_burned" db:"calories_burned"`
	DistanceKm     float64   `json:"distance_km" db:"distance_km"`
	ActiveMinutes  int       `json:"active_minutes" db:"active_minutes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Day truncates t to UTC midnight, the key every daily record is stored under.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewActivityRecord(date time.Time, steps, caloriesBurned int, distanceKm float64, activeMinutes int) (*ActivityRecord, error) {
	now := time.Now().UTC()

	r := &ActivityRecord{
		ID:             uuid.NewString(),
		Date:           Day(date),
		Steps:          steps,
		CaloriesBurned: caloriesBurned,
		DistanceKm:     distanceKm,
		ActiveMinutes:  activeMinutes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ActivityRecord) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if r.Steps < 0 {
		return fmt.Errorf("%w: steps cannot be negative", ErrInvalidInput)
	}
	if r.CaloriesBurned < 0 {
		return fmt.Errorf("%w: calories burned cannot be negative", ErrInvalidInput)
	}
	if !isFiniteNonNegative(r.DistanceKm) {
		return fmt.Errorf("%w: distance must be a finite non-negative number", ErrInvalidInput)
	}
	if r.ActiveMinutes < 0 {
		return fmt.Errorf("%w: active minutes cannot be negative", ErrInvalidInput)
	}
	return nil
}

// Apply overwrites the counters of an intraday record.
func (r *ActivityRecord) Apply(steps, caloriesBurned int, distanceKm float64, activeMinutes int) error {
	next := *r
	next.Steps = steps
	next.CaloriesBurned = caloriesBurned
	next.DistanceKm = distanceKm
	next.ActiveMinutes = activeMinutes
	if err := next.Validate(); err != nil {
		return err
	}

	next.UpdatedAt = time.Now().UTC()
	*r = next
	return nil
}

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
