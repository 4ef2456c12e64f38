package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type NutritionRecord struct {
	ID               string    `json:"id" db:"id"`
	Date             time.Time `json:"date" db:"date"`
	CaloriesConsumed int       `json:"calories_consumed" db:"calories_consumed"`
	ProteinG         float64   `json:"protein_g" db:"protein_g"`
	CarbsG           float64   `json:"carbs_g" db:"carbs_g"`
	FatG             float64   `json:"fat_g" db:"fat_g"`
	WaterGlasses     int       `json:"water_glasses" db:"water_glasses"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type Meal struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

func NewNutritionRecord(date time.Time) *NutritionRecord {
	now := time.Now().UTC()

	return &NutritionRecord{
		ID:        uuid.NewString(),
		Date:      Day(date),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (n *NutritionRecord) Validate() error {
	if n.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if n.CaloriesConsumed < 0 || n.WaterGlasses < 0 {
		return fmt.Errorf("%w: counters cannot be negative", ErrInvalidInput)
	}
	for _, v := range []float64{n.ProteinG, n.CarbsG, n.FatG} {
		if !isFiniteNonNegative(v) {
			return fmt.Errorf("%w: macros must be finite non-negative numbers", ErrInvalidInput)
		}
	}
	return nil
}

func (n *NutritionRecord) AddMeal(m Meal) error {
	if m.Calories < 0 || !isFiniteNonNegative(m.ProteinG) || !isFiniteNonNegative(m.CarbsG) || !isFiniteNonNegative(m.FatG) {
		return fmt.Errorf("%w: meal values must be finite non-negative numbers", ErrInvalidInput)
	}

	n.CaloriesConsumed += m.Calories
	n.ProteinG += m.ProteinG
	n.CarbsG += m.CarbsG
	n.FatG += m.FatG
	n.UpdatedAt = time.Now().UTC()
	return nil
}

func (n *NutritionRecord) AddWater() {
	n.WaterGlasses++
	n.UpdatedAt = time.Now().UTC()
}
