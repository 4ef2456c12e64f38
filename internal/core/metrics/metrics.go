// Package metrics derives the dashboard numbers from validated daily records.
// Every function is pure: inputs are never mutated and no state is kept.
package metrics

import (
	"fmt"
	"math"
	"sort"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

const (
	FieldSteps          = "steps"
	FieldCaloriesBurned = "calories_burned"
	FieldDistanceKm     = "distance_km"
	FieldActiveMinutes  = "active_minutes"

	// WeekWindow is how many daily records make up a "week" of history.
	WeekWindow = 7

	// KcalPerKg is the energy equivalent of one kilogram of fat mass.
	KcalPerKg = 7700.0
)

var Fields = []string{FieldSteps, FieldCaloriesBurned, FieldDistanceKm, FieldActiveMinutes}

func CompletionPercentage(value, target float64) (int, error) {
	if !positive(target) {
		return 0, fmt.Errorf("%w: target must be greater than zero", domain.ErrInvalidInput)
	}
	if value <= 0 {
		return 0, nil
	}

	pct := math.Round(value / target * 100)
	return int(math.Max(0, math.Min(100, pct))), nil
}

func FieldValue(r *domain.ActivityRecord, field string) (float64, error) {
	switch field {
	case FieldSteps:
		return float64(r.Steps), nil
	case FieldCaloriesBurned:
		return float64(r.CaloriesBurned), nil
	case FieldDistanceKm:
		return r.DistanceKm, nil
	case FieldActiveMinutes:
		return float64(r.ActiveMinutes), nil
	default:
		return 0, fmt.Errorf("%w: unknown field %q", domain.ErrInvalidInput, field)
	}
}

// GoalField maps a default goal name onto the activity field that measures it.
func GoalField(goalName string) (string, bool) {
	switch goalName {
	case domain.GoalDailySteps:
		return FieldSteps, true
	case domain.GoalCaloriesBurn:
		return FieldCaloriesBurned, true
	case domain.GoalDistance:
		return FieldDistanceKm, true
	case domain.GoalActiveMinutes:
		return FieldActiveMinutes, true
	default:
		return "", false
	}
}

// lastWeek returns at most WeekWindow records sorted by date, most recent first.
func lastWeek(records []*domain.ActivityRecord) []*domain.ActivityRecord {
	sorted := sortedDesc(records)
	if len(sorted) > WeekWindow {
		sorted = sorted[:WeekWindow]
	}
	return sorted
}

func sortedDesc(records []*domain.ActivityRecord) []*domain.ActivityRecord {
	sorted := make([]*domain.ActivityRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func WeeklyTotal(records []*domain.ActivityRecord, field string) (float64, error) {
	if len(records) == 0 {
		return 0, domain.ErrInsufficientData
	}

	total := 0.0
	for _, r := range lastWeek(records) {
		v, err := FieldValue(r, field)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func WeeklyAverage(records []*domain.ActivityRecord, field string) (float64, error) {
	total, err := WeeklyTotal(records, field)
	if err != nil {
		return 0, err
	}

	n := len(records)
	if n > WeekWindow {
		n = WeekWindow
	}
	return total / float64(n), nil
}

// WeeklyAverageOrZero substitutes 0 when there is no history to average.
func WeeklyAverageOrZero(records []*domain.ActivityRecord, field string) float64 {
	avg, err := WeeklyAverage(records, field)
	if err != nil {
		return 0
	}
	return avg
}

// StreakCount walks back one calendar day at a time from the most recent record.
// A day below stepsGoal or a missing date ends the streak.
func StreakCount(records []*domain.ActivityRecord, stepsGoal float64) int {
	sorted := sortedDesc(records)
	if len(sorted) == 0 {
		return 0
	}

	streak := 0
	expected := domain.Day(sorted[0].Date)

	for _, r := range sorted {
		if !domain.Day(r.Date).Equal(expected) {
			break
		}
		if float64(r.Steps) < stepsGoal {
			break
		}

		streak++
		expected = expected.AddDate(0, 0, -1)
	}

	return streak
}

func BestDayOfWeek(records []*domain.ActivityRecord) (*domain.BestDay, error) {
	week := lastWeek(records)
	if len(week) == 0 {
		return nil, domain.ErrInsufficientData
	}

	best := week[0]
	for _, r := range week[1:] {
		// strict comparison keeps the most recent record on ties
		if r.Steps > best.Steps {
			best = r
		}
	}

	return &domain.BestDay{
		Weekday: best.Date.Weekday().String(),
		Date:    domain.Day(best.Date),
		Steps:   best.Steps,
	}, nil
}

func BMI(weightKg, heightCm float64) (float64, error) {
	if !positive(weightKg) || !positive(heightCm) {
		return 0, fmt.Errorf("%w: weight and height must be positive", domain.ErrInvalidInput)
	}

	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obesity"
	}
}

func CalorieBalance(consumed, burned int) int {
	return consumed - burned
}

// WeightGoalProjection returns the number of weeks needed to reach the weekly
// weight-change goal at the given weekly calorie deficit.
func WeightGoalProjection(weeklyDeficitKcal, weightChangeGoalKgPerWeek float64) (float64, error) {
	if !positive(weeklyDeficitKcal) {
		return 0, fmt.Errorf("%w: weekly deficit must be positive", domain.ErrInvalidInput)
	}
	if math.IsNaN(weightChangeGoalKgPerWeek) || math.IsInf(weightChangeGoalKgPerWeek, 0) {
		return 0, fmt.Errorf("%w: weight change goal must be finite", domain.ErrInvalidInput)
	}

	kgPerDay := weeklyDeficitKcal / 7 / KcalPerKg
	return math.Abs(weightChangeGoalKgPerWeek) / kgPerDay, nil
}

func ActivityLevelProgress(level string) int {
	switch level {
	case domain.ActivitySedentary:
		return 25
	case domain.ActivityLight:
		return 50
	case domain.ActivityModerate:
		return 75
	case domain.ActivityIntense:
		return 100
	default:
		return 0
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
