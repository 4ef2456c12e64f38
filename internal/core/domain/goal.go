package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrGoalNotFound  = errors.New("goal not found")
	ErrGoalNameEmpty = errors.New("goal name cannot be empty")
)

const (
	PeriodDaily  = "daily"
	PeriodWeekly = "weekly"
	PeriodCustom = "custom"

	GoalDailySteps    = "Daily Steps"
	GoalCaloriesBurn  = "Calories Burned"
	GoalDistance      = "Distance"
	GoalActiveMinutes = "Active Minutes"
)

// goalNamespace seeds deterministic ids for the default goals.
var goalNamespace = uuid.MustParse("6f1c2a8e-3b4d-4c59-9e0a-7d2b1f8c4a10")

type GoalTarget struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"`
	Unit     string  `json:"unit"`
	Period   string  `json:"period,omitempty"`
}

func NewGoalTarget(name string, target float64, unit, period string) (*GoalTarget, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGoalNameEmpty
	}
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}

	period, err := NormalizePeriod(period)
	if err != nil {
		return nil, err
	}

	return &GoalTarget{
		ID:     GoalID(name),
		Name:   name,
		Target: target,
		Unit:   unit,
		Period: period,
	}, nil
}

func GoalID(name string) string {
	return uuid.NewSHA1(goalNamespace, []byte(name)).String()
}

func ValidateTarget(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return fmt.Errorf("%w: target must be a finite number", ErrInvalidInput)
	}
	if target <= 0 {
		return fmt.Errorf("%w: target must be greater than zero", ErrInvalidInput)
	}
	return nil
}

// NormalizePeriod applies the default-daily policy to an unset period.
func NormalizePeriod(period string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", PeriodDaily:
		return PeriodDaily, nil
	case PeriodWeekly:
		return PeriodWeekly, nil
	case PeriodCustom:
		return PeriodCustom, nil
	default:
		return "", fmt.Errorf("%w: unknown period %q", ErrInvalidInput, period)
	}
}

func DefaultGoals() []GoalTarget {
	defaults := []struct {
		name   string
		target float64
		unit   string
	}{
		{GoalDailySteps, 10000, "steps"},
		{GoalCaloriesBurn, 500, "cal"},
		{GoalDistance, 8, "km"},
		{GoalActiveMinutes, 60, "min"},
	}

	goals := make([]GoalTarget, 0, len(defaults))
	for _, d := range defaults {
		goals = append(goals, GoalTarget{
			ID:     GoalID(d.name),
			Name:   d.name,
			Target: d.target,
			Unit:   d.unit,
			Period: PeriodDaily,
		})
	}
	return goals
}
