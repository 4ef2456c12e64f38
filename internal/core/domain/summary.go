package domain

import "time"

type DashboardSummary struct {
	Date                  string             `json:"date"`
	Goals                 []GoalProgress     `json:"goals"`
	WeeklyAverages        map[string]float64 `json:"weekly_averages"`
	WeeklyTotals          map[string]float64 `json:"weekly_totals"`
	StreakDays            int                `json:"streak_days"`
	BestDay               *BestDay           `json:"best_day,omitempty"`
	BMI                   *BMIResult         `json:"bmi,omitempty"`
	ActivityLevelProgress int                `json:"activity_level_progress"`
	CalorieBalance        int                `json:"calorie_balance"`
	WaterGlasses          int                `json:"water_glasses"`
}

type GoalProgress struct {
	Name       string  `json:"name"`
	Target     float64 `json:"target"`
	Current    float64 `json:"current"`
	Unit       string  `json:"unit"`
	Period     string  `json:"period"`
	Percentage int     `json:"percentage"`
}

type BestDay struct {
	Weekday string    `json:"weekday"`
	Date    time.Time `json:"date"`
	Steps   int       `json:"steps"`
}

type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

type WeightProjection struct {
	WeeksToGoal float64 `json:"weeks_to_goal"`
	Known       bool    `json:"known"`
}
