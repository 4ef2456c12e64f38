package services

import (
	"context"
	"errors"
	"time"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/metrics"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

// historyWindow bounds how far back the streak can reach.
const historyWindow = 366

type DashboardService struct {
	goals     *GoalStore
	activity  domain.ActivityRepository
	nutrition domain.NutritionRepository
	profiles  domain.ProfileRepository
	log       *logger.Logger
	now       func() time.Time
}

func NewDashboardService(
	goals *GoalStore,
	activity domain.ActivityRepository,
	nutrition domain.NutritionRepository,
	profiles domain.ProfileRepository,
	log *logger.Logger,
) *DashboardService {
	return &DashboardService{
		goals:     goals,
		activity:  activity,
		nutrition: nutrition,
		profiles:  profiles,
		log:       log.With("component", "dashboard"),
		now:       time.Now,
	}
}

func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	today := domain.Day(s.now())

	records, err := s.activity.ListRecent(ctx, historyWindow)
	if err != nil {
		return nil, err
	}

	var todayRec *domain.ActivityRecord
	for _, r := range records {
		if domain.Day(r.Date).Equal(today) {
			todayRec = r
			break
		}
	}

	summary := &domain.DashboardSummary{
		Date:           today.Format(domain.DateLayout),
		Goals:          s.dailyProgress(todayRec),
		WeeklyAverages: make(map[string]float64, len(metrics.Fields)),
		WeeklyTotals:   make(map[string]float64, len(metrics.Fields)),
	}

	for _, field := range metrics.Fields {
		summary.WeeklyAverages[field] = metrics.WeeklyAverageOrZero(records, field)
		if total, err := metrics.WeeklyTotal(records, field); err == nil {
			summary.WeeklyTotals[field] = total
		}
	}

	if steps, err := s.goals.Get(domain.GoalDailySteps); err == nil {
		summary.StreakDays = currentStreak(records, steps.Target, today)
	}

	best, err := metrics.BestDayOfWeek(records)
	switch {
	case err == nil:
		summary.BestDay = best
	case errors.Is(err, domain.ErrInsufficientData):
		s.log.Debug("no activity history for best day")
	}

	if err := s.applyProfile(ctx, summary); err != nil {
		return nil, err
	}

	burned := 0
	if todayRec != nil {
		burned = todayRec.CaloriesBurned
	}
	consumed := 0
	food, err := s.nutrition.GetByDate(ctx, today)
	switch {
	case err == nil:
		consumed = food.CaloriesConsumed
		summary.WaterGlasses = food.WaterGlasses
	case !errors.Is(err, domain.ErrRecordNotFound):
		return nil, err
	}
	summary.CalorieBalance = metrics.CalorieBalance(consumed, burned)

	return summary, nil
}

// currentStreak is 0 once the newest record is older than yesterday; a streak
// that ended days ago is not current.
func currentStreak(records []*domain.ActivityRecord, stepsGoal float64, today time.Time) int {
	var newest time.Time
	for _, r := range records {
		if d := domain.Day(r.Date); d.After(newest) {
			newest = d
		}
	}
	if newest.Before(today.AddDate(0, 0, -1)) {
		return 0
	}
	return metrics.StreakCount(records, stepsGoal)
}

func (s *DashboardService) dailyProgress(today *domain.ActivityRecord) []domain.GoalProgress {
	daily, _ := s.goals.ListByPeriod(domain.PeriodDaily)

	out := make([]domain.GoalProgress, 0, len(daily))
	for _, g := range daily {
		current := g.Progress
		if field, ok := metrics.GoalField(g.Name); ok {
			current = 0
			if today != nil {
				current, _ = metrics.FieldValue(today, field)
			}
		}

		pct, err := metrics.CompletionPercentage(current, g.Target)
		if err != nil {
			s.log.Warn("goal with invalid target skipped", "goal", g.Name, "error", err)
			continue
		}

		out = append(out, domain.GoalProgress{
			Name:       g.Name,
			Target:     g.Target,
			Current:    current,
			Unit:       g.Unit,
			Period:     g.Period,
			Percentage: pct,
		})
	}
	return out
}

func (s *DashboardService) applyProfile(ctx context.Context, summary *domain.DashboardSummary) error {
	profile, err := s.profiles.Get(ctx)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	summary.ActivityLevelProgress = metrics.ActivityLevelProgress(profile.ActivityLevel)

	bmi, err := s.BMI(profile.WeightKg, profile.HeightCm)
	if err != nil {
		s.log.Warn("profile BMI unavailable", "error", err)
		return nil
	}
	summary.BMI = bmi
	return nil
}

func (s *DashboardService) BMI(weightKg, heightCm float64) (*domain.BMIResult, error) {
	value, err := metrics.BMI(weightKg, heightCm)
	if err != nil {
		return nil, err
	}
	return &domain.BMIResult{Value: value, Category: metrics.BMICategory(value)}, nil
}

func (s *DashboardService) CalorieBalance(consumed, burned int) int {
	return metrics.CalorieBalance(consumed, burned)
}

// WeightProjection reports Known=false instead of failing when no deficit exists.
func (s *DashboardService) WeightProjection(weeklyDeficitKcal, goalKgPerWeek float64) domain.WeightProjection {
	weeks, err := metrics.WeightGoalProjection(weeklyDeficitKcal, goalKgPerWeek)
	if err != nil {
		return domain.WeightProjection{}
	}
	return domain.WeightProjection{WeeksToGoal: weeks, Known: true}
}

func (s *DashboardService) Profile(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}
