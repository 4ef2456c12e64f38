package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/metrics"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

const (
	queueSize = 100

	// streakMilestone is the streak length, in days, that earns a notification.
	streakMilestone = 7

	streakKey = "streak"

	// dedupeDays is how many calendar days of announcements are remembered.
	dedupeDays = 2
)

type ActivityReader interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.ActivityRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ActivityRecord, error)
}

type GoalReader interface {
	ListByPeriod(period string) ([]domain.GoalTarget, error)
}

type AchievementJob struct {
	Date time.Time
}

// AchievementWorker announces goals reached on a day, once per (date, goal).
type AchievementWorker struct {
	activity ActivityReader
	goals    GoalReader
	notifier domain.Notifier
	log      *logger.Logger
	jobs     chan AchievementJob

	mu       sync.Mutex
	notified map[time.Time]map[string]bool
}

func NewAchievementWorker(activity ActivityReader, goals GoalReader, notifier domain.Notifier, log *logger.Logger) *AchievementWorker {
	return &AchievementWorker{
		activity: activity,
		goals:    goals,
		notifier: notifier,
		log:      log.With("component", "achievement_worker"),
		jobs:     make(chan AchievementJob, queueSize),
		notified: make(map[time.Time]map[string]bool),
	}
}

func (w *AchievementWorker) Start(ctx context.Context) {
	go func() {
		w.log.Info("achievement worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.log.Info("achievement worker shutting down")
				return
			}
		}
	}()
}

func (w *AchievementWorker) Enqueue(date time.Time) {
	select {
	case w.jobs <- AchievementJob{Date: domain.Day(date)}:
	default:
		w.log.Warn("achievement queue full, dropping job", "date", date.Format(domain.DateLayout))
	}
}

func (w *AchievementWorker) processJob(ctx context.Context, job AchievementJob) {
	day := job.Date.Format(domain.DateLayout)

	record, err := w.activity.GetByDate(ctx, job.Date)
	if err != nil {
		w.log.Error("failed to fetch activity", "date", day, "error", err)
		return
	}

	goals, err := w.goals.ListByPeriod(domain.PeriodDaily)
	if err != nil {
		w.log.Error("failed to list goals", "error", err)
		return
	}

	var stepsTarget float64
	for _, g := range goals {
		field, ok := metrics.GoalField(g.Name)
		if !ok {
			continue
		}
		if g.Name == domain.GoalDailySteps {
			stepsTarget = g.Target
		}

		value, _ := metrics.FieldValue(record, field)
		pct, err := metrics.CompletionPercentage(value, g.Target)
		if err != nil || pct < 100 {
			continue
		}

		if w.markOnce(job.Date, g.Name) {
			w.notify(ctx, "Goal achieved!", fmt.Sprintf("You reached your %s goal of %s %s.", g.Name, formatAmount(g.Target), g.Unit))
		}
	}

	if stepsTarget <= 0 {
		return
	}

	history, err := w.activity.ListRecent(ctx, 366)
	if err != nil {
		w.log.Error("failed to fetch history", "error", err)
		return
	}

	streak := metrics.StreakCount(upTo(history, job.Date), stepsTarget)
	if streak > 0 && streak%streakMilestone == 0 && w.markOnce(job.Date, streakKey) {
		w.notify(ctx, "Goal achieved!", fmt.Sprintf("%d day streak! Keep it going.", streak))
	}
}

// markOnce reports whether (day, key) had not been announced yet, and records it.
// Days older than the dedupe window are forgotten.
func (w *AchievementWorker) markOnce(day time.Time, key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := day.AddDate(0, 0, -(dedupeDays - 1))
	for d := range w.notified {
		if d.Before(cutoff) {
			delete(w.notified, d)
		}
	}

	seen := w.notified[day]
	if seen == nil {
		seen = make(map[string]bool)
		w.notified[day] = seen
	}
	if seen[key] {
		return false
	}
	seen[key] = true
	return true
}

func (w *AchievementWorker) notify(ctx context.Context, title, description string) {
	w.log.Info("achievement", "title", title, "description", description)
	w.notifier.Notify(ctx, domain.Notification{
		Title:       title,
		Description: description,
		Variant:     domain.VariantSuccess,
		CreatedAt:   time.Now().UTC(),
	})
}

func upTo(records []*domain.ActivityRecord, date time.Time) []*domain.ActivityRecord {
	out := make([]*domain.ActivityRecord, 0, len(records))
	for _, r := range records {
		if !domain.Day(r.Date).After(date) {
			out = append(out, r)
		}
	}
	return out
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%g", v)
}
