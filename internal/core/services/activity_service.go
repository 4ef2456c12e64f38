package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

// AchievementQueue receives the day whose activity just changed.
type AchievementQueue interface {
	Enqueue(date time.Time)
}

type ActivityService struct {
	repo  domain.ActivityRepository
	queue AchievementQueue
	now   func() time.Time

	// todayMu serializes the read-modify-write of today's record.
	todayMu sync.Mutex
}

func NewActivityService(repo domain.ActivityRepository, queue AchievementQueue) *ActivityService {
	return &ActivityService{
		repo:  repo,
		queue: queue,
		now:   time.Now,
	}
}

// WithClock replaces the wall clock used to decide what "today" is.
func (s *ActivityService) WithClock(now func() time.Time) *ActivityService {
	s.now = now
	return s
}

type LogActivityInput struct {
	Steps          int
	CaloriesBurned int
	DistanceKm     float64
	ActiveMinutes  int
}

// LogToday creates or overwrites today's record. Today is the only mutable day.
func (s *ActivityService) LogToday(ctx context.Context, input LogActivityInput) (*domain.ActivityRecord, error) {
	s.todayMu.Lock()
	defer s.todayMu.Unlock()

	today := domain.Day(s.now())

	record, err := s.writeToday(ctx, today, input)
	if errors.Is(err, domain.ErrRecordImmutable) {
		// another writer created today's record between the read and the insert
		record, err = s.writeToday(ctx, today, input)
	}
	if err != nil {
		return nil, err
	}

	if s.queue != nil {
		s.queue.Enqueue(today)
	}

	return record, nil
}

func (s *ActivityService) writeToday(ctx context.Context, today time.Time, input LogActivityInput) (*domain.ActivityRecord, error) {
	record, err := s.repo.GetByDate(ctx, today)
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		record, err = domain.NewActivityRecord(today, input.Steps, input.CaloriesBurned, input.DistanceKm, input.ActiveMinutes)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Create(ctx, record); err != nil {
			return nil, err
		}

	case err != nil:
		return nil, err

	default:
		if err := record.Apply(input.Steps, input.CaloriesBurned, input.DistanceKm, input.ActiveMinutes); err != nil {
			return nil, err
		}
		if err := s.repo.Update(ctx, record); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// Record appends a finished day to the log. Past days can be written once.
func (s *ActivityService) Record(ctx context.Context, date time.Time, input LogActivityInput) (*domain.ActivityRecord, error) {
	day := domain.Day(date)
	today := domain.Day(s.now())

	if day.After(today) {
		return nil, fmt.Errorf("%w: cannot record activity for a future date", domain.ErrInvalidInput)
	}
	if day.Equal(today) {
		return s.LogToday(ctx, input)
	}

	record, err := domain.NewActivityRecord(day, input.Steps, input.CaloriesBurned, input.DistanceKm, input.ActiveMinutes)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *ActivityService) Today(ctx context.Context) (*domain.ActivityRecord, error) {
	return s.repo.GetByDate(ctx, domain.Day(s.now()))
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]*domain.ActivityRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}
	return s.repo.ListRecent(ctx, limit)
}
