package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

type NutritionService struct {
	repo domain.NutritionRepository
	now  func() time.Time

	// todayMu serializes increments on today's record so none are lost.
	todayMu sync.Mutex
}

func NewNutritionService(repo domain.NutritionRepository) *NutritionService {
	return &NutritionService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *NutritionService) WithClock(now func() time.Time) *NutritionService {
	s.now = now
	return s
}

func (s *NutritionService) LogMeal(ctx context.Context, meal domain.Meal) (*domain.NutritionRecord, error) {
	return s.updateToday(ctx, func(r *domain.NutritionRecord) error {
		return r.AddMeal(meal)
	})
}

func (s *NutritionService) AddWater(ctx context.Context) (*domain.NutritionRecord, error) {
	return s.updateToday(ctx, func(r *domain.NutritionRecord) error {
		r.AddWater()
		return nil
	})
}

func (s *NutritionService) Today(ctx context.Context) (*domain.NutritionRecord, error) {
	return s.repo.GetByDate(ctx, domain.Day(s.now()))
}

func (s *NutritionService) Recent(ctx context.Context, limit int) ([]*domain.NutritionRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *NutritionService) updateToday(ctx context.Context, mutate func(*domain.NutritionRecord) error) (*domain.NutritionRecord, error) {
	s.todayMu.Lock()
	defer s.todayMu.Unlock()

	today := domain.Day(s.now())

	record, err := s.applyToday(ctx, today, mutate)
	if errors.Is(err, domain.ErrRecordImmutable) {
		// today's record appeared after the read; apply the change on top of it
		record, err = s.applyToday(ctx, today, mutate)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *NutritionService) applyToday(ctx context.Context, today time.Time, mutate func(*domain.NutritionRecord) error) (*domain.NutritionRecord, error) {
	record, err := s.repo.GetByDate(ctx, today)
	isNew := false
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		record = domain.NewNutritionRecord(today)
		isNew = true
	case err != nil:
		return nil, err
	}

	if err := mutate(record); err != nil {
		return nil, err
	}

	if isNew {
		err = s.repo.Create(ctx, record)
	} else {
		err = s.repo.Update(ctx, record)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}
