package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

var (
	_ domain.ActivityRepository  = (*InMemoryActivityRepository)(nil)
	_ domain.NutritionRepository = (*InMemoryNutritionRepository)(nil)
)

func dayKey(t time.Time) string {
	return domain.Day(t).Format(domain.DateLayout)
}

// InMemoryActivityRepository hands out copies so callers cannot edit stored days in place.
type InMemoryActivityRepository struct {
	store map[string]*domain.ActivityRecord

	mu sync.RWMutex
}

func NewInMemoryActivityRepository() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{
		store: make(map[string]*domain.ActivityRecord),
	}
}

func (r *InMemoryActivityRepository) Create(ctx context.Context, record *domain.ActivityRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(record.Date)
	if _, ok := r.store[key]; ok {
		return domain.ErrRecordImmutable
	}

	clone := *record
	r.store[key] = &clone
	return nil
}

func (r *InMemoryActivityRepository) Update(ctx context.Context, record *domain.ActivityRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(record.Date)
	if _, ok := r.store[key]; !ok {
		return domain.ErrRecordNotFound
	}

	clone := *record
	r.store[key] = &clone
	return nil
}

func (r *InMemoryActivityRepository) GetByDate(ctx context.Context, date time.Time) (*domain.ActivityRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.store[dayKey(date)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *record
	return &clone, nil
}

func (r *InMemoryActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*domain.ActivityRecord, 0, len(r.store))
	for _, rec := range r.store {
		clone := *rec
		records = append(records, &clone)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

type InMemoryNutritionRepository struct {
	store map[string]*domain.NutritionRecord

	mu sync.RWMutex
}

func NewInMemoryNutritionRepository() *InMemoryNutritionRepository {
	return &InMemoryNutritionRepository{
		store: make(map[string]*domain.NutritionRecord),
	}
}

func (r *InMemoryNutritionRepository) Create(ctx context.Context, record *domain.NutritionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(record.Date)
	if _, ok := r.store[key]; ok {
		return domain.ErrRecordImmutable
	}

	clone := *record
	r.store[key] = &clone
	return nil
}

func (r *InMemoryNutritionRepository) Update(ctx context.Context, record *domain.NutritionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(record.Date)
	if _, ok := r.store[key]; !ok {
		return domain.ErrRecordNotFound
	}

	clone := *record
	r.store[key] = &clone
	return nil
}

func (r *InMemoryNutritionRepository) GetByDate(ctx context.Context, date time.Time) (*domain.NutritionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.store[dayKey(date)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *record
	return &clone, nil
}

func (r *InMemoryNutritionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.NutritionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*domain.NutritionRecord, 0, len(r.store))
	for _, rec := range r.store {
		clone := *rec
		records = append(records, &clone)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
