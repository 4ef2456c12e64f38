package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

type fakeKV struct {
	mu      sync.Mutex
	data    map[string][]byte
	writes  int
	failGet error
	failSet error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failGet != nil {
		return nil, f.failGet
	}
	v, ok := f.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failSet != nil {
		return f.failSet
	}
	f.data[key] = append([]byte(nil), value...)
	f.writes++
	return nil
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n domain.Notification) {
	m.Called(ctx, n)
}

func variant(v string) interface{} {
	return mock.MatchedBy(func(n domain.Notification) bool { return n.Variant == v })
}

type fakeActivityRepo struct {
	store     map[string]*domain.ActivityRecord
	simulated error
}

func newFakeActivityRepo(records ...*domain.ActivityRecord) *fakeActivityRepo {
	r := &fakeActivityRepo{store: make(map[string]*domain.ActivityRecord)}
	for _, rec := range records {
		clone := *rec
		r.store[rec.Date.Format(domain.DateLayout)] = &clone
	}
	return r
}

func (r *fakeActivityRepo) Create(ctx context.Context, rec *domain.ActivityRecord) error {
	if r.simulated != nil {
		return r.simulated
	}
	key := rec.Date.Format(domain.DateLayout)
	if _, ok := r.store[key]; ok {
		return domain.ErrRecordImmutable
	}
	clone := *rec
	r.store[key] = &clone
	return nil
}

func (r *fakeActivityRepo) Update(ctx context.Context, rec *domain.ActivityRecord) error {
	if r.simulated != nil {
		return r.simulated
	}
	key := rec.Date.Format(domain.DateLayout)
	if _, ok := r.store[key]; !ok {
		return domain.ErrRecordNotFound
	}
	clone := *rec
	r.store[key] = &clone
	return nil
}

func (r *fakeActivityRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ActivityRecord, error) {
	if r.simulated != nil {
		return nil, r.simulated
	}
	rec, ok := r.store[domain.Day(date).Format(domain.DateLayout)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *fakeActivityRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityRecord, error) {
	if r.simulated != nil {
		return nil, r.simulated
	}
	var list []*domain.ActivityRecord
	for _, rec := range r.store {
		clone := *rec
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

type fakeNutritionRepo struct {
	store map[string]*domain.NutritionRecord
}

func newFakeNutritionRepo() *fakeNutritionRepo {
	return &fakeNutritionRepo{store: make(map[string]*domain.NutritionRecord)}
}

func (r *fakeNutritionRepo) Create(ctx context.Context, rec *domain.NutritionRecord) error {
	clone := *rec
	r.store[rec.Date.Format(domain.DateLayout)] = &clone
	return nil
}

func (r *fakeNutritionRepo) Update(ctx context.Context, rec *domain.NutritionRecord) error {
	return r.Create(ctx, rec)
}

func (r *fakeNutritionRepo) GetByDate(ctx context.Context, date time.Time) (*domain.NutritionRecord, error) {
	rec, ok := r.store[domain.Day(date).Format(domain.DateLayout)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *fakeNutritionRepo) ListRecent(ctx context.Context, limit int) ([]*domain.NutritionRecord, error) {
	var list []*domain.NutritionRecord
	for _, rec := range r.store {
		clone := *rec
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

type fakeProfileRepo struct {
	profile *domain.UserProfile
}

func (r fakeProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	if r.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	p := *r.profile
	return &p, nil
}

type recordingQueue struct {
	mu    sync.Mutex
	dates []time.Time
}

func (q *recordingQueue) Enqueue(date time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dates = append(q.dates, date)
}

// roundTrip stands in for the latency of a database read.
const roundTrip = time.Millisecond

type slowActivityRepo struct {
	*repository.InMemoryActivityRepository
}

func (r slowActivityRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ActivityRecord, error) {
	time.Sleep(roundTrip)
	return r.InMemoryActivityRepository.GetByDate(ctx, date)
}

type slowNutritionRepo struct {
	*repository.InMemoryNutritionRepository
}

func (r slowNutritionRepo) GetByDate(ctx context.Context, date time.Time) (*domain.NutritionRecord, error) {
	time.Sleep(roundTrip)
	return r.InMemoryNutritionRepository.GetByDate(ctx, date)
}

// staleReadActivityRepo misses the first lookup, as if another process inserted
// today's record right after the read.
type staleReadActivityRepo struct {
	*repository.InMemoryActivityRepository
	missed bool
}

func (r *staleReadActivityRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ActivityRecord, error) {
	if !r.missed {
		r.missed = true
		return nil, domain.ErrRecordNotFound
	}
	return r.InMemoryActivityRepository.GetByDate(ctx, date)
}

type staleReadNutritionRepo struct {
	*repository.InMemoryNutritionRepository
	missed bool
}

func (r *staleReadNutritionRepo) GetByDate(ctx context.Context, date time.Time) (*domain.NutritionRecord, error) {
	if !r.missed {
		r.missed = true
		return nil, domain.ErrRecordNotFound
	}
	return r.InMemoryNutritionRepository.GetByDate(ctx, date)
}
