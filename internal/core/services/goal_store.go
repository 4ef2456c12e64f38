package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

// GoalStore owns the user's goal targets and is the only writer of the goals key.
//
// The key holds the whole set as one JSON array, so each persist is atomic per key.
// Other processes sharing the same backend are not reconciled: the last SetTarget
// to reach storage wins.
type GoalStore struct {
	kv       domain.KeyValueStore
	key      string
	notifier domain.Notifier
	log      *logger.Logger

	mu    sync.RWMutex
	goals []domain.GoalTarget

	// synced is false while the in-memory set may differ from what storage holds
	// because the last read failed. Writes wait for a successful read.
	synced bool
}

func NewGoalStore(kv domain.KeyValueStore, key string, notifier domain.Notifier, log *logger.Logger) *GoalStore {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &GoalStore{
		kv:       kv,
		key:      key,
		notifier: notifier,
		log:      log.With("component", "goal_store", "key", key),
	}
}

// storedGoal is the on-disk shape. Older payloads carried the current value
// under metrics.current instead of progress.
type storedGoal struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Target   float64  `json:"target"`
	Progress *float64 `json:"progress"`
	Unit     string   `json:"unit"`
	Period   string   `json:"period"`
	Metrics  *struct {
		Current float64 `json:"current"`
	} `json:"metrics"`
}

// Load reads the goals key, reseeding and persisting the defaults when the key
// is missing or its content cannot be trusted.
func (s *GoalStore) Load(ctx context.Context) ([]domain.GoalTarget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.loadLocked(ctx)
	return cloneGoals(s.goals), err
}

func (s *GoalStore) loadLocked(ctx context.Context) error {
	data, err := s.kv.Get(ctx, s.key)
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
		s.log.Info("no stored goals, seeding defaults")
		return s.reseed(ctx)

	case err != nil:
		s.goals = domain.DefaultGoals()
		s.synced = false
		s.log.Error("goal storage unreadable, serving defaults", "error", err)
		return fmt.Errorf("read goals: %w", err)
	}

	goals, err := decodeGoals(data)
	if err != nil {
		s.log.Warn("stored goals are corrupt, reseeding defaults", "error", err)
		return s.reseed(ctx)
	}

	s.goals = goals
	s.synced = true
	return nil
}

// reseed replaces missing or unusable content, so nothing stored can be lost by it.
func (s *GoalStore) reseed(ctx context.Context) error {
	s.goals = domain.DefaultGoals()
	s.synced = true
	if err := s.persist(ctx, s.goals); err != nil {
		s.log.Error("failed to persist default goals", "error", err)
		return err
	}
	return nil
}

func (s *GoalStore) Get(name string) (*domain.GoalTarget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.goals {
		if g.Name == name {
			found := g
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrGoalNotFound, name)
}

func (s *GoalStore) List() []domain.GoalTarget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneGoals(s.goals)
}

// ListByPeriod filters by normalized period; an empty period selects daily goals.
func (s *GoalStore) ListByPeriod(period string) ([]domain.GoalTarget, error) {
	want, err := domain.NormalizePeriod(period)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.GoalTarget, 0, len(s.goals))
	for _, g := range s.goals {
		if g.Period == want {
			out = append(out, g)
		}
	}
	return out, nil
}

// SetTarget is the only mutation. A rejected value leaves the stored target untouched.
func (s *GoalStore) SetTarget(ctx context.Context, name string, newTarget float64) (*domain.GoalTarget, error) {
	if err := domain.ValidateTarget(newTarget); err != nil {
		s.notify(ctx, "Invalid goal", "Please enter a valid number greater than 0.", domain.VariantDestructive)
		return nil, err
	}

	s.mu.Lock()
	if !s.synced {
		if err := s.loadLocked(ctx); err != nil {
			s.mu.Unlock()
			s.notify(ctx, "Goal not saved", "Stored goals could not be read. Please try again.", domain.VariantDestructive)
			return nil, fmt.Errorf("goals not loaded: %w", err)
		}
	}

	idx := s.indexOf(name)
	if idx < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %q", domain.ErrGoalNotFound, name)
	}

	prev := s.goals[idx]
	s.goals[idx].Target = newTarget

	if err := s.persist(ctx, s.goals); err != nil {
		s.goals[idx] = prev
		s.mu.Unlock()

		s.log.Error("failed to persist goal update", "goal", name, "error", err)
		s.notify(ctx, "Goal not saved", fmt.Sprintf("Could not save the %s goal. Please try again.", name), domain.VariantDestructive)
		return nil, err
	}

	updated := s.goals[idx]
	s.mu.Unlock()

	s.log.Info("goal target updated", "goal", name, "from", prev.Target, "to", newTarget)
	s.notify(ctx, "Goal updated",
		fmt.Sprintf("%s goal set to %s %s.", updated.Name, formatAmount(updated.Target), updated.Unit),
		domain.VariantSuccess)

	return &updated, nil
}

func (s *GoalStore) indexOf(name string) int {
	for i, g := range s.goals {
		if g.Name == name {
			return i
		}
	}
	return -1
}

func (s *GoalStore) persist(ctx context.Context, goals []domain.GoalTarget) error {
	data, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("write goals: %w", err)
	}
	return nil
}

func (s *GoalStore) notify(ctx context.Context, title, description, variant string) {
	s.notifier.Notify(ctx, domain.Notification{
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   time.Now().UTC(),
	})
}

// decodeGoals produces the normalized goal set or ErrDeserialization.
func decodeGoals(data []byte) ([]domain.GoalTarget, error) {
	var raw []storedGoal
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDeserialization, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty goal list", domain.ErrDeserialization)
	}

	seen := make(map[string]bool, len(raw))
	goals := make([]domain.GoalTarget, 0, len(raw))

	for _, r := range raw {
		g, err := domain.NewGoalTarget(r.Name, r.Target, r.Unit, r.Period)
		if err != nil {
			return nil, fmt.Errorf("%w: goal %q: %v", domain.ErrDeserialization, r.Name, err)
		}
		if seen[g.Name] {
			return nil, fmt.Errorf("%w: duplicate goal %q", domain.ErrDeserialization, g.Name)
		}
		seen[g.Name] = true

		if r.ID != "" {
			g.ID = r.ID
		}
		switch {
		case r.Progress != nil:
			g.Progress = *r.Progress
		case r.Metrics != nil:
			g.Progress = r.Metrics.Current
		}

		goals = append(goals, *g)
	}

	return goals, nil
}

func cloneGoals(goals []domain.GoalTarget) []domain.GoalTarget {
	out := make([]domain.GoalTarget, len(goals))
	copy(out, goals)
	return out
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, domain.Notification) {}
