package notify

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

const DefaultFeedSize = 50

var _ domain.Notifier = (*Feed)(nil)

// Feed keeps the most recent notifications in a fixed-size ring.
type Feed struct {
	mu    sync.RWMutex
	items []domain.Notification
	next  int
	full  bool
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{items: make([]domain.Notification, size)}
}

func (f *Feed) Notify(ctx context.Context, n domain.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items[f.next] = n
	f.next = (f.next + 1) % len(f.items)
	if f.next == 0 {
		f.full = true
	}
}

// Recent returns up to limit notifications, newest first. limit <= 0 returns all.
func (f *Feed) Recent(limit int) []domain.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := f.next
	if f.full {
		count = len(f.items)
	}
	if limit > 0 && limit < count {
		count = limit
	}

	out := make([]domain.Notification, 0, count)
	for i := 1; i <= count; i++ {
		idx := (f.next - i + len(f.items)) % len(f.items)
		out = append(out, f.items[idx])
	}
	return out
}
