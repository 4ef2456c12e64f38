package notify

import (
	"context"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

// Multi fans a notification out to every wrapped notifier, in order.
type Multi []domain.Notifier

func (m Multi) Notify(ctx context.Context, n domain.Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(ctx, n)
		}
	}
}
