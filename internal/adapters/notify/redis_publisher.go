package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

const DefaultChannel = "pulse:notifications"

var _ domain.Notifier = (*RedisPublisher)(nil)

// RedisPublisher pushes notifications to subscribers of a pub/sub channel.
// Delivery is best effort: failures are logged and dropped.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	log     *logger.Logger
}

func NewRedisPublisher(client *redis.Client, channel string, log *logger.Logger) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{
		client:  client,
		channel: channel,
		log:     log.With("component", "redis_publisher", "channel", channel),
	}
}

func (p *RedisPublisher) Notify(ctx context.Context, n domain.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		p.log.Error("failed to encode notification", "error", err)
		return
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.log.Warn("failed to publish notification", "title", n.Title, "error", err)
	}
}
