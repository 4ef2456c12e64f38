package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

func note(i int) domain.Notification {
	return domain.Notification{Title: fmt.Sprintf("n%d", i)}
}

func titles(ns []domain.Notification) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Title)
	}
	return out
}

func TestFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty feed", func(t *testing.T) {
		assert.Empty(t, NewFeed(3).Recent(0))
	})

	t.Run("Newest first before wrapping", func(t *testing.T) {
		f := NewFeed(3)
		f.Notify(ctx, note(1))
		f.Notify(ctx, note(2))

		assert.Equal(t, []string{"n2", "n1"}, titles(f.Recent(0)))
	})

	t.Run("Oldest entries are evicted", func(t *testing.T) {
		f := NewFeed(3)
		for i := 1; i <= 5; i++ {
			f.Notify(ctx, note(i))
		}

		assert.Equal(t, []string{"n5", "n4", "n3"}, titles(f.Recent(0)))
		assert.Equal(t, []string{"n5", "n4"}, titles(f.Recent(2)))
	})

	t.Run("Non-positive size falls back to default", func(t *testing.T) {
		f := NewFeed(0)
		assert.Len(t, f.items, DefaultFeedSize)
	})
}

func TestMulti(t *testing.T) {
	a, b := NewFeed(2), NewFeed(2)
	m := Multi{a, nil, b}

	m.Notify(context.Background(), note(1))

	assert.Len(t, a.Recent(0), 1)
	assert.Len(t, b.Recent(0), 1)
}

func TestRedisPublisher_Integration(t *testing.T) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}

	ctx := context.Background()
	rdb, err := cache.NewRedisClient(ctx, cache.Options{Host: host, Port: "6379", Password: os.Getenv("REDIS_PASSWORD")})
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()

	sub := rdb.Subscribe(ctx, "pulse-test")
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	pub := NewRedisPublisher(rdb, "pulse-test", logger.Nop())
	pub.Notify(ctx, domain.Notification{Title: "Goal achieved!", Variant: domain.VariantSuccess})

	select {
	case msg := <-sub.Channel():
		var got domain.Notification
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, "Goal achieved!", got.Title)
		assert.Equal(t, domain.VariantSuccess, got.Variant)
	case <-time.After(3 * time.Second):
		t.Fatal("notification was not published")
	}
}
