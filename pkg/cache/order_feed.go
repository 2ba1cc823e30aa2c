package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const orderFeedChannelPrefix = "order-feed"

// OrderFeedChannel returns the pub/sub channel of one account.
// Channel format: "order-feed:{accountID}"
func OrderFeedChannel(accountID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", orderFeedChannelPrefix, accountID)
}

// OrderFeed fans order notifications out to the accounts involved in an
// order. Messages are fire-and-forget: nothing is stored for accounts that
// are not listening.
type OrderFeed struct {
	client *RedisClient
}

// NewOrderFeed creates an OrderFeed using the given Redis client.
func NewOrderFeed(client *RedisClient) *OrderFeed {
	return &OrderFeed{client: client}
}

// Publish sends payload to every account in accountIDs.
func (f *OrderFeed) Publish(ctx context.Context, payload []byte, accountIDs ...uuid.UUID) error {
	pipe := f.client.Client().Pipeline()
	for _, id := range accountIDs {
		pipe.Publish(ctx, OrderFeedChannel(id), payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("order feed publish: %w", err)
	}
	return nil
}

// Subscribe listens on the channel of accountID. The subscription is
// confirmed before Subscribe returns; callers must Close it.
func (f *OrderFeed) Subscribe(ctx context.Context, accountID uuid.UUID) (*redis.PubSub, error) {
	sub := f.client.Client().Subscribe(ctx, OrderFeedChannel(accountID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("order feed subscribe: %w", err)
	}
	return sub, nil
}
