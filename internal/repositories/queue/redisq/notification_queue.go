package redisq

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// RedisNotificationQueue implements the notification queue on a Redis list.
// Publishers LPUSH onto the key, the worker BRPOPs from the other end, so
// messages leave the queue in arrival order.
type RedisNotificationQueue struct {
	client *redis.Client
	key    string
}

// NewRedisNotificationQueue creates a queue adapter over the given client and list key.
func NewRedisNotificationQueue(client *redis.Client, key string) *RedisNotificationQueue {
	return &RedisNotificationQueue{client: client, key: key}
}

// Ensure RedisNotificationQueue implements portsrepo.NotificationQueue
var _ portsrepo.NotificationQueue = (*RedisNotificationQueue)(nil)

// Publish enqueues a message for asynchronous delivery.
func (q *RedisNotificationQueue) Publish(ctx context.Context, message string) error {
	if err := q.client.LPush(ctx, q.key, message).Err(); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

// PopBlocking removes and returns the oldest queued message, blocking until
// one is available or the timeout elapses. A timeout with no message returns
// an empty string and a nil error.
func (q *RedisNotificationQueue) PopBlocking(ctx context.Context, timeout time.Duration) (string, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to pop notification: %w", err)
	}
	// BRPOP returns [key, value].
	if len(res) != 2 {
		return "", fmt.Errorf("unexpected BRPOP reply length %d", len(res))
	}
	return res[1], nil
}
