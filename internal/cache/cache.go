package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/delacruzclinic/clinic-booking/internal/config"
)

const bookedTTL = 5 * time.Minute

// BookedSlots caches the booked time strings per calendar date, the hottest
// read of the public booking page. A nil *BookedSlots is valid and disables
// caching, so the API runs without redis.
type BookedSlots struct {
	client *redis.Client
}

func New(cfg *config.Config) *BookedSlots {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, booked-slot cache disabled: %v", err)
		return nil
	}

	return &BookedSlots{client: client}
}

func key(date string) string {
	return "booked:" + date
}

func (c *BookedSlots) Get(ctx context.Context, date string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(date)).Result()
	if err != nil {
		return nil, false
	}

	var times []string
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		return nil, false
	}
	return times, true
}

func (c *BookedSlots) Set(ctx context.Context, date string, times []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(times)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(date), raw, bookedTTL).Err(); err != nil {
		log.Printf("failed to cache booked slots for %s: %v", date, err)
	}
}

// Invalidate drops the cached entry for each date that gained or lost a
// booking.
func (c *BookedSlots) Invalidate(ctx context.Context, dates ...string) {
	if c == nil || len(dates) == 0 {
		return
	}

	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, key(d))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("failed to invalidate booked slots: %v", err)
	}
}
