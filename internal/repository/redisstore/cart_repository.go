package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"farm2bag-chatbot-be/pkg/cart"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "chatbot:cart:"
	cartTTL       = 1 * time.Hour
)

// CartRepository stores cart snapshots in Redis as JSON under a session key.
// It lets cart state survive a process restart within the session TTL.
type CartRepository struct {
	rdb *redis.Client
}

func NewCartRepository(rdb *redis.Client) *CartRepository {
	return &CartRepository{rdb: rdb}
}

func (r *CartRepository) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	raw, err := r.rdb.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, cartKeyPrefix+sessionID, raw, cartTTL).Err()
}

func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, cartKeyPrefix+sessionID).Err()
}
