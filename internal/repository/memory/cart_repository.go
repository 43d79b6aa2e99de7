package memory

import (
	"context"
	"time"

	"farm2bag-chatbot-be/pkg/cart"

	gocache "github.com/patrickmn/go-cache"
)

type CartRepository struct {
	cache *gocache.Cache
}

func NewCartRepository() *CartRepository {
	// Carts expire with the session: default TTL of 1 hour, expired
	// entries purged every 10 minutes
	c := gocache.New(1*time.Hour, 10*time.Minute)
	return &CartRepository{
		cache: c,
	}
}

func (r *CartRepository) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*cart.Cart), nil
	}
	return nil, nil
}

func (r *CartRepository) Save(_ context.Context, sessionID string, c *cart.Cart) error {
	r.cache.Set(sessionID, c, gocache.DefaultExpiration)
	return nil
}

func (r *CartRepository) Delete(_ context.Context, sessionID string) error {
	r.cache.Delete(sessionID)
	return nil
}
