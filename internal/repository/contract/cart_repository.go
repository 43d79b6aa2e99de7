package contract

import (
	"context"

	"farm2bag-chatbot-be/pkg/cart"
)

// CartRepository is the per-session key-value store holding each session's
// cart. Cart lifecycle is controlled by the host: entries may expire with
// the session. Get returns nil when no cart exists for the session.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, sessionID string, c *cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
