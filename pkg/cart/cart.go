// FILE: pkg/cart/cart.go
// PURPOSE: Per-session shopping cart state machine

package cart

import (
	"strconv"
	"sync"
)

// Item is a formatted snapshot of a product at the moment it was added.
// It is a copy, not a reference: later catalog changes never affect a cart
// that already holds the item.
type Item struct {
	Product     string `json:"product"`
	Price       string `json:"price"` // fixed-point decimal string, e.g. "20.00"
	Stock       string `json:"stock"`
	StockStatus string `json:"stock_status"`
	Link        string `json:"link"`
	Image       string `json:"image"`
}

// Cart is an ordered collection of items owned by exactly one session.
// All transitions lock the cart mutex, so mutations for one session are
// serialized and a view can never observe a half-finished checkout.
type Cart struct {
	mu    sync.Mutex
	Items []Item `json:"items"`
}

// AddOutcome reports what an Add transition did. Invalid attempts are
// semantic outcomes, never errors.
type AddOutcome int

const (
	Added AddOutcome = iota
	AlreadyPresent
)

// OrderSummary is the checkout payload handed to the ordering channel.
type OrderSummary struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

func New() *Cart {
	return &Cart{}
}

// Add appends item unless an item with the same product name already
// exists, in which case it is a no-op. The caller is responsible for
// rejecting out-of-stock products before calling Add.
func (c *Cart) Add(item Item) AddOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.Items {
		if existing.Product == item.Product {
			return AlreadyPresent
		}
	}

	c.Items = append(c.Items, item)
	return Added
}

// View returns a copy of the items plus the computed total. Pure.
func (c *Cart) View() ([]Item, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return items, c.totalLocked()
}

// Len returns the current item count.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Items)
}

// Clear empties the cart unconditionally. Idempotent.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Items = nil
}

// Checkout finalizes a non-empty cart into an order summary and clears it.
// Summary computation and the clear happen under one lock, so no concurrent
// read can observe the total computed but the cart still populated.
// Checkout on an empty cart reports ok=false and changes nothing.
func (c *Cart) Checkout() (summary OrderSummary, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.Items) == 0 {
		return OrderSummary{}, false
	}

	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	summary = OrderSummary{
		Items: items,
		Total: c.totalLocked(),
	}

	c.Items = nil
	return summary, true
}

// totalLocked sums item prices. Caller must hold the mutex.
func (c *Cart) totalLocked() float64 {
	total := 0.0
	for _, item := range c.Items {
		price, err := strconv.ParseFloat(item.Price, 64)
		if err != nil {
			continue
		}
		total += price
	}
	return total
}
