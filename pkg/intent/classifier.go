// FILE: pkg/intent/classifier.go
// PURPOSE: Map a free-text utterance to exactly one discrete intent

package intent

import (
	"strings"
)

// Intent is the discrete category of user purpose derived from an utterance.
type Intent string

const (
	OrderTracking Intent = "order_tracking"
	CartView      Intent = "cart_view"
	CartClear     Intent = "cart_clear"
	BuyNow        Intent = "buy_now"
	AddToCart     Intent = "add_to_cart"
	PlaceOrder    Intent = "place_order"
	PriceInquiry  Intent = "price_inquiry"
	StockInquiry  Intent = "stock_inquiry"
	ProductSearch Intent = "product_search"
	Greeting      Intent = "greeting"
	Help          Intent = "help"
	General       Intent = "general"
)

// rule pairs an intent with its trigger phrases. Phrases are literal
// substrings, matched case-insensitively against the normalized text.
type rule struct {
	intent  Intent
	phrases []string
}

// rules is evaluated top to bottom; the first intent with any phrase
// contained in the text wins. Overlapping phrases across intents are
// resolved by this declaration order, not by phrase length.
var rules = []rule{
	{OrderTracking, []string{"where is my order", "track my order", "order status", "my order", "delivery status"}},
	{CartView, []string{"view cart", "show cart", "my cart", "cart items"}},
	{CartClear, []string{"clear cart", "empty cart", "remove all"}},
	{BuyNow, []string{"buy now", "purchase", "buy this"}},
	{AddToCart, []string{"add to cart", "add item"}},
	{PlaceOrder, []string{"place order", "checkout", "order now"}},
	{PriceInquiry, []string{"price of", "how much", "cost of"}},
	{StockInquiry, []string{"stock", "available", "in stock"}},
	{ProductSearch, []string{"show me", "find", "search for"}},
	{Greeting, []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}},
	{Help, []string{"help", "what can you do", "commands", "options"}},
}

// Classify returns the intent for text. It is total: every input maps to
// exactly one intent, with General as the fallback.
func Classify(text string) Intent {
	text = strings.ToLower(strings.TrimSpace(text))

	for _, r := range rules {
		if containsAny(text, r.phrases) {
			return r.intent
		}
	}

	return General
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
