package intent

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"greeting", "hello there", Greeting},
		{"greeting time of day", "good morning!", Greeting},
		{"price inquiry", "what is the price of mango", PriceInquiry},
		{"price inquiry how much", "how much are tomatoes", PriceInquiry},
		{"stock inquiry", "is spinach available", StockInquiry},
		{"product search", "show me apples", ProductSearch},
		{"order tracking", "where is my order", OrderTracking},
		{"cart view", "view cart please", CartView},
		{"cart clear", "clear cart", CartClear},
		{"buy now", "buy now mango", BuyNow},
		{"add to cart", "add to cart tomato", AddToCart},
		{"place order", "place order", PlaceOrder},
		{"checkout is place order", "checkout", PlaceOrder},
		{"help", "what can you do", Help},
		{"general fallback", "tell me about crop rotation", General},
		{"empty text", "", General},
		{"case insensitive", "HELLO THERE", Greeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		// "my order" (order_tracking) beats "place order" (place_order)
		{"tracking beats place order", "track my order I want to place order", OrderTracking},
		// "my cart" (cart_view) beats "clear cart" (cart_clear)
		{"view beats clear", "my cart needs a clear cart", CartView},
		// "purchase" (buy_now) beats "add to cart" (add_to_cart)
		{"buy beats add", "purchase it or add to cart", BuyNow},
		// "stock" (stock_inquiry) loses to "price of" (price_inquiry)
		{"price beats stock", "price of the stock items", PriceInquiry},
		// "hi" is late in priority: "find" (product_search) wins first
		{"search beats greeting", "hi, find mangoes", ProductSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q (priority order)", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	text := "add to cart some mangoes"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		if got := Classify(text); got != first {
			t.Fatalf("Classify(%q) changed between calls: %q then %q", text, first, got)
		}
	}
}
