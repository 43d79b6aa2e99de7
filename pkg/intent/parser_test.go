package intent

import (
	"testing"
)

func TestStripBuyPhrases(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"buy now mango", "mango"},
		{"Buy Now mango", "mango"},
		{"buy this tomato", "tomato"},
		{"purchase red onion", "red onion"},
		{"buy spinach", "spinach"},
		{"buy now", ""},
		{"mango", "mango"},
		// "buy now" is removed as one phrase, not as "buy" then a stray "now"
		{"buy now fresh mango", "fresh mango"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got := StripBuyPhrases(tt.msg)
			if got != tt.want {
				t.Errorf("StripBuyPhrases(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}

func TestStripCartPhrases(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"add to cart mango", "mango"},
		{"add mango to cart", "mango"},
		{"Add Tomato To Cart", "Tomato"},
		{"add item spinach", "spinach"},
		{"add to cart", ""},
		{"mango", "mango"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got := StripCartPhrases(tt.msg)
			if got != tt.want {
				t.Errorf("StripCartPhrases(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}

func TestExtractQueryTerm(t *testing.T) {
	tests := []struct {
		msg      string
		wantTerm string
		wantOK   bool
	}{
		{"price of apple", "apple", true},
		{"cost of red onion", "red onion", true},
		{"how much is mango", "is mango", true},
		{"stock of tomato", "tomato", true},
		{"show me apples", "apples", true},
		{"find spinach", "spinach", true},
		{"search for green chili", "green chili", true},
		{"Price Of Apple", "Apple", true},
		{"price of", "", false},
		{"random question", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			term, ok := ExtractQueryTerm(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("ExtractQueryTerm(%q) ok = %v, want %v", tt.msg, ok, tt.wantOK)
			}
			if term != tt.wantTerm {
				t.Errorf("ExtractQueryTerm(%q) = %q, want %q", tt.msg, term, tt.wantTerm)
			}
		})
	}
}
