package cart

import (
	"fmt"
	"sync"
	"testing"
)

func tomato() Item {
	return Item{Product: "Tomato", Price: "20.00", Stock: "5 available", StockStatus: "in_stock"}
}

func onion() Item {
	return Item{Product: "Onion", Price: "15.00", Stock: "10 available", StockStatus: "in_stock"}
}

func TestAddIsIdempotentPerProduct(t *testing.T) {
	c := New()

	if got := c.Add(tomato()); got != Added {
		t.Fatalf("first Add = %v, want Added", got)
	}
	if got := c.Add(tomato()); got != AlreadyPresent {
		t.Fatalf("second Add = %v, want AlreadyPresent", got)
	}

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestViewComputesTotal(t *testing.T) {
	c := New()
	c.Add(tomato())
	c.Add(onion())

	items, total := c.View()

	if len(items) != 2 {
		t.Fatalf("View() returned %d items, want 2", len(items))
	}
	if items[0].Product != "Tomato" || items[1].Product != "Onion" {
		t.Errorf("View() order = [%s, %s], want insertion order", items[0].Product, items[1].Product)
	}
	if total != 35.00 {
		t.Errorf("View() total = %v, want 35.00", total)
	}
}

func TestViewDoesNotMutate(t *testing.T) {
	c := New()
	c.Add(tomato())

	items, _ := c.View()
	items[0].Product = "Hacked"

	fresh, _ := c.View()
	if fresh[0].Product != "Tomato" {
		t.Error("View() must return a copy, not the backing slice")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	c := New()
	c.Add(tomato())

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", c.Len())
	}

	// Second clear is a no-op, not an error
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after double Clear = %d, want 0", c.Len())
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	c := New()

	_, ok := c.Checkout()
	if ok {
		t.Error("Checkout() on empty cart reported ok")
	}
	if c.Len() != 0 {
		t.Errorf("empty-cart Checkout changed the cart, Len() = %d", c.Len())
	}
}

func TestCheckoutClearsCart(t *testing.T) {
	c := New()
	c.Add(tomato())
	c.Add(onion())

	summary, ok := c.Checkout()
	if !ok {
		t.Fatal("Checkout() ok = false, want true")
	}
	if summary.Total != 35.00 {
		t.Errorf("summary.Total = %v, want 35.00", summary.Total)
	}
	if len(summary.Items) != 2 {
		t.Errorf("summary has %d items, want 2", len(summary.Items))
	}
	if c.Len() != 0 {
		t.Errorf("cart not cleared after Checkout, Len() = %d", c.Len())
	}

	// A second checkout finds the cart already empty
	if _, ok := c.Checkout(); ok {
		t.Error("second Checkout() reported ok on cleared cart")
	}
}

func TestTotalSkipsUnparsablePrice(t *testing.T) {
	c := New()
	c.Add(Item{Product: "Tomato", Price: "20.00"})
	c.Add(Item{Product: "Broken", Price: "n/a"})

	_, total := c.View()
	if total != 20.00 {
		t.Errorf("total = %v, want 20.00 (unparsable price skipped)", total)
	}
}

func TestConcurrentAddsKeepInvariant(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			// 10 distinct products, added 5 times each
			c.Add(Item{Product: fmt.Sprintf("Product-%d", n%10), Price: "1.00"})
		}(i)
	}
	wg.Wait()

	if c.Len() != 10 {
		t.Errorf("Len() = %d, want 10 (one item per product name)", c.Len())
	}
}
