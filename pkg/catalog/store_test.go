package catalog

import (
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `Product Name,Price,Stock,Link,Image Link
Tomato,20.00,5,https://farm2bag.example/tomato,https://img.example/tomato.jpg
Mango,"1,250.50",12,https://farm2bag.example/mango,
Onion,not-a-price,abc,,
,10.00,5,,
Spinach,15.00,8,https://farm2bag.example/spinach,
`

func TestNewStoreFromReader(t *testing.T) {
	store, err := NewStoreFromReader(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("NewStoreFromReader() error = %v", err)
	}

	// Nameless row is dropped, everything else survives
	if store.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", store.Len())
	}

	products := store.All()

	if products[0].Name != "Tomato" || products[0].Price != 20.00 || products[0].Stock != 5 {
		t.Errorf("row 0 = %+v, want Tomato/20.00/5", products[0])
	}

	// Thousands separator normalized before parsing
	if products[1].Price != 1250.50 {
		t.Errorf("Mango price = %v, want 1250.50", products[1].Price)
	}

	// Malformed numerics default to zero instead of failing the load
	if products[2].Name != "Onion" || products[2].Price != 0 || products[2].Stock != 0 {
		t.Errorf("Onion row = %+v, want zeroed price and stock", products[2])
	}

	// Empty link falls back to the placeholder
	if products[2].Link != "#" {
		t.Errorf("Onion link = %q, want %q", products[2].Link, "#")
	}
}

func TestNewStoreFromReaderEmptyInput(t *testing.T) {
	store, err := NewStoreFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("NewStoreFromReader(empty) error = %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestLoadStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.csv")

	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore(missing) error = %v, want degraded empty store", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}

	// Downstream resolution legitimately returns no match
	if _, found := store.Resolve("tomato"); found {
		t.Error("Resolve on empty store found a product")
	}
}

func TestStockStatus(t *testing.T) {
	inStock := Product{Name: "Tomato", Stock: 5}
	outOfStock := Product{Name: "Mango", Stock: 0}

	if got := inStock.StockStatus(); got != StockStatusInStock {
		t.Errorf("StockStatus() = %q, want %q", got, StockStatusInStock)
	}
	if got := outOfStock.StockStatus(); got != StockStatusOutOfStock {
		t.Errorf("StockStatus() = %q, want %q", got, StockStatusOutOfStock)
	}
}

func TestSuggest(t *testing.T) {
	store := NewStore([]Product{
		{Name: "Mango", Price: 80},
		{Name: "Mandarin", Price: 60},
		{Name: "Apple", Price: 50},
	})

	tests := []struct {
		name      string
		partial   string
		wantNames []string
	}{
		{
			name:      "matches by substring",
			partial:   "ma",
			wantNames: []string{"Mango", "Mandarin"},
		},
		{
			name:      "case insensitive",
			partial:   "MANGO",
			wantNames: []string{"Mango"},
		},
		{
			name:      "too short",
			partial:   "m",
			wantNames: []string{},
		},
		{
			name:      "no matches",
			partial:   "zz",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.Suggest(tt.partial)

			if len(got) != len(tt.wantNames) {
				t.Fatalf("Suggest(%q) returned %d entries, want %d", tt.partial, len(got), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if got[i].Name != want {
					t.Errorf("Suggest(%q)[%d] = %q, want %q", tt.partial, i, got[i].Name, want)
				}
			}
		})
	}
}

func TestSuggestCapsAtTen(t *testing.T) {
	var products []Product
	for i := 0; i < 15; i++ {
		products = append(products, Product{Name: "Mango Variety " + string(rune('A'+i)), Price: float64(i)})
	}
	store := NewStore(products)

	got := store.Suggest("mango")
	if len(got) != 10 {
		t.Errorf("Suggest returned %d entries, want capped at 10", len(got))
	}
}

func TestSuggestPriceFormat(t *testing.T) {
	store := NewStore([]Product{{Name: "Mango", Price: 80}})

	got := store.Suggest("mango")
	if len(got) != 1 || got[0].Price != "80.00" {
		t.Errorf("Suggest price = %v, want fixed-point \"80.00\"", got)
	}
}
