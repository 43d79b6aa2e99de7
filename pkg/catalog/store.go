package catalog

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Store is the process-wide product table. It is loaded once at startup and
// never mutated afterwards, so it is safe for concurrent reads without locking.
// Row order is load order and is significant: the resolver's first-match scan
// depends on it.
type Store struct {
	products []Product
}

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

const maxSuggestions = 10

// NewStore builds a store from already-parsed products, preserving order.
func NewStore(products []Product) *Store {
	return &Store{products: products}
}

// LoadStore reads the product CSV at path. A missing file is not fatal: the
// store initializes empty and every lookup legitimately returns no match.
func LoadStore(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[WARN] Catalog file %s not found, starting with empty catalog", path)
			return &Store{}, nil
		}
		return nil, err
	}
	defer file.Close()

	return NewStoreFromReader(file)
}

// NewStoreFromReader parses catalog rows from r. Parsing is tolerant: a row
// with a malformed price or stock keeps the row with those fields zeroed
// rather than failing the whole load.
func NewStoreFromReader(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return &Store{}, nil
		}
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var products []Product
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows, keep the rest of the catalog
			continue
		}

		name := strings.TrimSpace(field(record, columns, "Product Name"))
		if name == "" {
			continue
		}

		products = append(products, Product{
			Name:      name,
			Price:     parsePrice(field(record, columns, "Price")),
			Stock:     parseStock(field(record, columns, "Stock")),
			Link:      fieldOr(record, columns, "Link", "#"),
			ImageLink: field(record, columns, "Image Link"),
		})
	}

	return &Store{products: products}, nil
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func fieldOr(record []string, columns map[string]int, name, fallback string) string {
	if v := field(record, columns, name); v != "" {
		return v
	}
	return fallback
}

// parsePrice normalizes thousands separators ("1,200.50") before parsing.
// Malformed values default to 0.0 instead of failing the load.
func parsePrice(raw string) float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

func parseStock(raw string) int {
	stock, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || stock < 0 {
		return 0
	}
	return stock
}

// All returns the catalog in load order. Callers must treat it as read-only.
func (s *Store) All() []Product {
	return s.products
}

// Len returns the number of loaded products.
func (s *Store) Len() int {
	return len(s.products)
}

// Suggest returns up to 10 products whose name contains partial,
// case-insensitive. Partials shorter than 2 characters yield nothing.
func (s *Store) Suggest(partial string) []Suggestion {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if len(partial) < 2 {
		return []Suggestion{}
	}

	suggestions := make([]Suggestion, 0, maxSuggestions)
	for _, p := range s.products {
		if !strings.Contains(strings.ToLower(p.Name), partial) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Name:  p.Name,
			Price: strconv.FormatFloat(p.Price, 'f', 2, 64),
		})
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	return suggestions
}
