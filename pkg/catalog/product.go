package catalog

// Product is one immutable catalog row. Identity is the Name string.
type Product struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Link      string  `json:"link"`
	ImageLink string  `json:"image_link"`
}

// InStock reports whether the product can currently be sold.
func (p Product) InStock() bool {
	return p.Stock > 0
}

const (
	StockStatusInStock    = "in_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// StockStatus returns the status tag used in product snapshots.
func (p Product) StockStatus() string {
	if p.InStock() {
		return StockStatusInStock
	}
	return StockStatusOutOfStock
}
