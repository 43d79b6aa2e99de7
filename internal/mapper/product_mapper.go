package mapper

import (
	"fmt"
	"strconv"

	"farm2bag-chatbot-be/internal/dto"
	"farm2bag-chatbot-be/pkg/cart"
	"farm2bag-chatbot-be/pkg/catalog"
)

// ToProductInfo formats a catalog product into the reply snapshot.
func ToProductInfo(p catalog.Product) *dto.ProductInfoDTO {
	return &dto.ProductInfoDTO{
		Product:     p.Name,
		Price:       strconv.FormatFloat(p.Price, 'f', 2, 64),
		Stock:       stockLabel(p),
		Link:        p.Link,
		Image:       p.ImageLink,
		StockStatus: p.StockStatus(),
	}
}

// ToCartItem snapshots a product for the cart. The copy is deliberate:
// a cart item must not change if the catalog ever did.
func ToCartItem(p catalog.Product) cart.Item {
	return cart.Item{
		Product:     p.Name,
		Price:       strconv.FormatFloat(p.Price, 'f', 2, 64),
		Stock:       stockLabel(p),
		StockStatus: p.StockStatus(),
		Link:        p.Link,
		Image:       p.ImageLink,
	}
}

func stockLabel(p catalog.Product) string {
	if p.InStock() {
		return fmt.Sprintf("%d available", p.Stock)
	}
	return "Out of stock"
}
