package cart

import (
	"github.com/koodakziba/koodakziba-backend/internal/catalog"
	"github.com/koodakziba/koodakziba-backend/internal/pricing"
	"github.com/koodakziba/koodakziba-backend/pkg/jcal"
)

// PricedLine is a cart line joined with its catalog product and priced for
// the day.
type PricedLine struct {
	ProductID  int    `json:"product_id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	Price      int    `json:"price"`
	FinalPrice int    `json:"final_price"`
	Quantity   int    `json:"quantity"`
	Size       string `json:"size"`
	Color      string `json:"color"`
	Subtotal   int    `json:"subtotal"`
}

// PricedCart is the API view of a cart.
type PricedCart struct {
	Items     []PricedLine `json:"items"`
	Total     int          `json:"total"`
	ItemCount int          `json:"item_count"`
}

// Price joins cart lines against the catalog and totals them. Lines whose
// product no longer exists are dropped silently; output order follows cart
// order.
func Price(cart []LineItem, products []catalog.Product, today jcal.Date) *PricedCart {
	byID := make(map[int]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	priced := &PricedCart{Items: []PricedLine{}}
	for _, item := range cart {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		final := pricing.EffectivePrice(product.Price, product.Discount(), today)
		line := PricedLine{
			ProductID:  item.ProductID,
			Name:       product.Name,
			Image:      product.Image,
			Price:      product.Price,
			FinalPrice: final,
			Quantity:   item.Quantity,
			Size:       item.Size,
			Color:      item.Color,
			Subtotal:   final * item.Quantity,
		}
		priced.Items = append(priced.Items, line)
		priced.Total += line.Subtotal
		priced.ItemCount += item.Quantity
	}
	return priced
}
