package catalog

import (
	"github.com/koodakziba/koodakziba-backend/internal/pricing"
)

// Product is a catalog record as stored in the products collection.
// Prices are integer rial amounts; discount bounds are Jalali "YYYY/MM/DD".
type Product struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Price           int      `json:"price"`
	Category        string   `json:"category"`
	AgeGroup        string   `json:"age_group"`
	Sizes           []string `json:"sizes"`
	Colors          []string `json:"colors"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	Stock           int      `json:"stock"`
	HasDiscount     bool     `json:"has_discount"`
	DiscountPercent int      `json:"discount_percent"`
	DiscountStart   string   `json:"discount_start"`
	DiscountEnd     string   `json:"discount_end"`
	CreatedAt       string   `json:"created_at"`
}

// Discount projects the record's discount fields for the pricing engine.
func (p Product) Discount() pricing.Discount {
	return pricing.Discount{
		Enabled: p.HasDiscount,
		Percent: p.DiscountPercent,
		Start:   p.DiscountStart,
		End:     p.DiscountEnd,
	}
}
