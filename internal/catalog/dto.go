package catalog

import (
	"github.com/koodakziba/koodakziba-backend/internal/pricing"
	"github.com/koodakziba/koodakziba-backend/pkg/jcal"
)

// ProductDTO is the API view of a product: the stored fields plus the
// priced annotations for the given day.
type ProductDTO struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Price           int      `json:"price"`
	FinalPrice      int      `json:"final_price"`
	DiscountActive  bool     `json:"discount_active"`
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

// FromProduct annotates a stored record with its effective price on the day.
func FromProduct(p Product, today jcal.Date) *ProductDTO {
	d := p.Discount()
	return &ProductDTO{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		FinalPrice:      pricing.EffectivePrice(p.Price, d, today),
		DiscountActive:  pricing.Active(d, today),
		Category:        p.Category,
		AgeGroup:        p.AgeGroup,
		Sizes:           p.Sizes,
		Colors:          p.Colors,
		Description:     p.Description,
		Image:           p.Image,
		Stock:           p.Stock,
		HasDiscount:     p.HasDiscount,
		DiscountPercent: p.DiscountPercent,
		DiscountStart:   p.DiscountStart,
		DiscountEnd:     p.DiscountEnd,
		CreatedAt:       p.CreatedAt,
	}
}

// ProductInput captures the writable product fields for create and update.
type ProductInput struct {
	Name            string
	Price           int
	Category        string
	AgeGroup        string
	Sizes           []string
	Colors          []string
	Description     string
	Image           string
	Stock           int
	HasDiscount     bool
	DiscountPercent int
	DiscountStart   string
	DiscountEnd     string
}
