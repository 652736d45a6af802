// Package pricing computes effective product prices under Jalali-calendar
// discount windows. The functions are pure; callers supply the reference day.
package pricing

import (
	"github.com/koodakziba/koodakziba-backend/pkg/jcal"
)

// Discount describes a product's discount window as stored on the record.
// Start and End are raw "YYYY/MM/DD" strings; malformed bounds silently
// disable the discount rather than erroring.
type Discount struct {
	Enabled bool
	Percent int
	Start   string
	End     string
}

// Active reports whether the discount applies on the given day. The window
// is inclusive on both bounds. A window with Start after End never matches.
func Active(d Discount, today jcal.Date) bool {
	if !d.Enabled || d.Percent <= 0 {
		return false
	}
	start, err := jcal.Parse(d.Start)
	if err != nil {
		return false
	}
	end, err := jcal.Parse(d.End)
	if err != nil {
		return false
	}
	return !today.Before(start) && !today.After(end)
}

// EffectivePrice returns the price after applying the discount when it is
// active on the given day, truncating the reduction toward zero. Prices are
// integer minor units throughout.
func EffectivePrice(price int, d Discount, today jcal.Date) int {
	if !Active(d, today) {
		return price
	}
	return price - price*d.Percent/100
}
