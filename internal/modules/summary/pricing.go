// Package summary computes the order-confirmation screen: a price
// breakdown over the selected items and a render-only page model. It
// fetches nothing; everything arrives from the caller.
package summary

import (
	"math"
	"strings"
)

// platformFeeFloor is the minimum service charge in whole rupees; the fee
// is 1% of the discounted total, whichever is larger.
const (
	platformFeeFloor = 7
	platformFeeRate  = 0.01
)

type SelectedItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Breakdown struct {
	TotalFullPrice float64
	TotalDiscount  float64
	PlatformFee    float64
	FinalTotal     float64
	TotalSavings   float64
}

// Compute matches each selected item against the price list and totals
// the breakdown. Unmatched items contribute nothing.
func Compute(items []SelectedItem, list []PriceEntry) Breakdown {
	var full, discount float64
	for _, it := range items {
		entry, ok := match(it, list)
		if !ok {
			continue
		}
		qty := float64(it.Quantity)
		full += entry.FullPrice * qty
		discount += perItemDiscount(entry) * qty
	}

	fee := math.Round((full - discount) * platformFeeRate)
	if fee < platformFeeFloor {
		fee = platformFeeFloor
	}

	return Breakdown{
		TotalFullPrice: full,
		TotalDiscount:  discount,
		PlatformFee:    fee,
		FinalTotal:     (full - discount) + fee,
		TotalSavings:   discount,
	}
}

// perItemDiscount prefers an explicit discount value; otherwise it is the
// gap between full and discount price, floored at zero.
func perItemDiscount(e PriceEntry) float64 {
	if e.Discount > 0 {
		return e.Discount
	}
	if d := e.FullPrice - e.DiscountPrice; d > 0 {
		return d
	}
	return 0
}

// match finds the price entry for an item: case-insensitive trimmed name
// equality first, identifier equality second.
func match(it SelectedItem, list []PriceEntry) (PriceEntry, bool) {
	name := strings.ToLower(strings.TrimSpace(it.Name))
	for _, e := range list {
		if name != "" && strings.ToLower(strings.TrimSpace(e.Name)) == name {
			return e, true
		}
	}
	for _, e := range list {
		if it.ID != "" && e.ID.String() == it.ID {
			return e, true
		}
	}
	return PriceEntry{}, false
}
