package view

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fitformal.com/app/internal/shared/normalize"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// Money renders a rupee amount with Indian digit grouping.
// E.g., 125000 -> "₹1,25,000.00"
func Money(amount float64) string {
	return inr.Sprintf("₹%.2f", amount)
}

// DateLabel renders a calendar date as "02 Jan 2006". Input with a
// time-of-day component is reduced to its date first; anything that still
// does not parse is shown as-is.
func DateLabel(raw string) string {
	d := normalize.DateOnly(raw)
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return d
	}
	return t.Format("02 Jan 2006")
}

// StatusView is the display form of a normalized order status.
type StatusView struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

func Status(raw string) StatusView {
	s := normalize.OrderStatus(raw)
	return StatusView{Label: s.Label(), Class: s.Class()}
}
