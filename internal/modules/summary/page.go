package summary

import (
	"fitformal.com/app/internal/modules/orders"
	"fitformal.com/app/internal/upstream"
	"fitformal.com/app/pkg/view"
)

type PageInput struct {
	BookingDate     string
	MeasurementDate string
	DeliveryDate    string

	Pickup   *upstream.Address
	Delivery *upstream.Address

	Items     []SelectedItem
	PriceList []PriceEntry

	// Creating mirrors the shell's in-flight order-creation flag.
	Creating bool
}

// BuildPage derives the confirmation screen. Sections without backing
// data are omitted, not rendered blank.
func BuildPage(in PageInput) view.SummaryPage {
	page := view.SummaryPage{
		Pickup:          orders.Address(in.Pickup),
		Deliver:         orders.Address(in.Delivery),
		ConfirmLabel:    "Confirm Order",
		ConfirmDisabled: in.Creating,
	}
	if in.Creating {
		page.ConfirmLabel = "Creating Order..."
	}

	if in.BookingDate != "" || in.MeasurementDate != "" || in.DeliveryDate != "" {
		dates := view.SummaryDates{}
		if in.BookingDate != "" {
			dates.Booking = view.DateLabel(in.BookingDate)
		}
		if in.MeasurementDate != "" {
			dates.Measurement = view.DateLabel(in.MeasurementDate)
		}
		if in.DeliveryDate != "" {
			dates.Delivery = view.DateLabel(in.DeliveryDate)
		}
		page.Dates = &dates
	}

	for _, it := range in.Items {
		page.Items = append(page.Items, view.SummaryItem{Name: it.Name, Quantity: it.Quantity})
	}

	if len(in.Items) > 0 && len(in.PriceList) > 0 {
		b := Compute(in.Items, in.PriceList)
		price := view.PriceSection{
			TotalFullPrice: view.Money(b.TotalFullPrice),
			TotalDiscount:  view.Money(b.TotalDiscount),
			PlatformFee:    view.Money(b.PlatformFee),
			FinalTotal:     view.Money(b.FinalTotal),
		}
		if b.TotalSavings > 0 {
			price.TotalSavings = view.Money(b.TotalSavings)
		}
		page.Price = &price
	}
	return page
}
