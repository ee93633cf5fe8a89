package view

// SummaryDates is the booking/measurement/delivery date block of the
// order-confirmation screen.
type SummaryDates struct {
	Booking     string `json:"booking,omitempty"`
	Measurement string `json:"measurement,omitempty"`
	Delivery    string `json:"delivery,omitempty"`
}

type SummaryItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// PriceSection carries the formatted breakdown. Savings render only when
// there is a discount to show.
type PriceSection struct {
	TotalFullPrice string `json:"totalFullPrice"`
	TotalDiscount  string `json:"totalDiscount"`
	PlatformFee    string `json:"platformFee"`
	FinalTotal     string `json:"finalTotal"`
	TotalSavings   string `json:"totalSavings,omitempty"`
}

// SummaryPage is pure presentation: sections are omitted when their
// backing data is absent.
type SummaryPage struct {
	Dates   *SummaryDates `json:"dates,omitempty"`
	Pickup  *AddressView  `json:"pickupAddress,omitempty"`
	Deliver *AddressView  `json:"deliveryAddress,omitempty"`
	Items   []SummaryItem `json:"items,omitempty"`
	Price   *PriceSection `json:"price,omitempty"`

	ConfirmLabel    string `json:"confirmLabel"`
	ConfirmDisabled bool   `json:"confirmDisabled"`
}
