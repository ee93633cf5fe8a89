package view

// BusinessSummary heads the order-list screen.
type BusinessSummary struct {
	Name        string   `json:"name"`
	BusinessID  string   `json:"businessId"`
	Roles       []string `json:"roles,omitempty"`
	TotalOrders int      `json:"totalOrders"`
}

type MeasurementRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// OrderLine is one line item, shared by the list and detail screens.
// Optional fields are omitted entirely when absent, never blanked.
type OrderLine struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	ProductCode string     `json:"productCode,omitempty"`
	Quantity    int        `json:"quantity"`
	Unit        string     `json:"unit,omitempty"`
	UnitPrice   string     `json:"unitPrice"`
	LineTotal   string     `json:"lineTotal"`
	Status      StatusView `json:"status"`

	MeasurementDate string `json:"measurementDate,omitempty"`
	MeasurementSlot string `json:"measurementSlot,omitempty"`
	StitchingDate   string `json:"stitchingDate,omitempty"`
	Notes           string `json:"notes,omitempty"`

	// Expandable measurement details (list screen only).
	HasMeasurements bool             `json:"hasMeasurements"`
	Expanded        bool             `json:"expanded"`
	Measurements    []MeasurementRow `json:"measurements,omitempty"`
	// First non-empty note across all measurement rows, shown once
	// beneath the list.
	MeasurementNote string `json:"measurementNote,omitempty"`
}

type OrderCard struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	DateLabel   string      `json:"dateLabel"`
	Type        string      `json:"type,omitempty"`
	Total       string      `json:"total"`
	AdvancePaid string      `json:"advancePaid,omitempty"`
	Status      StatusView  `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	Items       []OrderLine `json:"items,omitempty"`
}

type OrderListPage struct {
	Loading    bool             `json:"loading"`
	Error      string           `json:"error,omitempty"`
	ShowBack   bool             `json:"showBack,omitempty"`
	DateFilter string           `json:"dateFilter,omitempty"`
	Business   *BusinessSummary `json:"business,omitempty"`
	Orders     []OrderCard      `json:"orders"`
	// Filter-aware empty-state message, set only when Orders is empty.
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

type AddressView struct {
	FullName             string `json:"fullName"`
	Phone                string `json:"phone"`
	AlternatePhone       string `json:"alternatePhone,omitempty"`
	AddressLine1         string `json:"addressLine1"`
	AddressLine2         string `json:"addressLine2,omitempty"`
	Landmark             string `json:"landmark,omitempty"`
	City                 string `json:"city"`
	State                string `json:"state"`
	Pincode              string `json:"pincode"`
	AddressType          string `json:"addressType,omitempty"`
	DeliveryInstructions string `json:"deliveryInstructions,omitempty"`
	MapLink              string `json:"mapLink,omitempty"`
}

type OrderDetailPage struct {
	Loading  bool         `json:"loading"`
	Error    string       `json:"error,omitempty"`
	NotFound bool         `json:"notFound,omitempty"`
	ShowBack bool         `json:"showBack,omitempty"`
	Order    *OrderCard   `json:"order,omitempty"`
	Address  *AddressView `json:"deliveryAddress,omitempty"`
}
