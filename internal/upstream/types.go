package upstream

import (
	"bytes"
	"encoding/json"
)

// ID tolerates upstream identifiers that arrive as JSON numbers or strings.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

type Order struct {
	ID              ID          `json:"id"`
	OrderDate       string      `json:"orderDate"`
	OrderType       string      `json:"orderType"`
	TotalAmount     float64     `json:"totalAmount"`
	AdvancePaid     float64     `json:"advancePaid"`
	Status          string      `json:"status"`
	Notes           string      `json:"notes"`
	Items           []OrderItem `json:"orderItems"`
	DeliveryAddress *Address    `json:"deliveryAddress"`
}

type OrderItem struct {
	ID              ID      `json:"id"`
	ItemType        string  `json:"itemType"`
	ProductCode     string  `json:"productCode"`
	Quantity        int     `json:"quantity"`
	Unit            string  `json:"unit"`
	UnitPrice       float64 `json:"unitPrice"`
	LineTotal       float64 `json:"lineTotal"`
	Status          string  `json:"status"`
	MeasurementDate string  `json:"measurementDate"`
	MeasurementSlot string  `json:"measurementSlot"`
	StitchingDate   string  `json:"stitchingDate"`
	Notes           string  `json:"notes"`

	// Loose fields: done flag is bool/number/string, measurements is a
	// JSON array or a JSON-encoded string of one.
	MeasurementDone any             `json:"isMeasurementDone"`
	Measurements    json.RawMessage `json:"measurements"`
}

type Address struct {
	FullName             string `json:"fullName"`
	Phone                string `json:"phone"`
	AlternatePhone       string `json:"alternatePhone"`
	AddressLine1         string `json:"addressLine1"`
	AddressLine2         string `json:"addressLine2"`
	Landmark             string `json:"landmark"`
	City                 string `json:"city"`
	State                string `json:"state"`
	Pincode              string `json:"pincode"`
	AddressType          string `json:"addressType"`
	DeliveryInstructions string `json:"deliveryInstructions"`
	MapLink              string `json:"mapLink"`
}

// MyOrdersData is the business summary + order list behind /api/my-orders.
type MyOrdersData struct {
	BusinessName string   `json:"businessName"`
	BusinessID   ID       `json:"businessId"`
	UserRoles    []string `json:"userRoles"`
	TotalOrders  int      `json:"totalOrders"`
	Orders       []Order  `json:"orders"`
}

// OrderPayload is the detail shape behind /api/orders/{id}.
type OrderPayload struct {
	Order           Order       `json:"order"`
	Items           []OrderItem `json:"orderItems"`
	DeliveryAddress *Address    `json:"deliveryAddress"`
}

// AvailabilityEntry is one per-day closed flag. The upstream emits both
// Date/IsClosed and date/isClosed spellings; encoding/json's
// case-insensitive matching covers both.
type AvailabilityEntry struct {
	Date     string `json:"date"`
	IsClosed bool   `json:"isClosed"`
}

// DayOrders is one day's order count from the range endpoint.
type DayOrders struct {
	Date        string  `json:"date"`
	TotalOrders int     `json:"totalOrders"`
	Orders      []Order `json:"orders"`
}
