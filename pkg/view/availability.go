package view

// DayRow is one calendar day in the availability table.
type DayRow struct {
	Date         string `json:"date"`
	DateLabel    string `json:"dateLabel"`
	TotalOrders  int    `json:"totalOrders"`
	TakingOrders bool   `json:"takingOrders"`
	Selected     bool   `json:"selected,omitempty"`
}

type AvailabilityPage struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	// Blocking alert from the toggle write path, cleared on the next load.
	Alert string   `json:"alert,omitempty"`
	Days  int      `json:"days"`
	Rows  []DayRow `json:"rows"`

	SelectedDate   string      `json:"selectedDate,omitempty"`
	SelectedOrders []OrderCard `json:"selectedOrders,omitempty"`
	SelectedEmpty  string      `json:"selectedEmpty,omitempty"`
}
