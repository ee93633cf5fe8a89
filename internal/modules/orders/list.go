// Package orders holds the order-list and order-detail screen
// controllers. A controller owns one screen's state for the life of a
// shell session: it fetches from the upstream client, keeps the small
// interactive state (expand map, date filter), and derives the display
// model on demand.
package orders

import (
	"context"
	"log/slog"
	"sync"

	"fitformal.com/app/internal/shared/apperr"
	"fitformal.com/app/internal/shared/normalize"
	"fitformal.com/app/internal/upstream"
	"fitformal.com/app/pkg/view"
)

type ListScreen struct {
	mu  sync.Mutex
	api *upstream.Client
	log *slog.Logger

	dateFilter string
	loading    bool
	errMsg     string
	data       *upstream.MyOrdersData
	// Per-item expand state, keyed by item id. Survives re-fetches;
	// dies with the session.
	expanded map[string]bool
}

func NewListScreen(api *upstream.Client, log *slog.Logger) *ListScreen {
	return &ListScreen{api: api, log: log, loading: true, expanded: map[string]bool{}}
}

// Load fetches the order list for the current filter. The result wholly
// replaces the previous snapshot; last settled fetch wins.
func (s *ListScreen) Load(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	filter := s.dateFilter
	s.mu.Unlock()

	data, err := s.api.MyOrders(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Warn("order list fetch failed", "err", err)
		s.errMsg = apperr.PublicMessage(err)
		s.data = nil
		return
	}
	s.errMsg = ""
	s.data = &data
}

// SetDateFilter changes the calendar-date filter and re-fetches. An empty
// date clears the filter.
func (s *ListScreen) SetDateFilter(ctx context.Context, date string) {
	s.mu.Lock()
	changed := s.dateFilter != date
	s.dateFilter = date
	s.mu.Unlock()
	if changed {
		s.Load(ctx)
	}
}

// ToggleMeasurements flips one item's expand state. Default is collapsed;
// each item toggles independently.
func (s *ListScreen) ToggleMeasurements(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expanded[itemID] = !s.expanded[itemID]
}

func (s *ListScreen) Snapshot() view.OrderListPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := view.OrderListPage{
		Loading:    s.loading,
		DateFilter: s.dateFilter,
		Orders:     []view.OrderCard{},
	}
	if s.errMsg != "" {
		page.Error = s.errMsg
		page.ShowBack = true
		return page
	}
	if s.data == nil {
		if !s.loading {
			page.EmptyMessage = emptyMessage(s.dateFilter)
		}
		return page
	}

	if s.data.BusinessName != "" || s.data.BusinessID != "" {
		page.Business = &view.BusinessSummary{
			Name:        s.data.BusinessName,
			BusinessID:  s.data.BusinessID.String(),
			Roles:       s.data.UserRoles,
			TotalOrders: s.data.TotalOrders,
		}
	}
	for _, o := range s.data.Orders {
		card := Card(o)
		for _, it := range o.Items {
			card.Items = append(card.Items, s.lineWithMeasurements(it))
		}
		page.Orders = append(page.Orders, card)
	}
	if len(page.Orders) == 0 && !s.loading {
		page.EmptyMessage = emptyMessage(s.dateFilter)
	}
	return page
}

// lineWithMeasurements builds a line view including the expandable
// measurement block. Caller holds s.mu.
func (s *ListScreen) lineWithMeasurements(it upstream.OrderItem) view.OrderLine {
	line := Line(it)

	rows := ParseMeasurements(it.Measurements, s.log)
	line.HasMeasurements = normalize.Flag(it.MeasurementDone) && len(rows) > 0
	if !line.HasMeasurements {
		return line
	}
	if s.expanded[line.ID] {
		line.Expanded = true
		for _, m := range rows {
			line.Measurements = append(line.Measurements, view.MeasurementRow{
				Key:   m.Key,
				Value: m.Value,
				Unit:  m.Unit,
			})
		}
		line.MeasurementNote = FirstNote(rows)
	}
	return line
}

func emptyMessage(dateFilter string) string {
	if dateFilter != "" {
		return "No orders found for " + view.DateLabel(dateFilter) + "."
	}
	return "You have no orders yet."
}

// Card derives the card-level display fields shared by the list, detail
// and availability screens. Optional fields stay empty and are omitted
// from JSON.
func Card(o upstream.Order) view.OrderCard {
	card := view.OrderCard{
		ID:        o.ID.String(),
		Date:      normalize.DateOnly(o.OrderDate),
		DateLabel: view.DateLabel(o.OrderDate),
		Type:      o.OrderType,
		Total:     view.Money(o.TotalAmount),
		Status:    view.Status(o.Status),
		Notes:     o.Notes,
	}
	if o.AdvancePaid > 0 {
		card.AdvancePaid = view.Money(o.AdvancePaid)
	}
	return card
}

func Line(it upstream.OrderItem) view.OrderLine {
	line := view.OrderLine{
		ID:          it.ID.String(),
		Description: it.ItemType,
		ProductCode: it.ProductCode,
		Quantity:    it.Quantity,
		Unit:        it.Unit,
		UnitPrice:   view.Money(it.UnitPrice),
		LineTotal:   view.Money(it.LineTotal),
		Status:      view.Status(it.Status),
		Notes:       it.Notes,
	}
	if it.MeasurementDate != "" {
		line.MeasurementDate = view.DateLabel(it.MeasurementDate)
	}
	line.MeasurementSlot = it.MeasurementSlot
	if it.StitchingDate != "" {
		line.StitchingDate = view.DateLabel(it.StitchingDate)
	}
	return line
}

func Address(a *upstream.Address) *view.AddressView {
	if a == nil {
		return nil
	}
	return &view.AddressView{
		FullName:             a.FullName,
		Phone:                a.Phone,
		AlternatePhone:       a.AlternatePhone,
		AddressLine1:         a.AddressLine1,
		AddressLine2:         a.AddressLine2,
		Landmark:             a.Landmark,
		City:                 a.City,
		State:                a.State,
		Pincode:              a.Pincode,
		AddressType:          a.AddressType,
		DeliveryInstructions: a.DeliveryInstructions,
		MapLink:              a.MapLink,
	}
}
