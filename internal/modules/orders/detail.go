package orders

import (
	"context"
	"log/slog"
	"sync"

	"fitformal.com/app/internal/shared/apperr"
	"fitformal.com/app/internal/upstream"
	"fitformal.com/app/pkg/view"
)

type DetailScreen struct {
	mu      sync.Mutex
	api     *upstream.Client
	log     *slog.Logger
	orderID string

	loading  bool
	errMsg   string
	notFound bool
	payload  *upstream.OrderPayload
}

func NewDetailScreen(api *upstream.Client, log *slog.Logger, orderID string) *DetailScreen {
	return &DetailScreen{api: api, log: log, orderID: orderID, loading: true}
}

// Load fetches the order. A missing order id or an unresolvable identity
// skips the fetch and just ends the loading state; that is not an error.
func (s *DetailScreen) Load(ctx context.Context) {
	s.mu.Lock()
	id := s.orderID
	s.loading = true
	s.mu.Unlock()

	if id == "" || s.api.Token() == "" {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return
	}

	payload, err := s.api.Order(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.notFound = false
	if err != nil {
		s.log.Warn("order detail fetch failed", "order_id", id, "err", err)
		s.errMsg = apperr.PublicMessage(err)
		s.payload = nil
		return
	}
	s.errMsg = ""
	if payload.Order.ID == "" {
		s.payload = nil
		s.notFound = true
		return
	}
	s.payload = &payload
}

func (s *DetailScreen) Snapshot() view.OrderDetailPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := view.OrderDetailPage{Loading: s.loading}
	if s.errMsg != "" {
		page.Error = s.errMsg
		page.ShowBack = true
		return page
	}
	if s.notFound {
		page.NotFound = true
		page.ShowBack = true
		return page
	}
	if s.payload == nil {
		return page
	}

	card := Card(s.payload.Order)
	for _, it := range s.payload.Items {
		card.Items = append(card.Items, Line(it))
	}
	page.Order = &card
	page.Address = Address(s.payload.DeliveryAddress)
	return page
}
