// Package availability holds the per-day order calendar: a window of
// dates starting today, each with an order count and a "taking orders"
// switch the operator can flip. The switch is written back optimistically;
// the reconcile policy below is deliberate and must not be "fixed" into a
// rollback.
package availability

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"fitformal.com/app/internal/modules/orders"
	"fitformal.com/app/internal/shared/apperr"
	"fitformal.com/app/internal/shared/normalize"
	"fitformal.com/app/internal/upstream"
	"fitformal.com/app/pkg/view"
)

// ReconcilePolicy names what happens to the optimistic local flag once
// the persistence call settles.
type ReconcilePolicy struct {
	RevertOnFailure  bool
	RefetchOnSuccess bool
}

// KeepLocalOnFailure is the product's chosen policy: a failed write keeps
// the UI change and alerts; a successful write re-fetches everything.
var KeepLocalOnFailure = ReconcilePolicy{RevertOnFailure: false, RefetchOnSuccess: true}

type dayRow struct {
	date         string
	totalOrders  int
	takingOrders bool
	orders       []upstream.Order
}

type Screen struct {
	mu  sync.Mutex
	api *upstream.Client
	log *slog.Logger

	businessID string
	days       int
	policy     ReconcilePolicy
	now        func() time.Time

	loading      bool
	errMsg       string
	alert        string
	rows         []dayRow
	selected     string
	refreshCount int
}

func NewScreen(api *upstream.Client, log *slog.Logger, businessID string) *Screen {
	return &Screen{
		api:        api,
		log:        log,
		businessID: businessID,
		days:       DefaultWindow,
		policy:     KeepLocalOnFailure,
		now:        time.Now,
		loading:    true,
	}
}

// Load fetches availability flags and order counts for the window and
// merges them onto the generated dates. The orders-range fetch is
// best-effort; a failed availability fetch falls back to a synthetic
// all-open window so the table always has rows.
func (s *Screen) Load(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.alert = ""
	biz := s.businessID
	days := s.days
	start := s.now()
	s.mu.Unlock()

	if biz == "" {
		s.mu.Lock()
		s.loading = false
		s.errMsg = "No business selected."
		s.rows = nil
		s.mu.Unlock()
		return
	}

	window := Window(start, days)

	entries, availErr := s.api.DayAvailability(ctx, biz)
	if availErr != nil {
		s.log.Warn("availability fetch failed, rendering synthetic window", "business_id", biz, "err", availErr)
	}

	dayOrders, rangeErr := s.api.OrdersInRange(ctx, window[0], window[len(window)-1], biz)
	if rangeErr != nil {
		s.log.Warn("orders-range fetch failed, counts default to zero", "business_id", biz, "err", rangeErr)
	}

	closedByDate := make(map[string]bool, len(entries))
	for _, e := range entries {
		closedByDate[normalize.DateOnly(e.Date)] = e.IsClosed
	}
	ordersByDate := make(map[string]upstream.DayOrders, len(dayOrders))
	for _, d := range dayOrders {
		ordersByDate[normalize.DateOnly(d.Date)] = d
	}

	rows := make([]dayRow, 0, len(window))
	for _, date := range window {
		row := dayRow{date: date, takingOrders: true}
		if availErr == nil {
			if closed, ok := closedByDate[date]; ok {
				row.takingOrders = !closed
			}
			if d, ok := ordersByDate[date]; ok {
				row.totalOrders = d.TotalOrders
				row.orders = d.Orders
			}
		}
		rows = append(rows, row)
	}

	s.mu.Lock()
	s.loading = false
	s.errMsg = ""
	s.rows = rows
	s.mu.Unlock()
}

// SetDays switches the window size and re-fetches. Sizes outside
// WindowSizes are ignored.
func (s *Screen) SetDays(ctx context.Context, days int) {
	if !validWindow(days) {
		return
	}
	s.mu.Lock()
	changed := s.days != days
	s.days = days
	s.mu.Unlock()
	if changed {
		s.Load(ctx)
	}
}

// SelectDate shows the chosen date's order list below the table. It is
// independent of the toggle.
func (s *Screen) SelectDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = date
}

// ToggleDay flips one day's taking-orders switch. The new value is
// applied locally first, then persisted; see ReconcilePolicy for what
// happens after.
func (s *Screen) ToggleDay(ctx context.Context, date string) {
	s.mu.Lock()
	if s.businessID == "" {
		s.alert = "Business not set. Cannot update availability."
		s.mu.Unlock()
		return
	}
	idx := -1
	for i := range s.rows {
		if s.rows[i].date == date {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.alert = "Unknown date."
		s.mu.Unlock()
		return
	}

	newTaking := !s.rows[idx].takingOrders
	s.rows[idx].takingOrders = newTaking // optimistic, single date only
	biz := s.businessID
	s.mu.Unlock()

	if s.api.Token() == "" {
		s.setTaking(date, !newTaking) // revert: the write was never possible
		s.setAlert("You are signed out. Please sign in and try again.")
		return
	}

	bizNum, err := strconv.Atoi(biz)
	if err != nil {
		// Same handling as a failed write: keep the local change.
		s.setAlert("Could not update availability: invalid business id.")
		return
	}

	if err := s.api.SetDayAvailability(ctx, bizNum, date, !newTaking); err != nil {
		if s.policy.RevertOnFailure {
			s.setTaking(date, !newTaking)
		}
		s.setAlert("Could not update availability: " + apperr.PublicMessage(err))
		return
	}

	s.mu.Lock()
	s.refreshCount++
	refetch := s.policy.RefetchOnSuccess
	s.mu.Unlock()
	if refetch {
		s.Load(ctx)
	}
}

// RefreshCount reports how many successful toggle writes have triggered a
// reconcile re-fetch.
func (s *Screen) RefreshCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCount
}

func (s *Screen) setTaking(date string, taking bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].date == date {
			s.rows[i].takingOrders = taking
			return
		}
	}
}

func (s *Screen) setAlert(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alert = msg
}

func (s *Screen) Snapshot() view.AvailabilityPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := view.AvailabilityPage{
		Loading: s.loading,
		Error:   s.errMsg,
		Alert:   s.alert,
		Days:    s.days,
		Rows:    make([]view.DayRow, 0, len(s.rows)),
	}
	for _, r := range s.rows {
		page.Rows = append(page.Rows, view.DayRow{
			Date:         r.date,
			DateLabel:    view.DateLabel(r.date),
			TotalOrders:  r.totalOrders,
			TakingOrders: r.takingOrders,
			Selected:     r.date == s.selected,
		})
	}

	if s.selected != "" {
		page.SelectedDate = s.selected
		for _, r := range s.rows {
			if r.date != s.selected {
				continue
			}
			for _, o := range r.orders {
				page.SelectedOrders = append(page.SelectedOrders, orders.Card(o))
			}
			break
		}
		if len(page.SelectedOrders) == 0 {
			page.SelectedEmpty = "No orders on " + view.DateLabel(s.selected) + "."
		}
	}
	return page
}
