package handlers

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"fitformal.com/app/internal/modules/availability"
	"fitformal.com/app/internal/modules/orders"
	"fitformal.com/app/internal/upstream"
)

const (
	// Sessions idle longer than this are dropped from the registry.
	sessionIdleTTL = 12 * time.Hour
	// Cap on cached detail screens per session. Screens rebuild on
	// demand, so exceeding the cap just resets the cache.
	maxDetailScreens = 32
)

// sessionScreens groups one shell session's live screen controllers. It
// also acts as the session's TokenSource: each request re-resolves the
// token so a screen created earlier fetches with current credentials.
type sessionScreens struct {
	mu    sync.Mutex
	token atomic.Value // string

	lastSeen time.Time // guarded by Screens.mu

	list         *orders.ListScreen
	details      map[string]*orders.DetailScreen
	availability *availability.Screen
	availBizID   string
}

func (ss *sessionScreens) Token() string {
	if v, ok := ss.token.Load().(string); ok {
		return v
	}
	return ""
}

func (ss *sessionScreens) setToken(tok string) { ss.token.Store(tok) }

func (ss *sessionScreens) listScreen(api *upstream.Client, log *slog.Logger) *orders.ListScreen {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.list == nil {
		ss.list = orders.NewListScreen(api.WithCredentials(ss), log)
	}
	return ss.list
}

func (ss *sessionScreens) detailScreen(api *upstream.Client, log *slog.Logger, orderID string) *orders.DetailScreen {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if s, ok := ss.details[orderID]; ok {
		return s
	}
	if ss.details == nil || len(ss.details) >= maxDetailScreens {
		ss.details = map[string]*orders.DetailScreen{}
	}
	s := orders.NewDetailScreen(api.WithCredentials(ss), log, orderID)
	ss.details[orderID] = s
	return s
}

func (ss *sessionScreens) availabilityScreen(api *upstream.Client, log *slog.Logger, businessID string) *availability.Screen {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.availability == nil || ss.availBizID != businessID {
		ss.availability = availability.NewScreen(api.WithCredentials(ss), log, businessID)
		ss.availBizID = businessID
	}
	return ss.availability
}

// Screens is the registry of per-session screen groups. A group lives as
// long as its session stays active; idle sessions are evicted on access
// so the registry stays bounded.
type Screens struct {
	mu        sync.Mutex
	bySession map[string]*sessionScreens
	now       func() time.Time
}

func NewScreens() *Screens {
	return &Screens{
		bySession: map[string]*sessionScreens{},
		now:       time.Now,
	}
}

func (s *Screens) forSession(sid string) *sessionScreens {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, ss := range s.bySession {
		if id != sid && now.Sub(ss.lastSeen) > sessionIdleTTL {
			delete(s.bySession, id)
		}
	}

	ss, ok := s.bySession[sid]
	if !ok {
		ss = &sessionScreens{}
		s.bySession[sid] = ss
	}
	ss.lastSeen = now
	return ss
}
