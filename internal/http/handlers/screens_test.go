package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitformal.com/app/internal/upstream"
)

func TestRegistryEvictsIdleSessions(t *testing.T) {
	s := NewScreens()
	base := time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	s.forSession("idle")
	s.now = func() time.Time { return base.Add(sessionIdleTTL + time.Minute) }
	s.forSession("active")

	s.mu.Lock()
	_, idleKept := s.bySession["idle"]
	_, activeKept := s.bySession["active"]
	s.mu.Unlock()

	assert.False(t, idleKept)
	assert.True(t, activeKept)
}

func TestRegistryKeepsRecentSessions(t *testing.T) {
	s := NewScreens()
	base := time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	first := s.forSession("a")
	s.now = func() time.Time { return base.Add(time.Hour) }

	assert.Same(t, first, s.forSession("a"))

	s.mu.Lock()
	n := len(s.bySession)
	s.mu.Unlock()
	assert.Equal(t, 1, n)
}

func TestDetailScreensStayBounded(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := upstream.New("http://127.0.0.1:0", log, upstream.StaticToken(""))
	ss := &sessionScreens{}

	for i := 0; i < maxDetailScreens*2; i++ {
		ss.detailScreen(api, log, fmt.Sprintf("order-%d", i))
	}

	assert.LessOrEqual(t, len(ss.details), maxDetailScreens)

	// A cached screen survives repeat lookups.
	d := ss.detailScreen(api, log, "order-x")
	assert.Same(t, d, ss.detailScreen(api, log, "order-x"))
}
