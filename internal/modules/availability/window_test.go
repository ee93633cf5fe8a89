package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowSevenDays(t *testing.T) {
	start := time.Date(2025, 12, 8, 15, 42, 0, 0, time.UTC)
	got := Window(start, 7)
	assert.Equal(t, []string{
		"2025-12-08", "2025-12-09", "2025-12-10", "2025-12-11",
		"2025-12-12", "2025-12-13", "2025-12-14",
	}, got)
}

func TestWindowCrossesMonthEnd(t *testing.T) {
	start := time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC)
	got := Window(start, 7)
	assert.Equal(t, []string{
		"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02",
		"2026-01-03", "2026-01-04", "2026-01-05",
	}, got)
}

func TestWindowIsDuplicateFree(t *testing.T) {
	got := Window(time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC), 60)
	assert.Len(t, got, 60)
	seen := map[string]bool{}
	for _, d := range got {
		assert.False(t, seen[d], "duplicate %s", d)
		seen[d] = true
	}
}

func TestValidWindow(t *testing.T) {
	for _, n := range WindowSizes {
		assert.True(t, validWindow(n))
	}
	assert.False(t, validWindow(0))
	assert.False(t, validWindow(8))
	assert.False(t, validWindow(-7))
}
