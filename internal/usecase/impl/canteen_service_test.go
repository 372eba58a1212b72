package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanteenService_WindowBoundaries(t *testing.T) {
	cfg := newTestConfig()
	day := func(hour, minute int) time.Time {
		return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.Local)
	}

	tests := []struct {
		name string
		at   time.Time
		open bool
	}{
		{name: "just before opening", at: day(8, 29), open: false},
		{name: "opening minute", at: day(8, 30), open: true},
		{name: "midday", at: day(12, 0), open: true},
		{name: "closing minute", at: day(19, 30), open: true},
		{name: "just after closing", at: day(19, 31), open: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewCanteenService(cfg, newFakeClock(tt.at), newDiscardLogger())
			require.NoError(t, err)
			assert.Equal(t, tt.open, svc.IsOpen())
		})
	}
}

func TestCanteenService_RefreshTracksClock(t *testing.T) {
	cfg := newTestConfig()
	clock := newFakeClock(openNoon)

	svc, err := NewCanteenService(cfg, clock, newDiscardLogger())
	require.NoError(t, err)
	require.True(t, svc.IsOpen())

	// The flag is cached; moving the clock alone changes nothing until
	// the next Refresh.
	clock.Set(closedNight)
	assert.True(t, svc.IsOpen())

	svc.Refresh()
	assert.False(t, svc.IsOpen())

	clock.Set(openNoon)
	svc.Refresh()
	assert.True(t, svc.IsOpen())
}

func TestCanteenService_StatusLabels(t *testing.T) {
	cfg := newTestConfig()

	svc, err := NewCanteenService(cfg, newFakeClock(closedNight), newDiscardLogger())
	require.NoError(t, err)

	status := svc.Status()
	assert.False(t, status.Open)
	assert.Equal(t, "08:30", status.OpensAt)
	assert.Equal(t, "19:30", status.ClosesAt)
}

func TestCanteenService_RejectsBadWindow(t *testing.T) {
	cfg := newTestConfig()
	cfg.Canteen.OpensAt = "19:30"
	cfg.Canteen.ClosesAt = "08:30"

	_, err := NewCanteenService(cfg, newFakeClock(openNoon), newDiscardLogger())
	require.Error(t, err)
}
