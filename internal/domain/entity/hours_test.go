package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOpeningHours(t *testing.T) {
	hours, err := ParseOpeningHours("08:30", "19:30")
	require.NoError(t, err)
	assert.Equal(t, 8*60+30, hours.OpenMinute)
	assert.Equal(t, 19*60+30, hours.CloseMinute)
}

func TestParseOpeningHours_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		open, close string
	}{
		{name: "garbage", open: "soon", close: "19:30"},
		{name: "hour out of range", open: "25:00", close: "26:00"},
		{name: "minute out of range", open: "08:61", close: "19:30"},
		{name: "close before open", open: "19:30", close: "08:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOpeningHours(tt.open, tt.close)
			assert.Error(t, err)
		})
	}
}

func TestOpeningHours_ContainsIsInclusive(t *testing.T) {
	hours, err := ParseOpeningHours("08:30", "19:30")
	require.NoError(t, err)

	at := func(hour, minute int) time.Time {
		return time.Date(2025, time.March, 3, hour, minute, 59, 0, time.Local)
	}

	assert.False(t, hours.Contains(at(8, 29)))
	assert.True(t, hours.Contains(at(8, 30)))
	assert.True(t, hours.Contains(at(13, 0)))
	assert.True(t, hours.Contains(at(19, 30)))
	assert.False(t, hours.Contains(at(19, 31)))
}
