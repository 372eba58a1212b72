package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"received", "preparing", "ready"} {
		status, ok := ParseStatus(raw)
		assert.True(t, ok)
		assert.Equal(t, Status(raw), status)
	}

	_, ok := ParseStatus("shipped")
	assert.False(t, ok)
	_, ok = ParseStatus("Received")
	assert.False(t, ok)
}

func TestStatus_RankOrdering(t *testing.T) {
	assert.Less(t, StatusReceived.Rank(), StatusPreparing.Rank())
	assert.Less(t, StatusPreparing.Rank(), StatusReady.Rank())
	assert.Zero(t, Status("shipped").Rank())
}
