package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	all := []OrderStatus{OrderStatusPending, OrderStatusInProgress, OrderStatusDone, OrderStatusCancelled}

	allowed := map[[2]OrderStatus]bool{
		{OrderStatusPending, OrderStatusInProgress}:   true,
		{OrderStatusPending, OrderStatusCancelled}:    true,
		{OrderStatusInProgress, OrderStatusDone}:      true,
		{OrderStatusInProgress, OrderStatusCancelled}: true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]OrderStatus{from, to}]
			assert.Equalf(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, OrderStatusDone.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusInProgress.Terminal())

	// terminal statuses allow no transitions at all
	for _, to := range []OrderStatus{OrderStatusPending, OrderStatusInProgress, OrderStatusDone, OrderStatusCancelled} {
		assert.False(t, OrderStatusDone.CanTransition(to))
		assert.False(t, OrderStatusCancelled.CanTransition(to))
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestMilestoneStatus_Valid(t *testing.T) {
	assert.True(t, MilestoneCompleted.Valid())
	assert.False(t, MilestoneStatus("done").Valid())
}
