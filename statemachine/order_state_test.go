package statemachine

import (
	"testing"

	"restaurant-management-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryStatusReachableFromEveryOther(t *testing.T) {
	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			assert.NoError(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestSameStatusIsLegalNoOp(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.NoError(t, CanTransition(s, s))
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	err := CanTransition(models.StatusNew, models.OrderStatus("shipped"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shipped")
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("delivered"))
	assert.False(t, IsValidStatus(""))
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "New Order", StatusLabel(models.StatusNew))
	assert.Equal(t, "On Cook", StatusLabel(models.StatusOnCook))
	assert.Equal(t, "Complete", StatusLabel(models.StatusCompleted))
	assert.Equal(t, "Cancelled", StatusLabel(models.StatusCancelled))
}

func TestValidTransitionsFromCoversAllOthers(t *testing.T) {
	for _, from := range AllStatuses() {
		nexts := ValidTransitionsFrom(from)
		require.Len(t, nexts, len(AllStatuses())-1, "from %s", from)
		for _, to := range nexts {
			assert.NotEqual(t, from, to)
		}
	}
}

func TestGetAllTransitions(t *testing.T) {
	n := len(AllStatuses())
	assert.Len(t, GetAllTransitions(), n*(n-1))
}
