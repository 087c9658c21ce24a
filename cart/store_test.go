package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSessionLifecycle(t *testing.T) {
	s := NewStore()

	sid, c := s.Create()
	require.NotEmpty(t, sid)
	require.NotNil(t, c)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(sid)
	require.NoError(t, err)
	assert.Same(t, c, got)

	require.NoError(t, s.Remove(sid))
	assert.Equal(t, 0, s.Len())

	_, err = s.Get(sid)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, s.Remove(sid), ErrSessionNotFound)
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	s := NewStore()

	sid1, c1 := s.Create()
	sid2, c2 := s.Create()
	require.NotEqual(t, sid1, sid2)

	c1.AddItem(Item{ID: "plat:1", Title: "Pizza Margherita", UnitPrice: decimal.NewFromFloat(18.50)})

	assert.Equal(t, 1, c1.ItemCount())
	assert.Equal(t, 0, c2.ItemCount())
}
