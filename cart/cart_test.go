package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, title string, price float64) Item {
	return Item{ID: id, Title: title, UnitPrice: decimal.NewFromFloat(price)}
}

func TestAddItemGroupsByID(t *testing.T) {
	c := New()

	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))
	c.AddItem(item("boisson:5", "Eau Minérale", 3.50))
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))

	lines := c.Lines()
	require.Len(t, lines, 2, "one line per distinct catalog id")
	assert.Equal(t, "plat:1", lines[0].ID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "boisson:5", lines[1].ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := New()

	c.AddItem(item("a", "A", 1))
	c.AddItem(item("b", "B", 2))
	c.AddItem(item("c", "C", 3))
	c.AddItem(item("a", "A", 1)) // repeat add must not reorder

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{lines[0].ID, lines[1].ID, lines[2].ID})
}

func TestRemoveItemDeletesWholeLine(t *testing.T) {
	c := New()
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))

	removed, err := c.RemoveItem("plat:1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed.Quantity)
	assert.Empty(t, c.Lines())
}

func TestReAddAfterRemoveStartsFresh(t *testing.T) {
	c := New()
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))

	_, err := c.RemoveItem("plat:1")
	require.NoError(t, err)

	line := c.AddItem(item("plat:1", "Pizza Margherita", 18.50))
	assert.Equal(t, 1, line.Quantity, "no quantity persists across removal")
}

func TestRemoveItemMissing(t *testing.T) {
	c := New()
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))

	_, err := c.RemoveItem("plat:99")
	assert.ErrorIs(t, err, ErrLineNotFound)
	assert.Len(t, c.Lines(), 1, "a failed remove mutates nothing")
}

func TestTotal(t *testing.T) {
	c := New()
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))
	c.AddItem(item("boisson:6", "Coca-Cola (33cl)", 4.20))

	assert.True(t, c.Total().Equal(decimal.NewFromFloat(41.20)), "got %s", c.Total())
	assert.Equal(t, 3, c.ItemCount())
}

func TestTotalIsOrderIndependent(t *testing.T) {
	a := New()
	a.AddItem(item("x", "X", 12.99))
	a.AddItem(item("y", "Y", 0.01))
	a.AddItem(item("z", "Z", 7.50))

	b := New()
	b.AddItem(item("z", "Z", 7.50))
	b.AddItem(item("x", "X", 12.99))
	b.AddItem(item("y", "Y", 0.01))

	assert.True(t, a.Total().Equal(b.Total()))
}

func TestZeroPriceItemDoesNotChangeTotal(t *testing.T) {
	c := New()
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))
	before := c.Total()

	c.AddItem(item("free", "Tap Water", 0))
	assert.True(t, c.Total().Equal(before))
	assert.Equal(t, 2, c.ItemCount(), "the free line still counts as an item")
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(item("plat:1", "Pizza Margherita", 18.50))
	c.AddItem(item("boisson:5", "Eau Minérale", 3.50))

	c.Clear()

	assert.Empty(t, c.Lines())
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, 0, c.ItemCount())
}

func TestFloatDriftAcrossRepeatedAdds(t *testing.T) {
	c := New()
	for i := 0; i < 100; i++ {
		c.AddItem(item("boisson:7", "Spritz Aperol", 8.90))
	}
	// 100 × 8.90 must be exactly 890.00, not 889.9999...
	assert.Equal(t, "890.00", c.Total().StringFixed(2))
}
