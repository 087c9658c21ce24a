// Package cart holds the in-progress order a waiter builds on the take-order
// screen. A cart lives in memory for the duration of a session: created when
// the session starts, torn down when the session ends or the order is
// submitted. Nothing here touches the database.
package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var ErrLineNotFound = errors.New("cart line not found")

// Item identifies a catalog entry being added to a cart. ID is the caller's
// key for the entry (handlers use "plat:3" style keys so dishes and drinks
// never collide).
type Item struct {
	ID        string
	Title     string
	UnitPrice decimal.Decimal
}

// Line is a quantity-grouped entry of the cart.
type Line struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is unit price times quantity.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates selected catalog items into lines. Lines keep the
// insertion order of first-added distinct items for stable display.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem increments the quantity of the matching line, or appends a new
// line with quantity 1. Returns the resulting line.
func (c *Cart) AddItem(item Item) Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			c.lines[i].Quantity++
			return c.lines[i]
		}
	}
	line := Line{ID: item.ID, Title: item.Title, UnitPrice: item.UnitPrice, Quantity: 1}
	c.lines = append(c.lines, line)
	return line
}

// RemoveItem deletes the entire line matching id regardless of quantity.
// There is no single-unit decrement path.
func (c *Cart) RemoveItem(id string) (Line, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == id {
			removed := c.lines[i]
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return removed, nil
		}
	}
	return Line{}, ErrLineNotFound
}

// Clear empties the cart. Invoked after a successful order submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum of unit price times quantity over all lines. Recomputed
// on every read.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// ItemCount is the sum of quantities, shown on the cart badge.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}
