// Package pricing derives an order's payment summary from its item list.
// All accumulation is done in decimals; callers round to two digits only
// when rendering.
package pricing

import (
	"restaurant-management-api/models"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat 25% applied to every order. A fixed policy constant,
// not configurable per order.
var TaxRate = decimal.NewFromFloat(0.25)

// DonationAmount is the fixed "Donation for disable people" line printed on
// the payment summary. It is displayed only and never added into the total.
var DonationAmount = decimal.NewFromFloat(5.99)

// Summary is the payment breakdown for an order.
type Summary struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Donation decimal.Decimal
	Total    decimal.Decimal
}

// Subtotal sums unit price times quantity over the items.
func Subtotal(items []models.OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	return sum
}

// Summarize computes the full payment summary: tax is 25% of the subtotal
// and the total is subtotal plus tax. The donation line rides along for
// display but does not contribute to the total.
func Summarize(items []models.OrderItem) Summary {
	subtotal := Subtotal(items)
	tax := subtotal.Mul(TaxRate)
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Donation: DonationAmount,
		Total:    subtotal.Add(tax),
	}
}

// ItemCount sums the quantities over the items.
func ItemCount(items []models.OrderItem) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

// Rendered returns the summary as fixed two-digit strings for responses.
func (s Summary) Rendered() map[string]string {
	return map[string]string{
		"subtotal": s.Subtotal.StringFixed(2),
		"tax":      s.Tax.StringFixed(2),
		"donation": s.Donation.StringFixed(2),
		"total":    s.Total.StringFixed(2),
	}
}
