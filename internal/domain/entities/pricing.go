package entities

import "fmt"

// Totals is the aggregate result of pricing an order's items.
//
// Monetary representation:
//   - Plain float64, no rounding beyond native precision. Currency
//     formatting happens at the edges, never here.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
}

// ComputeTotals prices a sequence of order items against a flat discount.
//
// Rules:
//   - lineTotal = quantity * unitPrice per item; negative quantity or
//     negative unit price is rejected, not clamped.
//   - subtotal = sum of line totals.
//   - total = max(0, subtotal - discount). A discount exceeding the
//     subtotal is not an error: the total silently floors at zero, which
//     is how the workshop waives an order.
//
// The calculation is pure: identical inputs always produce identical
// totals, and an empty item slice prices to zero rather than failing, so
// anomalous backend records can still render.
func ComputeTotals(items []OrderItem, discount float64) (Totals, error) {
	if discount < 0 {
		return Totals{}, fmt.Errorf("%w: %v", ErrInvalidDiscount, discount)
	}

	subtotal := 0.0
	for i, it := range items {
		if it.Quantity < 0 {
			return Totals{}, fmt.Errorf("%w: negative quantity at index %d", ErrInvalidItem, i)
		}
		if it.UnitPrice < 0 {
			return Totals{}, fmt.Errorf("%w: negative unit price at index %d", ErrInvalidItem, i)
		}
		subtotal += it.LineTotal()
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}
	return Totals{Subtotal: subtotal, Total: total}, nil
}
