package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DefaultCartCapacity is the maximum number of lines a cart holds unless
// configured otherwise.
const DefaultCartCapacity = 10

// CartLine is one add-to-cart event: an item and how many of it.
type CartLine struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// LineTotal is the unit price multiplied by the quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Item.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the session's pending selection. Each AddLine call appends a new
// line, even for an item already in the cart.
type Cart struct {
	lines    []CartLine
	capacity int
}

// NewCart returns an empty cart holding at most capacity lines. A
// non-positive capacity falls back to DefaultCartCapacity.
func NewCart(capacity int) *Cart {
	if capacity <= 0 {
		capacity = DefaultCartCapacity
	}
	return &Cart{lines: make([]CartLine, 0, capacity), capacity: capacity}
}

// AddLine appends a line. The cart is left untouched on error.
func (c *Cart) AddLine(item Item, quantity int) error {
	if quantity <= 0 {
		return &InputError{Reason: "quantity must be a positive whole number"}
	}
	if len(c.lines) >= c.capacity {
		return &CapacityError{Collection: "shopping cart"}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: quantity})
	return nil
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

// Total is the sum of all line totals.
func (c *Cart) Total() decimal.Decimal {
	return SumLines(c.lines)
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }
func (c *Cart) Len() int { return len(c.lines) }
func (c *Cart) Capacity() int { return c.capacity }

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lines    []CartLine      `json:"lines"`
		Total    decimal.Decimal `json:"total"`
		Capacity int             `json:"capacity"`
	}{c.Lines(), c.Total(), c.capacity})
}

// SumLines adds up the line totals of lines.
func SumLines(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}
