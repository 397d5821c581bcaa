package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Order is the immutable record of one completed checkout.
type Order struct {
	id            int
	lines         []CartLine
	total         decimal.Decimal
	paymentMethod string
}

// NewOrder snapshots lines and recomputes the total from them.
func NewOrder(id int, lines []CartLine, paymentMethod string) Order {
	snapshot := make([]CartLine, len(lines))
	copy(snapshot, lines)
	return Order{
		id:            id,
		lines:         snapshot,
		total:         SumLines(snapshot),
		paymentMethod: paymentMethod,
	}
}

func (o Order) ID() int { return o.id }
func (o Order) Total() decimal.Decimal { return o.total }
func (o Order) PaymentMethod() string { return o.paymentMethod }
func (o Order) LineCount() int { return len(o.lines) }

// Lines returns a copy of the order's line items.
func (o Order) Lines() []CartLine {
	out := make([]CartLine, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID            int             `json:"order_id"`
		Lines         []CartLine      `json:"lines"`
		Total         decimal.Decimal `json:"total_amount"`
		PaymentMethod string          `json:"payment_method"`
	}{o.id, o.lines, o.total, o.paymentMethod})
}
