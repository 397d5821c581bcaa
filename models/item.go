package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Item is a purchasable product. It is immutable once created.
type Item struct {
	id        string
	name      string
	unitPrice decimal.Decimal
}

// NewItem validates and builds an Item. Identifiers are stored upper-cased so
// lookups can compare case-insensitively.
func NewItem(id, name string, unitPrice decimal.Decimal) (Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Item{}, &InputError{Reason: "product ID cannot be empty"}
	}
	if strings.TrimSpace(name) == "" {
		return Item{}, &InputError{Reason: "product name cannot be empty"}
	}
	if unitPrice.IsNegative() {
		return Item{}, &InputError{Reason: "unit price cannot be negative"}
	}
	return Item{id: strings.ToUpper(id), name: name, unitPrice: unitPrice}, nil
}

func (i Item) ID() string { return i.id }
func (i Item) Name() string { return i.name }
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }

// MarshalJSON exposes the item to the HTTP front end.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		UnitPrice decimal.Decimal `json:"unit_price"`
	}{i.id, i.name, i.unitPrice})
}
