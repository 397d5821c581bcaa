package shop

import (
	"strings"

	"go-ecommerce-console/models"

	"github.com/shopspring/decimal"
)

// Catalog is the read-only registry of purchasable items.
type Catalog struct {
	items []models.Item
	byID  map[string]int
}

// NewCatalog builds a catalog from items, keeping their order for display.
func NewCatalog(items []models.Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]models.Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, item := range items {
		key := strings.ToUpper(item.ID())
		if _, dup := c.byID[key]; dup {
			return nil, &models.InputError{Reason: "duplicate product ID " + item.ID()}
		}
		c.byID[key] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// Lookup finds an item by identifier, ignoring case.
func (c *Catalog) Lookup(id string) (models.Item, error) {
	idx, ok := c.byID[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return models.Item{}, &models.NotFoundError{ID: id}
	}
	return c.items[idx], nil
}

// All returns every item in catalog order.
func (c *Catalog) All() []models.Item {
	out := make([]models.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Len() int { return len(c.items) }

// DefaultItems is the seed data used when no catalog is configured.
func DefaultItems() []models.Item {
	seed := []struct{ id, name, price string }{
		{"A1B2C3", "C2 Green Tea", "32.00"},
		{"X9Y8Z7", "Zesto Juice Drink", "14.00"},
		{"P4Q5R6", "Cobra Energy Drink", "29.00"},
		{"M7N8O9", "1.5L Royal", "75.00"},
		{"J1K2L3", "Milo", "12.50"},
	}
	items := make([]models.Item, 0, len(seed))
	for _, s := range seed {
		item, err := models.NewItem(s.id, s.name, decimal.RequireFromString(s.price))
		if err != nil {
			panic(err)
		}
		items = append(items, item)
	}
	return items
}
