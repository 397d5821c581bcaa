package utils

import (
	"context"
	"fmt"
	"time"

	"go-ecommerce-console/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB opens and pings a MongoDB client.
func ConnectDB(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// OrderArchive mirrors every checked-out order into a Mongo collection. It is
// an audit copy only; the ledger stays the source of truth.
type OrderArchive struct {
	Collection *mongo.Collection
	Now        func() time.Time
}

// NewOrderArchive creates a new OrderArchive
func NewOrderArchive(client *mongo.Client, database, collection string) *OrderArchive {
	return &OrderArchive{
		Collection: client.Database(database).Collection(collection),
		Now:        time.Now,
	}
}

// Record inserts one document for order.
func (a *OrderArchive) Record(ctx context.Context, order models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := a.Collection.InsertOne(ctx, OrderDocument(order, a.Now())); err != nil {
		return fmt.Errorf("archive order %d: %w", order.ID(), err)
	}
	return nil
}

// OrderDocument is the BSON shape stored by OrderArchive.
func OrderDocument(order models.Order, recordedAt time.Time) bson.M {
	lines := make(bson.A, 0, order.LineCount())
	for _, l := range order.Lines() {
		lines = append(lines, bson.M{
			"product_id": l.Item.ID(),
			"name":       l.Item.Name(),
			"unit_price": l.Item.UnitPrice().StringFixed(2),
			"quantity":   l.Quantity,
			"line_total": l.LineTotal().StringFixed(2),
		})
	}
	return bson.M{
		"order_id":       order.ID(),
		"items":          lines,
		"total_amount":   order.Total().StringFixed(2),
		"payment_method": order.PaymentMethod(),
		"recorded_at":    recordedAt,
	}
}
