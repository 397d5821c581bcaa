package shop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go-ecommerce-console/models"

	"github.com/shopspring/decimal"
)

// PaymentStrategy settles an amount and names itself. models.PaymentMethod
// is the production implementation.
type PaymentStrategy interface {
	Settle(amount decimal.Decimal) (bool, error)
	Label() string
}

// Checkout turns a cart into a recorded order.
type Checkout struct {
	mu     sync.Mutex
	ledger *Ledger
	sinks  []AuditSink
	logger *slog.Logger
}

// NewCheckout wires the orchestrator to its ledger and audit sinks. Sinks
// run in the order given.
func NewCheckout(ledger *Ledger, logger *slog.Logger, sinks ...AuditSink) *Checkout {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checkout{
		ledger: ledger,
		sinks:  sinks,
		logger: logger.With("component", "checkout"),
	}
}

// Checkout settles the cart total with method, records the order and writes
// it to every audit sink. The cart is read, never modified; clearing it on
// success is the caller's job. Callers are expected to reject empty carts.
func (c *Checkout) Checkout(ctx context.Context, cart *models.Cart, method PaymentStrategy) (models.Order, error) {
	if method == nil {
		return models.Order{}, &models.InputError{Reason: "payment method is required"}
	}
	label := method.Label()

	c.mu.Lock()
	order, err := c.record(cart, method)
	c.mu.Unlock()
	if err != nil {
		checkoutsTotal.WithLabelValues(label, "failed").Inc()
		return models.Order{}, err
	}
	checkoutsTotal.WithLabelValues(label, "completed").Inc()

	c.audit(ctx, order)
	return order, nil
}

func (c *Checkout) record(cart *models.Cart, method PaymentStrategy) (models.Order, error) {
	amount := cart.Total()
	if err := settle(method, amount); err != nil {
		c.logger.Warn("settlement failed", "method", method.Label(), "amount", amount.StringFixed(2), "error", err)
		return models.Order{}, &models.PaymentError{Method: method.Label()}
	}

	if c.ledger.Full() {
		return models.Order{}, &models.CapacityError{Collection: "order ledger"}
	}

	order := models.NewOrder(c.ledger.NextID(), cart.Lines(), method.Label())
	if err := c.ledger.Append(order); err != nil {
		return models.Order{}, err
	}
	c.logger.Info("order recorded", "order_id", order.ID(), "total", order.Total().StringFixed(2), "method", order.PaymentMethod())
	return order, nil
}

func (c *Checkout) audit(ctx context.Context, order models.Order) {
	for _, sink := range c.sinks {
		if err := sink.Record(ctx, order); err != nil {
			auditFailures.Inc()
			c.logger.Error("audit write failed", "order_id", order.ID(), "sink", fmt.Sprintf("%T", sink), "error", err)
		}
	}
}

// settle turns every failure mode of a strategy, including a panic, into an
// error.
func settle(method PaymentStrategy, amount decimal.Decimal) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("settlement panicked: %v", r)
		}
	}()
	ok, err := method.Settle(amount)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("settlement declined")
	}
	return nil
}
