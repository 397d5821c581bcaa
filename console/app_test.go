package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-ecommerce-console/models"
	"go-ecommerce-console/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	app     *App
	out     *bytes.Buffer
	cart    *models.Cart
	ledger  *shop.Ledger
	logPath string
}

func newHarness(t *testing.T, input string, cartCapacity int) *harness {
	t.Helper()
	catalog, err := shop.NewCatalog(shop.DefaultItems())
	require.NoError(t, err)

	logPath := filepath.Join(t.TempDir(), "orders.log")
	ledger := shop.NewLedger(10)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cart := models.NewCart(cartCapacity)
	out := &bytes.Buffer{}

	app := NewApp(Options{
		Catalog:  catalog,
		Cart:     cart,
		Checkout: shop.NewCheckout(ledger, logger, shop.NewFileAuditLog(logPath)),
		Ledger:   ledger,
		In:       strings.NewReader(input),
		Out:      out,
		Currency: "₱",
	})
	return &harness{app: app, out: out, cart: cart, ledger: ledger, logPath: logPath}
}

func TestShopAndCheckout(t *testing.T) {
	input := strings.Join([]string{
		"1", "a1b2c3", "2", "y", "x9y8z7", "1", "n", // add two lines
		"2", "y", "2", // checkout with card
		"3", // order history
		"4",
	}, "\n") + "\n"
	h := newHarness(t, input, 10)

	require.NoError(t, h.app.Run(context.Background()))
	out := h.out.String()

	assert.Equal(t, 2, strings.Count(out, "Product added successfully!"))
	assert.Contains(t, out, "Total Amount: ₱78.00")
	assert.Contains(t, out, "Processing credit/debit card payment of ₱78.00")
	assert.Contains(t, out, "You have successfully checked out the products!")
	assert.Contains(t, out, "Order ID: 1")
	assert.Contains(t, out, "Payment Method: Credit / Debit Card")
	assert.Contains(t, out, "Goodbye!")

	assert.True(t, h.cart.IsEmpty())
	assert.Equal(t, 1, h.ledger.Count())

	raw, err := os.ReadFile(h.logPath)
	require.NoError(t, err)
	assert.Equal(t, "[LOG] -> Order ID: 1 has been successfully checked out and paid using Credit / Debit Card\n", string(raw))
}

func TestMenuRejectsBadInput(t *testing.T) {
	h := newHarness(t, "\nabc\n0\n9\n3\n", 10)

	require.NoError(t, h.app.Run(context.Background()), "end of input exits cleanly")
	out := h.out.String()

	assert.Contains(t, out, "Input cannot be empty. Please try again.")
	assert.Contains(t, out, "Input must be a valid positive whole integer.")
	assert.Contains(t, out, "Input cannot be zero. Please try again.")
	assert.Contains(t, out, "Invalid choice. Please enter a number between 1 and 4.")
	assert.Contains(t, out, "No orders to display.")
}

func TestUnknownProductThenRetry(t *testing.T) {
	input := "1\nzzz\ny\nj1k2l3\n0\n5\nn\n2\nn\n4\n"
	h := newHarness(t, input, 10)

	require.NoError(t, h.app.Run(context.Background()))
	out := h.out.String()

	assert.Contains(t, out, "Product with ID 'zzz' not found")
	assert.Contains(t, out, "Input cannot be zero. Please try again.")
	assert.Contains(t, out, "Milo")
	assert.Contains(t, out, "Total Amount: ₱62.50")

	require.Equal(t, 1, h.cart.Len())
	assert.Equal(t, 5, h.cart.Lines()[0].Quantity)
	assert.Equal(t, 0, h.ledger.Count(), "declined checkout records nothing")
}

func TestCartFullIsReported(t *testing.T) {
	input := "1\nm7n8o9\n1\ny\np4q5r6\n1\nn\n4\n"
	h := newHarness(t, input, 1)

	require.NoError(t, h.app.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Shopping cart is full, cannot add more items")
	assert.Equal(t, 1, h.cart.Len())
}

func TestEmptyCartAndPaymentMenu(t *testing.T) {
	input := "2\n1\nj1k2l3\n2\nn\n2\ny\n7\n3\n4\n"
	h := newHarness(t, input, 10)

	require.NoError(t, h.app.Run(context.Background()))
	out := h.out.String()

	assert.Contains(t, out, "Your shopping cart is empty. Please add products before checking out.")
	assert.Contains(t, out, "Invalid choice. Please enter a number between 1 and 3.")
	assert.Contains(t, out, "Processing GCash payment of ₱25.00")

	orders := h.ledger.All()
	require.Len(t, orders, 1)
	assert.Equal(t, "GCash", orders[0].PaymentMethod())
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	h := newHarness(t, "4\n", 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, h.app.Run(ctx), context.Canceled)
}

func TestRunReturnsWhenCancelledMidPrompt(t *testing.T) {
	catalog, err := shop.NewCatalog(shop.DefaultItems())
	require.NoError(t, err)
	ledger := shop.NewLedger(10)

	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	app := NewApp(Options{
		Catalog:  catalog,
		Cart:     models.NewCart(10),
		Checkout: shop.NewCheckout(ledger, slog.New(slog.NewTextHandler(io.Discard, nil))),
		Ledger:   ledger,
		In:       pr,
		Out:      io.Discard,
		Currency: "₱",
	})

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- app.Run(ctx) }()

	// Nothing is ever written to pw, so the menu prompt stays blocked.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
