package console

import (
	"fmt"
	"io"

	"go-ecommerce-console/models"
)

const (
	rowItem = "%-15s%-20s%-10s\n"
	rowLine = "%-15s%-20s%-10s%-10d\n"
)

// Renderer prints catalog, cart and order tables.
type Renderer struct {
	out      io.Writer
	currency string
}

func NewRenderer(out io.Writer, currency string) *Renderer {
	return &Renderer{out: out, currency: currency}
}

func (r *Renderer) Products(items []models.Item) {
	fmt.Fprintln(r.out, "\n----- Available Products -----")
	fmt.Fprintf(r.out, rowItem, "Product ID", "Name", "Price")
	for _, item := range items {
		fmt.Fprintf(r.out, rowItem, item.ID(), item.Name(), item.UnitPrice().StringFixed(2))
	}
}

func (r *Renderer) lines(lines []models.CartLine) {
	fmt.Fprintf(r.out, "%-15s%-20s%-10s%-10s\n", "Product ID", "Name", "Price", "Quantity")
	for _, l := range lines {
		fmt.Fprintf(r.out, rowLine, l.Item.ID(), l.Item.Name(), l.Item.UnitPrice().StringFixed(2), l.Quantity)
	}
}

func (r *Renderer) Cart(cart *models.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(r.out, "Your shopping cart is empty.")
		return
	}
	fmt.Fprintln(r.out, "\n----- Shopping Cart -----")
	r.lines(cart.Lines())
	fmt.Fprintf(r.out, "\nTotal Amount: %s%s\n", r.currency, cart.Total().StringFixed(2))
}

func (r *Renderer) Order(order models.Order) {
	fmt.Fprintf(r.out, "\nOrder ID: %d\n", order.ID())
	fmt.Fprintf(r.out, "Total Amount: %s%s\n", r.currency, order.Total().StringFixed(2))
	fmt.Fprintf(r.out, "Payment Method: %s\n", order.PaymentMethod())
	fmt.Fprintln(r.out, "Order Details:")
	r.lines(order.Lines())
	fmt.Fprintln(r.out)
}

func (r *Renderer) Orders(orders []models.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(r.out, "No orders to display.")
		return
	}
	fmt.Fprintln(r.out, "\n----- Order History -----")
	for _, o := range orders {
		r.Order(o)
	}
}

func (r *Renderer) PaymentMenu() {
	fmt.Fprintln(r.out, "\nSelect payment method:")
	for i, m := range models.PaymentMethods {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, m.Label())
	}
}
