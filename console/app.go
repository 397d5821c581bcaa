package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go-ecommerce-console/models"
	"go-ecommerce-console/shop"
)

// App is the interactive menu loop for a single shopper.
type App struct {
	catalog  *shop.Catalog
	cart     *models.Cart
	checkout *shop.Checkout
	ledger   *shop.Ledger
	prompt   *Prompter
	render   *Renderer
	out      io.Writer
	currency string
}

type Options struct {
	Catalog  *shop.Catalog
	Cart     *models.Cart
	Checkout *shop.Checkout
	Ledger   *shop.Ledger
	In       io.Reader
	Out      io.Writer
	Currency string
}

func NewApp(opts Options) *App {
	return &App{
		catalog:  opts.Catalog,
		cart:     opts.Cart,
		checkout: opts.Checkout,
		ledger:   opts.Ledger,
		prompt:   NewPrompter(opts.In, opts.Out),
		render:   NewRenderer(opts.Out, opts.Currency),
		out:      opts.Out,
		currency: opts.Currency,
	}
}

// Run shows the main menu until the shopper exits, the input ends or ctx is
// cancelled. Running out of input is a normal exit. Cancellation returns
// ctx.Err() even while a prompt is blocked on input; the blocked read is
// abandoned.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- a.loop(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *App) loop(ctx context.Context) error {
	fmt.Fprintln(a.out, "===== Welcome to the E-commerce System =====")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(a.out, "\n===== Main Menu =====")
		fmt.Fprintln(a.out, "1. View Products")
		fmt.Fprintln(a.out, "2. View Shopping Cart")
		fmt.Fprintln(a.out, "3. View Orders")
		fmt.Fprintln(a.out, "4. Exit")

		choice, err := a.prompt.RequestInteger("Enter your choice (1-4): ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case 1:
			err = a.viewProducts()
		case 2:
			err = a.viewCart(ctx)
		case 3:
			a.render.Orders(a.ledger.All())
		case 4:
			fmt.Fprintln(a.out, "Thank you for using the E-commerce System. Goodbye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please enter a number between 1 and 4.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *App) viewProducts() error {
	a.render.Products(a.catalog.All())

	for {
		again, err := a.addOne()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// addOne runs one add-to-cart round and reports whether the shopper wants
// another.
func (a *App) addOne() (bool, error) {
	id, err := a.prompt.RequestString("\nEnter the ID of the product you want to add in the shopping cart: ")
	if err != nil {
		return false, err
	}

	item, err := a.catalog.Lookup(id)
	if err == nil {
		var qty int
		qty, err = a.prompt.RequestInteger("Enter quantity: ")
		if err != nil {
			return false, err
		}
		err = a.cart.AddLine(item, qty)
	}
	if err != nil {
		fmt.Fprintln(a.out, displayError(err))
		return a.prompt.RequestYesNo("Do you want to try again? (Y/N): ")
	}

	fmt.Fprintln(a.out, "Product added successfully!")
	return a.prompt.RequestYesNo("Do you want to add another product? (Y/N): ")
}

func (a *App) viewCart(ctx context.Context) error {
	if a.cart.IsEmpty() {
		fmt.Fprintln(a.out, "Your shopping cart is empty. Please add products before checking out.")
		return nil
	}
	a.render.Cart(a.cart)

	ok, err := a.prompt.RequestYesNo("\nDo you want to check out all the products? (Y/N): ")
	if err != nil || !ok {
		return err
	}

	method, err := a.selectPaymentMethod()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, method.ProcessingMessage(a.currency, a.cart.Total()))
	if _, err := a.checkout.Checkout(ctx, a.cart, method); err != nil {
		fmt.Fprintln(a.out, "Error: "+displayError(err))
		return nil
	}

	fmt.Fprintln(a.out, "\nYou have successfully checked out the products!")
	a.cart.Clear()
	return nil
}

func (a *App) selectPaymentMethod() (models.PaymentMethod, error) {
	for {
		a.render.PaymentMenu()
		choice, err := a.prompt.RequestInteger(fmt.Sprintf("Enter your choice (1-%d): ", len(models.PaymentMethods)))
		if err != nil {
			return 0, err
		}
		method, err := models.PaymentMethodFromChoice(choice)
		if err == nil {
			return method, nil
		}
		fmt.Fprintf(a.out, "Invalid choice. Please enter a number between 1 and %d.\n", len(models.PaymentMethods))
	}
}

// displayError renders a domain error as one sentence-cased line.
func displayError(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	if c := msg[0]; c >= 'a' && c <= 'z' {
		msg = string(c-'a'+'A') + msg[1:]
	}
	return msg
}
