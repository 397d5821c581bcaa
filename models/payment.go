package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of ways an order can be paid.
type PaymentMethod int

const (
	Cash PaymentMethod = iota + 1
	Card
	DigitalWallet
)

// PaymentMethods lists every method in menu order.
var PaymentMethods = []PaymentMethod{Cash, Card, DigitalWallet}

// Label is the display name recorded on orders and in the audit log.
func (m PaymentMethod) Label() string {
	switch m {
	case Cash:
		return "Cash"
	case Card:
		return "Credit / Debit Card"
	case DigitalWallet:
		return "GCash"
	default:
		return fmt.Sprintf("PaymentMethod(%d)", int(m))
	}
}

func (m PaymentMethod) String() string { return m.Label() }

// Settle collects amount. Settlement is simulated, so every known method
// succeeds.
func (m PaymentMethod) Settle(amount decimal.Decimal) (bool, error) {
	switch m {
	case Cash, Card, DigitalWallet:
		return true, nil
	default:
		return false, fmt.Errorf("unknown payment method %d", int(m))
	}
}

// ProcessingMessage is the line shown to the shopper while settling.
func (m PaymentMethod) ProcessingMessage(currency string, amount decimal.Decimal) string {
	var kind string
	switch m {
	case Cash:
		kind = "cash"
	case Card:
		kind = "credit/debit card"
	case DigitalWallet:
		kind = "GCash"
	default:
		kind = m.Label()
	}
	return fmt.Sprintf("Processing %s payment of %s%s", kind, currency, amount.StringFixed(2))
}

// PaymentMethodFromChoice maps a 1-based menu choice to a method.
func PaymentMethodFromChoice(choice int) (PaymentMethod, error) {
	if choice < 1 || choice > len(PaymentMethods) {
		return 0, &InputError{Reason: fmt.Sprintf("payment choice must be between 1 and %d", len(PaymentMethods))}
	}
	return PaymentMethods[choice-1], nil
}

// ParsePaymentMethod accepts the names used by the HTTP front end.
func ParsePaymentMethod(name string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cash":
		return Cash, nil
	case "card", "credit", "debit":
		return Card, nil
	case "gcash", "wallet", "digital_wallet":
		return DigitalWallet, nil
	default:
		return 0, &InputError{Reason: fmt.Sprintf("unknown payment method %q", name)}
	}
}
