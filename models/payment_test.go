package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodsAlwaysSettle(t *testing.T) {
	for _, m := range PaymentMethods {
		ok, err := m.Settle(decimal.RequireFromString("78.00"))
		require.NoError(t, err, m.Label())
		assert.True(t, ok, m.Label())
	}
}

func TestPaymentMethodLabels(t *testing.T) {
	assert.Equal(t, "Cash", Cash.Label())
	assert.Equal(t, "Credit / Debit Card", Card.Label())
	assert.Equal(t, "GCash", DigitalWallet.Label())
}

func TestUnknownPaymentMethodDoesNotSettle(t *testing.T) {
	ok, err := PaymentMethod(42).Settle(decimal.NewFromInt(1))
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestPaymentMethodFromChoice(t *testing.T) {
	m, err := PaymentMethodFromChoice(3)
	require.NoError(t, err)
	assert.Equal(t, DigitalWallet, m)

	_, err = PaymentMethodFromChoice(4)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = PaymentMethodFromChoice(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParsePaymentMethod(t *testing.T) {
	cases := map[string]PaymentMethod{
		"cash":  Cash,
		" Card": Card,
		"GCASH": DigitalWallet,
	}
	for in, want := range cases {
		got, err := ParsePaymentMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePaymentMethod("crypto")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProcessingMessage(t *testing.T) {
	msg := Card.ProcessingMessage("₱", decimal.RequireFromString("78"))
	assert.Equal(t, "Processing credit/debit card payment of ₱78.00", msg)
}

func TestNewItemValidation(t *testing.T) {
	item, err := NewItem(" a1b2c3 ", "C2 Green Tea", decimal.NewFromInt(32))
	require.NoError(t, err)
	assert.Equal(t, "A1B2C3", item.ID())

	_, err = NewItem("", "x", decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewItem("X1", "x", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
