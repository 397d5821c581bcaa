package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the shop's failure categories. Match them with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrPaymentFailed    = errors.New("payment failed")
)

// NotFoundError reports a catalog lookup miss.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with ID '%s' not found", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InputError reports malformed input from the caller.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Reason
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// CapacityError reports a bounded collection that is already full.
type CapacityError struct {
	Collection string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s is full, cannot add more items", e.Collection)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// PaymentError carries only the label of the method that failed. The
// settlement cause is dropped on purpose and is not reachable via Unwrap.
type PaymentError struct {
	Method string
}

func (e *PaymentError) Error() string {
	return "payment failed with method: " + e.Method
}

func (e *PaymentError) Unwrap() error { return ErrPaymentFailed }
