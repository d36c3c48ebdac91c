// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentService authorises the amount due at checkout.
// No real card processing happens; implementations only simulate the wait.
type PaymentService interface {
	// Authorize blocks until the payment settles or ctx is done.
	Authorize(ctx context.Context, amount decimal.Decimal) error
}
