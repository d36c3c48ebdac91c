// Package payment simulates the card payment step of checkout. No money moves.
package payment

import (
	"context"
	"log/slog"
	"time"

	"coffissimo/config"
	domainerrors "coffissimo/internal/domain/errors"
	"coffissimo/internal/domain/service"

	"github.com/shopspring/decimal"
)

type simulatedPayment struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewSimulatedPayment waits checkout.paymentDelay before approving every payment.
func NewSimulatedPayment(cfg *config.Config, logger *slog.Logger) service.PaymentService {
	var delay time.Duration
	if cfg != nil && cfg.Checkout != nil {
		delay = cfg.Checkout.PaymentDelay
	}

	return &simulatedPayment{
		delay:  delay,
		logger: logger,
	}
}

func (p *simulatedPayment) Authorize(ctx context.Context, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerrors.ErrInvalidCheckout.WithDetails("payment amount cannot be negative")
	}

	p.logger.Debug("Processing payment", "amount", amount.StringFixed(2), "delay", p.delay)

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		p.logger.Info("Payment cancelled", "amount", amount.StringFixed(2), "reason", ctx.Err())

		return domainerrors.ErrPaymentCancelled.WrapMessage(ctx.Err().Error())
	case <-timer.C:
		return nil
	}
}
