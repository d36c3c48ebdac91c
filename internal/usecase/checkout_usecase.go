package usecase

import (
	"context"

	"coffissimo/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CheckoutForm is the customer details collected at checkout.
type CheckoutForm struct {
	CustomerName  string `validate:"customer_name"`
	CustomerPhone string `validate:"customer_phone"`
	PickupTime    string `validate:"omitempty,pickup_slot"` // HH:MM, empty for as soon as possible
}

// PickupSlot is a selectable pickup time.
type PickupSlot struct {
	Value string // 24-hour HH:MM
	Label string // 12-hour label, e.g. "7:30 AM"
}

// ReceiptLine is one priced row of a receipt.
type ReceiptLine struct {
	Item        entity.CartItem
	ProductName string
	GrindName   string
	LineTotal   decimal.Decimal
}

// Receipt is the confirmation view of a placed order.
type Receipt struct {
	Order    entity.Order
	Branch   *entity.Branch
	Lines    []ReceiptLine
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CheckoutUsecase places orders from the cart and presents the order history.
type CheckoutUsecase interface {
	// PickupSlots lists the pickup times offered on the checkout form
	PickupSlots() []PickupSlot

	// Checkout validates the form, takes the simulated payment and places the order
	Checkout(ctx context.Context, form CheckoutForm) (*Receipt, error)

	// Receipt presents a placed order with tax applied
	Receipt(orderID string) (*Receipt, error)

	// OrderHistory returns every placed order, newest first
	OrderHistory() []entity.Order

	// PickupQRCode renders the order's pickup pass as a PNG QR code
	PickupQRCode(orderID string) ([]byte, error)
}
