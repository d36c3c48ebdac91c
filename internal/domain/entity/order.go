// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle stage of a placed order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is an immutable snapshot of a placed purchase.
type Order struct {
	ID            string          `json:"id"`                   // Internal identifier.
	OrderNumber   string          `json:"orderNumber"`          // Human-readable number shown at pickup.
	BranchID      string          `json:"branchId"`             // Pickup branch, empty when none was selected.
	Items         []CartItem      `json:"items"`                // Value copy of the cart at placement time.
	CustomerName  string          `json:"customerName"`         // Name given at checkout.
	CustomerPhone string          `json:"customerPhone"`        // Phone given at checkout.
	PickupTime    *string         `json:"pickupTime,omitempty"` // Requested pickup slot, HH:MM.
	Subtotal      decimal.Decimal `json:"subtotal"`             // Cart total at placement.
	Total         decimal.Decimal `json:"total"`                // Same as subtotal; fees are applied when presenting.
	Status        OrderStatus     `json:"status"`               // Always placed when created by the store.
	CreatedAt     time.Time       `json:"createdAt"`            // Placement time in UTC.
}

// ItemCount is the sum of quantities in the order.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}

	return count
}

// Clone returns a deep copy so stored orders cannot be changed through returned values.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}

	cloned := *o
	cloned.Items = CloneCart(o.Items)
	if o.PickupTime != nil {
		pickup := *o.PickupTime
		cloned.PickupTime = &pickup
	}

	return &cloned
}
