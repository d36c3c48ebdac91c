package usecase

import (
	"context"

	"coffissimo/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartItemInput is everything needed to add a row to the cart; the row ID is generated by the store.
type CartItemInput struct {
	ProductID        string
	BranchID         string
	Grind            entity.GrindType
	SubscriptionPlan *entity.SubscriptionPlan
	Quantity         int
	UnitPrice        decimal.Decimal
}

// StoreListener receives a copy of the persisted subset after every mutation.
type StoreListener func(snapshot entity.StoreSnapshot)

// OrderStoreUsecase is the single source of truth for order mode, branch, cart and order history.
// Operations on unknown identifiers are no-ops or report not found; they never fail.
type OrderStoreUsecase interface {
	// Hydrate replaces the in-memory state with the persisted record, or defaults when absent or unreadable
	Hydrate(ctx context.Context)

	// SetOrderType sets the fulfilment mode without touching the branch or the cart
	SetOrderType(ctx context.Context, orderType entity.OrderType)

	// SetSelectedBranch stores a copy of the branch (nil clears it) and always empties the cart
	SetSelectedBranch(ctx context.Context, branch *entity.Branch)

	// ChooseDelivery switches to delivery, dropping the branch and the cart
	ChooseDelivery(ctx context.Context)

	// ChoosePickup switches to pickup, keeping any selected branch
	ChoosePickup(ctx context.Context)

	// StartOver clears the order type, the branch and the cart
	StartOver(ctx context.Context)

	// AddToCart merges into a row with the same product, branch, grind and plan, or appends a new row
	AddToCart(ctx context.Context, item CartItemInput)

	// RemoveFromCart deletes the row with the given ID if present
	RemoveFromCart(ctx context.Context, itemID string)

	// UpdateCartItemQuantity sets a row's quantity; zero or less removes it
	UpdateCartItemQuantity(ctx context.Context, itemID string, quantity int)

	// ClearCart empties the cart
	ClearCart(ctx context.Context)

	// CartTotal sums the discounted line totals of the cart
	CartTotal() decimal.Decimal

	// CartItemCount sums the quantities of the cart
	CartItemCount() int

	// CreateOrder snapshots the cart into a placed order and empties the cart
	CreateOrder(ctx context.Context, customerName, customerPhone string, pickupTime *string) (*entity.Order, error)

	// GetOrder looks up an order in the history
	GetOrder(orderID string) (*entity.Order, bool)

	// SetIsCartOpen toggles the cart panel flag
	SetIsCartOpen(isOpen bool)

	// SetShowEntryModal toggles the first-visit entry modal flag
	SetShowEntryModal(ctx context.Context, show bool)

	OrderType() entity.OrderType
	SelectedBranch() *entity.Branch
	Selection() entity.Selection
	Cart() []entity.CartItem
	Orders() []entity.Order
	IsCartOpen() bool
	ShowEntryModal() bool
	Snapshot() entity.StoreSnapshot

	// Subscribe registers a listener called synchronously after every mutation
	Subscribe(listener StoreListener) (unsubscribe func())

	// Flush persists the current state immediately
	Flush(ctx context.Context)
}
