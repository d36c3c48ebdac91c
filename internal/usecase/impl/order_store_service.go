package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"coffissimo/config"
	"coffissimo/internal/domain/entity"
	domainerrors "coffissimo/internal/domain/errors"
	"coffissimo/internal/domain/repository"
	"coffissimo/internal/errors"
	"coffissimo/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const orderNumberPrefix = "CF-"

type storeSubscriber struct {
	id       int
	listener usecase.StoreListener
}

type orderStoreService struct {
	stateRepo repository.StateRepository
	logger    *slog.Logger
	key       string

	now         func() time.Time
	newID       func() string
	orderNumber func() string

	mu             sync.Mutex
	orderType      entity.OrderType
	selection      entity.Selection
	selectedBranch *entity.Branch
	cart           []entity.CartItem
	orders         []entity.Order
	isCartOpen     bool
	showEntryModal bool

	subscribers []storeSubscriber
	nextSubID   int
}

// NewOrderStoreService creates the order store with first-visit defaults.
// Call Hydrate to load the persisted record.
func NewOrderStoreService(
	stateRepo repository.StateRepository,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.OrderStoreUsecase {
	key := config.DefaultStorageKey
	if cfg != nil && cfg.Storage != nil && cfg.Storage.Key != "" {
		key = cfg.Storage.Key
	}

	defaults := entity.DefaultSnapshot()

	return &orderStoreService{
		stateRepo:      stateRepo,
		logger:         logger,
		key:            key,
		now:            func() time.Time { return time.Now().UTC() },
		newID:          uuid.NewString,
		orderNumber:    generateOrderNumber,
		orderType:      defaults.OrderType,
		selection:      entity.SelectionUnset,
		cart:           defaults.Cart,
		orders:         defaults.Orders,
		showEntryModal: defaults.ShowEntryModal,
	}
}

// RegisterOrderStoreLifecycle hydrates the store when the app starts and flushes it on stop.
func RegisterOrderStoreLifecycle(lc fx.Lifecycle, store usecase.OrderStoreUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			store.Hydrate(ctx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			store.Flush(ctx)

			return nil
		},
	})
}

// generateOrderNumber returns CF- followed by six uppercase hex characters.
func generateOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	return orderNumberPrefix + strings.ToUpper(id[:6])
}

func (s *orderStoreService) Hydrate(ctx context.Context) {
	snapshot := entity.DefaultSnapshot()

	payload, err := s.stateRepo.Load(ctx, s.key)
	switch {
	case err == nil:
		var decodeErrs []error
		snapshot, decodeErrs = decodeSnapshot(payload)
		for _, decodeErr := range decodeErrs {
			s.logger.Warn("Ignoring malformed persisted state", "key", s.key, "error", decodeErr)
		}
	case errors.Is(err, repository.ErrStateNotFound):
		s.logger.Debug("No persisted state, using defaults", "key", s.key)
	default:
		s.logger.Warn("Failed to load persisted state, using defaults", "key", s.key, "error", err)
	}

	s.mutate(ctx, false, func() bool {
		s.orderType = snapshot.OrderType
		s.selectedBranch = snapshot.SelectedBranch
		s.cart = snapshot.Cart
		s.orders = snapshot.Orders
		s.showEntryModal = snapshot.ShowEntryModal
		s.isCartOpen = false
		s.selection = entity.SelectionFor(s.orderType, s.selectedBranch != nil)

		return true
	})
}

func (s *orderStoreService) SetOrderType(ctx context.Context, orderType entity.OrderType) {
	if !orderType.Valid() {
		s.logger.Warn("Ignoring unknown order type", "orderType", string(orderType))

		return
	}

	s.mutate(ctx, true, func() bool {
		s.orderType = orderType
		s.selection = s.selection.Next(entity.EventForOrderType(orderType), s.selectedBranch != nil)

		return true
	})
}

func (s *orderStoreService) SetSelectedBranch(ctx context.Context, branch *entity.Branch) {
	s.mutate(ctx, true, func() bool {
		s.selectedBranch = branch.Clone()
		s.cart = []entity.CartItem{}
		if branch != nil {
			s.selection = s.selection.Next(entity.EventSelectBranch, true)
		} else {
			s.selection = s.selection.Next(entity.EventClearBranch, false)
		}

		return true
	})
}

func (s *orderStoreService) ChooseDelivery(ctx context.Context) {
	s.mutate(ctx, true, func() bool {
		s.orderType = entity.OrderTypeDelivery
		s.selectedBranch = nil
		s.cart = []entity.CartItem{}
		s.selection = s.selection.Next(entity.EventChooseDelivery, false)

		return true
	})
}

func (s *orderStoreService) ChoosePickup(ctx context.Context) {
	s.mutate(ctx, true, func() bool {
		s.orderType = entity.OrderTypePickup
		s.selection = s.selection.Next(entity.EventChoosePickup, s.selectedBranch != nil)

		return true
	})
}

func (s *orderStoreService) StartOver(ctx context.Context) {
	s.mutate(ctx, true, func() bool {
		s.orderType = entity.OrderTypeNone
		s.selectedBranch = nil
		s.cart = []entity.CartItem{}
		s.selection = s.selection.Next(entity.EventChooseNone, false)

		return true
	})
}

func (s *orderStoreService) AddToCart(ctx context.Context, input usecase.CartItemInput) {
	if input.Quantity <= 0 || input.UnitPrice.IsNegative() {
		s.logger.Debug("Ignoring invalid cart addition",
			"productID", input.ProductID, "quantity", input.Quantity, "unitPrice", input.UnitPrice.String())

		return
	}

	var plan *entity.SubscriptionPlan
	if input.SubscriptionPlan != nil {
		copied := *input.SubscriptionPlan
		plan = &copied
	}
	candidate := entity.CartItem{
		ProductID:        input.ProductID,
		BranchID:         input.BranchID,
		Grind:            input.Grind,
		SubscriptionPlan: plan,
		Quantity:         input.Quantity,
		UnitPrice:        input.UnitPrice,
	}

	s.mutate(ctx, true, func() bool {
		key := candidate.MergeKey()
		for i := range s.cart {
			if s.cart[i].MergeKey() == key {
				s.cart[i].Quantity += candidate.Quantity

				return true
			}
		}

		candidate.ID = s.newID()
		s.cart = append(s.cart, candidate)

		return true
	})
}

func (s *orderStoreService) RemoveFromCart(ctx context.Context, itemID string) {
	s.mutate(ctx, true, func() bool {
		return s.removeLocked(itemID)
	})
}

func (s *orderStoreService) removeLocked(itemID string) bool {
	for i := range s.cart {
		if s.cart[i].ID == itemID {
			remaining := make([]entity.CartItem, 0, len(s.cart)-1)
			remaining = append(remaining, s.cart[:i]...)
			s.cart = append(remaining, s.cart[i+1:]...)

			return true
		}
	}

	return false
}

func (s *orderStoreService) UpdateCartItemQuantity(ctx context.Context, itemID string, quantity int) {
	s.mutate(ctx, true, func() bool {
		if quantity <= 0 {
			return s.removeLocked(itemID)
		}
		for i := range s.cart {
			if s.cart[i].ID == itemID {
				s.cart[i].Quantity = quantity

				return true
			}
		}

		return false
	})
}

func (s *orderStoreService) ClearCart(ctx context.Context) {
	s.mutate(ctx, true, func() bool {
		s.cart = []entity.CartItem{}

		return true
	})
}

func (s *orderStoreService) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cartTotal(s.cart)
}

func cartTotal(cart []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range cart {
		total = total.Add(cart[i].LineTotal())
	}

	return total
}

func (s *orderStoreService) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}

	return count
}

func (s *orderStoreService) CreateOrder(
	ctx context.Context,
	customerName, customerPhone string,
	pickupTime *string,
) (*entity.Order, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, domainerrors.ErrInvalidCheckout.WithDetails("customer name is required")
	}

	var created *entity.Order
	s.mutate(ctx, true, func() bool {
		order := entity.Order{
			ID:            s.newID(),
			OrderNumber:   s.uniqueOrderNumberLocked(),
			Items:         entity.CloneCart(s.cart),
			CustomerName:  customerName,
			CustomerPhone: customerPhone,
			Subtotal:      cartTotal(s.cart),
			Status:        entity.OrderStatusPlaced,
			CreatedAt:     s.now(),
		}
		order.Total = order.Subtotal
		if s.selectedBranch != nil {
			order.BranchID = s.selectedBranch.ID
		}
		if pickupTime != nil {
			slot := *pickupTime
			order.PickupTime = &slot
		}

		s.orders = append(s.orders, order)
		s.cart = []entity.CartItem{}
		created = order.Clone()

		return true
	})

	s.logger.Info("Order placed",
		"orderID", created.ID, "orderNumber", created.OrderNumber, "items", created.ItemCount(), "total", created.Total.StringFixed(2))

	return created, nil
}

func (s *orderStoreService) uniqueOrderNumberLocked() string {
	for {
		number := s.orderNumber()
		taken := false
		for i := range s.orders {
			if s.orders[i].OrderNumber == number {
				taken = true

				break
			}
		}
		if !taken {
			return number
		}
	}
}

func (s *orderStoreService) GetOrder(orderID string) (*entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return s.orders[i].Clone(), true
		}
	}

	return nil, false
}

func (s *orderStoreService) SetIsCartOpen(isOpen bool) {
	// Not part of the persisted record.
	s.mutate(context.Background(), false, func() bool {
		s.isCartOpen = isOpen

		return true
	})
}

func (s *orderStoreService) SetShowEntryModal(ctx context.Context, show bool) {
	s.mutate(ctx, true, func() bool {
		s.showEntryModal = show

		return true
	})
}

func (s *orderStoreService) OrderType() entity.OrderType {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orderType
}

func (s *orderStoreService) SelectedBranch() *entity.Branch {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selectedBranch.Clone()
}

func (s *orderStoreService) Selection() entity.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection
}

func (s *orderStoreService) Cart() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return entity.CloneCart(s.cart)
}

func (s *orderStoreService) Orders() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked().Orders
}

func (s *orderStoreService) IsCartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isCartOpen
}

func (s *orderStoreService) ShowEntryModal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.showEntryModal
}

func (s *orderStoreService) Snapshot() entity.StoreSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *orderStoreService) Subscribe(listener usecase.StoreListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, storeSubscriber{id: id, listener: listener})

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			for i := range s.subscribers {
				if s.subscribers[i].id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)

					break
				}
			}
		})
	}
}

func (s *orderStoreService) Flush(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persistLocked(ctx, s.snapshotLocked())
}

// mutate runs fn under the lock. When fn reports a change the new state is optionally
// persisted, then subscribers are notified after the lock is released.
func (s *orderStoreService) mutate(ctx context.Context, persist bool, fn func() bool) {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()

		return
	}

	snapshot := s.snapshotLocked()
	if persist {
		s.persistLocked(ctx, snapshot)
	}
	subscribers := make([]storeSubscriber, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subscribers {
		sub.listener(snapshot.Clone())
	}
}

// persistLocked writes the snapshot. Failures are logged and never surface to callers.
func (s *orderStoreService) persistLocked(ctx context.Context, snapshot entity.StoreSnapshot) {
	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		s.logger.Warn("Failed to encode store state", "key", s.key, "error", err)

		return
	}

	if err := s.stateRepo.Save(ctx, s.key, payload); err != nil {
		s.logger.Warn("Failed to persist store state", "key", s.key, "error", err)
	}
}

func (s *orderStoreService) snapshotLocked() entity.StoreSnapshot {
	return entity.StoreSnapshot{
		OrderType:      s.orderType,
		SelectedBranch: s.selectedBranch,
		Cart:           s.cart,
		Orders:         s.orders,
		ShowEntryModal: s.showEntryModal,
	}.Clone()
}
