package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"coffissimo/config"
	"coffissimo/internal/domain/entity"
	domainerrors "coffissimo/internal/domain/errors"
	"coffissimo/internal/domain/repository"
	"coffissimo/internal/infra/persistence/memory"
	"coffissimo/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const testStorageKey = "coffee-shop-storage"

// orderStoreFixtures holds all test dependencies for order store tests.
type orderStoreFixtures struct {
	store usecase.OrderStoreUsecase
	repo  repository.StateRepository
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func createTestOrderStore(t *testing.T) orderStoreFixtures {
	t.Helper()

	repo := memory.NewStateRepository()

	return orderStoreFixtures{
		store: NewOrderStoreService(repo, discardLogger(), testConfig()),
		repo:  repo,
	}
}

func (fx orderStoreFixtures) reopen() usecase.OrderStoreUsecase {
	store := NewOrderStoreService(fx.repo, discardLogger(), testConfig())
	store.Hydrate(context.Background())

	return store
}

func sydneyBranch() *entity.Branch {
	return &entity.Branch{
		ID:     "sydney-cbd",
		Name:   "Sydney CBD",
		Area:   "CBD",
		IsOpen: true,
		Hours:  entity.BranchHours{Open: "06:30", Close: "18:00", Days: "Mon-Fri"},
	}
}

func beanInput(grind entity.GrindType, qty int, price string) usecase.CartItemInput {
	return usecase.CartItemInput{
		ProductID: "house-blend",
		BranchID:  "sydney-cbd",
		Grind:     grind,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestOrderStore_Defaults(t *testing.T) {
	fx := createTestOrderStore(t)

	assert.Equal(t, entity.OrderTypeNone, fx.store.OrderType())
	assert.Nil(t, fx.store.SelectedBranch())
	assert.Empty(t, fx.store.Cart())
	assert.Empty(t, fx.store.Orders())
	assert.False(t, fx.store.IsCartOpen())
	assert.True(t, fx.store.ShowEntryModal())
	assert.Equal(t, entity.SelectionUnset, fx.store.Selection())
	assert.True(t, fx.store.CartTotal().IsZero())
	assert.Equal(t, 0, fx.store.CartItemCount())
}

func TestOrderStore_PickupScenario(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.SetSelectedBranch(ctx, sydneyBranch())
	fx.store.SetOrderType(ctx, entity.OrderTypePickup)
	assert.Equal(t, entity.SelectionPickupBranchSelected, fx.store.Selection())

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 2, "10"))
	assert.Equal(t, "20.00", fx.store.CartTotal().StringFixed(2))
	assert.Equal(t, 2, fx.store.CartItemCount())

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))
	cart := fx.store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, "30.00", fx.store.CartTotal().StringFixed(2))

	fx.store.AddToCart(ctx, beanInput(entity.GrindEspresso, 1, "10"))
	assert.Len(t, fx.store.Cart(), 2)
	assert.Equal(t, "40.00", fx.store.CartTotal().StringFixed(2))
	assert.Equal(t, 4, fx.store.CartItemCount())

	order, err := fx.store.CreateOrder(ctx, "Jane Doe", "0400000000", nil)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Len(t, order.Items, 2)
	assert.Equal(t, "40.00", order.Subtotal.StringFixed(2))
	assert.True(t, order.Total.Equal(order.Subtotal))
	assert.Equal(t, entity.OrderStatusPlaced, order.Status)
	assert.Equal(t, "sydney-cbd", order.BranchID)
	assert.Equal(t, "Jane Doe", order.CustomerName)
	assert.Equal(t, "0400000000", order.CustomerPhone)
	assert.Nil(t, order.PickupTime)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "CF-"))
	assert.NotEqual(t, order.ID, order.OrderNumber)
	assert.Equal(t, time.UTC, order.CreatedAt.Location())

	assert.Empty(t, fx.store.Cart())
	assert.Len(t, fx.store.Orders(), 1)

	found, ok := fx.store.GetOrder(order.ID)
	require.True(t, ok)
	assert.Equal(t, order.OrderNumber, found.OrderNumber)
}

func TestOrderStore_SubscriptionMergeKey(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	monthly := &entity.SubscriptionPlan{Frequency: entity.FrequencyMonthly, Discount: decimal.NewFromInt(10)}
	weekly := &entity.SubscriptionPlan{Frequency: entity.FrequencyWeekly, Discount: decimal.NewFromInt(15)}

	oneOff := beanInput(entity.GrindV60, 1, "20")
	subMonthly := beanInput(entity.GrindV60, 1, "20")
	subMonthly.SubscriptionPlan = monthly
	subWeekly := beanInput(entity.GrindV60, 1, "20")
	subWeekly.SubscriptionPlan = weekly

	fx.store.AddToCart(ctx, oneOff)
	fx.store.AddToCart(ctx, subMonthly)
	fx.store.AddToCart(ctx, subWeekly)
	fx.store.AddToCart(ctx, subMonthly)

	cart := fx.store.Cart()
	require.Len(t, cart, 3)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 2, cart[1].Quantity)
	assert.Equal(t, 1, cart[2].Quantity)

	// 20 + 2*20*0.9 + 20*0.85
	assert.Equal(t, "73.00", fx.store.CartTotal().StringFixed(2))

	// Mutating the caller's plan must not reach the stored row.
	monthly.Discount = decimal.NewFromInt(90)
	assert.Equal(t, "73.00", fx.store.CartTotal().StringFixed(2))
}

func TestOrderStore_AddToCartRejectsInvalidInput(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 0, "10"))
	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, -3, "10"))
	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "-1"))

	assert.Empty(t, fx.store.Cart())
}

func TestOrderStore_RowIDsAreUnique(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	grinds := []entity.GrindType{
		entity.GrindWholeBean, entity.GrindEspresso, entity.GrindFrenchPress, entity.GrindV60, entity.GrindAeropress,
	}
	for _, grind := range grinds {
		fx.store.AddToCart(ctx, beanInput(grind, 1, "12.5"))
	}

	seen := map[string]bool{}
	for _, item := range fx.store.Cart() {
		assert.NotEmpty(t, item.ID)
		assert.False(t, seen[item.ID], "duplicate row id %s", item.ID)
		seen[item.ID] = true
	}
	assert.Len(t, seen, len(grinds))
}

func TestOrderStore_UpdateAndRemove(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))
	fx.store.AddToCart(ctx, beanInput(entity.GrindEspresso, 1, "10"))
	cart := fx.store.Cart()
	require.Len(t, cart, 2)

	fx.store.UpdateCartItemQuantity(ctx, cart[0].ID, 5)
	assert.Equal(t, 5, fx.store.Cart()[0].Quantity)

	fx.store.UpdateCartItemQuantity(ctx, "missing", 3)
	fx.store.RemoveFromCart(ctx, "missing")
	assert.Len(t, fx.store.Cart(), 2)

	fx.store.UpdateCartItemQuantity(ctx, cart[0].ID, 0)
	remaining := fx.store.Cart()
	require.Len(t, remaining, 1)
	assert.Equal(t, cart[1].ID, remaining[0].ID)

	fx.store.AddToCart(ctx, beanInput(entity.GrindV60, 1, "10"))
	fx.store.UpdateCartItemQuantity(ctx, cart[1].ID, -2)
	require.Len(t, fx.store.Cart(), 1)

	fx.store.RemoveFromCart(ctx, fx.store.Cart()[0].ID)
	assert.Empty(t, fx.store.Cart())

	fx.store.AddToCart(ctx, beanInput(entity.GrindV60, 1, "10"))
	fx.store.ClearCart(ctx)
	assert.Empty(t, fx.store.Cart())
}

func TestOrderStore_SetSelectedBranchAlwaysClearsCart(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.SetSelectedBranch(ctx, sydneyBranch())
	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))

	// Re-selecting the same branch still empties the cart.
	fx.store.SetSelectedBranch(ctx, sydneyBranch())
	assert.Empty(t, fx.store.Cart())

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))
	fx.store.SetSelectedBranch(ctx, nil)
	assert.Empty(t, fx.store.Cart())
	assert.Nil(t, fx.store.SelectedBranch())
}

func TestOrderStore_SetSelectedBranchStoresCopy(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	branch := sydneyBranch()
	fx.store.SetSelectedBranch(ctx, branch)
	branch.Name = "changed"

	selected := fx.store.SelectedBranch()
	require.NotNil(t, selected)
	assert.Equal(t, "Sydney CBD", selected.Name)

	selected.Name = "changed again"
	assert.Equal(t, "Sydney CBD", fx.store.SelectedBranch().Name)
}

func TestOrderStore_SetOrderTypeLeavesBranchAndCart(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.SetSelectedBranch(ctx, sydneyBranch())
	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))

	fx.store.SetOrderType(ctx, entity.OrderTypeDelivery)
	assert.Equal(t, entity.OrderTypeDelivery, fx.store.OrderType())
	assert.Equal(t, entity.SelectionDeliverySelected, fx.store.Selection())
	assert.NotNil(t, fx.store.SelectedBranch())
	assert.Len(t, fx.store.Cart(), 1)

	fx.store.SetOrderType(ctx, entity.OrderType("drone"))
	assert.Equal(t, entity.OrderTypeDelivery, fx.store.OrderType())
}

func TestOrderStore_ChooseDeliveryClearsBranchAndCart(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.ChoosePickup(ctx)
	assert.Equal(t, entity.SelectionPickupAwaitingBranch, fx.store.Selection())

	fx.store.SetSelectedBranch(ctx, sydneyBranch())
	assert.Equal(t, entity.SelectionPickupBranchSelected, fx.store.Selection())
	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))

	fx.store.ChooseDelivery(ctx)
	assert.Equal(t, entity.OrderTypeDelivery, fx.store.OrderType())
	assert.Equal(t, entity.SelectionDeliverySelected, fx.store.Selection())
	assert.Nil(t, fx.store.SelectedBranch())
	assert.Empty(t, fx.store.Cart())
}

func TestOrderStore_ChoosePickupKeepsBranch(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.SetSelectedBranch(ctx, sydneyBranch())
	fx.store.SetOrderType(ctx, entity.OrderTypeDelivery)
	fx.store.ChoosePickup(ctx)

	assert.Equal(t, entity.OrderTypePickup, fx.store.OrderType())
	assert.Equal(t, entity.SelectionPickupBranchSelected, fx.store.Selection())
	require.NotNil(t, fx.store.SelectedBranch())
}

func TestOrderStore_StartOver(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.ChoosePickup(ctx)
	fx.store.SetSelectedBranch(ctx, sydneyBranch())
	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))
	_, err := fx.store.CreateOrder(ctx, "Jane Doe", "0400000000", nil)
	require.NoError(t, err)
	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))

	fx.store.StartOver(ctx)

	assert.Equal(t, entity.OrderTypeNone, fx.store.OrderType())
	assert.Equal(t, entity.SelectionUnset, fx.store.Selection())
	assert.Nil(t, fx.store.SelectedBranch())
	assert.Empty(t, fx.store.Cart())
	assert.Len(t, fx.store.Orders(), 1, "history survives starting over")
}

func TestOrderStore_CreateOrderRequiresName(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))

	for _, name := range []string{"", "   "} {
		order, err := fx.store.CreateOrder(ctx, name, "0400000000", nil)
		require.ErrorIs(t, err, domainerrors.ErrInvalidCheckout)
		assert.Nil(t, order)
	}

	assert.Len(t, fx.store.Cart(), 1)
	assert.Empty(t, fx.store.Orders())
}

func TestOrderStore_CreateOrderCopiesPickupTime(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))
	slot := "08:30"
	order, err := fx.store.CreateOrder(ctx, "Jane Doe", "0400000000", &slot)
	require.NoError(t, err)
	slot = "09:00"

	require.NotNil(t, order.PickupTime)
	assert.Equal(t, "08:30", *order.PickupTime)

	stored, ok := fx.store.GetOrder(order.ID)
	require.True(t, ok)
	assert.Equal(t, "08:30", *stored.PickupTime)
	assert.Empty(t, stored.BranchID)
}

func TestOrderStore_OrderNumbersNeverCollide(t *testing.T) {
	fx := createTestOrderStore(t)
	store := fx.store.(*orderStoreService)
	ctx := context.Background()

	numbers := []string{"CF-AAAAAA", "CF-AAAAAA", "CF-BBBBBB"}
	store.orderNumber = func() string {
		next := numbers[0]
		numbers = numbers[1:]

		return next
	}

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))
	first, err := fx.store.CreateOrder(ctx, "Jane Doe", "0400000000", nil)
	require.NoError(t, err)

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))
	second, err := fx.store.CreateOrder(ctx, "Jane Doe", "0400000000", nil)
	require.NoError(t, err)

	assert.Equal(t, "CF-AAAAAA", first.OrderNumber)
	assert.Equal(t, "CF-BBBBBB", second.OrderNumber)
}

func TestGenerateOrderNumber(t *testing.T) {
	for range 20 {
		number := generateOrderNumber()
		require.Len(t, number, 9)
		assert.True(t, strings.HasPrefix(number, "CF-"))
		assert.Equal(t, strings.ToUpper(number), number)
	}
}

func TestOrderStore_OrdersAreValueCopies(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))
	order, err := fx.store.CreateOrder(ctx, "Jane Doe", "0400000000", nil)
	require.NoError(t, err)

	order.Items[0].Quantity = 99
	history := fx.store.Orders()
	history[0].Items[0].Quantity = 42

	stored, ok := fx.store.GetOrder(order.ID)
	require.True(t, ok)
	assert.Equal(t, 1, stored.Items[0].Quantity)
	assert.Equal(t, 1, stored.ItemCount())

	_, ok = fx.store.GetOrder("missing")
	assert.False(t, ok)
}

// assertSnapshotsEqual compares snapshots by value. Decimals keep their value but not their
// exponent through JSON, so both sides are compared in their encoded form.
func assertSnapshotsEqual(t *testing.T, want, got entity.StoreSnapshot) {
	t.Helper()

	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))

	require.Len(t, got.Cart, len(want.Cart))
	for i := range want.Cart {
		assert.True(t, want.Cart[i].UnitPrice.Equal(got.Cart[i].UnitPrice), "cart[%d] unit price", i)
	}
	require.Len(t, got.Orders, len(want.Orders))
	for i := range want.Orders {
		assert.True(t, want.Orders[i].Total.Equal(got.Orders[i].Total), "orders[%d] total", i)
		assert.True(t, want.Orders[i].CreatedAt.Equal(got.Orders[i].CreatedAt), "orders[%d] createdAt", i)
	}
}

func TestOrderStore_PersistsAcrossInstances(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	monthly := beanInput(entity.GrindWholeBean, 2, "18.50")
	monthly.SubscriptionPlan = &entity.SubscriptionPlan{Frequency: entity.FrequencyMonthly, Discount: decimal.NewFromInt(10)}

	fx.store.ChoosePickup(ctx)
	fx.store.SetSelectedBranch(ctx, sydneyBranch())
	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))
	order, err := fx.store.CreateOrder(ctx, "Jane Doe", "0400000000", nil)
	require.NoError(t, err)
	fx.store.AddToCart(ctx, monthly)
	fx.store.SetShowEntryModal(ctx, false)
	fx.store.SetIsCartOpen(true)
	before := fx.store.Snapshot()

	restored := fx.reopen()
	assertSnapshotsEqual(t, before, restored.Snapshot())

	assert.Equal(t, entity.OrderTypePickup, restored.OrderType())
	assert.Equal(t, entity.SelectionPickupBranchSelected, restored.Selection())
	require.NotNil(t, restored.SelectedBranch())
	assert.Equal(t, "sydney-cbd", restored.SelectedBranch().ID)
	assert.False(t, restored.ShowEntryModal())
	assert.False(t, restored.IsCartOpen(), "cart panel state is not persisted")

	cart := restored.Cart()
	require.Len(t, cart, 1)
	require.NotNil(t, cart[0].SubscriptionPlan)
	assert.Equal(t, entity.FrequencyMonthly, cart[0].SubscriptionPlan.Frequency)
	assert.Equal(t, "33.30", restored.CartTotal().StringFixed(2))

	stored, ok := restored.GetOrder(order.ID)
	require.True(t, ok)
	assert.Equal(t, order.OrderNumber, stored.OrderNumber)
	assert.True(t, order.CreatedAt.Equal(stored.CreatedAt))
	assert.Equal(t, "10.00", stored.Total.StringFixed(2))
}

func TestOrderStore_PersistedEnvelope(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.SetShowEntryModal(ctx, false)

	payload, err := fx.repo.Load(ctx, testStorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"state": {
			"orderType": null,
			"selectedBranch": null,
			"cart": [],
			"orders": [],
			"showEntryModal": false
		},
		"version": 0
	}`, string(payload))
}

func TestOrderStore_HydrateWithoutRecordUsesDefaults(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	fx.store.ChooseDelivery(ctx)
	require.NoError(t, fx.repo.Delete(ctx, testStorageKey))

	fx.store.Hydrate(ctx)
	assert.Equal(t, entity.DefaultSnapshot(), fx.store.Snapshot())
}

func TestOrderStore_HydrateMalformedFieldsFallBack(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	payload := `{
		"state": {
			"orderType": "teleport",
			"selectedBranch": {"id": "perth-city", "name": "Perth City", "isOpen": true},
			"cart": "not-a-list",
			"orders": [{"id": "o1", "orderNumber": "CF-000001", "items": null, "subtotal": "10", "total": "10", "status": "placed"}],
			"showEntryModal": false
		},
		"version": 0
	}`
	require.NoError(t, fx.repo.Save(ctx, testStorageKey, []byte(payload)))

	fx.store.Hydrate(ctx)

	assert.Equal(t, entity.OrderTypeNone, fx.store.OrderType())
	require.NotNil(t, fx.store.SelectedBranch())
	assert.Equal(t, "perth-city", fx.store.SelectedBranch().ID)
	assert.Empty(t, fx.store.Cart())
	assert.NotNil(t, fx.store.Cart())
	assert.False(t, fx.store.ShowEntryModal())

	orders := fx.store.Orders()
	require.Len(t, orders, 1)
	assert.NotNil(t, orders[0].Items)
}

func TestOrderStore_HydrateGarbageUsesDefaults(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	require.NoError(t, fx.repo.Save(ctx, testStorageKey, []byte("{not json")))

	fx.store.Hydrate(ctx)
	assert.Equal(t, entity.DefaultSnapshot(), fx.store.Snapshot())
}

func TestOrderStore_SubscribersAreNotified(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	var seen []entity.StoreSnapshot
	unsubscribe := fx.store.Subscribe(func(snapshot entity.StoreSnapshot) {
		seen = append(seen, snapshot)
	})

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 1, "10"))
	fx.store.SetOrderType(ctx, entity.OrderTypeDelivery)
	require.Len(t, seen, 2)
	assert.Len(t, seen[0].Cart, 1)
	assert.Equal(t, entity.OrderTypeDelivery, seen[1].OrderType)

	// A no-op removal is not a change.
	fx.store.RemoveFromCart(ctx, "missing")
	assert.Len(t, seen, 2)

	unsubscribe()
	unsubscribe()
	fx.store.ClearCart(ctx)
	assert.Len(t, seen, 2)
}

func TestOrderStore_SubscriberMayReadStore(t *testing.T) {
	fx := createTestOrderStore(t)
	ctx := context.Background()

	var counts []int
	fx.store.Subscribe(func(entity.StoreSnapshot) {
		counts = append(counts, fx.store.CartItemCount())
	})

	fx.store.AddToCart(ctx, beanInput(entity.GrindWholeBean, 2, "10"))
	assert.Equal(t, []int{2}, counts)
}

func TestRegisterOrderStoreLifecycle(t *testing.T) {
	repo := memory.NewStateRepository()
	ctx := context.Background()

	seed := NewOrderStoreService(repo, discardLogger(), testConfig())
	seed.ChooseDelivery(ctx)

	store := NewOrderStoreService(repo, discardLogger(), testConfig())
	lc := fxtest.NewLifecycle(t)
	RegisterOrderStoreLifecycle(lc, store)

	lc.RequireStart()
	assert.Equal(t, entity.OrderTypeDelivery, store.OrderType())

	require.NoError(t, repo.Delete(ctx, testStorageKey))
	lc.RequireStop()

	_, err := repo.Load(ctx, testStorageKey)
	assert.NoError(t, err, "stop flushes the current state")
}
