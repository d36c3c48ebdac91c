package impl

import (
	"context"
	"testing"
	"time"

	"coffissimo/internal/domain/entity"
	domainerrors "coffissimo/internal/domain/errors"
	"coffissimo/internal/errors"
	"coffissimo/internal/infra/catalog"
	"coffissimo/internal/infra/persistence/memory"
	mockService "coffissimo/internal/mocks/service"
	"coffissimo/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutFixtures holds all test dependencies for checkout tests.
type checkoutFixtures struct {
	service    usecase.CheckoutUsecase
	storefront usecase.StorefrontUsecase
	store      usecase.OrderStoreUsecase
	payment    *mockService.MockPaymentService
	qrCodes    *mockService.MockQRCodeService
}

func createTestCheckout(t *testing.T) checkoutFixtures {
	t.Helper()

	cfg := testConfig()
	logger := discardLogger()
	repo := catalog.Default()
	store := NewOrderStoreService(memory.NewStateRepository(), logger, cfg)
	payment := mockService.NewMockPaymentService(t)
	qrCodes := mockService.NewMockQRCodeService(t)

	service, err := NewCheckoutService(store, repo, payment, qrCodes, logger, cfg)
	require.NoError(t, err)

	return checkoutFixtures{
		service:    service,
		storefront: NewStorefrontService(repo, store, logger),
		store:      store,
		payment:    payment,
		qrCodes:    qrCodes,
	}
}

func validForm() usecase.CheckoutForm {
	return usecase.CheckoutForm{
		CustomerName:  "Jane Citizen",
		CustomerPhone: "+61 (2) 9876-5432",
		PickupTime:    "07:30",
	}
}

func amountOf(value string) interface{} {
	want := decimal.RequireFromString(value)

	return mock.MatchedBy(func(amount decimal.Decimal) bool { return amount.Equal(want) })
}

func (fx checkoutFixtures) fillCart(t *testing.T, branchID string) {
	t.Helper()
	ctx := context.Background()

	_, err := fx.storefront.SelectPickupBranch(ctx, branchID)
	require.NoError(t, err)
	_, err = fx.storefront.AddProductToCart(ctx, usecase.AddProductInput{
		ProductID: "house-blend",
		Grind:     entity.GrindEspresso,
		Quantity:  2,
	})
	require.NoError(t, err)
}

func TestCheckout_PlacesOrder(t *testing.T) {
	fx := createTestCheckout(t)
	ctx := context.Background()
	fx.fillCart(t, "sydney-cbd")

	fx.payment.EXPECT().Authorize(mock.Anything, amountOf("52.80")).Return(nil).Once()

	receipt, err := fx.service.Checkout(ctx, validForm())
	require.NoError(t, err)

	assert.Equal(t, "44.00", receipt.Subtotal.StringFixed(2))
	assert.Equal(t, "8.80", receipt.Tax.StringFixed(2))
	assert.Equal(t, "52.80", receipt.Total.StringFixed(2))
	require.NotNil(t, receipt.Branch)
	assert.Equal(t, "Sydney CBD", receipt.Branch.Name)

	require.Len(t, receipt.Lines, 1)
	assert.Equal(t, "House Blend", receipt.Lines[0].ProductName)
	assert.Equal(t, "Espresso", receipt.Lines[0].GrindName)
	assert.Equal(t, "44.00", receipt.Lines[0].LineTotal.StringFixed(2))

	assert.Equal(t, "Jane Citizen", receipt.Order.CustomerName)
	require.NotNil(t, receipt.Order.PickupTime)
	assert.Equal(t, "07:30", *receipt.Order.PickupTime)
	assert.Regexp(t, `^CF-[0-9A-F]{6}$`, receipt.Order.OrderNumber)

	assert.Empty(t, fx.store.Cart())
	require.Len(t, fx.store.Orders(), 1)
	assert.Equal(t, "sydney-cbd", fx.store.SelectedBranch().ID)
}

func TestCheckout_AsSoonAsPossible(t *testing.T) {
	fx := createTestCheckout(t)
	fx.fillCart(t, "melbourne-central")

	fx.payment.EXPECT().Authorize(mock.Anything, amountOf("50.40")).Return(nil).Once()

	form := validForm()
	form.PickupTime = ""
	receipt, err := fx.service.Checkout(context.Background(), form)
	require.NoError(t, err)

	assert.Nil(t, receipt.Order.PickupTime)
	assert.Equal(t, "melbourne-central", receipt.Order.BranchID)
}

func TestCheckout_SubscriptionDiscountFlowsIntoTotals(t *testing.T) {
	fx := createTestCheckout(t)
	ctx := context.Background()

	_, err := fx.storefront.SelectPickupBranch(ctx, "sydney-cbd")
	require.NoError(t, err)
	_, err = fx.storefront.AddProductToCart(ctx, usecase.AddProductInput{
		ProductID: "house-blend",
		Grind:     entity.GrindEspresso,
		Quantity:  2,
		Frequency: entity.FrequencyWeekly,
	})
	require.NoError(t, err)

	// 44 less 15% is 37.40, plus 20% tax
	fx.payment.EXPECT().Authorize(mock.Anything, amountOf("44.88")).Return(nil).Once()

	receipt, err := fx.service.Checkout(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, "37.40", receipt.Subtotal.StringFixed(2))
	assert.Equal(t, "7.48", receipt.Tax.StringFixed(2))
	assert.Equal(t, "44.88", receipt.Total.StringFixed(2))
}

func TestCheckout_InvalidForm(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(form *usecase.CheckoutForm)
		wantMsg string
	}{
		{
			name:    "name too short",
			mutate:  func(form *usecase.CheckoutForm) { form.CustomerName = " J " },
			wantMsg: "name must be at least 2 characters",
		},
		{
			name:    "phone too short",
			mutate:  func(form *usecase.CheckoutForm) { form.CustomerPhone = "0412" },
			wantMsg: "please enter a valid phone number",
		},
		{
			name:    "phone with letters",
			mutate:  func(form *usecase.CheckoutForm) { form.CustomerPhone = "0412 345 abc" },
			wantMsg: "please enter a valid phone number",
		},
		{
			name:    "pickup outside slots",
			mutate:  func(form *usecase.CheckoutForm) { form.PickupTime = "06:00" },
			wantMsg: `pickup time "06:00" is not an available slot`,
		},
		{
			name:    "pickup off the half hour",
			mutate:  func(form *usecase.CheckoutForm) { form.PickupTime = "07:15" },
			wantMsg: "is not an available slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckout(t)
			fx.fillCart(t, "sydney-cbd")

			form := validForm()
			tt.mutate(&form)

			receipt, err := fx.service.Checkout(context.Background(), form)
			require.Error(t, err)
			assert.Nil(t, receipt)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCheckout))
			assert.Contains(t, err.Error(), tt.wantMsg)

			assert.Len(t, fx.store.Cart(), 1)
			assert.Empty(t, fx.store.Orders())
		})
	}
}

func TestCheckout_Guards(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		fx := createTestCheckout(t)
		_, err := fx.storefront.SelectPickupBranch(context.Background(), "sydney-cbd")
		require.NoError(t, err)

		_, err = fx.service.Checkout(context.Background(), validForm())
		assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
	})

	t.Run("no branch", func(t *testing.T) {
		fx := createTestCheckout(t)
		fx.store.AddToCart(context.Background(), beanInput(entity.GrindEspresso, 1, "22"))

		_, err := fx.service.Checkout(context.Background(), validForm())
		assert.True(t, errors.Is(err, domainerrors.ErrBranchNotSelected))
	})

	t.Run("closed branch", func(t *testing.T) {
		fx := createTestCheckout(t)
		ctx := context.Background()
		_, err := fx.storefront.SelectPickupBranch(ctx, "brisbane-south")
		require.NoError(t, err)
		fx.store.AddToCart(ctx, beanInput(entity.GrindEspresso, 1, "22"))

		_, err = fx.service.Checkout(ctx, validForm())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrBranchClosed))
		assert.Contains(t, err.Error(), "Brisbane")
		assert.Len(t, fx.store.Cart(), 1)
	})
}

func TestCheckout_PaymentCancelledLeavesStoreUntouched(t *testing.T) {
	fx := createTestCheckout(t)
	fx.fillCart(t, "sydney-cbd")
	before := fx.store.Snapshot()

	fx.payment.EXPECT().Authorize(mock.Anything, mock.Anything).
		Return(domainerrors.ErrPaymentCancelled.WrapMessage(context.Canceled.Error())).Once()

	receipt, err := fx.service.Checkout(context.Background(), validForm())
	require.Error(t, err)
	assert.Nil(t, receipt)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentCancelled))
	assert.Equal(t, before, fx.store.Snapshot())
}

func TestCheckout_ReceiptLookup(t *testing.T) {
	fx := createTestCheckout(t)
	fx.fillCart(t, "perth-city")
	fx.payment.EXPECT().Authorize(mock.Anything, mock.Anything).Return(nil).Once()

	placed, err := fx.service.Checkout(context.Background(), validForm())
	require.NoError(t, err)

	receipt, err := fx.service.Receipt(placed.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.Order.OrderNumber, receipt.Order.OrderNumber)
	assert.Equal(t, "55.20", receipt.Total.StringFixed(2))
	assert.Equal(t, "Perth City", receipt.Branch.Name)

	_, err = fx.service.Receipt("missing")
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestCheckout_OrderHistoryNewestFirst(t *testing.T) {
	fx := createTestCheckout(t)
	ctx := context.Background()
	fx.payment.EXPECT().Authorize(mock.Anything, mock.Anything).Return(nil).Times(3)

	var numbers []string
	for range 3 {
		fx.fillCart(t, "sydney-cbd")
		receipt, err := fx.service.Checkout(ctx, validForm())
		require.NoError(t, err)
		numbers = append(numbers, receipt.Order.OrderNumber)
		time.Sleep(time.Millisecond)
	}

	history := fx.service.OrderHistory()
	require.Len(t, history, 3)
	assert.Equal(t, numbers[2], history[0].OrderNumber)
	assert.Equal(t, numbers[1], history[1].OrderNumber)
	assert.Equal(t, numbers[0], history[2].OrderNumber)

	// the store keeps insertion order
	assert.Equal(t, numbers[0], fx.store.Orders()[0].OrderNumber)
}

func TestCheckout_PickupQRCode(t *testing.T) {
	fx := createTestCheckout(t)
	fx.fillCart(t, "sydney-cbd")
	fx.payment.EXPECT().Authorize(mock.Anything, mock.Anything).Return(nil).Once()

	receipt, err := fx.service.Checkout(context.Background(), validForm())
	require.NoError(t, err)

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.qrCodes.EXPECT().
		GeneratePickupQR(mock.MatchedBy(func(order *entity.Order) bool { return order.ID == receipt.Order.ID })).
		Return(png, nil).Once()

	got, err := fx.service.PickupQRCode(receipt.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)

	fx.qrCodes.EXPECT().GeneratePickupQR(mock.Anything).Return(nil, errors.New("encoder failed")).Once()
	_, err = fx.service.PickupQRCode(receipt.Order.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render pickup QR code")

	_, err = fx.service.PickupQRCode("missing")
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestCheckout_PickupSlots(t *testing.T) {
	fx := createTestCheckout(t)

	slots := fx.service.PickupSlots()
	require.Len(t, slots, 26)
	assert.Equal(t, usecase.PickupSlot{Value: "07:00", Label: "7:00 AM"}, slots[0])
	assert.Equal(t, usecase.PickupSlot{Value: "12:00", Label: "12:00 PM"}, slots[10])
	assert.Equal(t, usecase.PickupSlot{Value: "19:30", Label: "7:30 PM"}, slots[25])

	slots[0].Value = "changed"
	assert.Equal(t, "07:00", fx.service.PickupSlots()[0].Value)
}

func TestNewCheckoutService_InvalidSlotConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Checkout.SlotStart = "7am"

	_, err := NewCheckoutService(nil, catalog.Default(), nil, nil, discardLogger(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid checkout.slotStart")
}
