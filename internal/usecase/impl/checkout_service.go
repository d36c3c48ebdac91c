package impl

import (
	"context"
	"log/slog"
	"slices"

	"coffissimo/config"
	"coffissimo/internal/domain/entity"
	domainerrors "coffissimo/internal/domain/errors"
	"coffissimo/internal/domain/repository"
	"coffissimo/internal/domain/service"
	"coffissimo/internal/errors"
	"coffissimo/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const centsPlaces = 2

type checkoutService struct {
	store    usecase.OrderStoreUsecase
	catalog  repository.CatalogRepository
	payment  service.PaymentService
	qrCodes  service.QRCodeService
	logger   *slog.Logger
	cfg      *config.CheckoutConfig
	taxRate  decimal.Decimal
	slots    []usecase.PickupSlot
	validate *validator.Validate
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(
	store usecase.OrderStoreUsecase,
	catalog repository.CatalogRepository,
	payment service.PaymentService,
	qrCodes service.QRCodeService,
	logger *slog.Logger,
	cfg *config.Config,
) (usecase.CheckoutUsecase, error) {
	if cfg.Checkout == nil {
		return nil, errors.New("checkout config is required")
	}

	slots, err := buildPickupSlots(cfg.Checkout)
	if err != nil {
		return nil, err
	}

	validate, err := newCheckoutValidator(cfg.Checkout, slots)
	if err != nil {
		return nil, err
	}

	return &checkoutService{
		store:    store,
		catalog:  catalog,
		payment:  payment,
		qrCodes:  qrCodes,
		logger:   logger,
		cfg:      cfg.Checkout,
		taxRate:  decimal.NewFromFloat(cfg.Checkout.TaxRate),
		slots:    slots,
		validate: validate,
	}, nil
}

func (srv *checkoutService) PickupSlots() []usecase.PickupSlot {
	return slices.Clone(srv.slots)
}

// Checkout runs the checkout page guards in order: form, cart, branch, payment. The store is only
// touched once the payment has settled.
func (srv *checkoutService) Checkout(ctx context.Context, form usecase.CheckoutForm) (*usecase.Receipt, error) {
	if err := srv.validate.Struct(form); err != nil {
		return nil, domainerrors.ErrInvalidCheckout.WithDetails(describeValidationErrors(err, srv.cfg))
	}

	if len(srv.store.Cart()) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	branch := srv.store.SelectedBranch()
	if branch == nil {
		return nil, domainerrors.ErrBranchNotSelected
	}
	if !branch.IsOpen {
		return nil, domainerrors.ErrBranchClosed.WithDetails(branch.Name)
	}

	amount := srv.withTax(srv.store.CartTotal())
	if err := srv.payment.Authorize(ctx, amount); err != nil {
		return nil, err
	}

	var pickupTime *string
	if form.PickupTime != "" {
		pickupTime = &form.PickupTime
	}

	order, err := srv.store.CreateOrder(ctx, form.CustomerName, form.CustomerPhone, pickupTime)
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Checkout complete",
		"orderNumber", order.OrderNumber, "branchID", order.BranchID, "charged", amount.StringFixed(centsPlaces))

	return srv.buildReceipt(order), nil
}

func (srv *checkoutService) Receipt(orderID string) (*usecase.Receipt, error) {
	order, ok := srv.store.GetOrder(orderID)
	if !ok {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(orderID)
	}

	return srv.buildReceipt(order), nil
}

func (srv *checkoutService) buildReceipt(order *entity.Order) *usecase.Receipt {
	receipt := &usecase.Receipt{
		Order:    *order,
		Lines:    make([]usecase.ReceiptLine, 0, len(order.Items)),
		Subtotal: order.Subtotal.Round(centsPlaces),
		Tax:      order.Subtotal.Mul(srv.taxRate).Round(centsPlaces),
		Total:    srv.withTax(order.Total),
	}

	if order.BranchID != "" {
		if branch, ok := srv.catalog.FindBranch(order.BranchID); ok {
			receipt.Branch = branch
		}
	}

	for _, item := range order.Items {
		line := usecase.ReceiptLine{
			Item:        item,
			ProductName: item.ProductID,
			GrindName:   string(item.Grind),
			LineTotal:   item.LineTotal().Round(centsPlaces),
		}
		if product, ok := srv.catalog.FindProduct(item.ProductID); ok {
			line.ProductName = product.Name
		}
		if grind, ok := srv.catalog.FindGrindOption(item.Grind); ok {
			line.GrindName = grind.Name
		}
		receipt.Lines = append(receipt.Lines, line)
	}

	return receipt
}

func (srv *checkoutService) withTax(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(1).Add(srv.taxRate)).Round(centsPlaces)
}

func (srv *checkoutService) OrderHistory() []entity.Order {
	orders := srv.store.Orders()
	// orders placed within the same instant stay latest first
	slices.Reverse(orders)
	slices.SortStableFunc(orders, func(a, b entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return orders
}

func (srv *checkoutService) PickupQRCode(orderID string) ([]byte, error) {
	order, ok := srv.store.GetOrder(orderID)
	if !ok {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(orderID)
	}

	png, err := srv.qrCodes.GeneratePickupQR(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pickup QR code")
	}

	return png, nil
}
