package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"coffissimo/internal/domain/entity"
	domainerrors "coffissimo/internal/domain/errors"
	"coffissimo/internal/domain/repository"
	"coffissimo/internal/usecase"

	"github.com/paulmach/orb/geo"
	"github.com/shopspring/decimal"
)

const metersPerKm = 1000

type storefrontService struct {
	catalog repository.CatalogRepository
	store   usecase.OrderStoreUsecase
	logger  *slog.Logger
}

// NewStorefrontService creates a new storefront service instance
func NewStorefrontService(
	catalog repository.CatalogRepository,
	store usecase.OrderStoreUsecase,
	logger *slog.Logger,
) usecase.StorefrontUsecase {
	return &storefrontService{
		catalog: catalog,
		store:   store,
		logger:  logger,
	}
}

func (srv *storefrontService) ListBranches() []entity.Branch {
	return srv.catalog.Branches()
}

func (srv *storefrontService) OpenBranches() []entity.Branch {
	open := []entity.Branch{}
	for _, branch := range srv.catalog.Branches() {
		if branch.IsOpen {
			open = append(open, branch)
		}
	}

	return open
}

// NearestBranches skips branches without coordinates. Ties keep catalog order.
func (srv *storefrontService) NearestBranches(lat, lng float64) []usecase.BranchDistance {
	origin := entity.GeoPoint{Lat: lat, Lng: lng}.Point()

	nearest := []usecase.BranchDistance{}
	for _, branch := range srv.catalog.Branches() {
		if branch.Location == nil {
			continue
		}
		meters := geo.DistanceHaversine(origin, branch.Location.Point())
		nearest = append(nearest, usecase.BranchDistance{Branch: branch, DistanceKm: meters / metersPerKm})
	}

	slices.SortStableFunc(nearest, func(a, b usecase.BranchDistance) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return nearest
}

func (srv *storefrontService) SelectPickupBranch(ctx context.Context, branchID string) (*entity.Branch, error) {
	branch, ok := srv.catalog.FindBranch(branchID)
	if !ok {
		return nil, domainerrors.ErrBranchNotFound.WithDetails(branchID)
	}

	srv.store.SetSelectedBranch(ctx, branch)
	srv.store.SetOrderType(ctx, entity.OrderTypePickup)
	srv.logger.Debug("Pickup branch selected", "branchID", branch.ID)

	return branch, nil
}

func (srv *storefrontService) BrowseProducts(filter usecase.ProductFilter) []usecase.ProductListing {
	branch := srv.store.SelectedBranch()

	prices := map[string]entity.BranchProduct{}
	if branch != nil {
		for _, bp := range srv.catalog.BranchProducts(branch.ID) {
			prices[bp.ProductID] = bp
		}
	}

	listings := []usecase.ProductListing{}
	for _, product := range srv.catalog.Products() {
		if !matchesFilter(&product, filter) {
			continue
		}

		listing := usecase.ProductListing{Product: product}
		if bp, ok := prices[product.ID]; ok {
			listing.BranchProduct = &bp
		}
		listings = append(listings, listing)
	}

	sortListings(listings, filter.Sort, branch != nil)

	return listings
}

func matchesFilter(product *entity.Product, filter usecase.ProductFilter) bool {
	if filter.Category != "" && product.Category != filter.Category {
		return false
	}
	if filter.Roast != "" && product.RoastLevel != filter.Roast {
		return false
	}
	if len(filter.TastingNotes) > 0 && !slices.ContainsFunc(filter.TastingNotes, func(note string) bool {
		return slices.Contains(product.TastingNotes, note)
	}) {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(filter.Search))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Description), query) ||
		strings.Contains(strings.ToLower(product.Origin), query) ||
		slices.ContainsFunc(product.TastingNotes, func(note string) bool {
			return strings.Contains(strings.ToLower(note), query)
		})
}

// sortListings applies the shop ordering. Price sorts need a branch and treat a missing price as zero;
// without a branch they, like unknown sorts, fall back to featured.
func sortListings(listings []usecase.ProductListing, sortBy usecase.ProductSort, branchSelected bool) {
	priceOf := func(l usecase.ProductListing) decimal.Decimal {
		if l.BranchProduct == nil {
			return decimal.Zero
		}

		return l.BranchProduct.Price
	}

	switch {
	case sortBy == usecase.SortPriceLow && branchSelected:
		slices.SortStableFunc(listings, func(a, b usecase.ProductListing) int {
			return priceOf(a).Cmp(priceOf(b))
		})
	case sortBy == usecase.SortPriceHigh && branchSelected:
		slices.SortStableFunc(listings, func(a, b usecase.ProductListing) int {
			return priceOf(b).Cmp(priceOf(a))
		})
	case sortBy == usecase.SortName:
		slices.SortStableFunc(listings, func(a, b usecase.ProductListing) int {
			return cmp.Compare(strings.ToLower(a.Product.Name), strings.ToLower(b.Product.Name))
		})
	default:
		featured := func(l usecase.ProductListing) int {
			if l.BranchProduct != nil && l.BranchProduct.Featured {
				return 0
			}

			return 1
		}
		slices.SortStableFunc(listings, func(a, b usecase.ProductListing) int {
			return cmp.Compare(featured(a), featured(b))
		})
	}
}

func (srv *storefrontService) TastingNotes() []string {
	seen := map[string]bool{}
	notes := []string{}
	for _, product := range srv.catalog.Products() {
		for _, note := range product.TastingNotes {
			if !seen[note] {
				seen[note] = true
				notes = append(notes, note)
			}
		}
	}
	slices.Sort(notes)

	return notes
}

func (srv *storefrontService) ProductDetail(productID string) (*usecase.ProductListing, error) {
	product, ok := srv.catalog.FindProduct(productID)
	if !ok {
		return nil, domainerrors.ErrProductNotFound.WithDetails(productID)
	}

	listing := &usecase.ProductListing{Product: *product}
	if branch := srv.store.SelectedBranch(); branch != nil {
		if bp, ok := srv.catalog.FindBranchProduct(branch.ID, productID); ok {
			listing.BranchProduct = bp
		}
	}

	return listing, nil
}

func (srv *storefrontService) AddProductToCart(ctx context.Context, input usecase.AddProductInput) (*entity.CartItem, error) {
	if srv.store.OrderType() != entity.OrderTypePickup {
		return nil, domainerrors.ErrPickupNotSelected
	}
	branch := srv.store.SelectedBranch()
	if branch == nil {
		return nil, domainerrors.ErrBranchNotSelected
	}
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, ok := srv.catalog.FindProduct(input.ProductID)
	if !ok {
		return nil, domainerrors.ErrProductNotFound.WithDetails(input.ProductID)
	}

	price, ok := srv.catalog.FindBranchProduct(branch.ID, product.ID)
	if !ok || price.Availability == entity.OutOfStock {
		return nil, domainerrors.ErrProductUnavailable.WithDetails(product.Name + " at " + branch.Name)
	}

	grind := input.Grind
	if grind == "" && len(product.GrindOptions) > 0 {
		grind = product.GrindOptions[0]
	}
	if !product.OffersGrind(grind) {
		return nil, domainerrors.ErrGrindNotOffered.WithDetails(string(grind))
	}

	var plan *entity.SubscriptionPlan
	if input.Frequency != "" {
		if !product.IsSubscribable {
			return nil, domainerrors.ErrNotSubscribable.WithDetails(product.Name)
		}
		option, ok := srv.catalog.FindSubscriptionOption(input.Frequency)
		if !ok {
			return nil, domainerrors.ErrUnknownPlan.WithDetails(string(input.Frequency))
		}
		plan = option.Plan()
	}

	item := usecase.CartItemInput{
		ProductID:        product.ID,
		BranchID:         branch.ID,
		Grind:            grind,
		SubscriptionPlan: plan,
		Quantity:         input.Quantity,
		UnitPrice:        price.Price,
	}
	srv.store.AddToCart(ctx, item)

	key := (&entity.CartItem{
		ProductID:        item.ProductID,
		BranchID:         item.BranchID,
		Grind:            item.Grind,
		SubscriptionPlan: item.SubscriptionPlan,
	}).MergeKey()
	for _, row := range srv.store.Cart() {
		if row.MergeKey() == key {
			return &row, nil
		}
	}

	return nil, domainerrors.ErrInternalError.WithDetails("added item missing from cart")
}
