package usecase

import (
	"context"

	"coffissimo/internal/domain/entity"
)

// ProductSort orders the shop listing.
type ProductSort string

const (
	SortFeatured  ProductSort = "featured"
	SortPriceLow  ProductSort = "price_low"
	SortPriceHigh ProductSort = "price_high"
	SortName      ProductSort = "name"
)

// ProductFilter narrows the shop listing. Zero values mean "all".
type ProductFilter struct {
	Category     entity.ProductCategory
	Roast        entity.RoastLevel
	TastingNotes []string // matches products carrying any of the notes
	Search       string   // case-insensitive over name, description, notes and origin
	Sort         ProductSort
}

// ProductListing is a product with the selected branch's price row, when there is one.
type ProductListing struct {
	Product       entity.Product
	BranchProduct *entity.BranchProduct
}

// BranchDistance is a branch with its great-circle distance from a point.
type BranchDistance struct {
	Branch     entity.Branch
	DistanceKm float64
}

// AddProductInput is what the shop sends when a customer adds a product.
// An empty grind means the product's first grind option; an empty frequency means a one-time purchase.
type AddProductInput struct {
	ProductID string
	Grind     entity.GrindType
	Quantity  int
	Frequency entity.SubscriptionFrequency
}

// StorefrontUsecase drives branch selection and the shop on top of the order store.
type StorefrontUsecase interface {
	// ListBranches returns every branch in catalog order
	ListBranches() []entity.Branch

	// OpenBranches returns the branches currently accepting pickup orders
	OpenBranches() []entity.Branch

	// NearestBranches orders the located branches by distance from lat/lng
	NearestBranches(lat, lng float64) []BranchDistance

	// SelectPickupBranch selects the branch and switches to pickup
	SelectPickupBranch(ctx context.Context, branchID string) (*entity.Branch, error)

	// BrowseProducts filters and sorts the catalog for the selected branch
	BrowseProducts(filter ProductFilter) []ProductListing

	// TastingNotes lists every tasting note in the catalog, sorted
	TastingNotes() []string

	// ProductDetail returns a product with the selected branch's price row
	ProductDetail(productID string) (*ProductListing, error)

	// AddProductToCart prices the product at the selected branch and adds it to the cart
	AddProductToCart(ctx context.Context, input AddProductInput) (*entity.CartItem, error)
}
