package repository

import (
	"coffissimo/internal/domain/entity"
)

// CatalogRepository is the read-only reference catalog of branches, products and prices.
// Lookups return copies and report absence with a false flag.
type CatalogRepository interface {
	// Branches lists every branch in catalog order.
	Branches() []entity.Branch

	// FindBranch retrieves a branch by its ID.
	FindBranch(id string) (*entity.Branch, bool)

	// Products lists every product in catalog order.
	Products() []entity.Product

	// FindProduct retrieves a product by its ID.
	FindProduct(id string) (*entity.Product, bool)

	// BranchProducts lists the price rows of one branch.
	BranchProducts(branchID string) []entity.BranchProduct

	// FindBranchProduct retrieves the price row of a product at a branch.
	FindBranchProduct(branchID, productID string) (*entity.BranchProduct, bool)

	// GrindOptions lists the grind descriptors.
	GrindOptions() []entity.GrindOption

	// FindGrindOption retrieves the descriptor of a grind.
	FindGrindOption(grind entity.GrindType) (*entity.GrindOption, bool)

	// Categories lists the category descriptors.
	Categories() []entity.CategoryInfo

	// SubscriptionOptions lists the subscription plans on offer.
	SubscriptionOptions() []entity.SubscriptionOption

	// FindSubscriptionOption retrieves the plan offered for a frequency.
	FindSubscriptionOption(frequency entity.SubscriptionFrequency) (*entity.SubscriptionOption, bool)
}
