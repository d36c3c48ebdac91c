// Package entity contains the core business objects of the project.
package entity

import "github.com/shopspring/decimal"

// ProductCategory groups products on the shop page.
type ProductCategory string

const (
	CategoryEspresso    ProductCategory = "espresso"
	CategoryFilter      ProductCategory = "filter"
	CategoryPods        ProductCategory = "pods"
	CategoryMatcha      ProductCategory = "matcha"
	CategoryGifts       ProductCategory = "gifts"
	CategoryEquipment   ProductCategory = "equipment"
	CategoryMerchandise ProductCategory = "merchandise"
)

// RoastLevel describes how dark a coffee is roasted.
type RoastLevel string

const (
	RoastLight      RoastLevel = "light"
	RoastMedium     RoastLevel = "medium"
	RoastMediumDark RoastLevel = "medium-dark"
	RoastDark       RoastLevel = "dark"
)

// GrindType is the physical preparation format requested for a coffee product.
type GrindType string

const (
	GrindWholeBean   GrindType = "whole_bean"
	GrindEspresso    GrindType = "espresso"
	GrindFrenchPress GrindType = "french_press"
	GrindV60         GrindType = "v60"
	GrindAeropress   GrindType = "aeropress"
	GrindMokaPot     GrindType = "moka_pot"
	GrindChemex      GrindType = "chemex"
)

// Availability is the stock level of a product at one branch.
type Availability string

const (
	InStock    Availability = "in_stock"
	LowStock   Availability = "low_stock"
	OutOfStock Availability = "out_of_stock"
)

// Product is a catalog entry shared by all branches.
type Product struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Description    string          `json:"description" yaml:"description"`
	Category       ProductCategory `json:"category" yaml:"category"`
	Images         []string        `json:"images" yaml:"images"`
	TastingNotes   []string        `json:"tastingNotes" yaml:"tastingNotes"`
	Origin         string          `json:"origin" yaml:"origin"`
	RoastLevel     RoastLevel      `json:"roastLevel" yaml:"roastLevel"`
	Tags           []string        `json:"tags" yaml:"tags"`
	GrindOptions   []GrindType     `json:"grindOptions" yaml:"grindOptions"`
	Weight         string          `json:"weight" yaml:"weight"`
	IsSubscribable bool            `json:"isSubscribable" yaml:"isSubscribable"`
}

// OffersGrind reports whether the product can be prepared with the given grind.
func (p *Product) OffersGrind(grind GrindType) bool {
	for _, g := range p.GrindOptions {
		if g == grind {
			return true
		}
	}

	return false
}

// BranchProduct is the price and availability of one product at one branch.
type BranchProduct struct {
	BranchID     string          `json:"branchId" yaml:"branchId"`
	ProductID    string          `json:"productId" yaml:"productId"`
	Price        decimal.Decimal `json:"price" yaml:"price"`
	Availability Availability    `json:"availability" yaml:"availability"`
	Featured     bool            `json:"featured,omitempty" yaml:"featured"`
}

// GrindOption describes a grind for display.
type GrindOption struct {
	ID          GrindType `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
}

// CategoryInfo describes a product category for display.
type CategoryInfo struct {
	ID          ProductCategory `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
}

// SubscriptionOption is a plan offered on the subscriptions page.
type SubscriptionOption struct {
	Frequency SubscriptionFrequency `json:"frequency" yaml:"frequency"`
	Label     string                `json:"label" yaml:"label"`
	Discount  decimal.Decimal       `json:"discount" yaml:"discount"`
}

// Plan converts the option into the plan attached to a cart row.
func (o SubscriptionOption) Plan() *SubscriptionPlan {
	return &SubscriptionPlan{
		Frequency: o.Frequency,
		Discount:  o.Discount,
	}
}
