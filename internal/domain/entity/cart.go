// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SubscriptionFrequency is how often a subscribed product is delivered.
type SubscriptionFrequency string

const (
	FrequencyWeekly   SubscriptionFrequency = "weekly"
	FrequencyBiweekly SubscriptionFrequency = "biweekly"
	FrequencyMonthly  SubscriptionFrequency = "monthly"
)

// oneTimePurchase stands in for the frequency of rows without a plan.
const oneTimePurchase = "onetime"

var hundred = decimal.NewFromInt(100)

// MaxDiscountPercent is the largest discount a subscription plan may carry.
var MaxDiscountPercent = hundred

// SubscriptionPlan is a recurring-purchase discount attached to a cart row.
type SubscriptionPlan struct {
	Frequency SubscriptionFrequency `json:"frequency"` // Delivery cadence.
	Discount  decimal.Decimal       `json:"discount"`  // Percentage off, e.g. 10 for 10%.
}

// CartItem is one row of the shopping cart.
type CartItem struct {
	ID               string            `json:"id"`               // Unique row identifier.
	ProductID        string            `json:"productId"`        // The product being bought.
	BranchID         string            `json:"branchId"`         // The branch whose price was captured.
	Grind            GrindType         `json:"grind"`            // Requested grind.
	SubscriptionPlan *SubscriptionPlan `json:"subscriptionPlan"` // Optional recurring plan, null for one-time purchases.
	Quantity         int               `json:"quantity"`         // Always >= 1 while the row exists.
	UnitPrice        decimal.Decimal   `json:"unitPrice"`        // Branch price captured when the row was added.
}

// CartItemKey identifies rows that merge instead of duplicating.
type CartItemKey struct {
	ProductID string
	BranchID  string
	Grind     GrindType
	Frequency string
}

// String renders the key as product-branch-grind-frequency.
func (k CartItemKey) String() string {
	return strings.Join([]string{k.ProductID, k.BranchID, string(k.Grind), k.Frequency}, "-")
}

// MergeKey returns the identity used to merge repeated additions.
func (c *CartItem) MergeKey() CartItemKey {
	frequency := oneTimePurchase
	if c.SubscriptionPlan != nil {
		frequency = string(c.SubscriptionPlan.Frequency)
	}

	return CartItemKey{
		ProductID: c.ProductID,
		BranchID:  c.BranchID,
		Grind:     c.Grind,
		Frequency: frequency,
	}
}

// LineTotal is unitPrice × quantity, discounted by the plan percentage when subscribed.
func (c *CartItem) LineTotal() decimal.Decimal {
	total := c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
	if c.SubscriptionPlan == nil {
		return total
	}

	factor := decimal.NewFromInt(1).Sub(c.SubscriptionPlan.Discount.Div(hundred))

	return total.Mul(factor)
}

// Clone returns a deep copy of the row.
func (c CartItem) Clone() CartItem {
	if c.SubscriptionPlan != nil {
		plan := *c.SubscriptionPlan
		c.SubscriptionPlan = &plan
	}

	return c
}

// CloneCart deep-copies a cart so a snapshot never aliases live rows.
func CloneCart(items []CartItem) []CartItem {
	cloned := make([]CartItem, len(items))
	for i, item := range items {
		cloned[i] = item.Clone()
	}

	return cloned
}
