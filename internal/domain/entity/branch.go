// Package entity contains the core business objects of the project.
package entity

import "github.com/paulmach/orb"

// Branch is a physical retail location with its own hours, pricing and offers.
type Branch struct {
	ID            string        `json:"id" yaml:"id"`                       // Stable identifier, e.g. "sydney-cbd".
	Name          string        `json:"name" yaml:"name"`                   // Display name.
	Area          string        `json:"area" yaml:"area"`                   // Suburb or district shown next to the name.
	Address       string        `json:"address" yaml:"address"`             // Street address.
	Hours         BranchHours   `json:"hours" yaml:"hours"`                 // Operating hours text.
	IsOpen        bool          `json:"isOpen" yaml:"isOpen"`               // Whether the branch currently accepts pickup orders.
	Offers        []BranchOffer `json:"offers" yaml:"offers"`               // Branch-specific promotions.
	DeliveryLinks DeliveryLinks `json:"deliveryLinks" yaml:"deliveryLinks"` // Third-party delivery partner pages.
	Image         string        `json:"image" yaml:"image"`                 // Hero image reference.
	Phone         string        `json:"phone" yaml:"phone"`                 // Contact phone number.
	Location      *GeoPoint     `json:"location,omitempty" yaml:"location"` // Coordinates used by the branch locator.
}

// BranchHours holds the human-readable opening hours of a branch.
type BranchHours struct {
	Open  string `json:"open" yaml:"open"`
	Close string `json:"close" yaml:"close"`
	Days  string `json:"days" yaml:"days"`
}

// BranchOffer is a promotion advertised by a branch.
type BranchOffer struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Code        string `json:"code,omitempty" yaml:"code"`
	Image       string `json:"image" yaml:"image"`
	Discount    *int   `json:"discount,omitempty" yaml:"discount"`
	ValidUntil  string `json:"validUntil" yaml:"validUntil"`
}

// DeliveryLinks point at the delivery partners serving a branch.
type DeliveryLinks struct {
	UberEats string `json:"uberEats" yaml:"uberEats"`
	DoorDash string `json:"doorDash" yaml:"doorDash"`
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Point converts the coordinate to an orb point (longitude first).
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// Clone returns a deep copy of the branch so callers can hold it without sharing slices.
func (b *Branch) Clone() *Branch {
	if b == nil {
		return nil
	}

	cloned := *b
	if b.Offers != nil {
		cloned.Offers = make([]BranchOffer, len(b.Offers))
		for i, offer := range b.Offers {
			cloned.Offers[i] = offer
			if offer.Discount != nil {
				discount := *offer.Discount
				cloned.Offers[i].Discount = &discount
			}
		}
	}
	if b.Location != nil {
		location := *b.Location
		cloned.Location = &location
	}

	return &cloned
}
