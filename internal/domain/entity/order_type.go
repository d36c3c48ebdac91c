// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"fmt"
)

// OrderType is the fulfilment mode chosen by the customer. The zero value means none.
type OrderType string

const (
	OrderTypeNone     OrderType = ""
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

// Valid reports whether the value is one of the known modes.
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeNone, OrderTypeDelivery, OrderTypePickup:
		return true
	default:
		return false
	}
}

// ParseOrderType accepts "delivery", "pickup" and "" / "none".
func ParseOrderType(s string) (OrderType, error) {
	if s == "none" {
		return OrderTypeNone, nil
	}
	t := OrderType(s)
	if !t.Valid() {
		return OrderTypeNone, fmt.Errorf("unknown order type %q", s)
	}

	return t, nil
}

// MarshalJSON encodes the none mode as null.
func (t OrderType) MarshalJSON() ([]byte, error) {
	if t == OrderTypeNone {
		return []byte("null"), nil
	}

	return json.Marshal(string(t))
}

// UnmarshalJSON decodes null as none and rejects unknown modes.
func (t *OrderType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = OrderTypeNone

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseOrderType(raw)
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// String returns "none" for the zero value.
func (t OrderType) String() string {
	if t == OrderTypeNone {
		return "none"
	}

	return string(t)
}
