// Package entity contains the core business objects of the project.
package entity

// Selection is the order-mode state of a session.
//
//	Unset ──delivery──▶ DeliverySelected
//	  │                     │
//	pickup               pickup
//	  ▼                     ▼
//	PickupAwaitingBranch ◀──clear branch── PickupBranchSelected
//	  └────────select branch────────────────────▲
//
// Choosing none returns to Unset from every state, choosing delivery reaches
// DeliverySelected from every state. Selection only tracks the mode: leaving
// pickup drops the branch through ChooseDelivery and StartOver on the store,
// while a bare SetOrderType(delivery) keeps whatever branch was held.
type Selection int

const (
	SelectionUnset Selection = iota
	SelectionDeliverySelected
	SelectionPickupAwaitingBranch
	SelectionPickupBranchSelected
)

// SelectionEvent is an input of the selection state machine.
type SelectionEvent int

const (
	EventChooseNone SelectionEvent = iota
	EventChooseDelivery
	EventChoosePickup
	EventSelectBranch
	EventClearBranch
)

// Next applies an event. branchHeld tells a pickup choice whether a branch is already selected.
func (s Selection) Next(event SelectionEvent, branchHeld bool) Selection {
	switch event {
	case EventChooseNone:
		return SelectionUnset
	case EventChooseDelivery:
		return SelectionDeliverySelected
	case EventChoosePickup:
		if branchHeld {
			return SelectionPickupBranchSelected
		}

		return SelectionPickupAwaitingBranch
	case EventSelectBranch:
		if s == SelectionPickupAwaitingBranch || s == SelectionPickupBranchSelected {
			return SelectionPickupBranchSelected
		}

		return s
	case EventClearBranch:
		if s == SelectionPickupBranchSelected {
			return SelectionPickupAwaitingBranch
		}

		return s
	default:
		return s
	}
}

// SelectionFor restores the state for a persisted order type and branch.
func SelectionFor(orderType OrderType, branchHeld bool) Selection {
	return SelectionUnset.Next(EventForOrderType(orderType), branchHeld)
}

// EventForOrderType maps an order type to the event that chooses it.
func EventForOrderType(orderType OrderType) SelectionEvent {
	switch orderType {
	case OrderTypeDelivery:
		return EventChooseDelivery
	case OrderTypePickup:
		return EventChoosePickup
	default:
		return EventChooseNone
	}
}

// OrderType is the mode implied by the state.
func (s Selection) OrderType() OrderType {
	switch s {
	case SelectionDeliverySelected:
		return OrderTypeDelivery
	case SelectionPickupAwaitingBranch, SelectionPickupBranchSelected:
		return OrderTypePickup
	default:
		return OrderTypeNone
	}
}

func (s Selection) String() string {
	switch s {
	case SelectionDeliverySelected:
		return "delivery"
	case SelectionPickupAwaitingBranch:
		return "pickup (no branch)"
	case SelectionPickupBranchSelected:
		return "pickup"
	default:
		return "unset"
	}
}
