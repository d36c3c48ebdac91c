// Package entity contains the core business objects of the project.
package entity

// StoreSnapshot is the persisted subset of the order store.
type StoreSnapshot struct {
	OrderType      OrderType  `json:"orderType"`
	SelectedBranch *Branch    `json:"selectedBranch"`
	Cart           []CartItem `json:"cart"`
	Orders         []Order    `json:"orders"`
	ShowEntryModal bool       `json:"showEntryModal"`
}

// DefaultSnapshot is the state of a first visit.
func DefaultSnapshot() StoreSnapshot {
	return StoreSnapshot{
		OrderType:      OrderTypeNone,
		SelectedBranch: nil,
		Cart:           []CartItem{},
		Orders:         []Order{},
		ShowEntryModal: true,
	}
}

// Clone deep-copies the snapshot.
func (s StoreSnapshot) Clone() StoreSnapshot {
	orders := make([]Order, len(s.Orders))
	for i := range s.Orders {
		orders[i] = *s.Orders[i].Clone()
	}

	return StoreSnapshot{
		OrderType:      s.OrderType,
		SelectedBranch: s.SelectedBranch.Clone(),
		Cart:           CloneCart(s.Cart),
		Orders:         orders,
		ShowEntryModal: s.ShowEntryModal,
	}
}
