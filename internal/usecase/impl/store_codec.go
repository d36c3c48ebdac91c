package impl

import (
	"encoding/json"

	"coffissimo/internal/domain/entity"
	"coffissimo/internal/errors"
)

// storeRecordVersion is written alongside the state so older records can be migrated later.
const storeRecordVersion = 0

// storeRecord is the envelope stored under the storage key.
type storeRecord struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

func encodeSnapshot(snapshot entity.StoreSnapshot) ([]byte, error) {
	state, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal store state")
	}

	payload, err := json.Marshal(storeRecord{State: state, Version: storeRecordVersion})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal store record")
	}

	return payload, nil
}

// decodeSnapshot reads a persisted record. Every field is decoded on its own; a field
// that is absent or malformed keeps its default and is reported in the returned errors.
func decodeSnapshot(payload []byte) (entity.StoreSnapshot, []error) {
	snapshot := entity.DefaultSnapshot()

	var record storeRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return snapshot, []error{errors.Wrap(err, "malformed store record")}
	}
	if len(record.State) == 0 || string(record.State) == "null" {
		return snapshot, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(record.State, &fields); err != nil {
		return snapshot, []error{errors.Wrap(err, "malformed store state")}
	}

	var errs []error
	decodeField := func(name string, target any) bool {
		raw, ok := fields[name]
		if !ok {
			return false
		}
		if err := json.Unmarshal(raw, target); err != nil {
			errs = append(errs, errors.Wrapf(err, "malformed field %s", name))

			return false
		}

		return true
	}

	var orderType entity.OrderType
	if decodeField("orderType", &orderType) {
		snapshot.OrderType = orderType
	}

	var branch *entity.Branch
	if decodeField("selectedBranch", &branch) {
		if branch != nil && branch.ID == "" {
			errs = append(errs, errors.New("malformed field selectedBranch: missing id"))
		} else {
			snapshot.SelectedBranch = branch
		}
	}

	var cart []entity.CartItem
	if decodeField("cart", &cart) {
		snapshot.Cart = sanitizeCart(cart, &errs)
	}

	var orders []entity.Order
	if decodeField("orders", &orders) {
		snapshot.Orders = sanitizeOrders(orders, &errs)
	}

	var showEntryModal bool
	if decodeField("showEntryModal", &showEntryModal) {
		snapshot.ShowEntryModal = showEntryModal
	}

	return snapshot, errs
}

// sanitizeCart drops rows that would break the cart invariants.
func sanitizeCart(cart []entity.CartItem, errs *[]error) []entity.CartItem {
	valid := make([]entity.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.ID == "" || item.Quantity < 1 || item.UnitPrice.IsNegative() {
			*errs = append(*errs, errors.Errorf("dropped malformed cart row %q", item.ID))

			continue
		}
		valid = append(valid, item)
	}

	return valid
}

func sanitizeOrders(orders []entity.Order, errs *[]error) []entity.Order {
	valid := make([]entity.Order, 0, len(orders))
	for _, order := range orders {
		if order.ID == "" {
			*errs = append(*errs, errors.New("dropped order without id"))

			continue
		}
		if order.Items == nil {
			order.Items = []entity.CartItem{}
		}
		valid = append(valid, order)
	}

	return valid
}
