package inventory

import "errors"

var (
	ErrItemNotFound         = errors.New("inventory item not found")
	ErrDuplicateID          = errors.New("duplicate inventory item id")
	ErrNegativeQuantity     = errors.New("quantity cannot be negative")
	ErrNegativeReorderLevel = errors.New("reorder level cannot be negative")
)
