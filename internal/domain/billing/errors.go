package billing

import "errors"

var (
	ErrBillNotFound      = errors.New("bill not found")
	ErrDuplicateID       = errors.New("duplicate bill id")
	ErrInvalidStatus     = errors.New("invalid bill status")
	ErrInvalidQuantity   = errors.New("item quantity must be positive")
	ErrNegativeUnitPrice = errors.New("item unit price cannot be negative")
	ErrItemTotalMismatch = errors.New("item total does not equal quantity × unit price")
	ErrAmountMismatch    = errors.New("bill amount does not equal the sum of its items")
)
