package inventory

import "context"

type Repository interface {
	// List returns every item in dataset order.
	List(ctx context.Context) ([]Item, error)

	// GetByID returns ErrItemNotFound if no item has the id.
	GetByID(ctx context.Context, id string) (*Item, error)
}
