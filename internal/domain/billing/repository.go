package billing

import "context"

type Repository interface {
	// List returns every bill in dataset order.
	List(ctx context.Context) ([]Bill, error)

	// GetByID returns ErrBillNotFound if no bill has the id.
	GetByID(ctx context.Context, id string) (*Bill, error)
}
