package patient

import "context"

type Repository interface {
	// List returns every patient in dataset order.
	List(ctx context.Context) ([]Patient, error)

	// GetByID returns ErrPatientNotFound if no patient has the id.
	GetByID(ctx context.Context, id string) (*Patient, error)
}
