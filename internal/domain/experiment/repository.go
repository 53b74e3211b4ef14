package experiment

import "context"

type Repository interface {
	// List returns every experiment in dataset order.
	List(ctx context.Context) ([]Experiment, error)

	// GetByID returns ErrExperimentNotFound if no experiment has the id.
	GetByID(ctx context.Context, id string) (*Experiment, error)
}
