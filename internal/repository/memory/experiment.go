package memory

import (
	"context"
	"slices"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/dataset"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/experiment"
)

type ExperimentRepository struct {
	ds *dataset.Dataset
}

func NewExperimentRepository(ds *dataset.Dataset) *ExperimentRepository {
	return &ExperimentRepository{ds: ds}
}

func (r *ExperimentRepository) List(ctx context.Context) ([]experiment.Experiment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.ds.Experiments), nil
}

func (r *ExperimentRepository) GetByID(ctx context.Context, id string) (*experiment.Experiment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.ds.Experiments {
		if r.ds.Experiments[i].ID == id {
			e := r.ds.Experiments[i]
			return &e, nil
		}
	}
	return nil, experiment.ErrExperimentNotFound
}
