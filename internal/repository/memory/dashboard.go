package memory

import (
	"context"
	"slices"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/dataset"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/dashboard"
)

type DashboardRepository struct {
	ds *dataset.Dataset
}

func NewDashboardRepository(ds *dataset.Dataset) *DashboardRepository {
	return &DashboardRepository{ds: ds}
}

func (r *DashboardRepository) Activities(ctx context.Context) ([]dashboard.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.ds.Activities), nil
}

func (r *DashboardRepository) Metrics(ctx context.Context) ([]dashboard.Metric, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.ds.Metrics), nil
}

func (r *DashboardRepository) Chart(ctx context.Context) (dashboard.Chart, error) {
	if err := ctx.Err(); err != nil {
		return dashboard.Chart{}, err
	}
	c := dashboard.Chart{
		Labels:   slices.Clone(r.ds.Chart.Labels),
		Datasets: make([]dashboard.Series, len(r.ds.Chart.Datasets)),
	}
	for i, s := range r.ds.Chart.Datasets {
		c.Datasets[i] = dashboard.Series{Data: slices.Clone(s.Data), StrokeWidth: s.StrokeWidth}
	}
	return c, nil
}
