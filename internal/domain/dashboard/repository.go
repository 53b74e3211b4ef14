package dashboard

import "context"

type Repository interface {
	Activities(ctx context.Context) ([]Activity, error)
	Metrics(ctx context.Context) ([]Metric, error)
	Chart(ctx context.Context) (Chart, error)
}
