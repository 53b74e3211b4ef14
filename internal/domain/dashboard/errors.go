package dashboard

import "errors"

var (
	ErrInvalidActivityType = errors.New("invalid activity type")
	ErrNegativeMetric      = errors.New("metric value cannot be negative")
	ErrSeriesLength        = errors.New("chart series length does not match labels")
)
