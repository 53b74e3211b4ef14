package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/experiment"
	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/metrics"
)

type ExperimentService struct {
	repo experiment.Repository
	telemetry
}

func NewExperimentService(repo experiment.Repository, log *zap.Logger, m *metrics.Collector) *ExperimentService {
	return &ExperimentService{
		repo:      repo,
		telemetry: newTelemetry(log, m),
	}
}

// ListExperiments returns the experiments with the active status, or all of
// them when no status is active.
func (s *ExperimentService) ListExperiments(ctx context.Context, q experiment.ListExperimentsQuery) ([]experiment.Experiment, error) {
	ctx, done := s.evaluate(ctx, ScreenExperiments)

	all, err := s.repo.List(ctx)
	if err != nil {
		done(0)
		s.log.Error("failed to list experiments", zap.Error(err))
		return nil, fmt.Errorf("listing experiments: %w", err)
	}

	out := make([]experiment.Experiment, 0, len(all))
	for i := range all {
		if q.Matches(&all[i]) {
			out = append(out, all[i])
		}
	}

	done(len(out))
	return out, nil
}

func (s *ExperimentService) GetExperiment(ctx context.Context, id string) (*experiment.Experiment, error) {
	return s.repo.GetByID(ctx, id)
}
