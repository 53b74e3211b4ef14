package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/metrics"
)

type PatientService struct {
	repo patient.Repository
	telemetry
}

func NewPatientService(repo patient.Repository, log *zap.Logger, m *metrics.Collector) *PatientService {
	return &PatientService{
		repo:      repo,
		telemetry: newTelemetry(log, m),
	}
}

// ListPatients returns the patients whose name contains q.Search, in dataset
// order.
func (s *PatientService) ListPatients(ctx context.Context, q patient.ListPatientsQuery) ([]patient.Patient, error) {
	ctx, done := s.evaluate(ctx, ScreenPatients)

	all, err := s.repo.List(ctx)
	if err != nil {
		done(0)
		s.log.Error("failed to list patients", zap.Error(err))
		return nil, fmt.Errorf("listing patients: %w", err)
	}

	out := make([]patient.Patient, 0, len(all))
	for i := range all {
		if q.Matches(&all[i]) {
			out = append(out, all[i])
		}
	}

	done(len(out))
	return out, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id string) (*patient.Patient, error) {
	return s.repo.GetByID(ctx, id)
}
