package memory

import (
	"context"
	"slices"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/dataset"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/patient"
)

type PatientRepository struct {
	ds *dataset.Dataset
}

func NewPatientRepository(ds *dataset.Dataset) *PatientRepository {
	return &PatientRepository{ds: ds}
}

func (r *PatientRepository) List(ctx context.Context) ([]patient.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]patient.Patient, len(r.ds.Patients))
	for i, p := range r.ds.Patients {
		p.MedicalHistory = slices.Clone(p.MedicalHistory)
		out[i] = p
	}
	return out, nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*patient.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.ds.Patients {
		if r.ds.Patients[i].ID == id {
			p := r.ds.Patients[i]
			p.MedicalHistory = slices.Clone(p.MedicalHistory)
			return &p, nil
		}
	}
	return nil, patient.ErrPatientNotFound
}
