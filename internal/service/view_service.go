package service

import (
	"context"
	"fmt"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/billing"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/experiment"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/inventory"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/patient"
)

type Screen string

const (
	ScreenPatients    Screen = "patients"
	ScreenBilling     Screen = "billing"
	ScreenExperiments Screen = "experiments"
	ScreenInventory   Screen = "inventory"

	screenDashboard Screen = "dashboard"
)

func (s Screen) IsValid() bool {
	switch s {
	case ScreenPatients, ScreenBilling, ScreenExperiments, ScreenInventory:
		return true
	}
	return false
}

// FilterSpec carries the criteria of every filterable screen. Each screen
// reads only the fields that apply to it.
type FilterSpec struct {
	Search           string
	BillStatus       billing.StatusFilter
	ExperimentStatus *experiment.Status
	InventoryFilter  inventory.Filter
}

// Records holds the result of one screen; the other slices stay nil.
type Records struct {
	Screen      Screen                  `json:"screen" yaml:"screen"`
	Patients    []patient.Patient       `json:"patients,omitempty" yaml:"patients,omitempty"`
	Bills       []billing.Bill          `json:"bills,omitempty" yaml:"bills,omitempty"`
	Experiments []experiment.Experiment `json:"experiments,omitempty" yaml:"experiments,omitempty"`
	Inventory   []inventory.Item        `json:"inventory,omitempty" yaml:"inventory,omitempty"`
}

func (r *Records) Len() int {
	return len(r.Patients) + len(r.Bills) + len(r.Experiments) + len(r.Inventory)
}

type ViewService struct {
	patients    *PatientService
	billing     *BillingService
	experiments *ExperimentService
	inventory   *InventoryService
}

func NewViewService(p *PatientService, b *BillingService, e *ExperimentService, i *InventoryService) *ViewService {
	return &ViewService{patients: p, billing: b, experiments: e, inventory: i}
}

// FilteredRecords evaluates screen against the full dataset. Every call
// recomputes from scratch, so repeated calls with the same input agree.
func (s *ViewService) FilteredRecords(ctx context.Context, screen Screen, spec FilterSpec) (*Records, error) {
	out := &Records{Screen: screen}
	var err error

	switch screen {
	case ScreenPatients:
		out.Patients, err = s.patients.ListPatients(ctx, patient.ListPatientsQuery{Search: spec.Search})
	case ScreenBilling:
		out.Bills, err = s.billing.ListBills(ctx, billing.ListBillsQuery{Status: spec.BillStatus})
	case ScreenExperiments:
		out.Experiments, err = s.experiments.ListExperiments(ctx, experiment.ListExperimentsQuery{Status: spec.ExperimentStatus})
	case ScreenInventory:
		out.Inventory, err = s.inventory.ListItems(ctx, inventory.ListItemsQuery{Filter: spec.InventoryFilter, Search: spec.Search})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
	}

	if err != nil {
		return nil, err
	}
	return out, nil
}
