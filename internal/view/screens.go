package view

import (
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/billing"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/experiment"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/inventory"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/service"
)

type PatientsScreen struct {
	Query     patient.ListPatientsQuery
	Selection Selection[patient.Patient]
}

func (s *PatientsScreen) Spec() service.FilterSpec {
	return service.FilterSpec{Search: s.Query.Search}
}

// BillingScreen starts with every bill visible.
type BillingScreen struct {
	Query     billing.ListBillsQuery
	Selection Selection[billing.Bill]
}

func NewBillingScreen() *BillingScreen {
	return &BillingScreen{Query: billing.ListBillsQuery{Status: billing.FilterAll}}
}

func (s *BillingScreen) Spec() service.FilterSpec {
	return service.FilterSpec{BillStatus: s.Query.Status}
}

type ExperimentsScreen struct {
	Query     experiment.ListExperimentsQuery
	Selection Selection[experiment.Experiment]
}

// ToggleStatus forwards to the query: the active status is cleared, any
// other replaces it.
func (s *ExperimentsScreen) ToggleStatus(st experiment.Status) {
	s.Query.ToggleStatus(st)
}

func (s *ExperimentsScreen) Spec() service.FilterSpec {
	return service.FilterSpec{ExperimentStatus: s.Query.Status}
}

type InventoryScreen struct {
	Query     inventory.ListItemsQuery
	Selection Selection[inventory.Item]
}

func NewInventoryScreen() *InventoryScreen {
	return &InventoryScreen{Query: inventory.ListItemsQuery{Filter: inventory.FilterAll}}
}

func (s *InventoryScreen) Spec() service.FilterSpec {
	return service.FilterSpec{InventoryFilter: s.Query.Filter, Search: s.Query.Search}
}
