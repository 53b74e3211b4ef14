package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/billing"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/dashboard"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/experiment"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/inventory"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/patient"
)

var ErrEmptyDataset = errors.New("dataset contains no records")

// Dataset is loaded once at startup and read-only afterwards.
type Dataset struct {
	Patients    []patient.Patient       `yaml:"patients" json:"patients"`
	Bills       []billing.Bill          `yaml:"bills" json:"bills"`
	Experiments []experiment.Experiment `yaml:"experiments" json:"experiments"`
	Inventory   []inventory.Item        `yaml:"inventory" json:"inventory"`
	Activities  []dashboard.Activity    `yaml:"activities" json:"activities"`
	Metrics     []dashboard.Metric      `yaml:"metrics" json:"metrics"`
	Chart       dashboard.Chart         `yaml:"chart" json:"chart"`
}

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "dataset validation failed: " + strings.Join(e.Fields, "; ")
}

// Load reads a YAML dataset from path. An empty path yields the built-in
// sample dataset anchored at now.
func Load(path string, now time.Time) (*Dataset, error) {
	if path == "" {
		return Default(now), nil
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(content, &ds); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	if ds.isEmpty() {
		return nil, ErrEmptyDataset
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}

func (d *Dataset) isEmpty() bool {
	return len(d.Patients) == 0 && len(d.Bills) == 0 && len(d.Experiments) == 0 &&
		len(d.Inventory) == 0 && len(d.Activities) == 0 && len(d.Metrics) == 0
}

// Validate checks identifiers, enum values and bill totals. Dates are left
// unparsed; a malformed date only degrades the record that carries it.
func (d *Dataset) Validate() error {
	var errs []string
	seen := map[string]map[string]bool{}
	unique := func(entity, id string, dup error) {
		if seen[entity] == nil {
			seen[entity] = map[string]bool{}
		}
		if seen[entity][id] {
			errs = append(errs, fmt.Sprintf("%s: %q", dup, id))
		}
		seen[entity][id] = true
	}

	for _, p := range d.Patients {
		unique("patient", p.ID, patient.ErrDuplicateID)
		if !p.Gender.IsValid() {
			errs = append(errs, fmt.Sprintf("patient %s: %s", p.ID, patient.ErrInvalidGender))
		}
		if p.Age < 0 {
			errs = append(errs, fmt.Sprintf("patient %s: %s", p.ID, patient.ErrInvalidAge))
		}
	}

	for _, b := range d.Bills {
		unique("bill", b.ID, billing.ErrDuplicateID)
		if err := b.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
	}

	for _, e := range d.Experiments {
		unique("experiment", e.ID, experiment.ErrDuplicateID)
		if !e.Status.IsValid() {
			errs = append(errs, fmt.Sprintf("experiment %s: %s: %q", e.ID, experiment.ErrInvalidStatus, e.Status))
		}
	}

	for _, it := range d.Inventory {
		unique("inventory", it.ID, inventory.ErrDuplicateID)
		if it.Quantity < 0 {
			errs = append(errs, fmt.Sprintf("inventory %s: %s", it.ID, inventory.ErrNegativeQuantity))
		}
		if it.ReorderLevel < 0 {
			errs = append(errs, fmt.Sprintf("inventory %s: %s", it.ID, inventory.ErrNegativeReorderLevel))
		}
	}

	for _, a := range d.Activities {
		if !a.Type.IsValid() {
			errs = append(errs, fmt.Sprintf("activity %s: %s: %q", a.ID, dashboard.ErrInvalidActivityType, a.Type))
		}
	}

	for _, m := range d.Metrics {
		if m.Value < 0 {
			errs = append(errs, fmt.Sprintf("metric %s: %s", m.ID, dashboard.ErrNegativeMetric))
		}
	}

	if err := d.Chart.Validate(); err != nil {
		errs = append(errs, "chart: "+err.Error())
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
