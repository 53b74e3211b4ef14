package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/billing"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/experiment"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/inventory"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/format"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/service"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/settings"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/view"
)

type patientRow struct {
	patient.Patient `yaml:",inline"`
	HasUpcoming     bool `json:"has_upcoming" yaml:"hasUpcoming"`
}

type billRow struct {
	billing.Bill  `yaml:",inline"`
	AmountDisplay string      `json:"amount_display" yaml:"amountDisplay"`
	StatusLabel   string      `json:"status_label" yaml:"statusLabel"`
	Tone          format.Tone `json:"tone" yaml:"tone"`
	PastDue       bool        `json:"past_due" yaml:"pastDue"`
}

type experimentRow struct {
	experiment.Experiment `yaml:",inline"`
	StatusLabel           string      `json:"status_label" yaml:"statusLabel"`
	Tone                  format.Tone `json:"tone" yaml:"tone"`
}

type itemRow struct {
	inventory.Item `yaml:",inline"`
	LowStock       bool `json:"low_stock" yaml:"lowStock"`
	NearExpiry     bool `json:"near_expiry" yaml:"nearExpiry"`
}

type dashboardOutput struct {
	Direction        format.Direction `json:"direction" yaml:"direction"`
	service.Overview `yaml:",inline"`
	PastDueBills     []string `json:"past_due_bills,omitempty" yaml:"pastDueBills,omitempty"`
}

type screenOutput[T any] struct {
	Direction format.Direction `json:"direction" yaml:"direction"`
	Count     int              `json:"count" yaml:"count"`
	Records   []T              `json:"records" yaml:"records"`
	Selected  any              `json:"selected,omitempty" yaml:"selected,omitempty"`
	Detail    [][]string       `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// field is one label/value line of a detail dialog.
type field struct {
	label string
	value string
}

// newScreenOutput opens the record named by selectID in sel, the way tapping
// a list row does, and renders its detail lines while the dialog is open.
// Each line's label and value follow the layout direction.
func newScreenOutput[T, R any](
	dir format.Direction,
	rows []R,
	sel *view.Selection[T],
	recs []T,
	selectID string,
	id func(T) string,
	fields func(T) []field,
) screenOutput[R] {
	out := screenOutput[R]{Direction: dir, Count: len(rows), Records: rows}

	if selectID != "" {
		for _, r := range recs {
			if id(r) == selectID {
				sel.Select(r)
				break
			}
		}
	}

	rec, ok := sel.Selected()
	if !ok || !sel.DialogOpen() {
		return out
	}
	out.Selected = rec
	for _, f := range fields(rec) {
		out.Detail = append(out.Detail, format.Arrange([]string{f.label, f.value}, dir))
	}
	return out
}

func patientsCmd(a *app) *cobra.Command {
	var selectID string
	screen := &view.PatientsScreen{}

	cmd := &cobra.Command{
		Use:   "patients",
		Short: "List patients matching a name search",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.views.FilteredRecords(cmd.Context(), service.ScreenPatients, screen.Spec())
			if err != nil {
				return err
			}

			rows := make([]patientRow, 0, len(recs.Patients))
			for _, p := range recs.Patients {
				rows = append(rows, patientRow{Patient: p, HasUpcoming: p.HasUpcomingAppointment()})
			}

			out := newScreenOutput(a.settings.Direction(), rows, &screen.Selection, recs.Patients, selectID, func(p patient.Patient) string { return p.ID }, patientFields)
			return render(cmd.OutOrStdout(), a.output, out)
		},
	}
	cmd.Flags().StringVar(&screen.Query.Search, "search", "", "Case-insensitive substring of the patient name")
	cmd.Flags().StringVar(&selectID, "select", "", "Open the detail view of the patient with this id")
	return cmd
}

func billsCmd(a *app) *cobra.Command {
	var (
		status   string
		selectID string
	)
	screen := view.NewBillingScreen()

	cmd := &cobra.Command{
		Use:   "bills",
		Short: "List bills by payment status",
		RunE: func(cmd *cobra.Command, args []string) error {
			screen.Query.Status = billing.StatusFilter(status)
			recs, err := a.views.FilteredRecords(cmd.Context(), service.ScreenBilling, screen.Spec())
			if err != nil {
				return err
			}

			rows := make([]billRow, 0, len(recs.Bills))
			for _, b := range recs.Bills {
				rows = append(rows, billRow{
					Bill:          b,
					AmountDisplay: format.Currency(a.cfg.Display.CurrencySymbol, b.Amount),
					StatusLabel:   format.StatusLabel(string(b.Status)),
					Tone:          format.StatusTone(string(b.Status)),
					PastDue:       a.billing.PastDue(&b),
				})
			}

			out := newScreenOutput(a.settings.Direction(), rows, &screen.Selection, recs.Bills, selectID, func(b billing.Bill) string { return b.ID }, a.billFields)
			return render(cmd.OutOrStdout(), a.output, out)
		},
	}
	cmd.Flags().StringVar(&status, "status", string(billing.FilterAll), "all, pending, paid or overdue")
	cmd.Flags().StringVar(&selectID, "select", "", "Open the detail view of the bill with this id")
	return cmd
}

func experimentsCmd(a *app) *cobra.Command {
	var (
		statuses []string
		selectID string
	)
	screen := &view.ExperimentsScreen{}

	cmd := &cobra.Command{
		Use:   "experiments",
		Short: "List experiments, optionally narrowed to one status",
		Long: "List experiments. Each --status flag toggles that status on the experiments screen, " +
			"so repeating the active status clears the filter.",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range statuses {
				screen.ToggleStatus(experiment.Status(s))
			}
			recs, err := a.views.FilteredRecords(cmd.Context(), service.ScreenExperiments, screen.Spec())
			if err != nil {
				return err
			}

			rows := make([]experimentRow, 0, len(recs.Experiments))
			for _, e := range recs.Experiments {
				rows = append(rows, experimentRow{
					Experiment:  e,
					StatusLabel: format.StatusLabel(string(e.Status)),
					Tone:        format.StatusTone(string(e.Status)),
				})
			}

			out := newScreenOutput(a.settings.Direction(), rows, &screen.Selection, recs.Experiments, selectID, func(e experiment.Experiment) string { return e.ID }, experimentFields)
			return render(cmd.OutOrStdout(), a.output, out)
		},
	}
	cmd.Flags().StringArrayVar(&statuses, "status", nil, "Toggle a status: pending, in-progress, completed or failed")
	cmd.Flags().StringVar(&selectID, "select", "", "Open the detail view of the experiment with this id")
	return cmd
}

func inventoryCmd(a *app) *cobra.Command {
	var (
		filter   string
		selectID string
	)
	screen := view.NewInventoryScreen()

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List inventory items by stock category and name",
		RunE: func(cmd *cobra.Command, args []string) error {
			screen.Query.Filter = inventory.Filter(filter)
			recs, err := a.views.FilteredRecords(cmd.Context(), service.ScreenInventory, screen.Spec())
			if err != nil {
				return err
			}

			rows := make([]itemRow, 0, len(recs.Inventory))
			for _, it := range recs.Inventory {
				low, near := a.inventory.Flags(&it)
				rows = append(rows, itemRow{Item: it, LowStock: low, NearExpiry: near})
			}

			out := newScreenOutput(a.settings.Direction(), rows, &screen.Selection, recs.Inventory, selectID, func(i inventory.Item) string { return i.ID }, itemFields)
			return render(cmd.OutOrStdout(), a.output, out)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(inventory.FilterAll), "all, lowStock or nearExpiry")
	cmd.Flags().StringVar(&screen.Query.Search, "search", "", "Case-insensitive substring of the item name")
	cmd.Flags().StringVar(&selectID, "select", "", "Open the detail view of the item with this id")
	return cmd
}

func patientFields(p patient.Patient) []field {
	return []field{
		{"Name", p.Name},
		{"Age", strconv.Itoa(p.Age)},
		{"Gender", format.StatusLabel(string(p.Gender))},
		{"Contact", p.ContactNumber},
		{"Email", p.Email},
		{"Medical history", strings.Join(p.MedicalHistory, ", ")},
		{"Last visit", p.LastVisit.String()},
		{"Upcoming appointment", p.UpcomingAppointment.String()},
	}
}

func (a *app) billFields(b billing.Bill) []field {
	fields := []field{
		{"Patient", b.PatientName},
		{"Date", b.Date.String()},
		{"Due date", b.DueDate.String()},
		{"Status", format.StatusLabel(string(b.Status))},
	}
	for _, it := range b.Items {
		fields = append(fields, field{it.Description, format.Currency(a.cfg.Display.CurrencySymbol, it.Total)})
	}
	return append(fields, field{"Total", format.Currency(a.cfg.Display.CurrencySymbol, b.Amount)})
}

func experimentFields(e experiment.Experiment) []field {
	return []field{
		{"Name", e.Name},
		{"Patient", e.PatientName},
		{"Type", e.Type},
		{"Status", format.StatusLabel(string(e.Status))},
		{"Start date", e.StartDate.String()},
		{"End date", e.EndDate.String()},
		{"Results", e.Results},
	}
}

func itemFields(it inventory.Item) []field {
	return []field{
		{"Name", it.Name},
		{"Category", it.Category},
		{"Quantity", fmt.Sprintf("%d %s", it.Quantity, it.Unit)},
		{"Reorder level", strconv.Itoa(it.ReorderLevel)},
		{"Location", it.Location},
		{"Expiry date", it.ExpiryDate.String()},
	}
}

func dashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show metrics, recent activity and the weekly chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := a.dashboard.Overview(cmd.Context())
			if err != nil {
				return err
			}
			late, err := a.billing.PastDueUnsettled(cmd.Context())
			if err != nil {
				return err
			}

			out := dashboardOutput{Direction: a.settings.Direction(), Overview: *ov}
			for _, b := range late {
				out.PastDueBills = append(out.PastDueBills, b.ID)
			}
			return render(cmd.OutOrStdout(), a.output, out)
		},
	}
}

func settingsCmd(a *app) *cobra.Command {
	var systemDark bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the effective settings after flags and environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings.Get()
			out := struct {
				settings.AppSettings `yaml:",inline"`
				Direction            format.Direction `json:"direction" yaml:"direction"`
				Dark                 bool             `json:"dark" yaml:"dark"`
			}{AppSettings: s, Direction: s.Direction(), Dark: s.IsDark(systemDark)}
			return render(cmd.OutOrStdout(), a.output, out)
		},
	}
	cmd.Flags().BoolVar(&systemDark, "system-dark", false, "Treat the host color scheme as dark")
	return cmd
}
