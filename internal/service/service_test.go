package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/dataset"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/billing"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/dashboard"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/experiment"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/inventory"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/format"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/repository/memory"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/settings"
	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/metrics"
)

var refNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

type fixture struct {
	ds       *dataset.Dataset
	metrics  *metrics.Collector
	logs     *observer.ObservedLogs
	settings *settings.Store

	patients    *PatientService
	billing     *BillingService
	experiments *ExperimentService
	inventory   *InventoryService
	dashboard   *DashboardService
	views       *ViewService
}

func newFixture(t *testing.T, ds *dataset.Dataset) *fixture {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)
	m := metrics.NewCollector("test", prometheus.NewRegistry())
	clock := func() time.Time { return refNow }

	store, err := settings.NewStore(settings.Defaults(), log, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := &fixture{ds: ds, metrics: m, logs: logs, settings: store}
	f.patients = NewPatientService(memory.NewPatientRepository(ds), log, m)
	f.billing = NewBillingService(memory.NewBillRepository(ds), clock, log, m)
	f.experiments = NewExperimentService(memory.NewExperimentRepository(ds), log, m)
	f.inventory = NewInventoryService(memory.NewInventoryRepository(ds), 0, clock, log, m)
	f.dashboard = NewDashboardService(memory.NewDashboardRepository(ds), store, clock, log, m)
	f.views = NewViewService(f.patients, f.billing, f.experiments, f.inventory)
	return f
}

func ids[T any](records []T, id func(T) string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, id(r))
	}
	return out
}

func patientIDs(ps []patient.Patient) []string {
	return ids(ps, func(p patient.Patient) string { return p.ID })
}

func billIDs(bs []billing.Bill) []string {
	return ids(bs, func(b billing.Bill) string { return b.ID })
}

func experimentIDs(es []experiment.Experiment) []string {
	return ids(es, func(e experiment.Experiment) string { return e.ID })
}

func itemIDs(is []inventory.Item) []string {
	return ids(is, func(i inventory.Item) string { return i.ID })
}

func TestListPatientsSearch(t *testing.T) {
	f := newFixture(t, dataset.Default(refNow))
	ctx := context.Background()

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"p1", "p2", "p3", "p4", "p5"}},
		{"jane", []string{"p2"}},
		{"JOHN", []string{"p1", "p3"}},
		{"xyz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got, err := f.patients.ListPatients(ctx, patient.ListPatientsQuery{Search: tt.search})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(patientIDs(got), tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, patientIDs(got))
			}
		})
	}
}

func TestListBillsByStatus(t *testing.T) {
	f := newFixture(t, dataset.Default(refNow))
	ctx := context.Background()

	tests := []struct {
		status billing.StatusFilter
		want   []string
	}{
		{billing.FilterAll, []string{"b1", "b2", "b3", "b4", "b5"}},
		{"", []string{"b1", "b2", "b3", "b4", "b5"}},
		{billing.FilterPending, []string{"b1", "b3"}},
		{billing.FilterPaid, []string{"b2", "b5"}},
		{billing.FilterOverdue, []string{"b4"}},
		{"refunded", []string{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, err := f.billing.ListBills(ctx, billing.ListBillsQuery{Status: tt.status})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(billIDs(got), tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, billIDs(got))
			}
			for _, b := range got {
				if err := b.Validate(); err != nil {
					t.Fatalf("bill total invariant broken: %v", err)
				}
			}
		})
	}
}

func TestExperimentToggleScenario(t *testing.T) {
	f := newFixture(t, dataset.Default(refNow))
	ctx := context.Background()
	var q experiment.ListExperimentsQuery

	q.ToggleStatus(experiment.StatusCompleted)
	got, err := f.experiments.ListExperiments(ctx, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"e1", "e2", "e5"}; !slices.Equal(experimentIDs(got), want) {
		t.Fatalf("expected %v, got %v", want, experimentIDs(got))
	}

	q.ToggleStatus(experiment.StatusCompleted)
	got, err = f.experiments.ListExperiments(ctx, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(f.ds.Experiments) {
		t.Fatalf("expected all experiments after toggling off, got %d", len(got))
	}
}

func TestListItemsNearExpiryScenario(t *testing.T) {
	ds := &dataset.Dataset{Inventory: []inventory.Item{
		{ID: "soon", Name: "Reagent A", Quantity: 10, ReorderLevel: 2, ExpiryDate: domain.DateOf(refNow.AddDate(0, 0, 10))},
		{ID: "later", Name: "Reagent B", Quantity: 10, ReorderLevel: 2, ExpiryDate: domain.DateOf(refNow.AddDate(0, 0, 40))},
		{ID: "none", Name: "Gauze", Quantity: 1, ReorderLevel: 2},
	}}
	f := newFixture(t, ds)

	got, err := f.inventory.ListItems(context.Background(), inventory.ListItemsQuery{Filter: inventory.FilterNearExpiry})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"soon"}; !slices.Equal(itemIDs(got), want) {
		t.Fatalf("expected %v, got %v", want, itemIDs(got))
	}

	low, err := f.inventory.ListItems(context.Background(), inventory.ListItemsQuery{Filter: inventory.FilterLowStock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, it := range ds.Inventory {
		lowStock, _ := f.inventory.Flags(&it)
		if lowStock != slices.Contains(itemIDs(low), it.ID) {
			t.Fatalf("low-stock view and flag disagree for %s", it.ID)
		}
	}
}

func TestListItemsSearchAndFilterCombine(t *testing.T) {
	f := newFixture(t, dataset.Default(refNow))

	got, err := f.inventory.ListItems(context.Background(), inventory.ListItemsQuery{Filter: inventory.FilterAll, Search: "disp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"i3"}; !slices.Equal(itemIDs(got), want) {
		t.Fatalf("expected %v, got %v", want, itemIDs(got))
	}

	got, err = f.inventory.ListItems(context.Background(), inventory.ListItemsQuery{Filter: "expired"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected unknown filter to match nothing, got %v", itemIDs(got))
	}
}

func TestInvalidDatesAreExcludedAndLogged(t *testing.T) {
	ds := &dataset.Dataset{
		Inventory: []inventory.Item{
			{ID: "bad", Name: "Broken", Quantity: 5, ReorderLevel: 1, ExpiryDate: "31/12/2026"},
			{ID: "good", Name: "Fine", Quantity: 5, ReorderLevel: 1, ExpiryDate: domain.DateOf(refNow.AddDate(0, 0, 5))},
		},
		Bills: []billing.Bill{
			{ID: "b-bad", Status: billing.StatusPending, DueDate: "soon"},
			{ID: "b-late", Status: billing.StatusPending, DueDate: domain.DateOf(refNow.AddDate(0, 0, -3))},
			{ID: "b-paid", Status: billing.StatusPaid, DueDate: domain.DateOf(refNow.AddDate(0, 0, -3))},
		},
	}
	f := newFixture(t, ds)
	ctx := context.Background()

	got, err := f.inventory.ListItems(ctx, inventory.ListItemsQuery{Filter: inventory.FilterNearExpiry})
	if err != nil {
		t.Fatalf("malformed date must not be fatal: %v", err)
	}
	if want := []string{"good"}; !slices.Equal(itemIDs(got), want) {
		t.Fatalf("expected %v, got %v", want, itemIDs(got))
	}

	// Views that do not read dates keep the record.
	all, err := f.inventory.ListItems(ctx, inventory.ListItemsQuery{})
	if err != nil || len(all) != 2 {
		t.Fatalf("expected both items without a date filter, got %v (%v)", itemIDs(all), err)
	}

	late, err := f.billing.PastDueUnsettled(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"b-late"}; !slices.Equal(billIDs(late), want) {
		t.Fatalf("expected %v, got %v", want, billIDs(late))
	}

	if got := testutil.ToFloat64(f.metrics.InvalidDatesTotal.WithLabelValues("inventory")); got != 1 {
		t.Fatalf("expected 1 invalid inventory date, got %v", got)
	}
	if got := testutil.ToFloat64(f.metrics.InvalidDatesTotal.WithLabelValues("bill")); got != 1 {
		t.Fatalf("expected 1 invalid bill date, got %v", got)
	}
	warns := f.logs.FilterMessage("excluding record with invalid date").All()
	if len(warns) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warns))
	}
	if warns[0].Level != zap.WarnLevel || warns[0].ContextMap()["id"] != "bad" {
		t.Fatalf("unexpected warning %+v", warns[0])
	}
}

func TestFilteredRecords(t *testing.T) {
	f := newFixture(t, dataset.Default(refNow))
	ctx := context.Background()

	pending := experiment.StatusPending
	tests := []struct {
		screen Screen
		spec   FilterSpec
		want   int
	}{
		{ScreenPatients, FilterSpec{Search: "jane"}, 1},
		{ScreenBilling, FilterSpec{BillStatus: billing.FilterPending}, 2},
		{ScreenExperiments, FilterSpec{ExperimentStatus: &pending}, 1},
		{ScreenInventory, FilterSpec{InventoryFilter: inventory.FilterAll, Search: "TEST"}, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.screen), func(t *testing.T) {
			got, err := f.views.FilteredRecords(ctx, tt.screen, tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Screen != tt.screen || got.Len() != tt.want {
				t.Fatalf("expected %d %s records, got %+v", tt.want, tt.screen, got)
			}
		})
	}

	if got := testutil.ToFloat64(f.metrics.ViewEvaluationsTotal.WithLabelValues("billing")); got != 1 {
		t.Fatalf("expected 1 billing evaluation, got %v", got)
	}

	if _, err := f.views.FilteredRecords(ctx, "reports", FilterSpec{}); !errors.Is(err, ErrUnknownScreen) {
		t.Fatalf("expected ErrUnknownScreen, got %v", err)
	}
}

func TestFilteredRecordsStableAndIdempotent(t *testing.T) {
	f := newFixture(t, dataset.Default(refNow))
	ctx := context.Background()
	spec := FilterSpec{InventoryFilter: inventory.FilterAll}

	first, err := f.views.FilteredRecords(ctx, ScreenInventory, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.views.FilteredRecords(ctx, ScreenInventory, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(itemIDs(first.Inventory), itemIDs(second.Inventory)) {
		t.Fatalf("repeated evaluation differs: %v vs %v", itemIDs(first.Inventory), itemIDs(second.Inventory))
	}
	if !slices.Equal(itemIDs(first.Inventory), itemIDs(f.ds.Inventory)) {
		t.Fatalf("filter reordered records: %v", itemIDs(first.Inventory))
	}
}

func TestDashboardOverview(t *testing.T) {
	f := newFixture(t, dataset.Default(refNow))

	ov, err := f.dashboard.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ov.Metrics) != 4 || ov.Metrics[0].DisplayValue != "1,248" || ov.Metrics[0].Trend != format.TrendUp {
		t.Fatalf("unexpected first metric %+v", ov.Metrics[0])
	}
	if ov.Metrics[2].Trend != format.TrendDown {
		t.Fatalf("expected negative change to trend down, got %+v", ov.Metrics[2])
	}

	wantAgo := []string{"25 min ago", "3 hr ago", "5 hr ago", "8 hr ago", "1 day ago"}
	for i, a := range ov.Activities {
		if a.TimeAgo != wantAgo[i] {
			t.Errorf("activity %s: expected %q, got %q", a.ID, wantAgo[i], a.TimeAgo)
		}
	}
	if ov.Activities[1].StatusLabel != "Completed" || ov.Activities[4].StatusLabel != "In progress" {
		t.Fatalf("unexpected status labels: %+v", ov.Activities)
	}
	if len(ov.Chart.Labels) != 7 {
		t.Fatalf("unexpected chart %+v", ov.Chart)
	}
}

func TestDashboardKeepsActivityWithBadTimestamp(t *testing.T) {
	ds := &dataset.Dataset{Activities: []dashboard.Activity{
		{ID: "a1", Type: dashboard.ActivityPatient, Description: "x", Timestamp: "yesterday"},
	}}
	f := newFixture(t, ds)

	ov, err := f.dashboard.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ov.Activities) != 1 || ov.Activities[0].TimeAgo != "" {
		t.Fatalf("unexpected activities %+v", ov.Activities)
	}
	if f.logs.FilterMessage("excluding record with invalid date").Len() != 1 {
		t.Fatal("expected invalid timestamp to be logged")
	}
}

func TestDateMarkersWithInvalidDates(t *testing.T) {
	ds := &dataset.Dataset{
		Bills: []billing.Bill{
			{ID: "b-bad", Status: billing.StatusPending, DueDate: "garbage"},
			{ID: "b-late", Status: billing.StatusPending, DueDate: domain.DateOf(refNow.AddDate(0, 0, -1))},
		},
		Inventory: []inventory.Item{
			{ID: "i-bad", Name: "Broken", Quantity: 1, ReorderLevel: 5, ExpiryDate: "next spring"},
		},
	}
	f := newFixture(t, ds)

	if f.billing.PastDue(&ds.Bills[0]) {
		t.Fatal("malformed due date must not read as past due")
	}
	if !f.billing.PastDue(&ds.Bills[1]) {
		t.Fatal("expected b-late to be past due")
	}
	low, near := f.inventory.Flags(&ds.Inventory[0])
	if !low || near {
		t.Fatalf("expected low stock without near expiry, got low=%v near=%v", low, near)
	}

	if got := testutil.ToFloat64(f.metrics.InvalidDatesTotal.WithLabelValues("bill")); got != 1 {
		t.Fatalf("expected 1 invalid bill date, got %v", got)
	}
	if got := testutil.ToFloat64(f.metrics.InvalidDatesTotal.WithLabelValues("inventory")); got != 1 {
		t.Fatalf("expected 1 invalid inventory date, got %v", got)
	}
	cleared := f.logs.FilterMessage("clearing date marker on record with invalid date").All()
	if len(cleared) != 2 || cleared[0].ContextMap()["id"] != "b-bad" {
		t.Fatalf("unexpected warnings %+v", cleared)
	}
	if f.logs.FilterMessage("excluding record with invalid date").Len() != 0 {
		t.Fatal("markers must not report the record as excluded")
	}
}

func TestServicesWithoutCollector(t *testing.T) {
	ds := &dataset.Dataset{Inventory: []inventory.Item{
		{ID: "i-bad", Name: "Broken", Quantity: 1, ReorderLevel: 5, ExpiryDate: "next spring"},
	}}
	svc := NewInventoryService(memory.NewInventoryRepository(ds), 0, func() time.Time { return refNow }, zap.NewNop(), nil)

	got, err := svc.ListItems(context.Background(), inventory.ListItemsQuery{Filter: inventory.FilterNearExpiry})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected the malformed item to be excluded, got %v", itemIDs(got))
	}
}
