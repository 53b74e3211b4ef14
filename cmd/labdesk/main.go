package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/labdesk/config"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/dataset"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/repository/memory"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/service"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/settings"
	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/logger"
	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/metrics"
	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/tracer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	envFile  string
	dataset  string
	now      string
	lang     string
	theme    string
	units    string
	output   string
	logLevel string
}

// app is assembled once per invocation in the root command's pre-run hook.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	shutdown tracer.ShutdownFunc
	now      time.Time
	output   string
	settings *settings.Store

	billing   *service.BillingService
	inventory *service.InventoryService
	dashboard *service.DashboardService
	views     *service.ViewService
}

func newRootCmd() *cobra.Command {
	var opts options
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "labdesk",
		Short:        "Inspect the derived view state of the lab desk screens",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", "", "Load environment variables from this file before reading configuration")
	flags.StringVar(&opts.dataset, "dataset", "", "YAML dataset to load (default: DATASET_PATH or the built-in sample)")
	flags.StringVar(&opts.now, "now", "", "Reference time as YYYY-MM-DD or RFC 3339 (default: current time)")
	flags.StringVar(&opts.lang, "lang", "", "Language: en or ar (default: DEFAULT_LANGUAGE)")
	flags.StringVar(&opts.theme, "theme", "", "Theme: light, dark or system (default: DEFAULT_THEME)")
	flags.StringVar(&opts.units, "units", "", "Units: metric or imperial (default: DEFAULT_UNITS)")
	flags.StringVarP(&opts.output, "output", "o", "json", "Output format: json or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level override (default: LOG_LEVEL)")

	rootCmd.AddCommand(
		patientsCmd(a),
		billsCmd(a),
		experimentsCmd(a),
		inventoryCmd(a),
		dashboardCmd(a),
		settingsCmd(a),
	)

	return rootCmd
}

func (a *app) init(opts options) error {
	if opts.envFile != "" {
		// Variables already set in the environment win over the file.
		if err := godotenv.Load(opts.envFile); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.dataset != "" {
		cfg.Dataset.Path = opts.dataset
	}
	switch strings.ToLower(opts.output) {
	case outputJSON, outputYAML:
	default:
		return fmt.Errorf("unsupported output format %q", opts.output)
	}

	log, err := logger.New(cfg.Log, cfg.App)
	if err != nil {
		return err
	}

	shutdown, err := tracer.Setup(context.Background(), cfg.Tracing, cfg.App)
	if err != nil {
		return fmt.Errorf("initialising tracer: %w", err)
	}

	now := time.Now()
	if opts.now != "" {
		now, err = domain.Date(opts.now).Time()
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
	}

	ds, err := dataset.Load(cfg.Dataset.Path, now)
	if err != nil {
		return err
	}

	m := metrics.NewCollector(strings.ReplaceAll(cfg.App.Name, "-", "_"), prometheus.NewRegistry())

	initial := settings.AppSettings{
		Language:      settings.Language(cfg.Settings.Language),
		Theme:         settings.Theme(cfg.Settings.Theme),
		Units:         settings.Units(cfg.Settings.Units),
		Notifications: cfg.Settings.Notifications,
	}
	store, err := settings.NewStore(initial, log, m)
	if err != nil {
		return err
	}
	if err := applySettingsFlags(store, opts); err != nil {
		return err
	}

	clock := func() time.Time { return now }
	patients := service.NewPatientService(memory.NewPatientRepository(ds), log, m)
	experiments := service.NewExperimentService(memory.NewExperimentRepository(ds), log, m)

	a.cfg = cfg
	a.log = log
	a.shutdown = shutdown
	a.now = now
	a.output = strings.ToLower(opts.output)
	a.settings = store
	a.billing = service.NewBillingService(memory.NewBillRepository(ds), clock, log, m)
	a.inventory = service.NewInventoryService(memory.NewInventoryRepository(ds), cfg.Display.NearExpiryWindow, clock, log, m)
	a.dashboard = service.NewDashboardService(memory.NewDashboardRepository(ds), store, clock, log, m)
	a.views = service.NewViewService(patients, a.billing, experiments, a.inventory)

	log.Debug("labdesk ready",
		zap.String("env", cfg.App.Environment),
		zap.Int("patients", len(ds.Patients)),
		zap.Int("bills", len(ds.Bills)),
		zap.Int("experiments", len(ds.Experiments)),
		zap.Int("inventory", len(ds.Inventory)),
	)
	return nil
}

func applySettingsFlags(store *settings.Store, opts options) error {
	if opts.lang != "" {
		if err := store.SetLanguage(settings.Language(opts.lang)); err != nil {
			return fmt.Errorf("--lang: %w", err)
		}
	}
	if opts.theme != "" {
		if err := store.SetTheme(settings.Theme(opts.theme)); err != nil {
			return fmt.Errorf("--theme: %w", err)
		}
	}
	if opts.units != "" {
		if err := store.SetUnits(settings.Units(opts.units)); err != nil {
			return fmt.Errorf("--units: %w", err)
		}
	}
	return nil
}

func (a *app) close(ctx context.Context) error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.shutdown == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return a.shutdown(ctx)
}
