package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/dashboard"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/format"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/settings"
	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/metrics"
)

type MetricCard struct {
	dashboard.Metric `yaml:",inline"`
	DisplayValue     string       `json:"display_value" yaml:"displayValue"`
	Trend            format.Trend `json:"trend" yaml:"trend"`
}

type ActivityEntry struct {
	dashboard.Activity `yaml:",inline"`
	TimeAgo            string      `json:"time_ago" yaml:"timeAgo"`
	StatusLabel        string      `json:"status_label,omitempty" yaml:"statusLabel,omitempty"`
	Tone               format.Tone `json:"tone,omitempty" yaml:"tone,omitempty"`
}

type Overview struct {
	Metrics    []MetricCard    `json:"metrics" yaml:"metrics"`
	Activities []ActivityEntry `json:"activities" yaml:"activities"`
	Chart      dashboard.Chart `json:"chart" yaml:"chart"`
}

type DashboardService struct {
	repo     dashboard.Repository
	settings *settings.Store
	now      Clock
	telemetry
}

func NewDashboardService(repo dashboard.Repository, store *settings.Store, now Clock, log *zap.Logger, m *metrics.Collector) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		repo:      repo,
		settings:  store,
		now:       now,
		telemetry: newTelemetry(log, m),
	}
}

// Overview assembles the dashboard in source order. Metric values are
// grouped for the current language. An activity whose timestamp cannot be
// parsed keeps an empty TimeAgo.
func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	ctx, done := s.evaluate(ctx, screenDashboard)

	ms, err := s.repo.Metrics(ctx)
	if err != nil {
		done(0)
		return nil, fmt.Errorf("loading metrics: %w", err)
	}
	acts, err := s.repo.Activities(ctx)
	if err != nil {
		done(0)
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	chart, err := s.repo.Chart(ctx)
	if err != nil {
		done(0)
		return nil, fmt.Errorf("loading chart: %w", err)
	}

	lang := string(s.settings.Get().Language)
	ov := &Overview{
		Metrics:    make([]MetricCard, 0, len(ms)),
		Activities: make([]ActivityEntry, 0, len(acts)),
		Chart:      chart,
	}

	for _, m := range ms {
		ov.Metrics = append(ov.Metrics, MetricCard{
			Metric:       m,
			DisplayValue: format.MetricValue(m.Value, lang),
			Trend:        format.TrendOf(m.Change),
		})
	}

	now := s.now()
	for _, a := range acts {
		entry := ActivityEntry{Activity: a}
		if ts, err := a.Timestamp.Time(); err != nil {
			s.invalidDate("activity", a.ID, err)
		} else {
			entry.TimeAgo = format.RelativeTime(ts, now)
		}
		if a.Status != "" {
			entry.StatusLabel = format.StatusLabel(a.Status)
			entry.Tone = format.StatusTone(a.Status)
		}
		ov.Activities = append(ov.Activities, entry)
	}

	done(len(ov.Metrics) + len(ov.Activities))
	return ov, nil
}
