package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/billing"
	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/metrics"
)

type BillingService struct {
	repo billing.Repository
	now  Clock
	telemetry
}

func NewBillingService(repo billing.Repository, now Clock, log *zap.Logger, m *metrics.Collector) *BillingService {
	if now == nil {
		now = time.Now
	}
	return &BillingService{
		repo:      repo,
		now:       now,
		telemetry: newTelemetry(log, m),
	}
}

// ListBills returns the bills passing q.Status, in dataset order. An unknown
// status yields an empty list.
func (s *BillingService) ListBills(ctx context.Context, q billing.ListBillsQuery) ([]billing.Bill, error) {
	ctx, done := s.evaluate(ctx, ScreenBilling)

	all, err := s.repo.List(ctx)
	if err != nil {
		done(0)
		s.log.Error("failed to list bills", zap.Error(err))
		return nil, fmt.Errorf("listing bills: %w", err)
	}

	out := make([]billing.Bill, 0, len(all))
	for i := range all {
		if q.Matches(&all[i]) {
			out = append(out, all[i])
		}
	}

	done(len(out))
	return out, nil
}

func (s *BillingService) GetBill(ctx context.Context, id string) (*billing.Bill, error) {
	return s.repo.GetByID(ctx, id)
}

// PastDue reports whether b's due date lies before the service clock. A
// malformed due date reads as not past due and is logged.
func (s *BillingService) PastDue(b *billing.Bill) bool {
	late, err := b.PastDue(s.now())
	if err != nil {
		s.unreadableDate("bill", b.ID, err)
		return false
	}
	return late
}

// PastDueUnsettled returns bills whose due date has passed but whose status
// is still pending. Status is reported, never rewritten.
func (s *BillingService) PastDueUnsettled(ctx context.Context) ([]billing.Bill, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}

	now := s.now()
	var out []billing.Bill
	for i := range all {
		if all[i].Status != billing.StatusPending {
			continue
		}
		late, err := all[i].PastDue(now)
		if err != nil {
			if !errors.Is(err, domain.ErrInvalidDate) {
				return nil, err
			}
			s.invalidDate("bill", all[i].ID, err)
			continue
		}
		if late {
			out = append(out, all[i])
		}
	}
	return out, nil
}
