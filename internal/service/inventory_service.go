package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/inventory"
	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/metrics"
)

type InventoryService struct {
	repo   inventory.Repository
	window time.Duration
	now    Clock
	telemetry
}

// NewInventoryService uses inventory.DefaultNearExpiryWindow when window is
// not positive and time.Now when now is nil.
func NewInventoryService(repo inventory.Repository, window time.Duration, now Clock, log *zap.Logger, m *metrics.Collector) *InventoryService {
	if window <= 0 {
		window = inventory.DefaultNearExpiryWindow
	}
	if now == nil {
		now = time.Now
	}
	return &InventoryService{
		repo:      repo,
		window:    window,
		now:       now,
		telemetry: newTelemetry(log, m),
	}
}

// ListItems applies the search and the filter together. Items whose expiry
// date cannot be parsed are left out of the near-expiry view.
func (s *InventoryService) ListItems(ctx context.Context, q inventory.ListItemsQuery) ([]inventory.Item, error) {
	ctx, done := s.evaluate(ctx, ScreenInventory)

	all, err := s.repo.List(ctx)
	if err != nil {
		done(0)
		s.log.Error("failed to list inventory", zap.Error(err))
		return nil, fmt.Errorf("listing inventory: %w", err)
	}

	now := s.now()
	out := make([]inventory.Item, 0, len(all))
	for i := range all {
		ok, err := q.Matches(&all[i], now, s.window)
		if err != nil {
			if !errors.Is(err, domain.ErrInvalidDate) {
				done(len(out))
				return nil, err
			}
			s.invalidDate("inventory", all[i].ID, err)
			continue
		}
		if ok {
			out = append(out, all[i])
		}
	}

	done(len(out))
	return out, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id string) (*inventory.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Flags reports the low-stock and near-expiry markers shown next to an item.
// A malformed expiry date clears the near-expiry marker.
func (s *InventoryService) Flags(it *inventory.Item) (lowStock, nearExpiry bool) {
	near, err := it.IsNearExpiry(s.now(), s.window)
	if err != nil {
		s.unreadableDate("inventory", it.ID, err)
		near = false
	}
	return it.IsLowStock(), near
}
