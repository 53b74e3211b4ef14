package settings

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/format"
	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/metrics"
)

// Observer receives every effective change. It runs on the writer's
// goroutine after the store lock has been released.
type Observer func(prev, next AppSettings)

type Store struct {
	mu        sync.RWMutex
	current   AppSettings
	defaults  AppSettings
	observers map[uuid.UUID]Observer
	order     []uuid.UUID

	log     *zap.Logger
	metrics *metrics.Collector
}

// NewStore starts from initial, which also becomes the target of
// ResetToDefaults. metrics may be nil.
func NewStore(initial AppSettings, log *zap.Logger, m *metrics.Collector) (*Store, error) {
	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("initial settings: %w", err)
	}
	return &Store{
		current:   initial,
		defaults:  initial,
		observers: make(map[uuid.UUID]Observer),
		log:       log,
		metrics:   m,
	}, nil
}

func (s *Store) Get() AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) Direction() format.Direction {
	return s.Get().Direction()
}

func (s *Store) IsDark(systemDark bool) bool {
	return s.Get().IsDark(systemDark)
}

func (s *Store) SetLanguage(l Language) error {
	if !l.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, l)
	}
	s.update("language", func(cur *AppSettings) { cur.Language = l })
	return nil
}

func (s *Store) SetTheme(t Theme) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, t)
	}
	s.update("theme", func(cur *AppSettings) { cur.Theme = t })
	return nil
}

// CycleTheme advances light → dark → system → light and returns the new theme.
func (s *Store) CycleTheme() Theme {
	next := s.update("theme", func(cur *AppSettings) { cur.Theme = cur.Theme.Next() })
	return next.Theme
}

func (s *Store) SetUnits(u Units) error {
	if !u.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidUnits, u)
	}
	s.update("units", func(cur *AppSettings) { cur.Units = u })
	return nil
}

func (s *Store) ToggleNotifications() bool {
	next := s.update("notifications", func(cur *AppSettings) { cur.Notifications = !cur.Notifications })
	return next.Notifications
}

func (s *Store) ResetToDefaults() {
	s.update("reset", func(cur *AppSettings) { *cur = s.defaults })
}

// Subscribe registers fn and returns the token for Unsubscribe. Observers
// are called in subscription order.
func (s *Store) Subscribe(fn Observer) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	s.observers[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	return id
}

// Unsubscribe reports whether id was registered.
func (s *Store) Unsubscribe(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.observers[id]; !ok {
		return false
	}
	delete(s.observers, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// update applies mutate under the write lock. Observers are notified only
// when the settings actually changed.
func (s *Store) update(field string, mutate func(*AppSettings)) AppSettings {
	s.mu.Lock()
	old := s.current
	mutate(&s.current)
	next := s.current
	var notify []Observer
	if next != old {
		notify = make([]Observer, 0, len(s.order))
		for _, id := range s.order {
			notify = append(notify, s.observers[id])
		}
	}
	s.mu.Unlock()

	if next == old {
		return next
	}

	if s.metrics != nil {
		s.metrics.SettingsChangesTotal.WithLabelValues(field).Inc()
	}
	s.log.Info("settings changed",
		zap.String("field", field),
		zap.String("language", string(next.Language)),
		zap.String("theme", string(next.Theme)),
		zap.String("units", string(next.Units)),
		zap.Bool("notifications", next.Notifications),
	)

	for _, fn := range notify {
		fn(old, next)
	}
	return next
}
