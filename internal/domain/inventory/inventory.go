package inventory

import (
	"time"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain"
)

// DefaultNearExpiryWindow is how far ahead an expiry date counts as near.
const DefaultNearExpiryWindow = 30 * 24 * time.Hour

type Item struct {
	ID           string      `yaml:"id" json:"id"`
	Name         string      `yaml:"name" json:"name"`
	Category     string      `yaml:"category" json:"category"`
	Quantity     int         `yaml:"quantity" json:"quantity"`
	Unit         string      `yaml:"unit" json:"unit"`
	ReorderLevel int         `yaml:"reorderLevel" json:"reorder_level"`
	Location     string      `yaml:"location" json:"location"`
	ExpiryDate   domain.Date `yaml:"expiryDate,omitempty" json:"expiry_date,omitempty"`
}

// IsLowStock reports whether the quantity has fallen to or below the reorder
// level.
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// IsNearExpiry reports whether the item expires within window of now. Items
// without an expiry date are never near expiry. A malformed expiry date
// returns an error wrapping domain.ErrInvalidDate.
func (i *Item) IsNearExpiry(now time.Time, window time.Duration) (bool, error) {
	if i.ExpiryDate.IsZero() {
		return false, nil
	}
	expiry, err := i.ExpiryDate.Time()
	if err != nil {
		return false, err
	}
	return !expiry.After(now.Add(window)), nil
}

// Filter selects items on the inventory screen. The zero value behaves like
// FilterAll.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterLowStock   Filter = "lowStock"
	FilterNearExpiry Filter = "nearExpiry"
)

type ListItemsQuery struct {
	Filter Filter
	Search string // Case-insensitive substring match on name
}

// Matches applies the search and the filter together. Unknown filter values
// match nothing.
func (q ListItemsQuery) Matches(i *Item, now time.Time, window time.Duration) (bool, error) {
	if !domain.ContainsFold(i.Name, q.Search) {
		return false, nil
	}

	switch q.Filter {
	case "", FilterAll:
		return true, nil
	case FilterLowStock:
		return i.IsLowStock(), nil
	case FilterNearExpiry:
		return i.IsNearExpiry(now, window)
	}
	return false, nil
}

// UsesDates reports whether evaluating the query parses expiry dates.
func (q ListItemsQuery) UsesDates() bool {
	return q.Filter == FilterNearExpiry
}
