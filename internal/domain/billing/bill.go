package billing

import (
	"fmt"
	"math"
	"time"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain"
)

// Status is set explicitly on each bill. It is never derived from DueDate.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
	StatusOverdue Status = "overdue"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusOverdue:
		return true
	}
	return false
}

// StatusFilter selects bills on the billing screen. The zero value behaves
// like FilterAll.
type StatusFilter string

const (
	FilterAll     StatusFilter = "all"
	FilterPaid    StatusFilter = StatusFilter(StatusPaid)
	FilterPending StatusFilter = StatusFilter(StatusPending)
	FilterOverdue StatusFilter = StatusFilter(StatusOverdue)
)

// Matches reports whether b passes the filter. Unknown filter values match
// nothing.
func (f StatusFilter) Matches(b *Bill) bool {
	if f == "" || f == FilterAll {
		return true
	}
	return Status(f) == b.Status
}

type Item struct {
	ID          string  `yaml:"id" json:"id"`
	Description string  `yaml:"description" json:"description"`
	Quantity    int     `yaml:"quantity" json:"quantity"`
	UnitPrice   float64 `yaml:"unitPrice" json:"unit_price"`
	Total       float64 `yaml:"total" json:"total"`
}

func (i Item) lineCents() int64 {
	return int64(i.Quantity) * toCents(i.UnitPrice)
}

type Bill struct {
	ID          string      `yaml:"id" json:"id"`
	PatientID   string      `yaml:"patientId" json:"patient_id"`
	PatientName string      `yaml:"patientName" json:"patient_name"`
	Amount      float64     `yaml:"amount" json:"amount"`
	Date        domain.Date `yaml:"date" json:"date"`
	DueDate     domain.Date `yaml:"dueDate" json:"due_date"`
	Status      Status      `yaml:"status" json:"status"`
	Items       []Item      `yaml:"items" json:"items"`
}

// ItemsTotal is the sum of quantity × unit price over all items, rounded to
// cents.
func (b *Bill) ItemsTotal() float64 {
	var cents int64
	for _, it := range b.Items {
		cents += it.lineCents()
	}
	return fromCents(cents)
}

// Recalculated returns a copy of b whose item totals and amount are computed
// from quantities and unit prices.
func (b Bill) Recalculated() Bill {
	items := make([]Item, len(b.Items))
	for i, it := range b.Items {
		it.Total = fromCents(it.lineCents())
		items[i] = it
	}
	b.Items = items
	b.Amount = b.ItemsTotal()
	return b
}

// Validate checks the stored totals against the items.
func (b *Bill) Validate() error {
	if !b.Status.IsValid() {
		return fmt.Errorf("bill %s: %w: %q", b.ID, ErrInvalidStatus, b.Status)
	}
	for _, it := range b.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("bill %s item %s: %w", b.ID, it.ID, ErrInvalidQuantity)
		}
		if it.UnitPrice < 0 {
			return fmt.Errorf("bill %s item %s: %w", b.ID, it.ID, ErrNegativeUnitPrice)
		}
		if toCents(it.Total) != it.lineCents() {
			return fmt.Errorf("bill %s item %s: %w", b.ID, it.ID, ErrItemTotalMismatch)
		}
	}
	if toCents(b.Amount) != toCents(b.ItemsTotal()) {
		return fmt.Errorf("bill %s: %w: amount %.2f, items %.2f", b.ID, ErrAmountMismatch, b.Amount, b.ItemsTotal())
	}
	return nil
}

// PastDue reports whether the due date lies before now. Status is left alone;
// a pending bill can be past due.
func (b *Bill) PastDue(now time.Time) (bool, error) {
	due, err := b.DueDate.Time()
	if err != nil {
		return false, err
	}
	return due.Before(now), nil
}

type ListBillsQuery struct {
	Status StatusFilter
}

func (q ListBillsQuery) Matches(b *Bill) bool {
	return q.Status.Matches(b)
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}
