package dashboard

import (
	"fmt"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain"
)

type ActivityType string

const (
	ActivityPatient    ActivityType = "patient"
	ActivityExperiment ActivityType = "experiment"
	ActivityBilling    ActivityType = "billing"
	ActivityInventory  ActivityType = "inventory"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityPatient, ActivityExperiment, ActivityBilling, ActivityInventory:
		return true
	}
	return false
}

// Activity is an append-only log entry. RelatedID points into the entity set
// named by Type and is never dereferenced here.
type Activity struct {
	ID          string       `yaml:"id" json:"id"`
	Type        ActivityType `yaml:"type" json:"type"`
	Description string       `yaml:"description" json:"description"`
	Timestamp   domain.Date  `yaml:"timestamp" json:"timestamp"`
	RelatedID   string       `yaml:"relatedId" json:"related_id"`
	Status      string       `yaml:"status,omitempty" json:"status,omitempty"`
}

type Metric struct {
	ID     string  `yaml:"id" json:"id"`
	Title  string  `yaml:"title" json:"title"`
	Value  float64 `yaml:"value" json:"value"`
	Change float64 `yaml:"change" json:"change"` // Signed percentage
	Icon   string  `yaml:"icon" json:"icon"`
	Color  string  `yaml:"color" json:"color"`
}

type Series struct {
	Data        []float64 `yaml:"data" json:"data"`
	StrokeWidth int       `yaml:"strokeWidth,omitempty" json:"stroke_width,omitempty"`
}

type Chart struct {
	Labels   []string `yaml:"labels" json:"labels"`
	Datasets []Series `yaml:"datasets" json:"datasets"`
}

// Validate checks that every series has one point per label.
func (c *Chart) Validate() error {
	for i, s := range c.Datasets {
		if len(s.Data) != len(c.Labels) {
			return fmt.Errorf("dataset %d: %w: %d points for %d labels", i, ErrSeriesLength, len(s.Data), len(c.Labels))
		}
	}
	return nil
}
