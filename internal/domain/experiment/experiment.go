package experiment

import (
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// IsFinished reports whether the status is terminal. Only finished
// experiments are expected to carry an end date.
func (s Status) IsFinished() bool {
	return s == StatusCompleted || s == StatusFailed
}

type Experiment struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Status      Status      `yaml:"status" json:"status"`
	PatientID   string      `yaml:"patientId" json:"patient_id"`
	PatientName string      `yaml:"patientName" json:"patient_name"`
	Type        string      `yaml:"type" json:"type"`
	StartDate   domain.Date `yaml:"startDate" json:"start_date"`
	EndDate     domain.Date `yaml:"endDate,omitempty" json:"end_date,omitempty"`
	Results     string      `yaml:"results,omitempty" json:"results,omitempty"`
}

func (e *Experiment) HasResults() bool {
	return e.Results != ""
}

// ListExperimentsQuery filters the experiments screen. A nil Status shows
// every experiment; at most one status is active at a time.
type ListExperimentsQuery struct {
	Status *Status
}

// ToggleStatus activates s, or clears the filter when s is already active.
func (q *ListExperimentsQuery) ToggleStatus(s Status) {
	if q.Status != nil && *q.Status == s {
		q.Status = nil
		return
	}
	q.Status = &s
}

func (q ListExperimentsQuery) Matches(e *Experiment) bool {
	return q.Status == nil || *q.Status == e.Status
}
