package patient

import (
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type Patient struct {
	ID             string   `yaml:"id" json:"id"`
	Name           string   `yaml:"name" json:"name"`
	Age            int      `yaml:"age" json:"age"`
	Gender         Gender   `yaml:"gender" json:"gender"`
	ContactNumber  string   `yaml:"contactNumber" json:"contact_number"`
	Email          string   `yaml:"email" json:"email"`
	MedicalHistory []string `yaml:"medicalHistory" json:"medical_history"`

	LastVisit           domain.Date `yaml:"lastVisit" json:"last_visit"`
	UpcomingAppointment domain.Date `yaml:"upcomingAppointment,omitempty" json:"upcoming_appointment,omitempty"`
}

func (p *Patient) HasUpcomingAppointment() bool {
	return !p.UpcomingAppointment.IsZero()
}

// ListPatientsQuery filters the patients screen.
type ListPatientsQuery struct {
	Search string // Case-insensitive substring match on name
}

func (q ListPatientsQuery) Matches(p *Patient) bool {
	return domain.ContainsFold(p.Name, q.Search)
}
