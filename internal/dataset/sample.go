package dataset

import (
	"time"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/billing"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/dashboard"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/experiment"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/inventory"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/patient"
)

// Default builds the sample dataset with dates relative to now.
func Default(now time.Time) *Dataset {
	daysAgo := func(n int) domain.Date { return domain.DateOf(now.AddDate(0, 0, -n)) }
	daysFromNow := func(n int) domain.Date { return domain.DateOf(now.AddDate(0, 0, n)) }
	ago := func(d time.Duration) domain.Date { return domain.TimestampOf(now.Add(-d)) }

	bill := func(b billing.Bill) billing.Bill { return b.Recalculated() }

	return &Dataset{
		Patients: []patient.Patient{
			{
				ID: "p1", Name: "John Smith", Age: 45, Gender: patient.GenderMale,
				ContactNumber: "+1-555-123-4567", Email: "john.smith@example.com",
				MedicalHistory: []string{"Hypertension", "Type 2 Diabetes"},
				LastVisit: daysAgo(5), UpcomingAppointment: daysFromNow(7),
			},
			{
				ID: "p2", Name: "Jane Doe", Age: 32, Gender: patient.GenderFemale,
				ContactNumber: "+1-555-987-6543", Email: "jane.doe@example.com",
				MedicalHistory: []string{"Asthma"},
				LastVisit: daysAgo(12),
			},
			{
				ID: "p3", Name: "Robert Johnson", Age: 58, Gender: patient.GenderMale,
				ContactNumber: "+1-555-456-7890", Email: "robert.johnson@example.com",
				MedicalHistory: []string{"Coronary Heart Disease", "Hyperlipidemia"},
				LastVisit: daysAgo(3), UpcomingAppointment: daysFromNow(14),
			},
			{
				ID: "p4", Name: "Emily Williams", Age: 28, Gender: patient.GenderFemale,
				ContactNumber: "+1-555-789-0123", Email: "emily.williams@example.com",
				MedicalHistory: []string{"Migraine"},
				LastVisit: daysAgo(8), UpcomingAppointment: daysFromNow(3),
			},
			{
				ID: "p5", Name: "Michael Brown", Age: 41, Gender: patient.GenderMale,
				ContactNumber: "+1-555-321-0987", Email: "michael.brown@example.com",
				MedicalHistory: []string{"GERD", "Anxiety"},
				LastVisit: daysAgo(15),
			},
		},

		Bills: []billing.Bill{
			bill(billing.Bill{
				ID: "b1", PatientID: "p1", PatientName: "John Smith",
				Date: daysAgo(5), DueDate: daysFromNow(10), Status: billing.StatusPending,
				Items: []billing.Item{
					{ID: "bi1", Description: "Blood Test - Complete Blood Count", Quantity: 1, UnitPrice: 120.0},
					{ID: "bi2", Description: "Consultation Fee", Quantity: 1, UnitPrice: 125.50},
				},
			}),
			bill(billing.Bill{
				ID: "b2", PatientID: "p2", PatientName: "Jane Doe",
				Date: daysAgo(12), DueDate: daysAgo(2), Status: billing.StatusPaid,
				Items: []billing.Item{
					{ID: "bi3", Description: "Urinalysis", Quantity: 1, UnitPrice: 75.0},
					{ID: "bi4", Description: "Spirometry", Quantity: 1, UnitPrice: 100.0},
				},
			}),
			bill(billing.Bill{
				ID: "b3", PatientID: "p3", PatientName: "Robert Johnson",
				Date: daysAgo(3), DueDate: daysFromNow(12), Status: billing.StatusPending,
				Items: []billing.Item{
					{ID: "bi5", Description: "Lipid Panel", Quantity: 1, UnitPrice: 95.75},
					{ID: "bi6", Description: "ECG", Quantity: 1, UnitPrice: 155.0},
					{ID: "bi7", Description: "Consultation Fee", Quantity: 1, UnitPrice: 100.0},
				},
			}),
			bill(billing.Bill{
				ID: "b4", PatientID: "p4", PatientName: "Emily Williams",
				Date: daysAgo(8), DueDate: daysAgo(1), Status: billing.StatusOverdue,
				Items: []billing.Item{
					{ID: "bi8", Description: "Blood Test - Iron Panel", Quantity: 1, UnitPrice: 95.0},
					{ID: "bi9", Description: "Consultation Fee", Quantity: 1, UnitPrice: 50.0},
				},
			}),
			bill(billing.Bill{
				ID: "b5", PatientID: "p5", PatientName: "Michael Brown",
				Date: daysAgo(15), DueDate: daysAgo(5), Status: billing.StatusPaid,
				Items: []billing.Item{
					{ID: "bi10", Description: "Gastroscopy", Quantity: 1, UnitPrice: 180.25},
					{ID: "bi11", Description: "Consultation Fee", Quantity: 1, UnitPrice: 30.0},
				},
			}),
		},

		Experiments: []experiment.Experiment{
			{
				ID: "e1", Name: "Complete Blood Count Analysis", Status: experiment.StatusCompleted,
				PatientID: "p1", PatientName: "John Smith", Type: "Hematology",
				StartDate: daysAgo(5), EndDate: daysAgo(4),
				Results: "Normal levels for all parameters. No abnormalities detected.",
			},
			{
				ID: "e2", Name: "Respiratory Function Test", Status: experiment.StatusCompleted,
				PatientID: "p2", PatientName: "Jane Doe", Type: "Pulmonology",
				StartDate: daysAgo(12), EndDate: daysAgo(11),
				Results: "Mild airway obstruction observed. Consistent with controlled asthma.",
			},
			{
				ID: "e3", Name: "Cardiac Enzyme Panel", Status: experiment.StatusInProgress,
				PatientID: "p3", PatientName: "Robert Johnson", Type: "Cardiology",
				StartDate: daysAgo(2),
			},
			{
				ID: "e4", Name: "Iron Deficiency Analysis", Status: experiment.StatusPending,
				PatientID: "p4", PatientName: "Emily Williams", Type: "Hematology",
				StartDate: daysFromNow(1),
			},
			{
				ID: "e5", Name: "H. pylori Test", Status: experiment.StatusCompleted,
				PatientID: "p5", PatientName: "Michael Brown", Type: "Gastroenterology",
				StartDate: daysAgo(15), EndDate: daysAgo(14),
				Results: "Positive for H. pylori. Treatment recommended.",
			},
		},

		Inventory: []inventory.Item{
			{ID: "i1", Name: "Test Tubes - 10ml", Category: "Lab Equipment", Quantity: 500, Unit: "pcs", ReorderLevel: 100, Location: "Storage Room A", ExpiryDate: daysFromNow(365)},
			{ID: "i2", Name: "Blood Glucose Test Strips", Category: "Diagnostic", Quantity: 250, Unit: "pcs", ReorderLevel: 50, Location: "Medical Supply Cabinet", ExpiryDate: daysFromNow(180)},
			{ID: "i3", Name: "Disposable Gloves - Size M", Category: "Protective Equipment", Quantity: 2000, Unit: "pairs", ReorderLevel: 500, Location: "Exam Room Supply"},
			{ID: "i4", Name: "Microscope Slides", Category: "Lab Equipment", Quantity: 300, Unit: "pcs", ReorderLevel: 75, Location: "Lab Cabinet B"},
			{ID: "i5", Name: "Disinfectant Solution", Category: "Cleaning Supplies", Quantity: 25, Unit: "liters", ReorderLevel: 10, Location: "Cleaning Storage", ExpiryDate: daysFromNow(720)},
		},

		Activities: []dashboard.Activity{
			{ID: "a1", Type: dashboard.ActivityPatient, Description: "New patient registered", Timestamp: ago(25 * time.Minute), RelatedID: "p1"},
			{ID: "a2", Type: dashboard.ActivityExperiment, Description: "Experiment completed", Timestamp: ago(3 * time.Hour), RelatedID: "e1", Status: string(experiment.StatusCompleted)},
			{ID: "a3", Type: dashboard.ActivityBilling, Description: "Payment received", Timestamp: ago(5 * time.Hour), RelatedID: "b2"},
			{ID: "a4", Type: dashboard.ActivityInventory, Description: "Low stock alert: Disposable Gloves", Timestamp: ago(8 * time.Hour), RelatedID: "i3"},
			{ID: "a5", Type: dashboard.ActivityExperiment, Description: "New experiment started", Timestamp: ago(24 * time.Hour), RelatedID: "e3", Status: string(experiment.StatusInProgress)},
		},

		Metrics: []dashboard.Metric{
			{ID: "m1", Title: "Total Patients", Value: 1248, Change: 5.2, Icon: "users", Color: "#0366D6"},
			{ID: "m2", Title: "Tests Performed", Value: 826, Change: 12.4, Icon: "flask-round", Color: "#00BFA5"},
			{ID: "m3", Title: "Reports Generated", Value: 492, Change: -3.1, Icon: "clipboard-check", Color: "#6200EA"},
			{ID: "m4", Title: "Pending Payments", Value: 68, Change: 8.5, Icon: "credit-card", Color: "#FF6D00"},
		},

		Chart: dashboard.Chart{
			Labels:   []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Datasets: []dashboard.Series{{Data: []float64{18, 25, 22, 38, 41, 29, 35}, StrokeWidth: 2}},
		},
	}
}
