package responses

import "time"

type Medication struct {
	MedicationID string     `json:"medication_id"`
	PatientID    string     `json:"patient_id"`
	Name         string     `json:"name"`
	Dosage       string     `json:"dosage"`
	Frequency    string     `json:"frequency"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Active       bool       `json:"active"`
}
