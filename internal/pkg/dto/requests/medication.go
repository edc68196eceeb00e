package requests

type SaveMedication struct {
	MedicationID string `json:"medication_id"`
	PatientID    string `json:"patient_id" validate:"required"`
	Name         string `json:"name" validate:"required,max=200"`
	Dosage       string `json:"dosage" validate:"required,max=100"`
	Frequency    string `json:"frequency" validate:"required,max=100"`
	StartDate    string `json:"start_date" validate:"required"`
	EndDate      string `json:"end_date"`
	Active       bool   `json:"active"`
}
