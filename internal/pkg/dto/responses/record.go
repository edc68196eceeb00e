package responses

import "time"

type MedicalRecord struct {
	RecordID    string    `json:"record_id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Details     string    `json:"details,omitempty"`
	Attachments []string  `json:"attachments,omitempty"`
	IsApproved  bool      `json:"is_approved"`
	RecordDate  time.Time `json:"record_date"`
}

type Attachment struct {
	RecordID   string `json:"record_id"`
	ObjectName string `json:"object_name"`
	URL        string `json:"url,omitempty"`
}
