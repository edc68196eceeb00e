package responses

import "time"

type Appointment struct {
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	DoctorID      string    `json:"doctor_id"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	StartTime     time.Time `json:"start_time"`
}
