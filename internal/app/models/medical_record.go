package models

import "time"

type MedicalRecord struct {
	ID          string    `bson:"_id,omitempty"`
	PatientID   string    `bson:"patientId"`
	DoctorID    string    `bson:"doctorId"`
	Title       string    `bson:"title"`
	Summary     string    `bson:"summary"`
	Details     string    `bson:"details,omitempty"`
	Attachments []string  `bson:"attachments,omitempty"`
	IsApproved  bool      `bson:"isApproved"`
	RecordDate  time.Time `bson:"recordDate"`
	TimeModel   `bson:",inline"`
}
