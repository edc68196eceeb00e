package models

import "time"

type Appointment struct {
	ID        string    `bson:"_id,omitempty"`
	PatientID string    `bson:"patientId"`
	DoctorID  string    `bson:"doctorId"`
	Reason    string    `bson:"reason"`
	Status    string    `bson:"status"`
	StartTime time.Time `bson:"startTime"`
	TimeModel `bson:",inline"`
}
