package models

import "time"

type Medication struct {
	ID         string     `bson:"_id,omitempty"`
	PatientID  string     `bson:"patientId"`
	PrescriberID string   `bson:"prescriberId"`
	Name       string     `bson:"name"`
	Dosage     string     `bson:"dosage"`
	Frequency  string     `bson:"frequency"`
	StartDate  time.Time  `bson:"startDate"`
	EndDate    *time.Time `bson:"endDate,omitempty"`
	Active     bool       `bson:"active"`
	TimeModel  `bson:",inline"`
}
