package models

import "time"

type BloodDonationRequest struct {
	ID          string     `bson:"_id,omitempty"`
	BloodType   string     `bson:"bloodType"`
	Urgency     string     `bson:"urgency"`
	Hospital    string     `bson:"hospital"`
	Notes       string     `bson:"notes,omitempty"`
	CreatedByID string     `bson:"createdById"`
	Fulfilled   bool       `bson:"fulfilled"`
	FulfilledAt *time.Time `bson:"fulfilledAt,omitempty"`
	TimeModel   `bson:",inline"`
}
