package models

type User struct {
	ID             string `bson:"_id,omitempty"`
	Role           Role   `bson:"role"`
	Email          string `bson:"email"`
	Username       string `bson:"username"`
	Password       string `bson:"password"`
	DisplayName    string `bson:"displayName"`
	PatientID      string `bson:"patientId,omitempty"`
	PractitionerID string `bson:"practitionerId,omitempty"`
	TimeModel      `bson:",inline"`
}
