package models

type Patient struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"userId"`
	FullName  string `bson:"fullName"`
	BloodType string `bson:"bloodType,omitempty"`
	// PinHash is the bcrypt hash of the record-access PIN. The plaintext PIN is
	// never stored or logged.
	PinHash   string `bson:"pinHash,omitempty"`
	TimeModel `bson:",inline"`
}
