package responses

import "time"

type BloodDonationRequest struct {
	RequestID   string     `json:"request_id"`
	BloodType   string     `json:"blood_type"`
	Urgency     string     `json:"urgency"`
	Hospital    string     `json:"hospital"`
	Notes       string     `json:"notes,omitempty"`
	Fulfilled   bool       `json:"fulfilled"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
