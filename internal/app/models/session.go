package models

import "time"

// Session is the payload stored in Redis under the session ID. A session whose
// ExpiresAt is in the past is treated as absent by the resolver, never as an error.
type Session struct {
	SessionID      string    `json:"sessionId"`
	UserID         string    `json:"userId"`
	Role           Role      `json:"role"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"displayName"`
	PatientID      string    `json:"patientId,omitempty"`
	PractitionerID string    `json:"practitionerId,omitempty"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// Principal is the authenticated actor for the lifetime of one request. It is
// built once by the session resolver and threaded as a value, never stored.
type Principal struct {
	UserID         string
	Role           Role
	DisplayName    string
	PatientID      string
	PractitionerID string
}

func (s *Session) Principal() *Principal {
	return &Principal{
		UserID:         s.UserID,
		Role:           s.Role,
		DisplayName:    s.DisplayName,
		PatientID:      s.PatientID,
		PractitionerID: s.PractitionerID,
	}
}
