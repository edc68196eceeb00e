package responses

type UserProfile struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PatientID   string `json:"patient_id,omitempty"`
}
