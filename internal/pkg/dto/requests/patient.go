package requests

type VerifyPin struct {
	PatientID string `json:"-"`
	Pin       string `json:"pin"`
}

type UpdatePin struct {
	PatientID  string `json:"-"`
	CurrentPin string `json:"current_pin" validate:"required"`
	NewPin     string `json:"new_pin" validate:"required,pin"`
	ConfirmPin string `json:"confirm_pin" validate:"required"`
}
