package requests

type UpdateProfile struct {
	Email       string `json:"email" validate:"omitempty,email"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
}
