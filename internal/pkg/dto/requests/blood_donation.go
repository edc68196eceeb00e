package requests

type CreateDonationRequest struct {
	BloodType string `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Urgency   string `json:"urgency" validate:"required,oneof=routine urgent critical"`
	Hospital  string `json:"hospital" validate:"required,max=200"`
	Notes     string `json:"notes" validate:"omitempty,max=1000"`
}
