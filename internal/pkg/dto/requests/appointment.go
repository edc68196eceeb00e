package requests

type BookAppointment struct {
	DoctorID  string `json:"doctor_id" validate:"required"`
	Reason    string `json:"reason" validate:"required,max=500"`
	StartTime string `json:"start_time" validate:"required"`
}
