package constvars

const (
	RegisterSuccessMessage        = "successfully registered"
	LoginSuccessMessage           = "successfully logged in"
	LogoutSuccessMessage          = "successfully logged out"
	GetProfileSuccessMessage      = "successfully fetched profile"
	UpdateProfileSuccessMessage   = "successfully updated profile"
	ListUsersSuccessMessage       = "successfully fetched users"
	VerifyPinSuccessMessage       = "PIN verified"
	UpdatePinSuccessMessage       = "successfully updated PIN"
	ListRecordsSuccessMessage     = "successfully fetched medical records"
	CreateRecordSuccessMessage    = "successfully created medical record"
	UpdateRecordSuccessMessage    = "successfully updated medical record"
	UploadAttachmentSuccess       = "successfully uploaded attachment"
	CreateAppointmentSuccess      = "successfully booked appointment"
	ListAppointmentsSuccess       = "successfully fetched appointments"
	CancelAppointmentSuccess      = "successfully cancelled appointment"
	ListMedicationsSuccess        = "successfully fetched medications"
	UpsertMedicationSuccess       = "successfully saved medication"
	CreateDonationRequestSuccess  = "successfully created blood donation request"
	ListDonationRequestsSuccess   = "successfully fetched blood donation requests"
	FulfilDonationRequestSuccess  = "successfully marked donation request fulfilled"
	AssistantChatSuccessMessage   = "assistant replied"
)
