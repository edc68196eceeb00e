package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "principal"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CRPTL_SVC_"
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionPatients       = "patients"
	MongoCollectionMedicalRecords = "medical_records"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionMedications    = "medications"
	MongoCollectionDonationReqs   = "blood_donation_requests"
)

const (
	AppointmentStatusBooked    = "booked"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusFulfilled = "fulfilled"
)

const (
	DonationUrgencyRoutine  = "routine"
	DonationUrgencyUrgent   = "urgent"
	DonationUrgencyCritical = "critical"
)

const (
	PinMinLength = 4
	PinMaxLength = 6
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	RedisChatHistoryKeyFormat = "assistant_history:%s"
)

const (
	AssistantRoleSystem    = "system"
	AssistantRoleUser      = "user"
	AssistantRoleAssistant = "assistant"
)
