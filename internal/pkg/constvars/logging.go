package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingUserIDKey     = "user_id"
	LoggingPatientIDKey  = "patient_id"
	LoggingRoleKey       = "role"
	LoggingPermissionKey = "permission"

	LoggingAppointmentIDKey = "appointment_id"
	LoggingRecordIDKey      = "record_id"
	LoggingDonationIDKey    = "donation_id"
	LoggingMedicationIDKey  = "medication_id"
	LoggingSessionIDKey     = "session_id"
)
