package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"oneof":    "must be one of %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"pin":      "must be 4 to 6 digits",
}

var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientResourceNotFound              = "we can't find what you're looking for"
	ErrClientIncorrectPin                  = "incorrect PIN"
	ErrClientCurrentPinMismatch            = "current PIN is incorrect"
	ErrClientPinConfirmationMismatch       = "new PIN and confirmation do not match"
	ErrClientAssistantUnavailable          = "the assistant is unavailable right now, please try again"
	ErrClientUploadTooLarge                = "uploaded file is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput       = "invalid input"
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevUploadTooLarge     = "request body exceeds upload size limit"
	ErrDevValidationFailed   = "validation failed"
	ErrDevInvalidCredentials = "invalid credentials"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevFailedToHashPin      = "failed to hash PIN"

	// Usecase messages
	ErrDevPasswordsDoNotMatch   = "passwords do not match"
	ErrDevEmailAlreadyExists    = "email already exists"
	ErrDevUsernameAlreadyExists = "username already exists"
	ErrDevUserNotExists         = "user does not exist"
	ErrDevPatientNotExists      = "patient does not exist"
	ErrDevRecordNotExists       = "medical record does not exist"
	ErrDevAppointmentNotExists  = "appointment does not exist"
	ErrDevDonationReqNotExists  = "blood donation request does not exist"
	ErrDevPinMalformed          = "supplied PIN failed length validation"
	ErrDevPinMismatch           = "supplied PIN does not match stored hash"
	ErrDevCurrentPinMismatch    = "current PIN does not match stored hash"
	ErrDevPinConfirmationMismatch = "new PIN confirmation mismatch"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthSessionExpired        = "session expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthPermissionDenied      = "permission denied"
	ErrDevAuthPrincipalMissing      = "no principal on request"
	ErrDevAuthNotRecordOwner        = "principal does not own the requested patient record"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisStoreSession  = "failed to store session data into redis"
	ErrDevRedisGetKey        = "failed to get key from redis"
	ErrDevRedisSetKey        = "failed to set key into redis"
	ErrDevRedisDeleteKey     = "failed to delete key from redis"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"
	ErrDevMinioFailedToGetObject    = "failed to get object from bucket %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue"

	// Assistant messages
	ErrDevAssistantBuildRequest   = "failed to build assistant HTTP request"
	ErrDevAssistantSendRequest    = "failed to send request to assistant endpoint"
	ErrDevAssistantDecodeResponse = "failed to decode assistant response"
	ErrDevAssistantRateLimited    = "assistant limiter wait aborted"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)
