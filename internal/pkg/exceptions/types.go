package exceptions

import (
	"careportal-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrUploadTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooLarge, constvars.ErrClientUploadTooLarge, constvars.ErrDevUploadTooLarge)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrHashPin = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPin)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Auth
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrPasswordDoNotMatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevPasswordsDoNotMatch)
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}
	ErrUsernameAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUsernameAlreadyExists, constvars.ErrDevUsernameAlreadyExists)
	}
	ErrUserNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevUserNotExists)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrUnauthenticated = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthPrincipalMissing)
	}
	ErrForbidden = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthPermissionDenied)
	}
	ErrNotRecordOwner = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthNotRecordOwner)
	}

	// PIN gate
	ErrPinMalformed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientIncorrectPin, constvars.ErrDevPinMalformed)
	}
	ErrPinMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientIncorrectPin, constvars.ErrDevPinMismatch)
	}
	ErrCurrentPinMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCurrentPinMismatch, constvars.ErrDevCurrentPinMismatch)
	}
	ErrPinConfirmationMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPinConfirmationMismatch, constvars.ErrDevPinConfirmationMismatch)
	}

	// Domain lookups
	ErrPatientNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevPatientNotExists)
	}
	ErrRecordNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevRecordNotExists)
	}
	ErrAppointmentNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevAppointmentNotExists)
	}
	ErrDonationRequestNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevDonationReqNotExists)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetKey)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetKey)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteKey)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotParseJSON)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQPublish)
	}

	// Assistant
	ErrAssistantBuildRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientAssistantUnavailable, constvars.ErrDevAssistantBuildRequest)
	}
	ErrAssistantSendRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientAssistantUnavailable, constvars.ErrDevAssistantSendRequest)
	}
	ErrAssistantDecodeResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientAssistantUnavailable, constvars.ErrDevAssistantDecodeResponse)
	}
	ErrAssistantRateLimited = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientAssistantUnavailable, constvars.ErrDevAssistantRateLimited)
	}
)
