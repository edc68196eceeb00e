package patients

import (
	"context"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/core/rbac"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

// VerifyPin checks the possession factor for patient self-access to sensitive
// record views. The caller-visible result collapses "malformed PIN", "unknown
// patient" and "wrong PIN" into one generic message; the dev-side error kinds
// stay distinct for server logs.
func (uc *patientUsecase) VerifyPin(ctx context.Context, principal *models.Principal, request *requests.VerifyPin) (*responses.VerifyPin, error) {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return nil, err
	}

	// The PIN belongs to the patient record; only its owner may verify it.
	if principal.PatientID == "" || principal.PatientID != request.PatientID {
		return nil, exceptions.ErrNotRecordOwner(nil)
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if !utils.IsValidPin(request.Pin) {
		uc.Log.Info("patientUsecase.VerifyPin rejected malformed PIN",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		)
		return pinRejected(), nil
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		uc.Log.Warn("patientUsecase.VerifyPin patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		)
		return pinRejected(), nil
	}

	if patient.PinHash == "" || !utils.CheckPinHash(request.Pin, patient.PinHash) {
		uc.Log.Info("patientUsecase.VerifyPin mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		)
		return pinRejected(), nil
	}

	return &responses.VerifyPin{
		Verified: true,
		Message:  constvars.VerifyPinSuccessMessage,
	}, nil
}

// pinRejected is the single caller-visible failure shape: malformed input, an
// unknown patient and a hash mismatch all look identical from the outside.
func pinRejected() *responses.VerifyPin {
	return &responses.VerifyPin{
		Verified: false,
		Message:  constvars.ErrClientIncorrectPin,
	}
}

// UpdatePin rotates the stored hash. The current PIN must verify first, and the
// new PIN must match its confirmation; both failures surface as distinct
// user-facing reasons. Only the bcrypt hash of the new PIN is persisted.
func (uc *patientUsecase) UpdatePin(ctx context.Context, principal *models.Principal, request *requests.UpdatePin) error {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return err
	}

	if principal.PatientID == "" || principal.PatientID != request.PatientID {
		return exceptions.ErrNotRecordOwner(nil)
	}

	if !utils.IsValidPin(request.NewPin) {
		return exceptions.ErrInputValidation(nil)
	}
	if request.NewPin != request.ConfirmPin {
		return exceptions.ErrPinConfirmationMismatch(nil)
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotExist(nil)
	}

	// First-time setup: no stored hash means there is no current PIN to verify.
	if patient.PinHash != "" {
		if !utils.CheckPinHash(request.CurrentPin, patient.PinHash) {
			return exceptions.ErrCurrentPinMismatch(nil)
		}
	}

	newHash, err := utils.HashPin(request.NewPin)
	if err != nil {
		return err
	}

	return uc.PatientRepository.UpdatePatientPinHash(ctx, request.PatientID, newHash)
}
