package contracts

import (
	"context"

	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patientModel *models.Patient) (patientID string, err error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindPatientByUserID(ctx context.Context, userID string) (*models.Patient, error)
	// UpdatePatientPinHash replaces the stored hash in a single document update;
	// the read-verify-write cycle above it relies on that being atomic.
	UpdatePatientPinHash(ctx context.Context, patientID, pinHash string) error
}

type PatientUsecase interface {
	VerifyPin(ctx context.Context, principal *models.Principal, request *requests.VerifyPin) (*responses.VerifyPin, error)
	UpdatePin(ctx context.Context, principal *models.Principal, request *requests.UpdatePin) error
}
