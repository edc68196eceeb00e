package contracts

import (
	"context"

	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
)

type MedicationRepository interface {
	CreateMedication(ctx context.Context, medication *models.Medication) (medicationID string, err error)
	UpdateMedication(ctx context.Context, medication *models.Medication) error
	FindMedicationByID(ctx context.Context, medicationID string) (*models.Medication, error)
	FindMedicationsByPatient(ctx context.Context, patientID string) ([]models.Medication, error)
}

type MedicationUsecase interface {
	ListMedications(ctx context.Context, principal *models.Principal, patientID string) ([]responses.Medication, error)
	SaveMedication(ctx context.Context, principal *models.Principal, request *requests.SaveMedication) (*responses.Medication, error)
}
