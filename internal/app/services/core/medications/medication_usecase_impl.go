package medications

import (
	"context"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/core/rbac"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type medicationUsecase struct {
	MedicationRepository contracts.MedicationRepository
	Log                  *zap.Logger
}

func NewMedicationUsecase(
	medicationRepository contracts.MedicationRepository,
	logger *zap.Logger,
) contracts.MedicationUsecase {
	return &medicationUsecase{
		MedicationRepository: medicationRepository,
		Log:                  logger,
	}
}

// ListMedications returns a patient's medication list. Patients read their
// own list; any other caller needs the view-medications grant.
func (uc *medicationUsecase) ListMedications(ctx context.Context, principal *models.Principal, patientID string) ([]responses.Medication, error) {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return nil, err
	}

	if principal.Role == models.RolePatient {
		if principal.PatientID != patientID {
			return nil, exceptions.ErrNotRecordOwner(nil)
		}
	} else if err := rbac.RequirePermission(principal, models.PermissionViewMedications); err != nil {
		return nil, err
	}

	medications, err := uc.MedicationRepository.FindMedicationsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	results := make([]responses.Medication, 0, len(medications))
	for i := range medications {
		results = append(results, *mapMedicationToResponse(&medications[i]))
	}
	return results, nil
}

// SaveMedication creates a prescription, or updates one when medication_id is
// set. Requires the manage-medications grant.
func (uc *medicationUsecase) SaveMedication(ctx context.Context, principal *models.Principal, request *requests.SaveMedication) (*responses.Medication, error) {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return nil, err
	}
	if err := rbac.RequirePermission(principal, models.PermissionManageMedications); err != nil {
		return nil, err
	}

	startDate, err := time.Parse(time.RFC3339, request.StartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	var endDate *time.Time
	if request.EndDate != "" {
		parsed, err := time.Parse(time.RFC3339, request.EndDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		endDate = &parsed
	}

	if request.MedicationID != "" {
		return uc.updateExisting(ctx, request, startDate, endDate)
	}

	now := time.Now().UTC()
	medication := &models.Medication{
		PatientID:    request.PatientID,
		PrescriberID: principal.PractitionerID,
		Name:         request.Name,
		Dosage:       request.Dosage,
		Frequency:    request.Frequency,
		StartDate:    startDate,
		EndDate:      endDate,
		Active:       request.Active,
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	medicationID, err := uc.MedicationRepository.CreateMedication(ctx, medication)
	if err != nil {
		return nil, err
	}
	medication.ID = medicationID

	uc.Log.Info("medicationUsecase.SaveMedication succeeded",
		zap.String(constvars.LoggingMedicationIDKey, medicationID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	return mapMedicationToResponse(medication), nil
}

func (uc *medicationUsecase) updateExisting(ctx context.Context, request *requests.SaveMedication, startDate time.Time, endDate *time.Time) (*responses.Medication, error) {
	existing, err := uc.MedicationRepository.FindMedicationByID(ctx, request.MedicationID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotExist(nil)
	}

	existing.Name = request.Name
	existing.Dosage = request.Dosage
	existing.Frequency = request.Frequency
	existing.StartDate = startDate
	existing.EndDate = endDate
	existing.Active = request.Active

	if err := uc.MedicationRepository.UpdateMedication(ctx, existing); err != nil {
		return nil, err
	}

	uc.Log.Info("medicationUsecase.SaveMedication updated",
		zap.String(constvars.LoggingMedicationIDKey, existing.ID),
	)

	return mapMedicationToResponse(existing), nil
}

func mapMedicationToResponse(medication *models.Medication) *responses.Medication {
	return &responses.Medication{
		MedicationID: medication.ID,
		PatientID:    medication.PatientID,
		Name:         medication.Name,
		Dosage:       medication.Dosage,
		Frequency:    medication.Frequency,
		StartDate:    medication.StartDate,
		EndDate:      medication.EndDate,
		Active:       medication.Active,
	}
}
