package medications

import (
	"context"
	"strconv"
	"testing"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMedicationRepository struct {
	medications map[string]*models.Medication
	nextID      int
}

func newFakeMedicationRepository() *fakeMedicationRepository {
	return &fakeMedicationRepository{medications: map[string]*models.Medication{}, nextID: 1}
}

func (f *fakeMedicationRepository) CreateMedication(ctx context.Context, medication *models.Medication) (string, error) {
	medicationID := "m-" + strconv.Itoa(f.nextID)
	f.nextID++
	stored := *medication
	stored.ID = medicationID
	f.medications[medicationID] = &stored
	return medicationID, nil
}

func (f *fakeMedicationRepository) UpdateMedication(ctx context.Context, medication *models.Medication) error {
	stored := *medication
	f.medications[medication.ID] = &stored
	return nil
}

func (f *fakeMedicationRepository) FindMedicationByID(ctx context.Context, medicationID string) (*models.Medication, error) {
	medication, ok := f.medications[medicationID]
	if !ok {
		return nil, nil
	}
	copied := *medication
	return &copied, nil
}

func (f *fakeMedicationRepository) FindMedicationsByPatient(ctx context.Context, patientID string) ([]models.Medication, error) {
	var result []models.Medication
	for _, medication := range f.medications {
		if medication.PatientID == patientID {
			result = append(result, *medication)
		}
	}
	return result, nil
}

func newTestMedicationUsecase(repo *fakeMedicationRepository) contracts.MedicationUsecase {
	return NewMedicationUsecase(repo, zap.NewNop())
}

func saveRequest() *requests.SaveMedication {
	return &requests.SaveMedication{
		PatientID: "p-1",
		Name:      "Amoxicillin",
		Dosage:    "500mg",
		Frequency: "3x daily",
		StartDate: time.Now().UTC().Format(time.RFC3339),
		Active:    true,
	}
}

func TestListMedicationsAccess(t *testing.T) {
	repo := newFakeMedicationRepository()
	repo.medications["m-1"] = &models.Medication{ID: "m-1", PatientID: "p-1", Name: "Amoxicillin"}
	usecase := newTestMedicationUsecase(repo)

	t.Run("Patient Reads Own List", func(t *testing.T) {
		principal := &models.Principal{UserID: "u-1", Role: models.RolePatient, PatientID: "p-1"}
		result, err := usecase.ListMedications(context.Background(), principal, "p-1")
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Patient Cannot Read Another List", func(t *testing.T) {
		principal := &models.Principal{UserID: "u-2", Role: models.RolePatient, PatientID: "p-2"}
		_, err := usecase.ListMedications(context.Background(), principal, "p-1")
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
	})

	t.Run("Nurse Reads With View Grant", func(t *testing.T) {
		principal := &models.Principal{UserID: "u-3", Role: models.RoleNurse}
		result, err := usecase.ListMedications(context.Background(), principal, "p-1")
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Secretary Lacks The View Grant", func(t *testing.T) {
		principal := &models.Principal{UserID: "u-4", Role: models.RoleSecretary}
		_, err := usecase.ListMedications(context.Background(), principal, "p-1")
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
	})
}

func TestSaveMedication(t *testing.T) {
	t.Run("Doctor Prescribes Under Own ID", func(t *testing.T) {
		repo := newFakeMedicationRepository()
		usecase := newTestMedicationUsecase(repo)

		principal := &models.Principal{UserID: "u-doc", Role: models.RoleDoctor, PractitionerID: "d-5"}
		result, err := usecase.SaveMedication(context.Background(), principal, saveRequest())
		require.NoError(t, err)
		assert.Equal(t, "p-1", result.PatientID)
		assert.Equal(t, "d-5", repo.medications[result.MedicationID].PrescriberID)
	})

	t.Run("Patient Cannot Prescribe", func(t *testing.T) {
		repo := newFakeMedicationRepository()
		usecase := newTestMedicationUsecase(repo)

		principal := &models.Principal{UserID: "u-1", Role: models.RolePatient, PatientID: "p-1"}
		_, err := usecase.SaveMedication(context.Background(), principal, saveRequest())
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
		assert.Empty(t, repo.medications)
	})

	t.Run("Existing Medication Is Updated In Place", func(t *testing.T) {
		repo := newFakeMedicationRepository()
		repo.medications["m-1"] = &models.Medication{
			ID: "m-1", PatientID: "p-1", PrescriberID: "d-5",
			Name: "Amoxicillin", Dosage: "250mg", Active: true,
		}
		usecase := newTestMedicationUsecase(repo)

		request := saveRequest()
		request.MedicationID = "m-1"
		request.Dosage = "500mg"
		request.Active = false

		principal := &models.Principal{UserID: "u-doc", Role: models.RoleDoctor, PractitionerID: "d-5"}
		result, err := usecase.SaveMedication(context.Background(), principal, request)
		require.NoError(t, err)
		assert.Equal(t, "m-1", result.MedicationID)
		assert.Equal(t, "500mg", repo.medications["m-1"].Dosage)
		assert.False(t, repo.medications["m-1"].Active)
	})

	t.Run("Unknown Medication ID Yields 404", func(t *testing.T) {
		repo := newFakeMedicationRepository()
		usecase := newTestMedicationUsecase(repo)

		request := saveRequest()
		request.MedicationID = "m-missing"

		principal := &models.Principal{UserID: "u-doc", Role: models.RoleDoctor, PractitionerID: "d-5"}
		_, err := usecase.SaveMedication(context.Background(), principal, request)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusNotFound))
	})
}
