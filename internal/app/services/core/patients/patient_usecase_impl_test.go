package patients

import (
	"context"
	"testing"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error) {
	f.patients[patientModel.ID] = patientModel
	return patientModel.ID, nil
}

func (f *fakePatientRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepository) FindPatientByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	for _, patient := range f.patients {
		if patient.UserID == userID {
			return patient, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) UpdatePatientPinHash(ctx context.Context, patientID, pinHash string) error {
	patient, ok := f.patients[patientID]
	if !ok {
		return exceptions.ErrPatientNotExist(nil)
	}
	patient.PinHash = pinHash
	return nil
}

func newTestPatientUsecase(t *testing.T, storedPin string) (contracts.PatientUsecase, *fakePatientRepository) {
	t.Helper()

	repo := &fakePatientRepository{patients: map[string]*models.Patient{}}
	patient := &models.Patient{ID: "p-1", UserID: "u-1", FullName: "Ada Kern"}
	if storedPin != "" {
		hash, err := utils.HashPin(storedPin)
		require.NoError(t, err)
		patient.PinHash = hash
	}
	repo.patients["p-1"] = patient

	return NewPatientUsecase(repo, zap.NewNop()), repo
}

func ownerPrincipal() *models.Principal {
	return &models.Principal{UserID: "u-1", Role: models.RolePatient, PatientID: "p-1"}
}

func TestVerifyPin(t *testing.T) {
	t.Run("Correct PIN Verifies", func(t *testing.T) {
		usecase, _ := newTestPatientUsecase(t, "1234")

		result, err := usecase.VerifyPin(context.Background(), ownerPrincipal(), &requests.VerifyPin{
			PatientID: "p-1",
			Pin:       "1234",
		})
		require.NoError(t, err)
		assert.True(t, result.Verified)
	})

	t.Run("Wrong PIN Is Rejected Generically", func(t *testing.T) {
		usecase, _ := newTestPatientUsecase(t, "1234")

		result, err := usecase.VerifyPin(context.Background(), ownerPrincipal(), &requests.VerifyPin{
			PatientID: "p-1",
			Pin:       "9999",
		})
		require.NoError(t, err)
		assert.False(t, result.Verified)
		assert.Equal(t, constvars.ErrClientIncorrectPin, result.Message)
	})

	t.Run("Malformed PIN Gets The Same Rejection", func(t *testing.T) {
		usecase, _ := newTestPatientUsecase(t, "1234")

		tooShort, err := usecase.VerifyPin(context.Background(), ownerPrincipal(), &requests.VerifyPin{
			PatientID: "p-1",
			Pin:       "12",
		})
		require.NoError(t, err)

		nonDigits, err := usecase.VerifyPin(context.Background(), ownerPrincipal(), &requests.VerifyPin{
			PatientID: "p-1",
			Pin:       "12ab",
		})
		require.NoError(t, err)

		wrong, err := usecase.VerifyPin(context.Background(), ownerPrincipal(), &requests.VerifyPin{
			PatientID: "p-1",
			Pin:       "9999",
		})
		require.NoError(t, err)

		// The caller cannot distinguish failure modes.
		assert.Equal(t, wrong, tooShort)
		assert.Equal(t, wrong, nonDigits)
	})

	t.Run("No Stored PIN Rejects", func(t *testing.T) {
		usecase, _ := newTestPatientUsecase(t, "")

		result, err := usecase.VerifyPin(context.Background(), ownerPrincipal(), &requests.VerifyPin{
			PatientID: "p-1",
			Pin:       "1234",
		})
		require.NoError(t, err)
		assert.False(t, result.Verified)
	})

	t.Run("Unknown Patient Gets The Same Rejection", func(t *testing.T) {
		usecase, _ := newTestPatientUsecase(t, "1234")
		principal := &models.Principal{UserID: "u-9", Role: models.RolePatient, PatientID: "p-9"}

		result, err := usecase.VerifyPin(context.Background(), principal, &requests.VerifyPin{
			PatientID: "p-9",
			Pin:       "1234",
		})
		require.NoError(t, err)
		assert.False(t, result.Verified)
		assert.Equal(t, constvars.ErrClientIncorrectPin, result.Message)
	})

	t.Run("Another Patients PIN Is Off Limits", func(t *testing.T) {
		usecase, _ := newTestPatientUsecase(t, "1234")
		principal := &models.Principal{UserID: "u-2", Role: models.RolePatient, PatientID: "p-2"}

		result, err := usecase.VerifyPin(context.Background(), principal, &requests.VerifyPin{
			PatientID: "p-1",
			Pin:       "1234",
		})
		assert.Nil(t, result)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
	})

	t.Run("Unauthenticated Fails With 401", func(t *testing.T) {
		usecase, _ := newTestPatientUsecase(t, "1234")

		result, err := usecase.VerifyPin(context.Background(), nil, &requests.VerifyPin{
			PatientID: "p-1",
			Pin:       "1234",
		})
		assert.Nil(t, result)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusUnauthorized))
	})
}

func TestUpdatePin(t *testing.T) {
	t.Run("Valid Rotation Replaces The Hash", func(t *testing.T) {
		usecase, repo := newTestPatientUsecase(t, "1234")

		err := usecase.UpdatePin(context.Background(), ownerPrincipal(), &requests.UpdatePin{
			PatientID:  "p-1",
			CurrentPin: "1234",
			NewPin:     "567890",
			ConfirmPin: "567890",
		})
		require.NoError(t, err)
		assert.True(t, utils.CheckPinHash("567890", repo.patients["p-1"].PinHash))
		assert.False(t, utils.CheckPinHash("1234", repo.patients["p-1"].PinHash))
	})

	t.Run("First Time Setup Needs No Current PIN", func(t *testing.T) {
		usecase, repo := newTestPatientUsecase(t, "")

		err := usecase.UpdatePin(context.Background(), ownerPrincipal(), &requests.UpdatePin{
			PatientID:  "p-1",
			NewPin:     "4321",
			ConfirmPin: "4321",
		})
		require.NoError(t, err)
		assert.True(t, utils.CheckPinHash("4321", repo.patients["p-1"].PinHash))
	})

	t.Run("Confirmation Mismatch Leaves Hash Unchanged", func(t *testing.T) {
		usecase, repo := newTestPatientUsecase(t, "1234")
		before := repo.patients["p-1"].PinHash

		err := usecase.UpdatePin(context.Background(), ownerPrincipal(), &requests.UpdatePin{
			PatientID:  "p-1",
			CurrentPin: "1234",
			NewPin:     "5678",
			ConfirmPin: "8765",
		})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
		assert.Equal(t, before, repo.patients["p-1"].PinHash)
	})

	t.Run("Wrong Current PIN Leaves Hash Unchanged", func(t *testing.T) {
		usecase, repo := newTestPatientUsecase(t, "1234")
		before := repo.patients["p-1"].PinHash

		err := usecase.UpdatePin(context.Background(), ownerPrincipal(), &requests.UpdatePin{
			PatientID:  "p-1",
			CurrentPin: "0000",
			NewPin:     "5678",
			ConfirmPin: "5678",
		})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
		assert.Equal(t, before, repo.patients["p-1"].PinHash)
	})

	t.Run("Malformed New PIN Is Rejected", func(t *testing.T) {
		usecase, _ := newTestPatientUsecase(t, "1234")

		err := usecase.UpdatePin(context.Background(), ownerPrincipal(), &requests.UpdatePin{
			PatientID:  "p-1",
			CurrentPin: "1234",
			NewPin:     "12",
			ConfirmPin: "12",
		})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})

	t.Run("Another Patients PIN Cannot Be Rotated", func(t *testing.T) {
		usecase, _ := newTestPatientUsecase(t, "1234")
		principal := &models.Principal{UserID: "u-2", Role: models.RolePatient, PatientID: "p-2"}

		err := usecase.UpdatePin(context.Background(), principal, &requests.UpdatePin{
			PatientID:  "p-1",
			CurrentPin: "1234",
			NewPin:     "5678",
			ConfirmPin: "5678",
		})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
	})
}
