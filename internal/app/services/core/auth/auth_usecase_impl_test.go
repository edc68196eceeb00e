package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users  map[string]*models.User
	nextID int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	userID := "u-" + strconv.Itoa(f.nextID)
	f.nextID++
	stored := *userModel
	stored.ID = userID
	f.users[userID] = &stored
	return userID, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	stored := *userModel
	f.users[userModel.ID] = &stored
	return nil
}

func (f *fakeUserRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.User, int, error) {
	var result []models.User
	for _, user := range f.users {
		result = append(result, *user)
	}
	return result, len(result), nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
	nextID   int
}

func newFakePatientRepository() *fakePatientRepository {
	return &fakePatientRepository{patients: map[string]*models.Patient{}, nextID: 1}
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error) {
	patientID := "p-" + strconv.Itoa(f.nextID)
	f.nextID++
	stored := *patientModel
	stored.ID = patientID
	f.patients[patientID] = &stored
	return patientID, nil
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

type fakeSessionStore struct {
	data map[string]string
}

func (f *fakeSessionStore) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(payload)
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeSessionStore) PushToList(ctx context.Context, key string, values ...interface{}) error {
	return nil
}

func (f *fakeSessionStore) GetList(ctx context.Context, key string) ([]string, error) {
	return nil, nil
}

func (f *fakeSessionStore) Expire(ctx context.Context, key string, exp time.Duration) error {
	return nil
}

func newTestAuthUsecase() (contracts.AuthUsecase, *fakeUserRepository, *fakePatientRepository, *fakeSessionStore) {
	userRepo := newFakeUserRepository()
	patientRepo := newFakePatientRepository()
	sessionStore := &fakeSessionStore{data: map[string]string{}}
	internalConfig := &config.InternalConfig{
		App: config.App{SessionTTLInHour: 1},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	usecase := NewAuthUsecase(userRepo, patientRepo, sessionStore, internalConfig, zap.NewNop())
	return usecase, userRepo, patientRepo, sessionStore
}

func registerRequest() *requests.RegisterPatient {
	return &requests.RegisterPatient{
		Email:          "ada@example.com",
		Username:       "adakern",
		FullName:       "Ada Kern",
		Password:       "Str0ngPass!",
		RetypePassword: "Str0ngPass!",
	}
}

func TestRegisterPatient(t *testing.T) {
	t.Run("Creates User And Linked Patient", func(t *testing.T) {
		usecase, userRepo, patientRepo, _ := newTestAuthUsecase()

		result, err := usecase.RegisterPatient(context.Background(), registerRequest())
		require.NoError(t, err)

		user := userRepo.users[result.UserID]
		require.NotNil(t, user)
		assert.Equal(t, models.RolePatient, user.Role)
		assert.Equal(t, result.PatientID, user.PatientID)
		assert.NotEqual(t, "Str0ngPass!", user.Password, "password must be stored hashed")

		patient := patientRepo.patients[result.PatientID]
		require.NotNil(t, patient)
		assert.Equal(t, result.UserID, patient.UserID)
	})

	t.Run("Duplicate Email Is Rejected", func(t *testing.T) {
		usecase, _, _, _ := newTestAuthUsecase()

		_, err := usecase.RegisterPatient(context.Background(), registerRequest())
		require.NoError(t, err)

		duplicate := registerRequest()
		duplicate.Username = "otherada"
		_, err = usecase.RegisterPatient(context.Background(), duplicate)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})

	t.Run("Password Mismatch Is Rejected", func(t *testing.T) {
		usecase, userRepo, _, _ := newTestAuthUsecase()

		request := registerRequest()
		request.RetypePassword = "different"
		_, err := usecase.RegisterPatient(context.Background(), request)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
		assert.Empty(t, userRepo.users)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Valid Credentials Yield Session Token", func(t *testing.T) {
		usecase, _, _, sessionStore := newTestAuthUsecase()

		registered, err := usecase.RegisterPatient(context.Background(), registerRequest())
		require.NoError(t, err)

		result, err := usecase.Login(context.Background(), &requests.Login{
			Username: "adakern",
			Password: "Str0ngPass!",
		})
		require.NoError(t, err)
		require.NotEmpty(t, result.Token)

		sessionID, err := utils.ParseSessionJWT(result.Token, "test-secret")
		require.NoError(t, err)

		var session models.Session
		require.NoError(t, json.Unmarshal([]byte(sessionStore.data[sessionID]), &session))
		assert.Equal(t, registered.UserID, session.UserID)
		assert.Equal(t, registered.PatientID, session.PatientID)
		assert.Equal(t, models.RolePatient, session.Role)
		assert.True(t, session.ExpiresAt.After(time.Now()))
	})

	t.Run("Wrong Password And Unknown User Fail Identically", func(t *testing.T) {
		usecase, _, _, _ := newTestAuthUsecase()

		_, err := usecase.RegisterPatient(context.Background(), registerRequest())
		require.NoError(t, err)

		_, wrongPassword := usecase.Login(context.Background(), &requests.Login{
			Username: "adakern",
			Password: "nope",
		})
		_, unknownUser := usecase.Login(context.Background(), &requests.Login{
			Username: "nobody",
			Password: "nope",
		})

		require.Error(t, wrongPassword)
		require.Error(t, unknownUser)
		assert.True(t, exceptions.IsStatus(wrongPassword, constvars.StatusUnauthorized))
		assert.True(t, exceptions.IsStatus(unknownUser, constvars.StatusUnauthorized))

		var first, second *exceptions.CustomError
		require.ErrorAs(t, wrongPassword, &first)
		require.ErrorAs(t, unknownUser, &second)
		assert.Equal(t, first.ClientMessage, second.ClientMessage)
	})
}

func TestLogout(t *testing.T) {
	usecase, _, _, sessionStore := newTestAuthUsecase()

	_, err := usecase.RegisterPatient(context.Background(), registerRequest())
	require.NoError(t, err)

	result, err := usecase.Login(context.Background(), &requests.Login{
		Username: "adakern",
		Password: "Str0ngPass!",
	})
	require.NoError(t, err)

	sessionID, err := utils.ParseSessionJWT(result.Token, "test-secret")
	require.NoError(t, err)

	require.NoError(t, usecase.Logout(context.Background(), sessionID))
	assert.Empty(t, sessionStore.data[sessionID])
}
