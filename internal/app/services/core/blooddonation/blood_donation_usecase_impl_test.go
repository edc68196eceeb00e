package blooddonation

import (
	"context"
	"strconv"
	"testing"
	"time"

	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDonationRepository struct {
	donationRequests map[string]*models.BloodDonationRequest
	nextID           int
}

func newFakeDonationRepository() *fakeDonationRepository {
	return &fakeDonationRepository{donationRequests: map[string]*models.BloodDonationRequest{}, nextID: 1}
}

func (f *fakeDonationRepository) CreateRequest(ctx context.Context, request *models.BloodDonationRequest) (string, error) {
	requestID := "dr-" + strconv.Itoa(f.nextID)
	f.nextID++
	stored := *request
	stored.ID = requestID
	f.donationRequests[requestID] = &stored
	return requestID, nil
}

func (f *fakeDonationRepository) FindRequestByID(ctx context.Context, requestID string) (*models.BloodDonationRequest, error) {
	request, ok := f.donationRequests[requestID]
	if !ok {
		return nil, nil
	}
	copied := *request
	return &copied, nil
}

func (f *fakeDonationRepository) FindOpenRequests(ctx context.Context) ([]models.BloodDonationRequest, error) {
	var result []models.BloodDonationRequest
	for _, request := range f.donationRequests {
		if !request.Fulfilled {
			result = append(result, *request)
		}
	}
	return result, nil
}

func (f *fakeDonationRepository) MarkFulfilled(ctx context.Context, requestID string) error {
	request, ok := f.donationRequests[requestID]
	if !ok {
		return exceptions.ErrDonationRequestNotExist(nil)
	}
	now := time.Now().UTC()
	request.Fulfilled = true
	request.FulfilledAt = &now
	return nil
}

type fakePublisher struct {
	queue    string
	messages [][]byte
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, queueName string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.queue = queueName
	f.messages = append(f.messages, body)
	return nil
}

func secretaryPrincipal() *models.Principal {
	return &models.Principal{UserID: "u-sec", Role: models.RoleSecretary}
}

func TestCreateDonationRequest(t *testing.T) {
	t.Run("Secretary Creates Request And Notification Is Queued", func(t *testing.T) {
		repo := newFakeDonationRepository()
		publisher := &fakePublisher{}
		usecase := NewBloodDonationUsecase(repo, publisher, "donor-notifications", zap.NewNop())

		result, err := usecase.CreateRequest(context.Background(), secretaryPrincipal(), &requests.CreateDonationRequest{
			BloodType: "O-",
			Urgency:   constvars.DonationUrgencyCritical,
			Hospital:  "St. Vincent",
		})
		require.NoError(t, err)
		assert.Equal(t, "O-", result.BloodType)
		assert.False(t, result.Fulfilled)

		require.Len(t, publisher.messages, 1)
		assert.Equal(t, "donor-notifications", publisher.queue)

		var notification map[string]string
		require.NoError(t, json.Unmarshal(publisher.messages[0], &notification))
		assert.Equal(t, result.RequestID, notification["request_id"])
		assert.Equal(t, "O-", notification["blood_type"])
	})

	t.Run("Publish Failure Does Not Fail The Request", func(t *testing.T) {
		repo := newFakeDonationRepository()
		publisher := &fakePublisher{err: exceptions.ErrRabbitMQPublishMessage(nil)}
		usecase := NewBloodDonationUsecase(repo, publisher, "donor-notifications", zap.NewNop())

		result, err := usecase.CreateRequest(context.Background(), secretaryPrincipal(), &requests.CreateDonationRequest{
			BloodType: "A+",
			Urgency:   constvars.DonationUrgencyRoutine,
			Hospital:  "General",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.RequestID)
		assert.Len(t, repo.donationRequests, 1)
	})

	t.Run("Patient Lacks The Grant", func(t *testing.T) {
		repo := newFakeDonationRepository()
		usecase := NewBloodDonationUsecase(repo, &fakePublisher{}, "donor-notifications", zap.NewNop())

		principal := &models.Principal{UserID: "u-1", Role: models.RolePatient, PatientID: "p-1"}
		_, err := usecase.CreateRequest(context.Background(), principal, &requests.CreateDonationRequest{
			BloodType: "B+",
			Urgency:   constvars.DonationUrgencyUrgent,
			Hospital:  "General",
		})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
		assert.Empty(t, repo.donationRequests)
	})
}

func TestFulfilDonationRequest(t *testing.T) {
	t.Run("Open Request Is Marked Fulfilled", func(t *testing.T) {
		repo := newFakeDonationRepository()
		repo.donationRequests["dr-1"] = &models.BloodDonationRequest{ID: "dr-1", BloodType: "O+"}
		usecase := NewBloodDonationUsecase(repo, &fakePublisher{}, "donor-notifications", zap.NewNop())

		err := usecase.FulfilRequest(context.Background(), secretaryPrincipal(), "dr-1")
		require.NoError(t, err)
		assert.True(t, repo.donationRequests["dr-1"].Fulfilled)
		assert.NotNil(t, repo.donationRequests["dr-1"].FulfilledAt)
	})

	t.Run("Missing Request Yields 404", func(t *testing.T) {
		repo := newFakeDonationRepository()
		usecase := NewBloodDonationUsecase(repo, &fakePublisher{}, "donor-notifications", zap.NewNop())

		err := usecase.FulfilRequest(context.Background(), secretaryPrincipal(), "dr-missing")
		assert.True(t, exceptions.IsStatus(err, constvars.StatusNotFound))
	})

	t.Run("Fulfilled Requests Drop Out Of The Open List", func(t *testing.T) {
		repo := newFakeDonationRepository()
		repo.donationRequests["dr-1"] = &models.BloodDonationRequest{ID: "dr-1", BloodType: "O+"}
		repo.donationRequests["dr-2"] = &models.BloodDonationRequest{ID: "dr-2", BloodType: "AB-", Fulfilled: true}
		usecase := NewBloodDonationUsecase(repo, &fakePublisher{}, "donor-notifications", zap.NewNop())

		result, err := usecase.ListOpenRequests(context.Background(), secretaryPrincipal())
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "dr-1", result[0].RequestID)
	})
}

func TestListOpenDonationRequests(t *testing.T) {
	t.Run("Any Authenticated Role Sees The Open List", func(t *testing.T) {
		repo := newFakeDonationRepository()
		repo.donationRequests["dr-1"] = &models.BloodDonationRequest{ID: "dr-1", BloodType: "O-"}
		usecase := NewBloodDonationUsecase(repo, &fakePublisher{}, "donor-notifications", zap.NewNop())

		principals := []*models.Principal{
			{UserID: "u-1", Role: models.RolePatient, PatientID: "p-1"},
			{UserID: "u-2", Role: models.RoleDoctor, PractitionerID: "d-1"},
			{UserID: "u-3", Role: models.RoleNurse},
		}
		for _, principal := range principals {
			result, err := usecase.ListOpenRequests(context.Background(), principal)
			require.NoError(t, err)
			require.Len(t, result, 1)
			assert.Equal(t, "dr-1", result[0].RequestID)
		}
	})

	t.Run("Anonymous Caller Gets 401", func(t *testing.T) {
		repo := newFakeDonationRepository()
		usecase := NewBloodDonationUsecase(repo, &fakePublisher{}, "donor-notifications", zap.NewNop())

		_, err := usecase.ListOpenRequests(context.Background(), nil)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusUnauthorized))
	})
}
