package blooddonation

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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bloodDonationUsecase struct {
	DonationRepository contracts.BloodDonationRepository
	Publisher          contracts.MessagePublisher
	NotificationQueue  string
	Log                *zap.Logger
}

func NewBloodDonationUsecase(
	donationRepository contracts.BloodDonationRepository,
	publisher contracts.MessagePublisher,
	notificationQueue string,
	logger *zap.Logger,
) contracts.BloodDonationUsecase {
	return &bloodDonationUsecase{
		DonationRepository: donationRepository,
		Publisher:          publisher,
		NotificationQueue:  notificationQueue,
		Log:                logger,
	}
}

type donationNotification struct {
	RequestID string `json:"request_id"`
	BloodType string `json:"blood_type"`
	Urgency   string `json:"urgency"`
	Hospital  string `json:"hospital"`
}

// CreateRequest opens a blood donation request and queues a notification so
// downstream consumers can fan it out to registered donors. A publish failure
// does not roll the request back; the request is the source of truth and the
// notification is best effort.
func (uc *bloodDonationUsecase) CreateRequest(ctx context.Context, principal *models.Principal, request *requests.CreateDonationRequest) (*responses.BloodDonationRequest, error) {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return nil, err
	}
	if err := rbac.RequirePermission(principal, models.PermissionManageBloodDonation); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	donationRequest := &models.BloodDonationRequest{
		BloodType:   request.BloodType,
		Urgency:     request.Urgency,
		Hospital:    request.Hospital,
		Notes:       request.Notes,
		CreatedByID: principal.UserID,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	requestID, err := uc.DonationRepository.CreateRequest(ctx, donationRequest)
	if err != nil {
		return nil, err
	}
	donationRequest.ID = requestID

	uc.publishNotification(ctx, donationRequest)

	uc.Log.Info("bloodDonationUsecase.CreateRequest succeeded",
		zap.String(constvars.LoggingDonationIDKey, requestID),
	)

	return mapDonationRequestToResponse(donationRequest), nil
}

func (uc *bloodDonationUsecase) publishNotification(ctx context.Context, donationRequest *models.BloodDonationRequest) {
	body, err := json.Marshal(donationNotification{
		RequestID: donationRequest.ID,
		BloodType: donationRequest.BloodType,
		Urgency:   donationRequest.Urgency,
		Hospital:  donationRequest.Hospital,
	})
	if err != nil {
		uc.Log.Error("bloodDonationUsecase.publishNotification marshal failed", zap.Error(err))
		return
	}
	if err := uc.Publisher.Publish(ctx, uc.NotificationQueue, body); err != nil {
		uc.Log.Error("bloodDonationUsecase.publishNotification publish failed",
			zap.String(constvars.LoggingDonationIDKey, donationRequest.ID),
			zap.Error(err),
		)
	}
}

// ListOpenRequests returns unfulfilled requests, newest first. Any
// authenticated user may read the open list; prospective donors are patients
// and staff alike.
func (uc *bloodDonationUsecase) ListOpenRequests(ctx context.Context, principal *models.Principal) ([]responses.BloodDonationRequest, error) {
	if _, err := rbac.RequireAuthenticated(principal); err != nil {
		return nil, err
	}

	donationRequests, err := uc.DonationRepository.FindOpenRequests(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]responses.BloodDonationRequest, 0, len(donationRequests))
	for i := range donationRequests {
		results = append(results, *mapDonationRequestToResponse(&donationRequests[i]))
	}
	return results, nil
}

func (uc *bloodDonationUsecase) FulfilRequest(ctx context.Context, principal *models.Principal, requestID string) error {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return err
	}
	if err := rbac.RequirePermission(principal, models.PermissionManageBloodDonation); err != nil {
		return err
	}

	donationRequest, err := uc.DonationRepository.FindRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if donationRequest == nil {
		return exceptions.ErrDonationRequestNotExist(nil)
	}

	if err := uc.DonationRepository.MarkFulfilled(ctx, requestID); err != nil {
		return err
	}

	uc.Log.Info("bloodDonationUsecase.FulfilRequest succeeded",
		zap.String(constvars.LoggingDonationIDKey, requestID),
	)
	return nil
}

func mapDonationRequestToResponse(donationRequest *models.BloodDonationRequest) *responses.BloodDonationRequest {
	return &responses.BloodDonationRequest{
		RequestID:   donationRequest.ID,
		BloodType:   donationRequest.BloodType,
		Urgency:     donationRequest.Urgency,
		Hospital:    donationRequest.Hospital,
		Notes:       donationRequest.Notes,
		Fulfilled:   donationRequest.Fulfilled,
		FulfilledAt: donationRequest.FulfilledAt,
		CreatedAt:   donationRequest.CreatedAt,
	}
}
