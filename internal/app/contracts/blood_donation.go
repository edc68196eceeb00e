package contracts

import (
	"context"

	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
)

type BloodDonationRepository interface {
	CreateRequest(ctx context.Context, request *models.BloodDonationRequest) (requestID string, err error)
	FindRequestByID(ctx context.Context, requestID string) (*models.BloodDonationRequest, error)
	FindOpenRequests(ctx context.Context) ([]models.BloodDonationRequest, error)
	MarkFulfilled(ctx context.Context, requestID string) error
}

type BloodDonationUsecase interface {
	CreateRequest(ctx context.Context, principal *models.Principal, request *requests.CreateDonationRequest) (*responses.BloodDonationRequest, error)
	ListOpenRequests(ctx context.Context, principal *models.Principal) ([]responses.BloodDonationRequest, error)
	FulfilRequest(ctx context.Context, principal *models.Principal, requestID string) error
}
