package contracts

import (
	"context"

	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	FindAll(ctx context.Context, page, pageSize int) ([]models.User, int, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, principal *models.Principal) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, principal *models.Principal, request *requests.UpdateProfile) (*responses.UserProfile, error)
	ListUsers(ctx context.Context, principal *models.Principal, page, pageSize int) ([]responses.UserProfile, int, error)
}
