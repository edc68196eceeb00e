package users

import (
	"context"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/core/rbac"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, principal *models.Principal) (*responses.UserProfile, error) {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return mapUserToProfile(user), nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, principal *models.Principal, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Email != "" && request.Email != user.Email {
		existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		user.Email = request.Email
	}
	if request.DisplayName != "" {
		user.DisplayName = request.DisplayName
	}
	user.UpdatedAt = time.Now()

	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return mapUserToProfile(user), nil
}

func (uc *userUsecase) ListUsers(ctx context.Context, principal *models.Principal, page, pageSize int) ([]responses.UserProfile, int, error) {
	err := rbac.RequirePermission(principal, models.PermissionManageUsers)
	if err != nil {
		return nil, 0, err
	}

	users, total, err := uc.UserRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]responses.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, *mapUserToProfile(&users[i]))
	}
	return profiles, total, nil
}

func mapUserToProfile(user *models.User) *responses.UserProfile {
	return &responses.UserProfile{
		UserID:      user.ID,
		Role:        string(user.Role),
		Email:       user.Email,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		PatientID:   user.PatientID,
	}
}
