package contracts

import (
	"context"

	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterPatient, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
