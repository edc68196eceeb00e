package contracts

import (
	"context"

	"careportal-service/internal/app/models"
)

// SessionService sits on every protected request path. ResolveSession returns
// (nil, nil) for a missing token, an unknown session, or an expired one; storage
// failures are logged and also collapse to (nil, nil) so resolution never fails
// the request outright.
type SessionService interface {
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
	DestroySession(ctx context.Context, sessionID string) error
}
