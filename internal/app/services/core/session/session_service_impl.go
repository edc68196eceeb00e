package session

import (
	"context"
	"time"

	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// ResolveSession turns an opaque client token into the current session, or nil.
// A missing token, an unknown session ID, an expired session, and a store
// failure all resolve to nil: callers on the request path cannot tell them
// apart, and only the store failure is logged as a diagnostic.
func (svc *sessionService) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}

	sessionID, err := utils.ParseSessionJWT(token, svc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, nil
	}

	sessionData, err := svc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		svc.Log.Warn("sessionService.ResolveSession session lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		svc.Log.Error("sessionService.ResolveSession corrupt session payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil
	}

	// An expired session is indistinguishable from an absent one.
	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}

	session.SessionID = sessionID
	return session, nil
}

func (svc *sessionService) DestroySession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionID)
}
