package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"careportal-service/internal/app/config"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	data map[string]string
	err  error
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	value, ok := f.data[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return value, nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeRedisRepository) PushToList(ctx context.Context, key string, values ...interface{}) error {
	return nil
}

func (f *fakeRedisRepository) GetList(ctx context.Context, key string) ([]string, error) {
	return nil, nil
}

func (f *fakeRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	return nil
}

const testJWTSecret = "test-secret"

func newTestSessionService(redisRepo *fakeRedisRepository) *sessionService {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	}
	return &sessionService{
		RedisRepository: redisRepo,
		InternalConfig:  internalConfig,
		Log:             zap.NewNop(),
	}
}

func storedSession(t *testing.T, redisRepo *fakeRedisRepository, sessionID string, session models.Session) string {
	t.Helper()
	payload, err := json.Marshal(session)
	require.NoError(t, err)
	redisRepo.data[sessionID] = string(payload)

	token, err := utils.GenerateSessionJWT(sessionID, testJWTSecret, 1)
	require.NoError(t, err)
	return token
}

func TestResolveSession(t *testing.T) {
	t.Run("Valid Session Resolves", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{data: map[string]string{}}
		svc := newTestSessionService(redisRepo)

		token := storedSession(t, redisRepo, "sess-1", models.Session{
			UserID:    "u-1",
			Role:      models.RolePatient,
			PatientID: "p-1",
			ExpiresAt: time.Now().Add(time.Hour),
		})

		session, err := svc.ResolveSession(context.Background(), token)
		assert.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "sess-1", session.SessionID)
		assert.Equal(t, "u-1", session.UserID)
		assert.Equal(t, models.RolePatient, session.Role)
	})

	t.Run("Empty Token Resolves To Nil", func(t *testing.T) {
		svc := newTestSessionService(&fakeRedisRepository{data: map[string]string{}})

		session, err := svc.ResolveSession(context.Background(), "")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Garbage Token Resolves To Nil", func(t *testing.T) {
		svc := newTestSessionService(&fakeRedisRepository{data: map[string]string{}})

		session, err := svc.ResolveSession(context.Background(), "not-a-jwt")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Token Signed With Wrong Secret Resolves To Nil", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{data: map[string]string{}}
		svc := newTestSessionService(redisRepo)

		token, err := utils.GenerateSessionJWT("sess-1", "another-secret", 1)
		require.NoError(t, err)

		session, err := svc.ResolveSession(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Unknown Session ID Resolves To Nil", func(t *testing.T) {
		svc := newTestSessionService(&fakeRedisRepository{data: map[string]string{}})

		token, err := utils.GenerateSessionJWT("sess-unknown", testJWTSecret, 1)
		require.NoError(t, err)

		session, err := svc.ResolveSession(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Expired Session Resolves To Nil", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{data: map[string]string{}}
		svc := newTestSessionService(redisRepo)

		token := storedSession(t, redisRepo, "sess-2", models.Session{
			UserID:    "u-2",
			Role:      models.RoleDoctor,
			ExpiresAt: time.Now().Add(-time.Minute),
		})

		session, err := svc.ResolveSession(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, session, "expired session must be indistinguishable from an absent one")
	})

	t.Run("Store Failure Resolves To Nil Without Error", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{err: errors.New("connection refused")}
		svc := newTestSessionService(redisRepo)

		token, err := utils.GenerateSessionJWT("sess-3", testJWTSecret, 1)
		require.NoError(t, err)

		session, err := svc.ResolveSession(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Corrupt Payload Resolves To Nil", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{data: map[string]string{"sess-4": "{not json"}}
		svc := newTestSessionService(redisRepo)

		token, err := utils.GenerateSessionJWT("sess-4", testJWTSecret, 1)
		require.NoError(t, err)

		session, err := svc.ResolveSession(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestDestroySession(t *testing.T) {
	redisRepo := &fakeRedisRepository{data: map[string]string{"sess-5": "{}"}}
	svc := newTestSessionService(redisRepo)

	err := svc.DestroySession(context.Background(), "sess-5")
	assert.NoError(t, err)
	assert.NotContains(t, redisRepo.data, "sess-5")
}
