package assistant

import (
	"context"
	"fmt"
	"time"

	"careportal-service/internal/app/config"
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

type assistantUsecase struct {
	AssistantClient contracts.AssistantClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAssistantUsecase(
	assistantClient contracts.AssistantClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AssistantUsecase {
	return &assistantUsecase{
		AssistantClient: assistantClient,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// Chat forwards a message to the language-model endpoint with the session's
// prior turns as context. History is keyed by session, so it expires with the
// login rather than accumulating per user.
func (uc *assistantUsecase) Chat(ctx context.Context, principal *models.Principal, sessionID string, request *requests.AssistantChat) (*responses.AssistantChat, error) {
	principal, err := rbac.RequireAuthenticated(principal)
	if err != nil {
		return nil, err
	}
	if err := rbac.RequirePermission(principal, models.PermissionUseAssistant); err != nil {
		return nil, err
	}

	historyKey := fmt.Sprintf(constvars.RedisChatHistoryKeyFormat, sessionID)
	history, err := uc.loadHistory(ctx, historyKey)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("assistantUsecase.Chat history load failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		history = nil
	}

	messages := make([]contracts.ChatMessage, 0, len(history)+2)
	if uc.InternalConfig.Assistant.SystemPrompt != "" {
		messages = append(messages, contracts.ChatMessage{
			Role:    constvars.AssistantRoleSystem,
			Content: uc.InternalConfig.Assistant.SystemPrompt,
		})
	}
	messages = append(messages, history...)

	userMessage := contracts.ChatMessage{
		Role:    constvars.AssistantRoleUser,
		Content: request.Message,
	}
	messages = append(messages, userMessage)

	reply, err := uc.AssistantClient.CreateChatCompletion(ctx, messages)
	if err != nil {
		return nil, err
	}

	uc.appendHistory(ctx, historyKey, userMessage, contracts.ChatMessage{
		Role:    constvars.AssistantRoleAssistant,
		Content: reply,
	})

	return &responses.AssistantChat{Reply: reply}, nil
}

func (uc *assistantUsecase) loadHistory(ctx context.Context, historyKey string) ([]contracts.ChatMessage, error) {
	entries, err := uc.RedisRepository.GetList(ctx, historyKey)
	if err != nil {
		return nil, err
	}

	history := make([]contracts.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var message contracts.ChatMessage
		if err := json.Unmarshal([]byte(entry), &message); err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		history = append(history, message)
	}
	return history, nil
}

// appendHistory is best effort: a failed write loses context for the next
// turn but never fails the reply the user already paid a model call for.
func (uc *assistantUsecase) appendHistory(ctx context.Context, historyKey string, messages ...contracts.ChatMessage) {
	values := make([]interface{}, 0, len(messages))
	for _, message := range messages {
		entry, err := json.Marshal(message)
		if err != nil {
			uc.Log.Error("assistantUsecase.appendHistory marshal failed", zap.Error(err))
			return
		}
		values = append(values, string(entry))
	}

	if err := uc.RedisRepository.PushToList(ctx, historyKey, values...); err != nil {
		uc.Log.Error("assistantUsecase.appendHistory push failed", zap.Error(err))
		return
	}

	historyTTL := time.Duration(uc.InternalConfig.App.ChatHistoryTTLInHour) * time.Hour
	if err := uc.RedisRepository.Expire(ctx, historyKey, historyTTL); err != nil {
		uc.Log.Error("assistantUsecase.appendHistory expire failed", zap.Error(err))
	}
}
