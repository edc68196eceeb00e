package contracts

import (
	"context"

	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AssistantClient proxies chat messages to the external language-model endpoint.
type AssistantClient interface {
	CreateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error)
}

type AssistantUsecase interface {
	Chat(ctx context.Context, principal *models.Principal, sessionID string, request *requests.AssistantChat) (*responses.AssistantChat, error)
}
