package assistant

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type assistantClient struct {
	BaseUrl    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

func NewAssistantClient(cfg *config.Assistant) contracts.AssistantClient {
	return &assistantClient{
		BaseUrl:    cfg.BaseUrl,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []contracts.ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message contracts.ChatMessage `json:"message"`
	} `json:"choices"`
}

func (c *assistantClient) CreateChatCompletion(ctx context.Context, messages []contracts.ChatMessage) (string, error) {
	// The limiter throttles all upstream calls; waiting respects the request
	// deadline so a saturated limiter surfaces as a timeout, not a hang.
	if err := c.Limiter.Wait(ctx); err != nil {
		return "", exceptions.ErrAssistantRateLimited(err)
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model:    c.Model,
		Messages: messages,
	})
	if err != nil {
		return "", exceptions.ErrAssistantBuildRequest(err)
	}

	url := fmt.Sprintf("%s/v1/chat/completions", c.BaseUrl)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", exceptions.ErrAssistantBuildRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	request.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf("Bearer %s", c.APIKey))

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return "", exceptions.ErrAssistantSendRequest(err)
	}
	defer response.Body.Close()

	if response.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrAssistantSendRequest(fmt.Errorf("assistant endpoint returned status %d", response.StatusCode))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&completion); err != nil {
		return "", exceptions.ErrAssistantDecodeResponse(err)
	}
	if len(completion.Choices) == 0 {
		return "", exceptions.ErrAssistantDecodeResponse(fmt.Errorf("assistant endpoint returned no choices"))
	}

	return completion.Choices[0].Message.Content, nil
}
