package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hauling_pros/internal/config"
	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

var ErrMissingAPIKey = errors.New("missing OPENAI_API_KEY")
var ErrEmptyCompletion = errors.New("no content received from assistant")
var ErrInvalidCompletion = errors.New("invalid response format from assistant")

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAssistant prices a job description with a chat completion model.
type OpenAIAssistant struct {
	client chatCompleter
	model  string
}

var _ interfaces.IEstimateAssistant = (*OpenAIAssistant)(nil)

func NewOpenAIAssistant(cfg config.AssistantConfig) (*OpenAIAssistant, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	log.Info().Str("model", cfg.Model).Msg("[assistant][openai] client initialized")
	return &OpenAIAssistant{client: openai.NewClientWithConfig(clientCfg), model: cfg.Model}, nil
}

func (a *OpenAIAssistant) Analyze(ctx context.Context, description string) (entities.AssistantEstimate, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: description},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    0.2,
		MaxTokens:      800,
	})
	if err != nil {
		log.Error().Err(err).Msg("[assistant][openai] completion failed")
		return entities.AssistantEstimate{}, err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return entities.AssistantEstimate{}, ErrEmptyCompletion
	}

	out, err := parseCompletion(resp.Choices[0].Message.Content)
	if err != nil {
		log.Warn().Err(err).Msg("[assistant][openai] unusable completion")
		return entities.AssistantEstimate{}, err
	}
	log.Info().Float64("estimated_amount", out.EstimatedAmount).Str("load_size", out.Breakdown.LoadSize).Msg("[assistant][openai] estimate ready")
	return out, nil
}

type completionPayload struct {
	Description     string                      `json:"description"`
	EstimatedAmount float64                     `json:"estimatedAmount"`
	Breakdown       *entities.EstimateBreakdown `json:"breakdown"`
}

// parseCompletion treats the model output as untrusted input.
func parseCompletion(content string) (entities.AssistantEstimate, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var p completionPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &p); err != nil {
		return entities.AssistantEstimate{}, fmt.Errorf("%w: %v", ErrInvalidCompletion, err)
	}
	if strings.TrimSpace(p.Description) == "" || p.EstimatedAmount <= 0 || p.Breakdown == nil {
		return entities.AssistantEstimate{}, ErrInvalidCompletion
	}
	if p.Breakdown.AdditionalFees == nil {
		p.Breakdown.AdditionalFees = []entities.AdditionalFee{}
	}
	return entities.AssistantEstimate{
		Analysis:        strings.TrimSpace(p.Description),
		EstimatedAmount: p.EstimatedAmount,
		Breakdown:       *p.Breakdown,
	}, nil
}
