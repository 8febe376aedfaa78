// Package narrative turns stored estimates into customer-facing text and
// answers assistant chat messages through an OpenAI-compatible API.
package narrative

import (
	"context"
	"errors"
	"log"
	"strings"

	"granite_estimator/internal/config"
	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrNotConfigured = errors.New("language model not configured")
	ErrEmptyResponse = errors.New("language model returned no choices")
)

const (
	chatMaxTokens   = 250
	chatTemperature = 0.7
)

type OpenAIGenerator struct {
	client         *openai.Client
	narrativeModel string
	chatModel      string
	mockMode       bool
}

var (
	_ interfaces.INarrativeGenerator = (*OpenAIGenerator)(nil)
	_ interfaces.IChatAssistant      = (*OpenAIGenerator)(nil)
)

// NewOpenAIGenerator returns a generator even when no API key is set; calls
// then fail with ErrNotConfigured so estimates can still be priced.
func NewOpenAIGenerator(cfg config.OpenAIConfig) *OpenAIGenerator {
	g := &OpenAIGenerator{
		narrativeModel: cfg.NarrativeModel,
		chatModel:      cfg.ChatModel,
		mockMode:       cfg.Mock,
	}
	if cfg.Mock {
		log.Printf("[narrative][openai] mock mode enabled")
		return g
	}
	if cfg.APIKey == "" {
		log.Printf("[narrative][openai] missing OPENAI_API_KEY")
		return g
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	g.client = openai.NewClientWithConfig(clientCfg)
	log.Printf("[narrative][openai] client initialized narrative_model=%s chat_model=%s", g.narrativeModel, g.chatModel)
	return g
}

func (g *OpenAIGenerator) GenerateNarrative(ctx context.Context, e entities.Estimate) (string, error) {
	if g.mockMode {
		return mockNarrative(e), nil
	}
	if g.client == nil {
		return "", ErrNotConfigured
	}

	log.Printf("[narrative][openai] generate start estimate_id=%s", e.ID)
	text, err := g.complete(ctx, openai.ChatCompletionRequest{
		Model: g.narrativeModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: narrativeSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(e)},
		},
	})
	if err != nil {
		log.Printf("[narrative][openai] generate failed estimate_id=%s err=%v", e.ID, err)
		return "", err
	}
	log.Printf("[narrative][openai] generate success estimate_id=%s len=%d", e.ID, len(text))
	return text, nil
}

func (g *OpenAIGenerator) Reply(ctx context.Context, systemPrompt, message string) (string, error) {
	if g.mockMode {
		return "Thanks for your message! A designer will follow up shortly.", nil
	}
	if g.client == nil {
		return "", ErrNotConfigured
	}

	return g.complete(ctx, openai.ChatCompletionRequest{
		Model:       g.chatModel,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
}

func (g *OpenAIGenerator) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
