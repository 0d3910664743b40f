package coach

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

// tipSchema constrains the model output to the Tip shape.
var tipSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"headline": {"type": "string"},
		"advice": {"type": "string"},
		"drill": {"type": "string"}
	},
	"required": ["headline", "advice", "drill"],
	"additionalProperties": false
}`)

// OpenAIProvider implements Provider using the OpenAI SDK. BaseURL supports
// OpenAI-compatible APIs.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// OpenAIConfig configures the provider.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewOpenAIProvider creates a provider from the given config.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("coach: API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, input TipInput) (*Tip, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(input)},
		},
		MaxCompletionTokens: 400,
		Temperature:         0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "practice_tip",
				Schema: tipSchema,
				Strict: true,
			},
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("coach generation: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("coach: no choices in response")
	}

	var out struct {
		Headline string `json:"headline"`
		Advice   string `json:"advice"`
		Drill    string `json:"drill"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		return nil, fmt.Errorf("coach: parse response: %w", err)
	}

	return &Tip{
		Headline: out.Headline,
		Advice:   out.Advice,
		Drill:    out.Drill,
	}, nil
}
