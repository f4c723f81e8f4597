package genai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/cardforge/forge-api/internal/errors"
)

const (
	// DefaultModel matches the model the generation rules were tuned on.
	DefaultModel = openai.ChatModelGPT4oMini

	// DefaultTemperature keeps names and flavor varied without drifting too
	// far from the output format directive.
	DefaultTemperature = 0.7
)

// OpenAIConfig configures the OpenAI-backed client.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

// Validate ensures required fields are provided and fills defaults.
func (c *OpenAIConfig) Validate() error {
	if c.APIKey == "" {
		return errors.InvalidArgument("APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	return nil
}

// OpenAIClient implements Client on the OpenAI chat completions API.
type OpenAIClient struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewOpenAI creates an OpenAI-backed client.
func NewOpenAI(cfg *OpenAIConfig) (*OpenAIClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &OpenAIClient{
		client:      openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// GenerateText sends the rules document as the system message and the
// per-request instruction as the user message, returning the raw reply text.
func (c *OpenAIClient) GenerateText(ctx context.Context, input *GenerateTextInput) (*GenerateTextOutput, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(input.System),
			openai.UserMessage(input.Prompt),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return nil, errors.Unavailable("chat completion returned no choices")
	}

	return &GenerateTextOutput{Text: resp.Choices[0].Message.Content}, nil
}
